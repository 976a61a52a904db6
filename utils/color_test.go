package utils

import (
	"errors"
	"image/color"
	"testing"
)

func TestUtils_ShouldParseHexColors(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#007aff", color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}},
		{"007AFF", color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#11223380", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
	}
	for _, c := range cases {
		got, err := HexToNRGBA(c.in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("HexToNRGBA(%q) expected to be %v. Got %v", c.in, c.want, got)
		}
	}
}

func TestUtils_ShouldRejectInvalidColors(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "not-a-color"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestUtils_ShouldParseColorNames(t *testing.T) {
	got, err := ParseColor("SteelBlue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
	if got != want {
		t.Errorf("ParseColor expected to be %v. Got %v", want, got)
	}
}

func TestUtils_ShouldLightenTowardsWhite(t *testing.T) {
	c := color.NRGBA{R: 0, G: 100, B: 255, A: 0x80}
	if got := Lighten(c, 0); got != c {
		t.Errorf("Lighten by 0 should keep the color, got %v", got)
	}
	got := Lighten(c, 1)
	if got.R != 0xff || got.G != 0xff || got.B != 0xff || got.A != 0x80 {
		t.Errorf("Lighten by 1 should give white with the same alpha, got %v", got)
	}
	half := Lighten(c, 0.5)
	if half.R <= c.R || half.G <= c.G || half.B != 0xff {
		t.Errorf("Lighten by 0.5 should move channels towards white, got %v", half)
	}
}

func TestUtils_ShouldClampValues(t *testing.T) {
	if v := Clamp(1.5, 0.0, 1.0); v != 1 {
		t.Errorf("expected 1, got %v", v)
	}
	if v := Clamp(-3, 0, 10); v != 0 {
		t.Errorf("expected 0, got %v", v)
	}
	if v := Min(2, 7); v != 2 {
		t.Errorf("expected 2, got %v", v)
	}
	if v := Max(2, 7); v != 7 {
		t.Errorf("expected 7, got %v", v)
	}
}

func TestUtils_ShouldDecorateText(t *testing.T) {
	if got := decorate("ok", SuccessMessage); got != SuccessColor+"ok"+DefaultColor {
		t.Errorf("unexpected decorated text %q", got)
	}
	if got := decorate("ok", MessageType(42)); got != "ok" {
		t.Errorf("unknown message types should be left untouched, got %q", got)
	}
}
