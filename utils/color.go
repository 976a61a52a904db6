package utils

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color value cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// HexToNRGBA converts a hex color string (#rgb, #rrggbb or #rrggbbaa,
// with or without the leading hash) to color.NRGBA.
func HexToNRGBA(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand the short #rgb form.
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ParseColor accepts either a hex color or one of the SVG 1.1 color
// names (e.g. "steelblue").
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return HexToNRGBA(name)
}

// Lighten mixes c with white. An amount of 0 returns c unchanged,
// 1 returns opaque white with c's alpha.
func Lighten(c color.NRGBA, amount float32) color.NRGBA {
	amount = Clamp(amount, 0, 1)
	mix := func(v uint8) uint8 {
		return v + uint8(float32(0xff-v)*amount)
	}
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
