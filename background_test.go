package slidingmenu

import (
	"image"
	"testing"

	"gioui.org/layout"
)

func TestBackground_ShouldFillMaxConstraints(t *testing.T) {
	f := newFrames(t)
	gtx := f.context()
	gtx.Constraints = layout.Constraints{Max: image.Pt(300, 200)}

	var got layout.Constraints
	dims := Background{Color: defaultBackgroundColor}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		got = gtx.Constraints
		return layout.Dimensions{Size: image.Pt(10, 10)}
	})

	if dims.Size != image.Pt(300, 200) {
		t.Errorf("size expected to be %v. Got %v", image.Pt(300, 200), dims.Size)
	}
	if got.Min != got.Max || got.Max != image.Pt(300, 200) {
		t.Errorf("content constraints expected to be exact 300x200. Got %v", got)
	}
}
