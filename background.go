package slidingmenu

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/esimov/slidingmenu/utils"
)

// gradientLift is how much lighter the top of the gradient is.
const gradientLift = 0.3

// Background fills the maximum constraints with a vertical gradient
// derived from Color and lays the content out over the whole area.
type Background struct {
	Color color.NRGBA
}

// Layout draws the gradient and the content on top of it.
func (b Background) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	size := gtx.Constraints.Max

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	paint.LinearGradientOp{
		Stop1:  f32.Pt(0, 0),
		Color1: utils.Lighten(b.Color, gradientLift),
		Stop2:  f32.Pt(0, float32(size.Y)),
		Color2: b.Color,
	}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	area.Pop()

	gtx.Constraints.Min = size
	w(gtx)

	return layout.Dimensions{Size: size}
}
