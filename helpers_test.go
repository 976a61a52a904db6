package slidingmenu

import (
	"image"
	"testing"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

const (
	frameWidth  = 800
	frameHeight = 600
)

// frames drives a widget through consecutive Gio frames.
type frames struct {
	th     *material.Theme
	now    time.Time
	router router.Router
	ops    op.Ops
}

func newFrames(t *testing.T) *frames {
	t.Helper()
	return &frames{
		th:  material.NewTheme(gofont.Collection()),
		now: time.Unix(1700000000, 0),
	}
}

func (f *frames) context() layout.Context {
	f.ops.Reset()
	return layout.Context{
		Ops:         &f.ops,
		Now:         f.now,
		Queue:       &f.router,
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(frameWidth, frameHeight)),
	}
}

// layout runs one frame of m and advances the clock.
func (f *frames) layout(m *Menu) layout.Dimensions {
	gtx := f.context()
	dims := m.Layout(gtx, f.th)
	f.router.Frame(gtx.Ops)
	f.now = f.now.Add(time.Second / 60)
	return dims
}

// settle runs frames until the drawer transition is over.
func (f *frames) settle(t *testing.T, m *Menu) {
	t.Helper()
	for i := 0; i < 120; i++ {
		f.layout(m)
		if !m.slide.Animating() {
			return
		}
	}
	t.Fatalf("drawer transition did not finish")
}

// recorder is a content provider factory that remembers which content was
// built and which one was drawn last.
type recorder struct {
	built map[string]int
	shown string
}

func newRecorder() *recorder {
	return &recorder{built: make(map[string]int)}
}

func (r *recorder) content(name string) ContentProvider {
	return ContentFunc(func(th *material.Theme) layout.Widget {
		r.built[name]++
		return func(gtx layout.Context) layout.Dimensions {
			r.shown = name
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}
	})
}
