package slidingmenu

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

var (
	neutralBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	shadowColor       = color.NRGBA{A: 0x40}
)

// MenuItem holds the state of a single menu row.
type MenuItem struct {
	button widget.Clickable
}

// Update calls activate once for every click received since the last
// frame. The row performs no other state change: what an activation
// means is decided by the caller.
func (it *MenuItem) Update(activate func()) {
	for it.button.Clicked() {
		activate()
	}
}

// Click queues a programmatic activation, delivered by the next Update.
func (it *MenuItem) Click() {
	it.button.Click()
}

// Hovered reports whether a pointer is over the row.
func (it *MenuItem) Hovered() bool {
	return it.button.Hovered()
}

// MenuItemStyle renders a menu row: icon and title over a rounded
// background. The row is highlighted when Entry equals Selected.
type MenuItemStyle struct {
	Entry    Entry
	Selected Entry
	Icon     Icon

	// Foreground and Font are used for rows not highlighted. They
	// default to the Settings values and may be overridden.
	Foreground color.NRGBA
	Font       Font

	// Highlight and HighlightForeground are the background and text
	// colors of the highlighted row.
	Highlight           color.NRGBA
	HighlightForeground color.NRGBA
	// Background is the neutral row background.
	Background color.NRGBA

	CornerRadius unit.Dp
	Shadow       unit.Dp
	Inset        layout.Inset
	IconSize     unit.Dp

	item *MenuItem
	th   *material.Theme
}

// Item returns the style of a menu row for entry e, given the currently
// selected entry.
func Item(th *material.Theme, s *Settings, item *MenuItem, e, selected Entry) MenuItemStyle {
	return MenuItemStyle{
		Entry:               e,
		Selected:            selected,
		Foreground:          s.ForegroundTextColor,
		Font:                s.Font,
		Highlight:           s.BackgroundColor,
		HighlightForeground: s.SelectedForegroundTextColor,
		Background:          neutralBackground,
		CornerRadius:        10,
		Shadow:              2,
		Inset:               layout.UniformInset(8),
		IconSize:            defaultIconSize,
		item:                item,
		th:                  th,
	}
}

// Highlighted reports whether the row is drawn as selected.
func (m MenuItemStyle) Highlighted() bool {
	return m.Entry.Equal(m.Selected)
}

// Colors returns the row background and text color.
func (m MenuItemStyle) Colors() (bg, fg color.NRGBA) {
	if m.Highlighted() {
		return m.Highlight, m.HighlightForeground
	}
	return m.Background, m.Foreground
}

// Layout draws the row with the full width of the constraints.
func (m MenuItemStyle) Layout(gtx layout.Context) layout.Dimensions {
	bg, fg := m.Colors()
	gtx.Constraints.Min.X = gtx.Constraints.Max.X

	return m.item.button.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				size := gtx.Constraints.Min
				rr := gtx.Dp(m.CornerRadius)
				sh := gtx.Dp(m.Shadow)

				body := image.Rectangle{Max: image.Pt(size.X, size.Y-sh)}
				paint.FillShape(gtx.Ops, shadowColor, clip.UniformRRect(body.Add(image.Pt(0, sh)), rr).Op(gtx.Ops))
				paint.FillShape(gtx.Ops, bg, clip.UniformRRect(body, rr).Op(gtx.Ops))

				return layout.Dimensions{Size: size}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Bottom: m.Shadow}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return m.Inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return m.layoutContent(gtx, fg)
					})
				})
			}),
		)
	})
}

func (m MenuItemStyle) layoutContent(gtx layout.Context, fg color.NRGBA) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X

	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if m.Icon == nil {
				return layout.Dimensions{}
			}
			return layout.Inset{Right: 10}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Pt(gtx.Dp(m.IconSize), 0)
				return m.Icon.Layout(gtx, fg)
			})
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			size := m.Font.Size
			if size == 0 {
				size = m.th.TextSize
			}
			lbl := material.Label(m.th, size, m.Entry.Title)
			lbl.Font = m.Font.Font
			lbl.Color = fg
			lbl.MaxLines = 1
			return lbl.Layout(gtx)
		}),
	)
}
