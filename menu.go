package slidingmenu

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/slidingmenu/utils"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

const (
	// drawerFraction is the share of the available width taken by the drawer.
	drawerFraction = 0.6
	// overlayOpacity is the opacity of the dimming layer when the drawer is open.
	overlayOpacity = 0.7
)

var (
	overlayColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80}
	menuIcon     = mustIcon(widget.NewIcon(icons.NavigationMenu))
)

// Menu is a sliding navigation menu. It displays the content of the
// selected entry, a button toggling the drawer, and the drawer itself
// sliding in from the left over a dimming layer.
//
// Menu owns the selection and the drawer visibility; the drawer and its
// rows only report activations.
type Menu struct {
	settings *Settings
	entries  []Entry
	drawer   Drawer

	selected Entry
	content  layout.Widget
	open     bool
	mounted  bool
	pending  *Settings

	toggle  widget.Clickable
	overlay widget.Clickable
	slide   transition
}

// New creates a menu with the entries and a header drawn above them.
// The entries may be empty, in which case the placeholder entry stays
// displayed. A nil Settings is replaced by DefaultSettings.
func New(s *Settings, entries []Entry, header layout.Widget) *Menu {
	if s == nil {
		s = DefaultSettings()
	}
	return &Menu{
		settings: s,
		entries:  entries,
		selected: Placeholder(),
		drawer: Drawer{
			Entries: entries,
			Header:  header,
			Icons:   NewIconSet(),
		},
	}
}

// MenuSettings changes the menu style. Every omitted value keeps the value
// the Settings have at the time of this call. The values are written to the
// Settings, shared with anything else using them, on the next Layout.
func (m *Menu) MenuSettings(opts ...Option) *Menu {
	r := m.settings.resolve(opts...)
	m.pending = &r
	return m
}

// Settings returns the style settings used by the menu.
func (m *Menu) Settings() *Settings {
	return m.settings
}

// Entries returns the menu entries.
func (m *Menu) Entries() []Entry {
	return m.entries
}

// Icons returns the icon set used to resolve the entry icons.
func (m *Menu) Icons() *IconSet {
	return m.drawer.Icons
}

// Selected returns the selected entry.
func (m *Menu) Selected() Entry {
	return m.selected
}

// Open reports whether the drawer is open.
func (m *Menu) Open() bool {
	return m.open
}

// Mounted reports whether the menu was laid out at least once.
func (m *Menu) Mounted() bool {
	return m.mounted
}

// Progress returns the drawer position, from 0 when hidden to 1 when
// fully visible.
func (m *Menu) Progress() float32 {
	return m.slide.Value()
}

// Toggle opens a closed drawer and closes an open one.
func (m *Menu) Toggle() {
	m.setOpen(!m.open)
}

// Dismiss closes the drawer. It does nothing if the drawer is closed.
func (m *Menu) Dismiss() {
	if m.open {
		m.setOpen(false)
	}
}

// Select makes e the selected entry as if its row was activated,
// closing the drawer if it's open.
func (m *Menu) Select(e Entry) {
	m.change(m.state().choose(e))
}

func (m *Menu) state() DrawerState {
	return DrawerState{Selected: m.selected, Open: m.open}
}

// change applies a complete state transition. The selection and the
// visibility change together and share one animation.
func (m *Menu) change(st DrawerState) {
	m.selected = st.Selected
	m.content = nil
	m.setOpen(st.Open)
}

func (m *Menu) setOpen(open bool) {
	m.open = open
	if open {
		m.slide.set(1)
	} else {
		m.slide.set(0)
	}
}

// mount runs the first-frame setup and applies pending settings.
func (m *Menu) mount() {
	if m.pending != nil {
		*m.settings = *m.pending
		m.pending = nil
	}
	if m.mounted {
		return
	}
	m.mounted = true
	if len(m.entries) > 0 {
		m.change(DrawerState{Selected: m.entries[0]})
	}
}

// update processes the input events received since the last frame.
func (m *Menu) update() {
	for m.toggle.Clicked() {
		m.Toggle()
	}
	for m.overlay.Clicked() {
		m.Dismiss()
	}
	m.drawer.Update(m.state(), m.change)
}

// Layout handles the input events and draws the menu filling the maximum
// constraints.
func (m *Menu) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	m.mount()
	m.update()

	if m.content == nil {
		m.content = m.selected.Content(th)
	}
	if m.slide.update(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	progress := m.slide.Value()

	size := gtx.Constraints.Max
	gtx.Constraints = layout.Exact(size)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()

	// Back to front: content, toggle button, dimming layer, drawer.
	m.content(gtx)
	m.layoutToggle(gtx, th)
	m.layoutOverlay(gtx, progress)
	m.layoutDrawer(gtx, th, progress)

	return layout.Dimensions{Size: size}
}

func (m *Menu) layoutToggle(gtx layout.Context, th *material.Theme) layout.Dimensions {
	gtx.Constraints.Min = image.Point{}
	btn := material.IconButton(th, &m.toggle, menuIcon, "Toggle menu")
	btn.Background = color.NRGBA{}
	btn.Color = th.Palette.Fg
	btn.Size = unit.Dp(28)
	btn.Inset = layout.UniformInset(8)
	return layout.UniformInset(8).Layout(gtx, btn.Layout)
}

// layoutOverlay draws the dimming layer. It only takes input while the
// drawer is open or closing, so the content stays usable otherwise.
func (m *Menu) layoutOverlay(gtx layout.Context, progress float32) layout.Dimensions {
	if !m.open && progress <= 0 {
		return layout.Dimensions{}
	}
	size := gtx.Constraints.Min
	return m.overlay.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		c := overlayColor
		c.A = OverlayAlpha(progress)
		paint.FillShape(gtx.Ops, c, clip.Rect{Max: size}.Op())
		return layout.Dimensions{Size: size}
	})
}

// layoutDrawer draws the drawer at its animated offset. A fully hidden
// drawer is skipped.
func (m *Menu) layoutDrawer(gtx layout.Context, th *material.Theme, progress float32) layout.Dimensions {
	if !m.open && progress <= 0 {
		return layout.Dimensions{}
	}
	width, height := gtx.Constraints.Min.X, gtx.Constraints.Min.Y
	size := image.Pt(DrawerWidth(width), height)

	defer op.Offset(image.Pt(DrawerOffset(width, progress), 0)).Push(gtx.Ops).Pop()
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()

	gtx.Constraints = layout.Exact(size)
	return m.drawer.Layout(gtx, th, m.settings, m.state())
}

// DrawerWidth returns the drawer width for the available width.
func DrawerWidth(width int) int {
	return int(math.Round(float64(width) * drawerFraction))
}

// DrawerOffset returns the horizontal drawer offset for the available width:
// 0 when fully open (progress 1), -DrawerWidth(width) when closed (progress 0).
func DrawerOffset(width int, progress float32) int {
	p := utils.Clamp(progress, 0, 1)
	return -int(math.Round(float64(DrawerWidth(width)) * float64(1-p)))
}

// OverlayAlpha returns the alpha of the dimming layer for the progress.
func OverlayAlpha(progress float32) uint8 {
	p := utils.Clamp(progress, 0, 1)
	return uint8(math.Round(0xff * overlayOpacity * float64(p)))
}
