package slidingmenu

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// DrawerState is the part of the menu state the drawer renders and
// requests changes to.
type DrawerState struct {
	Selected Entry
	Open     bool
}

// choose returns the state after the row of entry e is activated: e becomes
// selected and an open drawer closes. Both changes form one transition.
func (st DrawerState) choose(e Entry) DrawerState {
	next := DrawerState{Selected: e, Open: st.Open}
	if st.Open {
		next.Open = !next.Open
	}
	return next
}

// Drawer renders the header followed by one row per entry, in order.
// It holds the per-row state only; the selection and the visibility
// are owned by the caller and passed in as a DrawerState.
type Drawer struct {
	Entries []Entry
	// Header is drawn above the rows. It may be nil.
	Header layout.Widget
	// Icons resolves the entry icons. A nil Icons uses a private set.
	Icons *IconSet

	// RowSpacing is the vertical padding above and below every row.
	RowSpacing unit.Dp
	// Padding is the horizontal padding of the drawer content.
	Padding unit.Dp

	items []MenuItem
	list  widget.List
}

// rows returns the row states, one per entry. Row state is kept by
// position, so it survives as long as the entry stays at the same index.
func (d *Drawer) rows() []MenuItem {
	if n := len(d.Entries); len(d.items) != n {
		items := make([]MenuItem, n)
		copy(items, d.items)
		d.items = items
	}
	return d.items
}

// Item returns the state of the row at index i.
func (d *Drawer) Item(i int) *MenuItem {
	return &d.rows()[i]
}

// Update processes the row activations. For every activation, change is
// called with the complete next state.
func (d *Drawer) Update(st DrawerState, change func(DrawerState)) {
	items := d.rows()
	for i := range items {
		e := d.Entries[i]
		items[i].Update(func() {
			st = st.choose(e)
			change(st)
		})
	}
}

// Layout draws the drawer filling the maximum constraints.
func (d *Drawer) Layout(gtx layout.Context, th *material.Theme, s *Settings, st DrawerState) layout.Dimensions {
	if d.Icons == nil {
		d.Icons = NewIconSet()
	}
	items := d.rows()
	d.list.Axis = layout.Vertical

	rowSpacing, padding := d.RowSpacing, d.Padding
	if rowSpacing == 0 {
		rowSpacing = 5
	}
	if padding == 0 {
		padding = 10
	}

	return Background{Color: s.BackgroundColor}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		inset := layout.Inset{Left: padding, Right: padding}
		return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if d.Header == nil {
						return layout.Dimensions{}
					}
					return d.Header(gtx)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return material.List(th, &d.list).Layout(gtx, len(items), func(gtx layout.Context, i int) layout.Dimensions {
						e := d.Entries[i]
						row := Item(th, s, &items[i], e, st.Selected)
						row.Icon = d.Icons.find(e.Icon)
						return layout.Inset{Top: rowSpacing, Bottom: rowSpacing}.Layout(gtx, row.Layout)
					})
				}),
			)
		})
	})
}
