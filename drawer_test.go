package slidingmenu

import (
	"testing"
)

func TestDrawer_ChooseShouldCloseOpenDrawer(t *testing.T) {
	contacts := NewEntry("a", "Contacts", nil)
	chats := NewEntry("b", "Chats", nil)

	next := DrawerState{Selected: contacts, Open: true}.choose(chats)
	if !next.Selected.Equal(chats) || next.Open {
		t.Errorf("selecting while open expected {Chats, closed}. Got {%s, %v}", next.Selected.Title, next.Open)
	}

	next = DrawerState{Selected: contacts, Open: false}.choose(chats)
	if !next.Selected.Equal(chats) || next.Open {
		t.Errorf("selecting while closed expected {Chats, closed}. Got {%s, %v}", next.Selected.Title, next.Open)
	}
}

func TestDrawer_ShouldReportRowActivationsInOrder(t *testing.T) {
	entries := []Entry{
		NewEntry("a", "Contacts", nil),
		NewEntry("b", "Chats", nil),
		NewEntry("c", "Settings", nil),
	}
	d := &Drawer{Entries: entries}

	var got []DrawerState
	d.Item(2).Click()
	d.Update(DrawerState{Selected: entries[0], Open: true}, func(st DrawerState) {
		got = append(got, st)
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 state change. Got %v", len(got))
	}
	if !got[0].Selected.Equal(entries[2]) || got[0].Open {
		t.Errorf("unexpected state {%s, %v}", got[0].Selected.Title, got[0].Open)
	}

	got = nil
	d.Update(DrawerState{Selected: entries[2]}, func(st DrawerState) {
		got = append(got, st)
	})
	if len(got) != 0 {
		t.Errorf("no state change expected without activations. Got %v", len(got))
	}
}

func TestDrawer_ShouldKeepRowStateByIndex(t *testing.T) {
	d := &Drawer{Entries: []Entry{NewEntry("a", "A", nil)}}
	first := d.Item(0)
	first.Click()

	d.Entries = append(d.Entries, NewEntry("b", "B", nil))
	calls := 0
	d.Update(DrawerState{}, func(DrawerState) { calls++ })
	if calls != 1 {
		t.Errorf("pending click of the first row should survive growing the list. Got %v calls", calls)
	}
}

func TestDrawer_ShouldLayoutWithoutHeader(t *testing.T) {
	f := newFrames(t)
	d := &Drawer{Entries: []Entry{NewEntry("gear", "Settings", nil), NewEntry("nope", "Unknown icon", nil)}}

	gtx := f.context()
	dims := d.Layout(gtx, f.th, DefaultSettings(), DrawerState{Selected: d.Entries[0]})
	if dims.Size.X != frameWidth || dims.Size.Y != frameHeight {
		t.Errorf("drawer should fill its constraints, got %v", dims.Size)
	}
	if d.Icons == nil {
		t.Errorf("drawer should create an icon set on demand")
	}
}
