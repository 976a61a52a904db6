package main

import (
	"fmt"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/slidingmenu"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var contacts = []string{
	"Ada Lovelace", "Alan Turing", "Barbara Liskov", "Dennis Ritchie",
	"Edsger Dijkstra", "Grace Hopper", "Ken Thompson", "Rob Pike",
}

var chats = []struct{ from, text string }{
	{"Rob Pike", "Don't communicate by sharing memory."},
	{"Ken Thompson", "When in doubt, use brute force."},
	{"Grace Hopper", "It's easier to ask forgiveness than it is to get permission."},
}

// entries returns the demo menu entries. Every call of a content provider
// builds a fresh view, so the list scroll position resets on each visit.
func entries(s *slidingmenu.Settings) []slidingmenu.Entry {
	return []slidingmenu.Entry{
		slidingmenu.NewEntry("person.fill", "Contacts", slidingmenu.ContentFunc(contactsView)),
		slidingmenu.NewEntry("bubble.fill", "Chats", slidingmenu.ContentFunc(chatsView)),
		slidingmenu.NewEntry("gear", "Settings", slidingmenu.ContentFunc(func(th *material.Theme) layout.Widget {
			return settingsView(th, s)
		})),
	}
}

// header renders the title block on top of the drawer.
func header(th *material.Theme, title string) layout.Widget {
	return func(gtx C) D {
		return layout.Inset{Top: unit.Dp(48), Bottom: unit.Dp(16), Left: unit.Dp(8)}.Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					l := material.H5(th, title)
					l.Color = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
					return l.Layout(gtx)
				}),
				layout.Rigid(func(gtx C) D {
					l := material.Caption(th, "Press ESC to quit")
					l.Color = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
					return l.Layout(gtx)
				}),
			)
		})
	}
}

// page lays out a titled page below the menu toggle button.
func page(th *material.Theme, title string, body layout.Widget) layout.Widget {
	return func(gtx C) D {
		return layout.Inset{Top: unit.Dp(60), Left: unit.Dp(16), Right: unit.Dp(16)}.Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.H4(th, title).Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
				layout.Flexed(1, body),
			)
		})
	}
}

func contactsView(th *material.Theme) layout.Widget {
	list := &widget.List{List: layout.List{Axis: layout.Vertical}}
	return page(th, "Contacts", func(gtx C) D {
		return material.List(th, list).Layout(gtx, len(contacts), func(gtx C, i int) D {
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, material.Body1(th, contacts[i]).Layout)
		})
	})
}

func chatsView(th *material.Theme) layout.Widget {
	list := &widget.List{List: layout.List{Axis: layout.Vertical}}
	return page(th, "Chats", func(gtx C) D {
		return material.List(th, list).Layout(gtx, len(chats), func(gtx C, i int) D {
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(material.Subtitle1(th, chats[i].from).Layout),
					layout.Rigid(material.Body2(th, chats[i].text).Layout),
				)
			})
		})
	})
}

func settingsView(th *material.Theme, s *slidingmenu.Settings) layout.Widget {
	rows := []struct {
		name  string
		value color.NRGBA
	}{
		{"Background", s.BackgroundColor},
		{"Item text", s.ForegroundTextColor},
		{"Selected item text", s.SelectedForegroundTextColor},
	}
	return page(th, "Settings", func(gtx C) D {
		children := make([]layout.FlexChild, 0, len(rows)+1)
		for _, r := range rows {
			r := r
			children = append(children, layout.Rigid(func(gtx C) D {
				txt := fmt.Sprintf("%s: #%02x%02x%02x%02x", r.name, r.value.R, r.value.G, r.value.B, r.value.A)
				return layout.UniformInset(unit.Dp(6)).Layout(gtx, material.Body1(th, txt).Layout)
			}))
		}
		children = append(children, layout.Rigid(func(gtx C) D {
			txt := fmt.Sprintf("Font size: %vsp", s.Font.Size)
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, material.Body1(th, txt).Layout)
		}))
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}
