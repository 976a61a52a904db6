/*
Package slidingmenu is a drawer navigation widget for Gio. It shows the content of the selected
entry full screen and slides a menu with one row per entry in from the left edge, dimming the content below it.

The drawer is opened with the toggle button in the top left corner and closed by tapping the dimmed area
or by choosing an entry. Choosing an entry while the drawer is open selects it and closes the drawer in one step.

The content of an entry is produced by a ContentProvider every time the entry becomes selected,
so a view never outlives its visit. Style values are passed explicitly through a Settings value,
which can be shared by several menus.

Here is a simple example:

	package main

	import (
		"gioui.org/app"
		"gioui.org/font/gofont"
		"gioui.org/io/system"
		"gioui.org/layout"
		"gioui.org/op"
		"gioui.org/widget/material"
		"github.com/esimov/slidingmenu"
	)

	func main() {
		go func() {
			w := app.NewWindow()
			th := material.NewTheme(gofont.Collection())

			contacts := slidingmenu.ContentFunc(func(th *material.Theme) layout.Widget {
				return material.H4(th, "Contacts").Layout
			})
			menu := slidingmenu.New(slidingmenu.DefaultSettings(), []slidingmenu.Entry{
				slidingmenu.NewEntry("person.fill", "Contacts", contacts),
			}, nil)

			var ops op.Ops
			for e := range w.Events() {
				if e, ok := e.(system.FrameEvent); ok {
					gtx := layout.NewContext(&ops, e)
					menu.Layout(gtx, th)
					e.Frame(gtx.Ops)
				}
			}
		}()
		app.Main()
	}
*/
package slidingmenu
