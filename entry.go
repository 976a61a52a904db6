package slidingmenu

import (
	"gioui.org/layout"
	"gioui.org/widget/material"
)

// ContentProvider produces the view displayed when a menu entry is selected.
type ContentProvider interface {
	Content(th *material.Theme) layout.Widget
}

// ContentFunc adapts an ordinary function to the ContentProvider interface.
type ContentFunc func(th *material.Theme) layout.Widget

// Content calls f(th).
func (f ContentFunc) Content(th *material.Theme) layout.Widget {
	return f(th)
}

// Entry describes one menu choice: an icon identifier, a title and the
// provider of the content shown when the entry is selected.
type Entry struct {
	// Icon identifies the icon drawn next to the title. See IconSet
	// for the supported identifiers.
	Icon  string
	Title string

	content ContentProvider
}

// NewEntry creates a menu entry.
func NewEntry(icon, title string, content ContentProvider) Entry {
	return Entry{
		Icon:    icon,
		Title:   title,
		content: content,
	}
}

// Content asks the entry's provider for a fresh view. The result is never
// cached: every call goes to the provider.
func (e Entry) Content(th *material.Theme) layout.Widget {
	if e.content == nil {
		return emptyContent
	}
	if w := e.content.Content(th); w != nil {
		return w
	}
	return emptyContent
}

// Equal reports whether e and other denote the same menu entry.
//
// Entries are identified by their title alone: two entries with the same
// title but different icons or content compare equal, both for the
// selection highlight and for the menu state.
func (e Entry) Equal(other Entry) bool {
	return e.Title == other.Title
}

func emptyContent(gtx layout.Context) layout.Dimensions {
	return layout.Dimensions{Size: gtx.Constraints.Min}
}

const placeholderText = "This is a placeholder view.\n" +
	"This view will not display if menu entries are passed to the menu."

// Placeholder returns the entry displayed until the menu is mounted with a
// non-empty entry list.
func Placeholder() Entry {
	return NewEntry("pencil", "Default item", ContentFunc(func(th *material.Theme) layout.Widget {
		return func(gtx layout.Context) layout.Dimensions {
			return layout.Center.Layout(gtx, material.Body1(th, placeholderText).Layout)
		}
	}))
}
