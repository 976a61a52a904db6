package slidingmenu

import (
	"image/color"

	"gioui.org/text"
	"gioui.org/unit"
)

// Font is the typeface and size used to render the menu item titles.
// A zero Size falls back to the theme text size.
type Font struct {
	text.Font
	Size unit.Sp
}

// Settings contains the style values consulted by the menu components.
// A Settings value is shared by pointer, so one instance may style several
// menus at once. Fields are read on every frame, which means a change is
// visible on the next Layout call.
type Settings struct {
	// BackgroundColor is used for the drawer gradient and the
	// highlighted menu item.
	BackgroundColor color.NRGBA
	// ForegroundTextColor is the text color of the menu items.
	ForegroundTextColor color.NRGBA
	// SelectedForegroundTextColor is the text color of the selected item.
	SelectedForegroundTextColor color.NRGBA
	// Font is used for the menu item titles.
	Font Font
}

var (
	defaultBackgroundColor = color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}
	defaultForegroundColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	defaultSelectedColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	defaultFont            = Font{Size: 16}
)

// DefaultSettings returns a new Settings initialized with the default style:
// a blue menu background, black item text, white text for the selected item
// and the regular body font.
func DefaultSettings() *Settings {
	return &Settings{
		BackgroundColor:             defaultBackgroundColor,
		ForegroundTextColor:         defaultForegroundColor,
		SelectedForegroundTextColor: defaultSelectedColor,
		Font:                        defaultFont,
	}
}

// Option modifies a single style value.
type Option func(*Settings)

// WithBackgroundColor sets the menu background and highlight color.
func WithBackgroundColor(c color.NRGBA) Option {
	return func(s *Settings) { s.BackgroundColor = c }
}

// WithItemTextColor sets the text color of the menu items.
func WithItemTextColor(c color.NRGBA) Option {
	return func(s *Settings) { s.ForegroundTextColor = c }
}

// WithSelectedItemTextColor sets the text color of the selected menu item.
func WithSelectedItemTextColor(c color.NRGBA) Option {
	return func(s *Settings) { s.SelectedForegroundTextColor = c }
}

// WithItemFont sets the font of the menu item titles.
func WithItemFont(f Font) Option {
	return func(s *Settings) { s.Font = f }
}

// Apply applies the options in order. Values are not validated.
func (s *Settings) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(s)
	}
}

// resolve returns a copy of the current values with the options applied.
func (s *Settings) resolve(opts ...Option) Settings {
	r := *s
	r.Apply(opts...)
	return r
}
