package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gioui.org/text"
	"gioui.org/unit"
	"github.com/BurntSushi/toml"
	"github.com/esimov/slidingmenu"
	"github.com/esimov/slidingmenu/utils"
)

// ErrInvalidWeight is returned for an unsupported font_weight value.
var ErrInvalidWeight = errors.New("invalid font weight")

// style holds the values read from the -config file and the command line flags.
// Empty values keep the menu defaults.
type style struct {
	Background   string  `toml:"background"`
	Text         string  `toml:"text"`
	SelectedText string  `toml:"selected_text"`
	FontSize     float32 `toml:"font_size"`
	FontWeight   string  `toml:"font_weight"`
}

var weights = map[string]text.Weight{
	"normal": text.Normal,
	"medium": text.Medium,
	"bold":   text.Bold,
}

// loadStyle decodes a TOML style file. Unknown keys are rejected.
func loadStyle(path string) (style, error) {
	var s style
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("cannot decode style file %q: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return s, fmt.Errorf("unknown keys in style file %q: %v", path, keys)
	}
	return s, nil
}

// merge overrides the receiver with the non-empty values of o.
func (s style) merge(o style) style {
	if o.Background != "" {
		s.Background = o.Background
	}
	if o.Text != "" {
		s.Text = o.Text
	}
	if o.SelectedText != "" {
		s.SelectedText = o.SelectedText
	}
	if o.FontSize > 0 {
		s.FontSize = o.FontSize
	}
	if o.FontWeight != "" {
		s.FontWeight = o.FontWeight
	}
	return s
}

// options converts the style values into menu options.
func (s style) options() ([]slidingmenu.Option, error) {
	var opts []slidingmenu.Option

	colors := []struct {
		value string
		opt   func(color.NRGBA) slidingmenu.Option
	}{
		{s.Background, slidingmenu.WithBackgroundColor},
		{s.Text, slidingmenu.WithItemTextColor},
		{s.SelectedText, slidingmenu.WithSelectedItemTextColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		col, err := utils.ParseColor(c.value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, c.opt(col))
	}

	if s.FontSize > 0 || s.FontWeight != "" {
		font := slidingmenu.DefaultSettings().Font
		if s.FontSize > 0 {
			font.Size = unit.Sp(s.FontSize)
		}
		if s.FontWeight != "" {
			w, ok := weights[strings.ToLower(s.FontWeight)]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrInvalidWeight, s.FontWeight)
			}
			font.Weight = w
		}
		opts = append(opts, slidingmenu.WithItemFont(font))
	}
	return opts, nil
}
