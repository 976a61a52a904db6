package slidingmenu

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/disintegration/imaging"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// FilePrefix marks an icon identifier referring to an image file
// instead of a named vector icon, e.g. "file:assets/avatar.png".
const FilePrefix = "file:"

// ErrUnknownIcon is returned when an icon identifier matches no icon.
var ErrUnknownIcon = errors.New("unknown icon")

// imageIconSize is the pixel size image files are fitted into
// when they are loaded.
const imageIconSize = 96

// Icon draws a menu icon with the width given by the minimum constraint.
// Vector icons are painted with the supplied color; image icons ignore it.
type Icon interface {
	Layout(gtx layout.Context, c color.NRGBA) layout.Dimensions
}

var materialIcons = map[string][]byte{
	"account":  icons.ActionAccountCircle,
	"back":     icons.NavigationChevronLeft,
	"bookmark": icons.ActionBookmark,
	"chat":     icons.CommunicationChat,
	"delete":   icons.ActionDelete,
	"edit":     icons.ContentCreate,
	"email":    icons.CommunicationEmail,
	"event":    icons.ActionEvent,
	"favorite": icons.ActionFavorite,
	"help":     icons.ActionHelp,
	"home":     icons.ActionHome,
	"info":     icons.ActionInfo,
	"menu":     icons.NavigationMenu,
	"people":   icons.SocialPeople,
	"person":   icons.SocialPerson,
	"photo":    icons.ImagePhoto,
	"place":    icons.MapsPlace,
	"search":   icons.ActionSearch,
	"settings": icons.ActionSettings,
	"star":     icons.ToggleStar,
}

// symbolAliases maps common symbol names onto the material icon names.
var symbolAliases = map[string]string{
	"bubble":              "chat",
	"bubble.left":         "chat",
	"calendar":            "event",
	"chevron.left":        "back",
	"envelope":            "email",
	"gear":                "settings",
	"heart":               "favorite",
	"house":               "home",
	"info.circle":         "info",
	"line.3.horizontal":   "menu",
	"magnifyingglass":     "search",
	"mappin":              "place",
	"pencil":              "edit",
	"person.2":            "people",
	"person.crop.circle":  "account",
	"questionmark.circle": "help",
	"trash":               "delete",
}

// IconSet resolves icon identifiers to drawable icons and caches the
// result. An identifier is either a material icon name ("settings"),
// a symbol style name ("gear", "person.fill"), a name registered with
// Register, or FilePrefix followed by an image path.
//
// IconSet is not safe for concurrent use.
type IconSet struct {
	data     map[string][]byte
	cache    map[string]Icon
	errs     map[string]error
	reported map[string]bool
}

// NewIconSet returns an IconSet with the built-in icons.
func NewIconSet() *IconSet {
	return &IconSet{
		data:     make(map[string][]byte),
		cache:    make(map[string]Icon),
		errs:     make(map[string]error),
		reported: make(map[string]bool),
	}
}

// Register adds an IconVG icon under name, replacing any icon
// previously resolved for that name.
func (s *IconSet) Register(name string, data []byte) error {
	ic, err := widget.NewIcon(data)
	if err != nil {
		return fmt.Errorf("cannot register icon %q: %w", name, err)
	}
	s.data[name] = data
	s.cache[name] = ic
	delete(s.errs, name)
	delete(s.reported, name)
	return nil
}

// Lookup returns the icon for the identifier. Failed lookups are cached
// as well, so a missing file is only read once.
func (s *IconSet) Lookup(name string) (Icon, error) {
	if ic, ok := s.cache[name]; ok {
		return ic, nil
	}
	if err, ok := s.errs[name]; ok {
		return nil, err
	}
	ic, err := s.resolve(name)
	if err != nil {
		s.errs[name] = err
		return nil, err
	}
	s.cache[name] = ic
	return ic, nil
}

// find is Lookup for the rendering code: failures are logged once per
// identifier and the row is drawn without icon.
func (s *IconSet) find(name string) Icon {
	if name == "" {
		return nil
	}
	ic, err := s.Lookup(name)
	if err != nil {
		if !s.reported[name] {
			s.reported[name] = true
			log.Printf("slidingmenu: %v", err)
		}
		return nil
	}
	return ic
}

func (s *IconSet) resolve(name string) (Icon, error) {
	if path := strings.TrimPrefix(name, FilePrefix); path != name {
		return loadImageIcon(path)
	}
	data, ok := s.data[name]
	if !ok {
		data, ok = materialData(name)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	ic, err := widget.NewIcon(data)
	if err != nil {
		return nil, fmt.Errorf("cannot decode icon %q: %w", name, err)
	}
	return ic, nil
}

// materialData looks up the built-in icons, ignoring the ".fill"
// variants of symbol names.
func materialData(name string) ([]byte, bool) {
	name = strings.TrimSuffix(strings.ToLower(name), ".fill")
	if alias, ok := symbolAliases[name]; ok {
		name = alias
	}
	data, ok := materialIcons[name]
	return data, ok
}

// imageIcon is an icon backed by a bitmap.
type imageIcon struct {
	src paint.ImageOp
}

func loadImageIcon(path string) (Icon, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("cannot open icon file %q: %w", path, err)
	}
	thumb := imaging.Fit(img, imageIconSize, imageIconSize, imaging.Lanczos)
	return imageIcon{src: paint.NewImageOp(thumb)}, nil
}

func (ic imageIcon) Layout(gtx layout.Context, _ color.NRGBA) layout.Dimensions {
	sz := gtx.Constraints.Min.X
	if sz == 0 {
		sz = gtx.Dp(defaultIconSize)
	}
	gtx.Constraints = layout.Exact(image.Pt(sz, sz))
	return widget.Image{
		Src:      ic.src,
		Fit:      widget.Contain,
		Position: layout.Center,
	}.Layout(gtx)
}

const defaultIconSize = unit.Dp(24)

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}
