package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/esimov/slidingmenu"
	"github.com/esimov/slidingmenu/utils"
)

const HelpBanner = `
┌─┐┬  ┬┌┬┐┬┌┐┌┌─┐┌┬┐┌─┐┌┐┌┬ ┬
└─┐│  │ │││││││ ┬│││├┤ ││││ │
└─┘┴─┘┴─┴┘┴┘└┘└─┘┴ ┴└─┘┘└┘└─┘

Sliding drawer navigation menu demo.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	config       = flag.String("config", "", "TOML style file")
	background   = flag.String("bg", "", "Menu background color (hex or color name)")
	itemText     = flag.String("fg", "", "Menu item text color")
	selectedText = flag.String("selfg", "", "Selected menu item text color")
	fontSize     = flag.Float64("font-size", 0, "Menu item font size")
	fontWeight   = flag.String("font-weight", "", "Menu item font weight (normal, medium, bold)")
	title        = flag.String("title", "SlidingMenu", "Window title")
	width        = flag.Int("width", 400, "Window width")
	height       = flag.Int("height", 700, "Window height")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	var st style
	if *config != "" {
		var err error
		if st, err = loadStyle(*config); err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the style file: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}
	st = st.merge(style{
		Background:   *background,
		Text:         *itemText,
		SelectedText: *selectedText,
		FontSize:     float32(*fontSize),
		FontWeight:   *fontWeight,
	})
	opts, err := st.options()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Invalid menu style: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	settings := slidingmenu.DefaultSettings()
	settings.Apply(opts...)

	go func() {
		w := app.NewWindow(app.Title(*title), app.Size(
			unit.Dp(float32(*width)),
			unit.Dp(float32(*height)),
		))
		if err := run(w, settings); err != nil {
			log.Fatalf(
				utils.DecorateText("Window error: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		os.Exit(0)
	}()
	app.Main()
}

// run draws the menu in the window until the window is closed.
func run(w *app.Window, settings *slidingmenu.Settings) error {
	th := material.NewTheme(gofont.Collection())
	menu := slidingmenu.New(settings, entries(settings), header(th, *title))

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			menu.Layout(gtx, th)
			e.Frame(gtx.Ops)
		case key.Event:
			if e.Name == key.NameEscape && e.State == key.Press {
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
