// Package main provides the entry point for Egg Paint: it picks one random
// egg, composes it and shows it in a window-filling canvas.
package main

import (
	"log"
	"time"

	"eggpaint/internal/app"
	"eggpaint/internal/config"
	"eggpaint/internal/egg"
	"eggpaint/internal/random"
	"eggpaint/internal/version"
	"eggpaint/pkg/colorutil"
	"eggpaint/pkg/geometry"
	"eggpaint/ui/canvas"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const appTitle = "Egg Paint"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s %s", appTitle, version.String())

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config: %v", err)
	}
	backdrop := colorutil.MustParse(cfg.Backdrop)

	seed := uint64(time.Now().UnixNano())
	viewport := geometry.NewSize(float64(cfg.WindowWidth), float64(cfg.WindowHeight))
	desc := random.Pick(random.NewSource(seed), viewport, cfg.DisplayScale)
	log.Printf("Egg (seed %d): %v", seed, desc)

	composite, err := egg.Compose(desc, cfg)
	if err != nil {
		log.Fatalf("Failed to compose egg: %v", err)
	}

	a := fyneapp.New()
	a.Settings().SetTheme(app.NewTheme(backdrop))
	a.Lifecycle().SetOnStarted(func() {
		log.Println("Display surface ready")
	})

	eggCanvas := canvas.NewEggCanvas(composite, backdrop)
	eggCanvas.OnFirstDraw(func(w, h int) {
		log.Printf("Egg rendered at %dx%d", w, h)
	})

	win := a.NewWindow(appTitle)
	win.SetPadded(false)
	win.SetContent(eggCanvas)
	win.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	win.ShowAndRun()
}
