//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"bloom/internal/app"
	"bloom/internal/assets"
	_ "bloom/internal/catalogs/azalea"
	_ "bloom/internal/catalogs/single"
	"bloom/internal/core"
	"bloom/internal/render"
	"bloom/internal/scene"
	"bloom/internal/ui"
	rnd "bloom/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

var outlineOffset = core.Point{X: 5, Y: 5}

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := scene.Lookup(cfg.Catalog)
	if err != nil {
		log.Fatal(err)
	}
	specs := factory()

	lib, err := assets.LoadImages(cfg.Assets, scene.ImageNames(specs))
	if err != nil {
		log.Fatal(err)
	}
	faces, err := assets.LoadFonts(cfg.Assets, cfg.FontSize)
	if err != nil {
		log.Fatal(err)
	}

	rng := rnd.NewRNG(cfg.EffectiveSeed())
	cat, err := scene.NewCatalog(specs, lib, rng)
	if err != nil {
		log.Fatalf("catalog %q: %v", cfg.Catalog, err)
	}

	renderer := render.NewRenderer(faces, outlineOffset)
	viewport := core.Size{W: float64(cfg.Width), H: float64(cfg.Height)}
	ctrl := scene.NewController(cat, viewport, rng, renderer, scene.DefaultOptions())
	game := app.New(ctrl, renderer, ui.NewOverlay(cfg.Debug))

	log.Printf("playing %q: %d scenes, %d fonts, %dx%d", cfg.Catalog, cat.Len(), len(faces), cfg.Width, cfg.Height)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
