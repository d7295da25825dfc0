// Package soak drives a scene controller without a window, feeding it random
// pointer activity and resizes while checking the session invariants after
// every tick.
package soak

import (
	"fmt"
	"math"

	"bloom/internal/core"
	"bloom/internal/layout"
	"bloom/internal/particles"
	"bloom/internal/scene"
	rnd "bloom/pkg/core"
)

// Config controls a soak run.
type Config struct {
	Ticks        int
	Seed         int64
	Viewport     core.Size
	ImageSize    float64
	FontSize     float64
	Fonts        int
	ClickChance  float64
	ResizeChance float64
	// ClickAt forces a click on the focal image at these ticks.
	ClickAt []int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Ticks:        10000,
		Seed:         1337,
		Viewport:     core.Size{W: 1000, H: 1000},
		ImageSize:    64,
		FontSize:     75,
		Fonts:        3,
		ClickChance:  0.002,
		ResizeChance: 0.001,
	}
}

// Result summarises a run.
type Result struct {
	Ticks       int
	Transitions int
	Resizes     int
	FinalScene  int
	Terminal    bool
	Violations  []string
}

// squareImage stands in for decoded images.
type squareImage float64

func (s squareImage) Size() core.Size { return core.Size{W: float64(s), H: float64(s)} }

type uniformLibrary struct{ size float64 }

func (l uniformLibrary) Image(string) (scene.Image, bool) { return squareImage(l.size), true }

// monospace approximates caption metrics without a rasteriser.
type monospace struct {
	size  float64
	fonts int
}

func (m monospace) MeasureText(line string, font int) core.Size {
	advance := m.size * (0.5 + 0.05*float64(font))
	return core.Size{W: float64(len([]rune(line))) * advance, H: m.size}
}

func (m monospace) FontCount() int { return m.fonts }

type input struct {
	viewport core.Size
	pointer  core.Point
	pressed  bool
}

func (in *input) ViewportSize() core.Size    { return in.viewport }
func (in *input) CursorPosition() core.Point { return in.pointer }
func (in *input) Pressed() bool              { return in.pressed }

const maxViolations = 20

// Run plays specs for cfg.Ticks ticks.
func Run(specs []scene.Spec, cfg Config) (Result, error) {
	rng := rnd.NewRNG(cfg.Seed)
	cat, err := scene.NewCatalog(specs, uniformLibrary{size: cfg.ImageSize}, rng)
	if err != nil {
		return Result{}, fmt.Errorf("build catalog: %w", err)
	}
	// Input randomness is kept apart from the controller's stream.
	driver := rnd.NewRNG(cfg.Seed + 1)
	opts := scene.DefaultOptions()
	ctrl := scene.NewController(cat, cfg.Viewport, rng, monospace{size: cfg.FontSize, fonts: cfg.Fonts}, opts)

	forced := map[int]bool{}
	for _, t := range cfg.ClickAt {
		forced[t] = true
	}

	res := Result{Ticks: cfg.Ticks}
	in := &input{viewport: cfg.Viewport}
	for tick := 0; tick < cfg.Ticks; tick++ {
		if driver.Chance(cfg.ResizeChance) {
			in.viewport = core.Size{
				W: math.Floor(driver.Uniform(200, 2000)),
				H: math.Floor(driver.Uniform(200, 2000)),
			}
			res.Resizes++
		}

		before := ctrl.Index()
		// A resize this tick re-centres the image before hit testing.
		box := ctrl.HitBox()
		if in.viewport != ctrl.Viewport() {
			img := cat.Scene(before).Image.Size()
			box = core.Rect{Min: layout.CenterImage(in.viewport, img, opts.ImageOffset), Size: img}
		}

		if forced[tick] || driver.Chance(cfg.ClickChance) {
			in.pointer = core.Point{X: box.Min.X + box.Size.W/2, Y: box.Min.Y + box.Size.H/2}
			in.pressed = true
		} else {
			in.pointer = core.Point{X: driver.Uniform(0, in.viewport.W), Y: driver.Uniform(0, in.viewport.H)}
			in.pressed = driver.Chance(0.01)
		}
		hit := in.pressed && box.ContainsStrict(in.pointer)

		frame := ctrl.Tick(in)
		if frame.Advanced {
			res.Transitions++
		}
		res.Violations = append(res.Violations, check(tick, before, hit, frame, ctrl, cat)...)
		if len(res.Violations) >= maxViolations {
			res.Violations = res.Violations[:maxViolations]
			break
		}
	}
	res.FinalScene = ctrl.Index()
	res.Terminal = ctrl.Terminal()
	return res, nil
}

func check(tick, before int, hit bool, f scene.Frame, ctrl *scene.Controller, cat *scene.Catalog) []string {
	var out []string
	report := func(format string, args ...any) {
		out = append(out, fmt.Sprintf("tick %d: ", tick)+fmt.Sprintf(format, args...))
	}

	wantIndex := before
	if hit && before < cat.Last() {
		wantIndex = before + 1
	}
	if ctrl.Index() != wantIndex {
		report("scene %d, want %d", ctrl.Index(), wantIndex)
	}

	d := cat.Scene(ctrl.Index())
	field := ctrl.Field()
	if len(field.Particles) != len(d.Palette) || field.Kind != d.Kind {
		report("field %d %v, want %d %v", len(field.Particles), field.Kind, len(d.Palette), d.Kind)
	}
	vp := ctrl.Viewport()
	extent := d.Sprite.Size().W
	for i, p := range field.Particles {
		if p.X < -extent || p.X > vp.W || p.Y < -extent || p.Y > vp.H {
			report("particle %d at (%.1f,%.1f) outside %vx%v", i, p.X, p.Y, vp.W, vp.H)
			break
		}
		if p.Rotation < 0 || p.Rotation >= particles.FullTurn {
			report("particle %d rotation %v", i, p.Rotation)
			break
		}
	}
	if f.ImageRotation < 0 || f.ImageRotation >= particles.FullTurn {
		report("image rotation %v", f.ImageRotation)
	}
	if f.Background != d.Background {
		report("background does not match scene %d", ctrl.Index())
	}
	return out
}
