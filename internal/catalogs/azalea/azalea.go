// Package azalea registers the full five-scene sequence.
package azalea

import (
	"bloom/internal/palette"
	"bloom/internal/particles"
	"bloom/internal/scene"
)

// Channel assignments used by the swarms below.
var (
	red    = palette.Channels{true, false, false}
	green  = palette.Channels{false, true, false}
	blue   = palette.Channels{false, false, true}
	violet = palette.Channels{true, false, true}
	gold   = palette.Channels{true, true, false}
)

// Specs returns the catalog table in presentation order.
func Specs() []scene.Spec {
	return []scene.Spec{
		{
			Background: "#1a331a",
			Image:      "flower50",
			Sprite:     "heart",
			Caption:    []string{"Азалия!", "я тебя люблю", "очень сильно!"},
			Text:       "#ffffff",
			Outline:    "#000000",
			Kind:       particles.Ambient,
			Swarm:      palette.Swarm{Count: 100, Lo: 500, Hi: 1000, SecondaryScale: 0.2, Channels: green},
		},
		{
			Background: "#0d1433",
			Image:      "star",
			Sprite:     "sparkle",
			Caption:    []string{"ты светишь ярче", "всех звёзд"},
			Text:       "#fff4b0",
			Outline:    "#1c1c40",
			Kind:       particles.Rotating,
			Swarm:      palette.Swarm{Count: 140, Lo: 600, Hi: 1000, SecondaryScale: 0.35, Channels: blue},
		},
		{
			Background: "#330d14",
			Image:      "rose",
			Sprite:     "petal",
			Caption:    []string{"каждый день", "с тобой", "как праздник"},
			Text:       "#ffffff",
			Outline:    "#4d0010",
			Kind:       particles.Rotating,
			Swarm:      palette.Swarm{Count: 120, Lo: 550, Hi: 1000, SecondaryScale: 0.25, Channels: red},
		},
		{
			Background: "#24103a",
			Image:      "ring",
			Sprite:     "heart",
			Caption:    []string{"нажми ещё раз"},
			Text:       "#f0d0ff",
			Outline:    "#000000",
			Kind:       particles.Ambient,
			Swarm:      palette.Swarm{Count: 160, Lo: 450, Hi: 900, SecondaryScale: 0.3, Channels: violet},
		},
		{
			Background: "#2e2408",
			Image:      "heart_big",
			Sprite:     "sparkle",
			Caption:    []string{"Азалия,", "я тебя люблю!"},
			Text:       "#ffffff",
			Outline:    "#402000",
			Kind:       particles.Rotating,
			Swarm:      palette.Swarm{Count: 200, Lo: 700, Hi: 1000, SecondaryScale: 0.4, Channels: gold},
		},
	}
}

func init() {
	scene.Register("azalea", Specs)
}
