// Package single registers the one-scene catalog: a rotating flower over a
// field of green hearts.
package single

import (
	"bloom/internal/palette"
	"bloom/internal/particles"
	"bloom/internal/scene"
)

// Specs returns the catalog table.
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
			Swarm: palette.Swarm{
				Count:          100,
				Lo:             500,
				Hi:             1000,
				SecondaryScale: 0.2,
				Channels:       palette.Channels{false, true, false},
			},
		},
	}
}

func init() {
	scene.Register("single", Specs)
}
