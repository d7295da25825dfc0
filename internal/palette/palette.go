// Package palette synthesises the particle colours for a scene swarm and
// holds the normalised Color value type shared by the scene core.
package palette

import (
	"fmt"
	"image/color"

	"bloom/pkg/core"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a normalised RGBA quadruple with every channel in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	// White is the opaque white tint used for untinted sprites.
	White = Color{R: 1, G: 1, B: 1, A: 1}
	// Black is opaque black.
	Black = Color{A: 1}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}

// RGBA8 converts the colour to a non-premultiplied 8-bit value.
func (c Color) RGBA8() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// Hex parses a "#rrggbb" string into an opaque Color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Channels selects which of R, G and B receive the dominant intensity.
type Channels [3]bool

// Swarm parameterises palette generation for one scene.
type Swarm struct {
	Count int
	// Lo and Hi bound the dominant intensity before normalisation by Hi.
	Lo, Hi float64
	// SecondaryScale bounds the non-dominant channels relative to the
	// dominant draw.
	SecondaryScale float64
	Channels       Channels
}

// Validate reports whether the swarm parameters can produce channels in [0, 1].
func (s Swarm) Validate() error {
	switch {
	case s.Count < 0:
		return fmt.Errorf("negative particle count %d", s.Count)
	case s.Lo < 0 || s.Hi <= s.Lo:
		return fmt.Errorf("dominant range (%v, %v) must satisfy 0 <= lo < hi", s.Lo, s.Hi)
	case s.SecondaryScale < 0 || s.SecondaryScale > 1:
		return fmt.Errorf("secondary scale %v outside [0, 1]", s.SecondaryScale)
	}
	return nil
}

// Generate returns exactly s.Count opaque colours. Each colour draws a
// dominant intensity from [Lo, Hi) and a secondary one from
// [0, dominant*SecondaryScale), both normalised by Hi.
func Generate(rng core.Random, s Swarm) []Color {
	if s.Count <= 0 {
		return []Color{}
	}
	out := make([]Color, s.Count)
	for i := range out {
		raw := rng.Uniform(s.Lo, s.Hi)
		secondary := clamp01(rng.Uniform(0, raw*s.SecondaryScale) / s.Hi)
		dominant := clamp01(raw / s.Hi)

		c := Color{R: secondary, G: secondary, B: secondary, A: 1}
		if s.Channels[0] {
			c.R = dominant
		}
		if s.Channels[1] {
			c.G = dominant
		}
		if s.Channels[2] {
			c.B = dominant
		}
		out[i] = c
	}
	return out
}

// ShiftHue rotates the hue of c by deg degrees, keeping alpha.
func ShiftHue(c Color, deg float64) Color {
	h, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	h += deg
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	shifted := colorful.Hsv(h, s, v).Clamped()
	return Color{R: shifted.R, G: shifted.G, B: shifted.B, A: c.A}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
