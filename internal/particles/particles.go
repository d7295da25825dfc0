// Package particles implements the drifting particle swarm that fills the
// background of every scene.
package particles

import (
	"math"

	"bloom/internal/core"
	"bloom/internal/palette"
	rnd "bloom/pkg/core"
)

// Kind tags which variant a field holds.
type Kind uint8

const (
	// Ambient particles only drift.
	Ambient Kind = iota
	// Rotating particles drift and spin.
	Rotating
)

func (k Kind) String() string {
	switch k {
	case Ambient:
		return "ambient"
	case Rotating:
		return "rotating"
	default:
		return "unknown"
	}
}

const (
	// FullTurn is one complete rotation in radians.
	FullTurn = 2 * math.Pi

	// DriftX is the fixed rightward drift per tick.
	DriftX = 0.1
	// DriftYMax bounds the random downward drift per tick, drawn from [0, DriftYMax).
	DriftYMax = 5.0
	// SpinMax bounds the random rotation increment per tick for rotating
	// particles, drawn from [0, SpinMax).
	SpinMax = 0.05
)

// Particle is one sprite instance. Rotation is always zero for ambient
// particles.
type Particle struct {
	X, Y     float64
	Color    palette.Color
	Rotation float64
}

// Field is the live swarm for the active scene.
type Field struct {
	Kind      Kind
	Particles []Particle
}

// Spawn places one particle per palette entry uniformly inside the viewport.
// Rotating particles also receive a random initial rotation in [0, FullTurn).
func Spawn(rng rnd.Random, kind Kind, viewport core.Size, colors []palette.Color) Field {
	ps := make([]Particle, len(colors))
	for i, c := range colors {
		p := Particle{
			X:     rng.Uniform(0, viewport.W),
			Y:     rng.Uniform(0, viewport.H),
			Color: c,
		}
		if kind == Rotating {
			p.Rotation = rng.Uniform(0, FullTurn)
		}
		ps[i] = p
	}
	return Field{Kind: kind, Particles: ps}
}

// Advance moves every particle by one tick. A coordinate that passes the
// viewport edge re-enters at -extent so the sprite is fully hidden before it
// reappears.
func (f *Field) Advance(rng rnd.Random, extent float64, viewport core.Size) {
	for i := range f.Particles {
		p := &f.Particles[i]

		x := p.X + DriftX
		y := p.Y + rng.Uniform(0, DriftYMax)
		if x > viewport.W {
			x = -extent
		}
		if y > viewport.H {
			y = -extent
		}
		p.X, p.Y = x, y

		if f.Kind == Rotating {
			p.Rotation = spin(p.Rotation, rng.Uniform(0, SpinMax))
		}
	}
}

// spin adds step to r and snaps back to zero instead of carrying the
// remainder once a full turn is reached.
func spin(r, step float64) float64 {
	r += step
	if r >= FullTurn {
		return 0
	}
	return r
}

// Sprite is one entry of a draw list.
type Sprite struct {
	X, Y     float64
	Rotation float64
	Color    palette.Color
}

// AppendSprites appends the field's draw list to dst in particle order.
func (f *Field) AppendSprites(dst []Sprite) []Sprite {
	for _, p := range f.Particles {
		dst = append(dst, Sprite{X: p.X, Y: p.Y, Rotation: p.Rotation, Color: p.Color})
	}
	return dst
}
