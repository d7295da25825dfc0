package particles

import (
	"math"
	"testing"

	"bloom/internal/core"
	"bloom/internal/palette"
	rnd "bloom/pkg/core"
)

// fixedRandom returns lo + frac*(hi-lo) for every draw.
type fixedRandom struct{ frac float64 }

func (f fixedRandom) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + f.frac*(hi-lo)
}

func colors(n int) []palette.Color {
	out := make([]palette.Color, n)
	for i := range out {
		out[i] = palette.Color{R: 0.5, G: 1, B: 0.1, A: 1}
	}
	return out
}

func TestSpawnCountAndBounds(t *testing.T) {
	rng := rnd.NewRNG(5)
	viewports := []core.Size{{W: 1000, H: 1000}, {W: 800, H: 600}, {W: 1, H: 1}, {W: 3840, H: 240}}
	for _, vp := range viewports {
		for _, n := range []int{0, 1, 100, 500} {
			for _, kind := range []Kind{Ambient, Rotating} {
				f := Spawn(rng, kind, vp, colors(n))
				if len(f.Particles) != n {
					t.Fatalf("Spawn(%v, n=%d) returned %d particles", vp, n, len(f.Particles))
				}
				if f.Kind != kind {
					t.Fatalf("Spawn kind = %v, want %v", f.Kind, kind)
				}
				for i, p := range f.Particles {
					if p.X < 0 || p.X >= vp.W || p.Y < 0 || p.Y >= vp.H {
						t.Fatalf("particle %d at (%v,%v) outside %v", i, p.X, p.Y, vp)
					}
					if kind == Ambient && p.Rotation != 0 {
						t.Fatalf("ambient particle %d has rotation %v", i, p.Rotation)
					}
					if kind == Rotating && (p.Rotation < 0 || p.Rotation >= FullTurn) {
						t.Fatalf("rotating particle %d rotation %v outside [0, 2pi)", i, p.Rotation)
					}
				}
			}
		}
	}
}

func TestSpawnKeepsPaletteOrder(t *testing.T) {
	cs := []palette.Color{{R: 1, A: 1}, {G: 1, A: 1}, {B: 1, A: 1}}
	f := Spawn(rnd.NewRNG(1), Ambient, core.Size{W: 10, H: 10}, cs)
	for i := range cs {
		if f.Particles[i].Color != cs[i] {
			t.Fatalf("particle %d colour %+v, want %+v", i, f.Particles[i].Color, cs[i])
		}
	}
}

func TestAdvanceStaysWithinMargin(t *testing.T) {
	const extent = 32
	rng := rnd.NewRNG(9)
	vp := core.Size{W: 200, H: 150}
	f := Spawn(rng, Rotating, vp, colors(50))
	for tick := 0; tick < 5000; tick++ {
		f.Advance(rng, extent, vp)
		for i, p := range f.Particles {
			if p.X < -extent || p.X > vp.W || p.Y < -extent || p.Y > vp.H {
				t.Fatalf("tick %d particle %d at (%v,%v) outside [-%d, viewport]", tick, i, p.X, p.Y, extent)
			}
			if p.Rotation < 0 || p.Rotation >= FullTurn {
				t.Fatalf("tick %d particle %d rotation %v outside [0, 2pi)", tick, i, p.Rotation)
			}
		}
	}
}

func TestAdvanceWrapsToNegativeExtent(t *testing.T) {
	vp := core.Size{W: 100, H: 100}
	f := Field{Kind: Ambient, Particles: []Particle{
		{X: 99.95, Y: 10},
		{X: 10, Y: 99},
	}}
	f.Advance(fixedRandom{frac: 0.5}, 16, vp)

	if got := f.Particles[0]; got.X != -16 || got.Y != 12.5 {
		t.Fatalf("horizontal wrap: got (%v,%v), want (-16,12.5)", got.X, got.Y)
	}
	if got := f.Particles[1]; got.Y != -16 || math.Abs(got.X-10.1) > 1e-9 {
		t.Fatalf("vertical wrap: got (%v,%v), want (10.1,-16)", got.X, got.Y)
	}
}

func TestAdvanceDoesNotWrapAtEdge(t *testing.T) {
	vp := core.Size{W: 100, H: 100}
	f := Field{Kind: Ambient, Particles: []Particle{{X: 50, Y: 100}}}
	f.Advance(fixedRandom{frac: 0}, 16, vp)
	if got := f.Particles[0]; got.Y != 100 {
		t.Fatalf("y exactly at the edge must not wrap, got %v", got.Y)
	}
}

func TestRotationResetsToZero(t *testing.T) {
	vp := core.Size{W: 100, H: 100}
	f := Field{Kind: Rotating, Particles: []Particle{{X: 1, Y: 1, Rotation: FullTurn - 0.01}}}
	// Draws SpinMax*0.9 = 0.045 which crosses the full turn.
	f.Advance(fixedRandom{frac: 0.9}, 8, vp)
	if got := f.Particles[0].Rotation; got != 0 {
		t.Fatalf("rotation after crossing full turn = %v, want exactly 0", got)
	}
	f.Advance(fixedRandom{frac: 0.9}, 8, vp)
	want := fixedRandom{frac: 0.9}.Uniform(0, SpinMax)
	if got := f.Particles[0].Rotation; got != want {
		t.Fatalf("rotation after reset tick = %v, want %v", got, want)
	}
}

func TestAmbientNeverRotates(t *testing.T) {
	vp := core.Size{W: 100, H: 100}
	f := Spawn(rnd.NewRNG(2), Ambient, vp, colors(10))
	for i := 0; i < 100; i++ {
		f.Advance(rnd.NewRNG(int64(i)), 8, vp)
	}
	for i, p := range f.Particles {
		if p.Rotation != 0 {
			t.Fatalf("ambient particle %d rotated to %v", i, p.Rotation)
		}
	}
}

func TestAppendSprites(t *testing.T) {
	f := Spawn(rnd.NewRNG(4), Rotating, core.Size{W: 50, H: 50}, colors(3))
	buf := make([]Sprite, 0, 8)
	buf = f.AppendSprites(buf)
	if len(buf) != 3 {
		t.Fatalf("AppendSprites produced %d sprites, want 3", len(buf))
	}
	for i, s := range buf {
		p := f.Particles[i]
		if s.X != p.X || s.Y != p.Y || s.Rotation != p.Rotation || s.Color != p.Color {
			t.Fatalf("sprite %d = %+v, particle %+v", i, s, p)
		}
	}
}
