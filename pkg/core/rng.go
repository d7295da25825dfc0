package core

import "math/rand/v2"

// Random is the single source of randomness used by the scene core: palette
// synthesis, particle drift, rotation increments and font switching.
type Random interface {
	// Uniform returns a value in [lo, hi). It returns lo when hi <= lo.
	Uniform(lo, hi float64) float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uniform returns a uniformly distributed value in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	v := lo + (hi-lo)*r.r.Float64()
	// Rounding can land exactly on hi for wide ranges.
	if v >= hi {
		return lo
	}
	return v
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}
