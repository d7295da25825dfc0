package core

import "testing"

func TestUniformStaysInHalfOpenRange(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 10000; i++ {
		v := rng.Uniform(-3, 5)
		if v < -3 || v >= 5 {
			t.Fatalf("Uniform(-3, 5) = %v, outside [-3, 5)", v)
		}
	}
}

func TestUniformDegenerateRange(t *testing.T) {
	rng := NewRNG(1)
	if v := rng.Uniform(2, 2); v != 2 {
		t.Fatalf("Uniform(2, 2) = %v, want 2", v)
	}
	if v := rng.Uniform(4, 1); v != 4 {
		t.Fatalf("Uniform(4, 1) = %v, want 4", v)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 100; i++ {
		if x, y := a.Uniform(0, 1), b.Uniform(0, 1); x != y {
			t.Fatalf("draw %d differs for equal seeds: %v vs %v", i, x, y)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	rng := NewRNG(5)
	for i := 0; i < 1000; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
