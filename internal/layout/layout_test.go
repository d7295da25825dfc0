package layout

import (
	"testing"

	"bloom/internal/core"
)

func TestCenterImageUsesWidthForBothAxes(t *testing.T) {
	got := CenterImage(core.Size{W: 1000, H: 800}, core.Size{W: 100, H: 40}, 150)
	if got.X != 450 {
		t.Fatalf("x = %v, want 450", got.X)
	}
	// (800 - 100) / 2 + 150, not (800 - 40) / 2 + 150.
	if got.Y != 500 {
		t.Fatalf("y = %v, want 500", got.Y)
	}
}

func TestCenterImageLargerThanViewport(t *testing.T) {
	got := CenterImage(core.Size{W: 50, H: 50}, core.Size{W: 150, H: 150}, 0)
	if got.X != -50 || got.Y != -50 {
		t.Fatalf("got %+v, want (-50,-50)", got)
	}
}

func TestCenterTextBlock(t *testing.T) {
	lines := []string{"first", "second line", "third"}
	widths := []float64{100, 300, 60}
	heights := []float64{40, 50, 30}
	got := CenterTextBlock(lines, widths, heights, core.Size{W: 1000, H: 1000}, 150, 10)
	want := []Line{
		{Text: "first", X: 450, Y: 150, Height: 40},
		{Text: "second line", X: 350, Y: 200, Height: 50},
		{Text: "third", X: 470, Y: 260, Height: 30},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCenterTextBlockEmpty(t *testing.T) {
	if got := CenterTextBlock(nil, nil, nil, core.Size{W: 10, H: 10}, 0, 5); len(got) != 0 {
		t.Fatalf("expected no lines, got %d", len(got))
	}
}
