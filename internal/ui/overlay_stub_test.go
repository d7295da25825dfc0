//go:build !ebiten

package ui

import (
	"testing"

	"bloom/internal/scene"
)

func TestStubOverlayKeepsVisibility(t *testing.T) {
	o := NewOverlay(true)
	o.Update()
	o.Draw(nil, scene.Frame{})
	if !o.Visible() {
		t.Fatal("stub overlay lost its visibility flag")
	}
}
