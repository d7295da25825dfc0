//go:build !ebiten

package ui

import "bloom/internal/scene"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a stub overlay.
func NewOverlay(visible bool) *Overlay { return &Overlay{visible: visible} }

// Visible reports whether the overlay would be drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder; the screen argument has no headless type.
func (o *Overlay) Draw(any, scene.Frame) {}
