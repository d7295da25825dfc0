//go:build !ebiten

package render

import (
	"bloom/internal/core"

	"golang.org/x/image/font"
)

// Renderer is the headless stand-in: it keeps the faces so FontCount matches
// the GUI build but measures every line as empty.
type Renderer struct {
	faces   []font.Face
	outline core.Point
}

// NewRenderer mirrors the GUI constructor.
func NewRenderer(faces []font.Face, outline core.Point) *Renderer {
	return &Renderer{faces: faces, outline: outline}
}

// FontCount implements scene.TextMeasurer.
func (r *Renderer) FontCount() int { return len(r.faces) }

// MeasureText implements scene.TextMeasurer and reports a zero size.
func (r *Renderer) MeasureText(string, int) core.Size { return core.Size{} }
