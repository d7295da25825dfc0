//go:build ebiten

package render

import (
	"bloom/internal/core"
	"bloom/internal/palette"
	"bloom/internal/particles"
	"bloom/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Texture is a scene image backed by an ebiten image.
type Texture interface {
	scene.Image
	Texture() *ebiten.Image
}

// Renderer draws scene frames and measures caption text with the same faces.
type Renderer struct {
	faces   []font.Face
	outline core.Point
}

// NewRenderer builds a renderer for the given caption faces. The outline copy
// of each caption line is drawn at outline relative to the line.
func NewRenderer(faces []font.Face, outline core.Point) *Renderer {
	return &Renderer{faces: faces, outline: outline}
}

// FontCount implements scene.TextMeasurer.
func (r *Renderer) FontCount() int { return len(r.faces) }

// MeasureText implements scene.TextMeasurer.
func (r *Renderer) MeasureText(line string, idx int) core.Size {
	face := r.face(idx)
	if face == nil {
		return core.Size{}
	}
	b := text.BoundString(face, line)
	return core.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

func (r *Renderer) face(i int) font.Face {
	if len(r.faces) == 0 {
		return nil
	}
	if i < 0 || i >= len(r.faces) {
		i = 0
	}
	return r.faces[i]
}

// Draw renders f onto screen: background, particles, focal image, caption.
func (r *Renderer) Draw(screen *ebiten.Image, f scene.Frame) {
	screen.Fill(f.Background)

	if sprite, ok := f.Sprite.(Texture); ok {
		r.drawParticles(screen, sprite.Texture(), f.Kind, f.Particles)
	}
	if img, ok := f.Image.(Texture); ok {
		drawRotated(screen, img.Texture(), f.ImagePos.X, f.ImagePos.Y, f.ImageRotation, f.Tint)
	}
	r.drawCaption(screen, f.Caption)
}

func (r *Renderer) drawParticles(screen, sprite *ebiten.Image, kind particles.Kind, list []particles.Sprite) {
	for _, p := range list {
		if kind == particles.Rotating {
			drawRotated(screen, sprite, p.X, p.Y, p.Rotation, p.Color)
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.X, p.Y)
		op.ColorM.Scale(colorScale(p.Color))
		screen.DrawImage(sprite, op)
	}
}

// drawRotated draws img with its top-left corner at (x, y), rotated by
// rotation radians about its centre.
func drawRotated(screen, img *ebiten.Image, x, y, rotation float64, tint palette.Color) {
	b := img.Bounds()
	hw := float64(b.Dx()) / 2
	hh := float64(b.Dy()) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-hw, -hh)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x+hw, y+hh)
	op.ColorM.Scale(colorScale(tint))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *Renderer) drawCaption(screen *ebiten.Image, c scene.Caption) {
	face := r.face(c.Font)
	if face == nil {
		return
	}
	for _, line := range c.Lines {
		x := int(line.X)
		y := int(line.Y)
		text.Draw(screen, line.Text, face, x+int(r.outline.X), y+int(r.outline.Y), c.Outline)
		text.Draw(screen, line.Text, face, x, y, c.Text)
	}
}
