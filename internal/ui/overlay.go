//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"bloom/internal/palette"
	"bloom/internal/particles"
	"bloom/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the scene: the focal
// hit box, particle headings and a session readout.
type Overlay struct {
	visible     bool
	showSprites bool
	pixel       *ebiten.Image
	hue         float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(visible bool) *Overlay {
	o := &Overlay{visible: visible}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showSprites = !o.showSprites
	}
	o.hue = math.Mod(o.hue+2, 360)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, f scene.Frame) {
	if !o.visible {
		return
	}

	box := f.HitBox
	col := palette.ShiftHue(palette.Color{R: 1, G: 0.3, B: 0.3, A: 0.9}, o.hue)
	if f.Hover {
		col = palette.Color{R: 1, G: 1, B: 1, A: 1}
	}
	x0, y0 := box.Min.X, box.Min.Y
	x1, y1 := x0+box.Size.W, y0+box.Size.H
	o.drawLine(screen, x0, y0, x1, y0, 1.5, col)
	o.drawLine(screen, x1, y0, x1, y1, 1.5, col)
	o.drawLine(screen, x1, y1, x0, y1, 1.5, col)
	o.drawLine(screen, x0, y1, x0, y0, 1.5, col)

	if o.showSprites && f.Kind == particles.Rotating {
		const heading = 10.0
		for _, p := range f.Particles {
			o.drawLine(screen, p.X, p.Y, p.X+math.Cos(p.Rotation)*heading, p.Y+math.Sin(p.Rotation)*heading, 1, p.Color)
		}
	}

	b := screen.Bounds()
	lines := []string{
		fmt.Sprintf("scene %d%s", f.Scene, terminalMark(f.Terminal)),
		fmt.Sprintf("particles %d (%s)", len(f.Particles), f.Kind),
		fmt.Sprintf("viewport %dx%d", b.Dx(), b.Dy()),
		fmt.Sprintf("font %d  rotation %.2f", f.Caption.Font, f.ImageRotation),
		fmt.Sprintf("tps %.1f", ebiten.ActualTPS()),
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 6, 16+i*16, color.White)
	}
}

func terminalMark(terminal bool) string {
	if terminal {
		return " (last)"
	}
	return ""
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col palette.Color) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(col.R, col.G, col.B, col.A)
	screen.DrawImage(o.pixel, op)
}
