//go:build ebiten

package app

import (
	"log"

	"bloom/internal/core"
	"bloom/internal/render"
	"bloom/internal/scene"
	"bloom/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a scene controller to the ebiten.Game interface.
type Game struct {
	ctrl     *scene.Controller
	renderer *render.Renderer
	overlay  *ui.Overlay

	input pointerInput
	frame scene.Frame
	hover bool
}

// New constructs a Game driving ctrl.
func New(ctrl *scene.Controller, renderer *render.Renderer, overlay *ui.Overlay) *Game {
	vp := ctrl.Viewport()
	return &Game{
		ctrl:     ctrl,
		renderer: renderer,
		overlay:  overlay,
		input:    pointerInput{viewport: vp},
	}
}

// Update handles per-frame logic and advances the scene controller.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.overlay != nil {
		g.overlay.Update()
	}

	g.input.poll()
	from := g.ctrl.Index()
	g.frame = g.ctrl.Tick(&g.input)
	if g.frame.Advanced {
		log.Printf("scene %d -> %d", from, g.frame.Scene)
		if g.frame.Terminal {
			log.Printf("reached the last scene")
		}
	}

	if g.frame.Hover != g.hover {
		g.hover = g.frame.Hover
		if g.hover {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}
	return nil
}

// Draw renders the frame produced by the last Update.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame.Image == nil {
		return
	}
	g.renderer.Draw(screen, g.frame)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.frame)
	}
}

// Layout keeps the logical screen equal to the window so scenes re-centre on
// resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.viewport = core.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// pointerInput samples mouse and touch state once per tick.
type pointerInput struct {
	viewport core.Size
	pointer  core.Point
	pressed  bool

	touches []ebiten.TouchID
}

func (p *pointerInput) poll() {
	x, y := ebiten.CursorPosition()
	p.pointer = core.Point{X: float64(x), Y: float64(y)}
	p.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		tx, ty := ebiten.TouchPosition(p.touches[0])
		p.pointer = core.Point{X: float64(tx), Y: float64(ty)}
		p.pressed = true
	}
}

func (p *pointerInput) ViewportSize() core.Size    { return p.viewport }
func (p *pointerInput) CursorPosition() core.Point { return p.pointer }
func (p *pointerInput) Pressed() bool              { return p.pressed }
