package scene

import (
	"bloom/internal/core"
	"bloom/internal/layout"
	"bloom/internal/palette"
	"bloom/internal/particles"
	rnd "bloom/pkg/core"
)

// Input is what the controller reads from the host once per tick.
type Input interface {
	ViewportSize() core.Size
	CursorPosition() core.Point
	// Pressed reports a primary button press that happened this tick.
	Pressed() bool
}

// TextMeasurer measures caption lines in one of the loaded caption fonts.
type TextMeasurer interface {
	MeasureText(line string, font int) core.Size
	FontCount() int
}

// Options holds presentation constants shared by every scene.
type Options struct {
	// ImageOffset shifts the focal image down from the viewport centre.
	ImageOffset float64
	// CaptionTop is the y coordinate of the first caption line.
	CaptionTop float64
	// LineSpacing is the gap added between caption lines.
	LineSpacing float64
	// RotationStep is the focal image rotation per tick, in radians.
	RotationStep float64
	// FontSwitchChance is the per-tick probability of moving to the next font.
	FontSwitchChance float64
}

// DefaultOptions returns the presentation used by the shipped catalogs.
func DefaultOptions() Options {
	return Options{
		ImageOffset:      150,
		CaptionTop:       150,
		LineSpacing:      10,
		RotationStep:     0.025,
		FontSwitchChance: 0.03,
	}
}

// Session is the mutable state of one run through a catalog.
type Session struct {
	Index    int
	Field    particles.Field
	ImagePos core.Point
	Viewport core.Size
	// Rotation is the focal image phase in [0, FullTurn).
	Rotation float64
	// Font indexes the caption font in use.
	Font int
}

// Controller owns the session and advances it one tick at a time. It is not
// safe for concurrent use; the host calls Tick from its frame loop.
type Controller struct {
	catalog *Catalog
	rng     rnd.Random
	text    TextMeasurer
	opts    Options

	s Session
}

// NewController starts a session on the first scene of cat.
func NewController(cat *Catalog, viewport core.Size, rng rnd.Random, text TextMeasurer, opts Options) *Controller {
	c := &Controller{
		catalog: cat,
		rng:     rng,
		text:    text,
		opts:    opts,
	}
	c.s.Viewport = viewport
	c.rebuild()
	return c
}

// rebuild derives the focal image position and a fresh particle field for
// the active scene and viewport. Previous particle positions are discarded.
func (c *Controller) rebuild() {
	d := c.catalog.Scene(c.s.Index)
	c.s.ImagePos = layout.CenterImage(c.s.Viewport, d.Image.Size(), c.opts.ImageOffset)
	c.s.Field = particles.Spawn(c.rng, d.Kind, c.s.Viewport, d.Palette)
}

// Tick runs one frame: resize handling, hit testing and scene advance, then
// the per-frame animation. The returned Frame owns its draw list.
func (c *Controller) Tick(in Input) Frame {
	if vp := in.ViewportSize(); vp != c.s.Viewport {
		c.s.Viewport = vp
		c.rebuild()
	}

	pointer := in.CursorPosition()
	hover := c.HitBox().ContainsStrict(pointer)
	advanced := false
	if hover && in.Pressed() && !c.Terminal() {
		c.s.Index++
		c.rebuild()
		advanced = true
		hover = c.HitBox().ContainsStrict(pointer)
	}

	d := c.catalog.Scene(c.s.Index)
	c.s.Field.Advance(c.rng, d.Sprite.Size().W, c.s.Viewport)
	c.s.Rotation = advancePhase(c.s.Rotation, c.opts.RotationStep)
	if c.rng.Uniform(0, 1) < c.opts.FontSwitchChance {
		c.s.Font = nextFont(c.s.Font, c.text.FontCount())
	}

	return c.frame(d, hover, advanced)
}

func advancePhase(r, step float64) float64 {
	r += step
	if r >= particles.FullTurn {
		return 0
	}
	return r
}

func nextFont(i, n int) int {
	if i+1 >= n {
		return 0
	}
	return i + 1
}

// HitBox is the focal image bounding box for the active scene.
func (c *Controller) HitBox() core.Rect {
	return core.Rect{Min: c.s.ImagePos, Size: c.Current().Image.Size()}
}

// Index returns the active scene index.
func (c *Controller) Index() int { return c.s.Index }

// Current returns the active scene descriptor.
func (c *Controller) Current() *Descriptor { return c.catalog.Scene(c.s.Index) }

// Terminal reports whether the active scene is the last one.
func (c *Controller) Terminal() bool { return c.s.Index == c.catalog.Last() }

// Field returns a copy of the live particle field.
func (c *Controller) Field() particles.Field {
	f := c.s.Field
	f.Particles = append([]particles.Particle(nil), c.s.Field.Particles...)
	return f
}

// ImagePos returns the focal image draw position.
func (c *Controller) ImagePos() core.Point { return c.s.ImagePos }

// Viewport returns the last observed viewport size.
func (c *Controller) Viewport() core.Size { return c.s.Viewport }

// Rotation returns the focal image rotation phase.
func (c *Controller) Rotation() float64 { return c.s.Rotation }

// FontIndex returns the caption font in use.
func (c *Controller) FontIndex() int { return c.s.Font }

// Session returns a snapshot of the session. The particle slice is copied.
func (c *Controller) Session() Session {
	s := c.s
	s.Field.Particles = append([]particles.Particle(nil), c.s.Field.Particles...)
	return s
}

func (c *Controller) frame(d *Descriptor, hover, advanced bool) Frame {
	sprites := c.s.Field.AppendSprites(make([]particles.Sprite, 0, len(c.s.Field.Particles)))

	widths := make([]float64, len(d.Caption))
	heights := make([]float64, len(d.Caption))
	for i, line := range d.Caption {
		sz := c.text.MeasureText(line, c.s.Font)
		widths[i], heights[i] = sz.W, sz.H
	}

	return Frame{
		Scene:         c.s.Index,
		Terminal:      c.Terminal(),
		Background:    d.Background,
		Kind:          c.s.Field.Kind,
		Sprite:        d.Sprite,
		Particles:     sprites,
		Image:         d.Image,
		ImagePos:      c.s.ImagePos,
		ImageRotation: c.s.Rotation,
		Tint:          palette.White,
		HitBox:        c.HitBox(),
		Caption: Caption{
			Lines:   layout.CenterTextBlock(d.Caption, widths, heights, c.s.Viewport, c.opts.CaptionTop, c.opts.LineSpacing),
			Font:    c.s.Font,
			Text:    d.Text,
			Outline: d.Outline,
		},
		Hover:    hover,
		Advanced: advanced,
	}
}
