package scene

import (
	"bloom/internal/core"
	"bloom/internal/layout"
	"bloom/internal/palette"
	"bloom/internal/particles"
)

// Caption is the placed caption block with its two-colour outline styling.
type Caption struct {
	Lines   []layout.Line
	Font    int
	Text    palette.Color
	Outline palette.Color
}

// Frame is everything the renderer needs for one tick.
type Frame struct {
	Scene    int
	Terminal bool

	Background palette.Color

	Kind      particles.Kind
	Sprite    Image
	// Particles is a fresh draw list per frame, detached from the session.
	Particles []particles.Sprite

	Image         Image
	ImagePos      core.Point
	ImageRotation float64
	Tint          palette.Color
	HitBox        core.Rect

	Caption Caption

	// Hover is set while the pointer is inside HitBox.
	Hover bool
	// Advanced is set on the tick that moved to a new scene.
	Advanced bool
}
