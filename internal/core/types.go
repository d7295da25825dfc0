package core

// Size describes the dimensions of the viewport or of an image, in pixels.
type Size struct {
	W float64
	H float64
}

// Point is a position in viewport coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	Min  Point
	Size Size
}

// ContainsStrict reports whether p lies strictly inside r on both axes. Points
// on the border are outside.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.Min.X && p.X < r.Min.X+r.Size.W &&
		p.Y > r.Min.Y && p.Y < r.Min.Y+r.Size.H
}
