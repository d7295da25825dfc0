// Package layout computes draw coordinates for the focal image and caption.
package layout

import "bloom/internal/core"

// CenterImage returns the top-left corner that centres an image in the
// viewport, shifted down by offset. The vertical term uses the image width,
// which keeps square sprites where the scenes were authored.
func CenterImage(viewport, image core.Size, offset float64) core.Point {
	return core.Point{
		X: (viewport.W - image.W) / 2,
		Y: (viewport.H-image.W)/2 + offset,
	}
}

// Line is one placed caption line.
type Line struct {
	Text   string
	X, Y   float64
	Height float64
}

// CenterTextBlock centres each line horizontally and stacks the lines from
// top, advancing by the previous line's height plus spacing. widths and
// heights are the measured extents of lines, index for index.
func CenterTextBlock(lines []string, widths, heights []float64, viewport core.Size, top, spacing float64) []Line {
	out := make([]Line, len(lines))
	y := top
	for i, text := range lines {
		out[i] = Line{
			Text:   text,
			X:      (viewport.W - widths[i]) / 2,
			Y:      y,
			Height: heights[i],
		}
		y += heights[i] + spacing
	}
	return out
}
