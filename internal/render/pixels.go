package render

import (
	"image/color"
	"math"

	"bloom/internal/palette"
)

// FillDisc rasterises a filled disc centred in a w*h RGBA buffer. Pixels
// outside the disc are transparent and the rim is antialiased over one pixel.
func FillDisc(buf []byte, w, h int, col color.NRGBA) {
	if len(buf) < 4*w*h {
		return
	}
	cx := float64(w) / 2
	cy := float64(h) / 2
	radius := math.Min(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			coverage := clamp01(radius - d)
			if coverage == 0 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			// Premultiplied, as ebiten expects.
			a := float64(col.A) / 255 * coverage
			buf[base+0] = uint8(math.Round(float64(col.R) * a))
			buf[base+1] = uint8(math.Round(float64(col.G) * a))
			buf[base+2] = uint8(math.Round(float64(col.B) * a))
			buf[base+3] = uint8(math.Round(255 * a))
		}
	}
}

// colorScale returns per-channel multipliers that tint a white sprite to c.
func colorScale(c palette.Color) (r, g, b, a float64) {
	return clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
