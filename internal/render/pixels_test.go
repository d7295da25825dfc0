package render

import (
	"image/color"
	"testing"

	"bloom/internal/palette"
)

func TestFillDiscCentreAndCorners(t *testing.T) {
	const w, h = 16, 16
	buf := make([]byte, 4*w*h)
	for i := range buf {
		buf[i] = 0xaa
	}
	FillDisc(buf, w, h, color.NRGBA{R: 255, G: 0, B: 0, A: 255})

	at := func(x, y int) []byte { return buf[(y*w+x)*4 : (y*w+x)*4+4] }

	if c := at(8, 8); c[0] != 255 || c[1] != 0 || c[3] != 255 {
		t.Fatalf("centre pixel = %v, want opaque red", c)
	}
	for _, p := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		if c := at(p[0], p[1]); c[0] != 0 || c[1] != 0 || c[2] != 0 || c[3] != 0 {
			t.Fatalf("corner %v = %v, want transparent", p, c)
		}
	}
}

func TestFillDiscPremultiplied(t *testing.T) {
	const w, h = 8, 8
	buf := make([]byte, 4*w*h)
	FillDisc(buf, w, h, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	for i := 0; i < w*h; i++ {
		px := buf[i*4 : i*4+4]
		if px[0] > px[3] || px[1] > px[3] || px[2] > px[3] {
			t.Fatalf("pixel %d = %v exceeds its alpha", i, px)
		}
	}
}

func TestFillDiscShortBufferIgnored(t *testing.T) {
	buf := make([]byte, 3)
	FillDisc(buf, 4, 4, color.NRGBA{A: 255})
	for _, b := range buf {
		if b != 0 {
			t.Fatal("short buffer was written")
		}
	}
}

func TestColorScaleClamps(t *testing.T) {
	r, g, b, a := colorScale(palette.Color{R: 1.5, G: -0.2, B: 0.25, A: 1})
	if r != 1 || g != 0 || b != 0.25 || a != 1 {
		t.Fatalf("colorScale = (%v,%v,%v,%v)", r, g, b, a)
	}
}
