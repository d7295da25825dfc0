// Package assets loads the images and caption fonts referenced by a scene
// catalog from an asset directory:
//
//	<dir>/images/<name>.png
//	<dir>/fonts/*.ttf
package assets

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"sort"

	"bloom/internal/palette"

	"github.com/lucasb-eyer/go-colorful"
)

// PlaceholderSize is the edge length of generated stand-in images.
const PlaceholderSize = 64

// ImagePath returns the file that holds the image called name.
func ImagePath(dir, name string) string {
	return filepath.Join(dir, "images", name+".png")
}

// FontPaths lists the TrueType fonts in dir/fonts, sorted by file name so the
// caption font order is stable.
func FontPaths(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "fonts", "*.ttf"))
	if err != nil {
		return nil, fmt.Errorf("list fonts: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// PlaceholderColor derives a stable, saturated colour from an image name so
// different missing images remain distinguishable on screen.
func PlaceholderColor(name string) palette.Color {
	h := fnv.New32a()
	h.Write([]byte(name))
	hue := float64(h.Sum32() % 360)
	c := colorful.Hsv(hue, 0.6, 0.95).Clamped()
	return palette.Color{R: c.R, G: c.G, B: c.B, A: 1}
}
