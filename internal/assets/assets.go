//go:build ebiten

package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"bloom/internal/core"
	"bloom/internal/render"
	"bloom/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Image is a decoded texture usable both as a scene handle and by the renderer.
type Image struct {
	img *ebiten.Image
}

// Size implements scene.Image.
func (i *Image) Size() core.Size {
	b := i.img.Bounds()
	return core.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Texture implements render.Texture.
func (i *Image) Texture() *ebiten.Image { return i.img }

// Library holds every image a catalog needs, keyed by name.
type Library struct {
	images map[string]*Image
}

// LoadImages decodes the named images from dir. Missing files are replaced by
// a placeholder disc; any other read or decode failure is returned.
func LoadImages(dir string, names []string) (*Library, error) {
	lib := &Library{images: make(map[string]*Image, len(names))}
	for _, name := range names {
		path := ImagePath(dir, name)
		img, _, err := ebitenutil.NewImageFromFile(path)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("assets: %s missing, using placeholder", path)
			img = placeholder(name)
		default:
			return nil, fmt.Errorf("load image %q: %w", name, err)
		}
		lib.images[name] = &Image{img: img}
	}
	return lib, nil
}

// Image implements scene.Library.
func (l *Library) Image(name string) (scene.Image, bool) {
	img, ok := l.images[name]
	if !ok {
		return nil, false
	}
	return img, true
}

func placeholder(name string) *ebiten.Image {
	const n = PlaceholderSize
	buf := make([]byte, 4*n*n)
	render.FillDisc(buf, n, n, PlaceholderColor(name).RGBA8())
	img := ebiten.NewImage(n, n)
	img.WritePixels(buf)
	return img
}

// LoadFonts parses every TrueType font in dir/fonts at the given size. When
// no fonts are present the basic bitmap face is returned alone.
func LoadFonts(dir string, size float64) ([]font.Face, error) {
	paths, err := FontPaths(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		log.Printf("assets: no fonts in %s, using the built-in face", dir)
		return []font.Face{basicfont.Face7x13}, nil
	}
	faces := make([]font.Face, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		tt, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", path, err)
		}
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("face for %s: %w", path, err)
		}
		faces = append(faces, face)
	}
	return faces, nil
}
