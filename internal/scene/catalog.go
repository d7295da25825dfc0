// Package scene holds the ordered scene catalog and the controller that
// drives one forward-only pass through it.
package scene

import (
	"errors"
	"fmt"

	"bloom/internal/core"
	"bloom/internal/palette"
	"bloom/internal/particles"
	rnd "bloom/pkg/core"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no scenes.
	ErrEmptyCatalog = errors.New("catalog has no scenes")
	// ErrUnknownImage is returned when a scene names an image the library lacks.
	ErrUnknownImage = errors.New("unknown image")
	// ErrInvalidSwarm is returned for swarm parameters that cannot produce a palette.
	ErrInvalidSwarm = errors.New("invalid swarm")
	// ErrNoCaption is returned for a scene without caption lines.
	ErrNoCaption = errors.New("scene has no caption")
)

// Image is an opaque, already decoded image handle. The core only asks for
// its size; drawing is left to the renderer.
type Image interface {
	Size() core.Size
}

// Library resolves image names used by scene specs.
type Library interface {
	Image(name string) (Image, bool)
}

// Spec is the declarative form of a scene as written in a catalog table.
// Colours are "#rrggbb" strings.
type Spec struct {
	Background string
	Image      string
	Sprite     string
	Caption    []string
	Text       string
	Outline    string
	Kind       particles.Kind
	Swarm      palette.Swarm
}

// Descriptor is a validated, immutable scene.
type Descriptor struct {
	Background palette.Color
	ImageName  string
	Image      Image
	Sprite     Image
	Caption    []string
	Text       palette.Color
	Outline    palette.Color
	Kind       particles.Kind
	Palette    []palette.Color
}

// Catalog is the fixed, ordered scene sequence. Index 0 is the first scene and
// the last index is terminal.
type Catalog struct {
	scenes []Descriptor
}

// NewCatalog validates specs, resolves their images against lib and generates
// every scene palette. It is the only place scene data is checked.
func NewCatalog(specs []Spec, lib Library, rng rnd.Random) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyCatalog
	}
	scenes := make([]Descriptor, len(specs))
	for i, s := range specs {
		d, err := buildDescriptor(s, lib, rng)
		if err != nil {
			return nil, fmt.Errorf("scene %d: %w", i, err)
		}
		scenes[i] = d
	}
	return &Catalog{scenes: scenes}, nil
}

func buildDescriptor(s Spec, lib Library, rng rnd.Random) (Descriptor, error) {
	var d Descriptor
	var err error
	if d.Background, err = palette.Hex(s.Background); err != nil {
		return d, fmt.Errorf("background: %w", err)
	}
	if d.Text, err = palette.Hex(s.Text); err != nil {
		return d, fmt.Errorf("text colour: %w", err)
	}
	if d.Outline, err = palette.Hex(s.Outline); err != nil {
		return d, fmt.Errorf("outline colour: %w", err)
	}
	if len(s.Caption) == 0 {
		return d, ErrNoCaption
	}
	if s.Kind != particles.Ambient && s.Kind != particles.Rotating {
		return d, fmt.Errorf("%w: particle kind %d", ErrInvalidSwarm, s.Kind)
	}
	if err := s.Swarm.Validate(); err != nil {
		return d, fmt.Errorf("%w: %v", ErrInvalidSwarm, err)
	}

	img, ok := lib.Image(s.Image)
	if !ok {
		return d, fmt.Errorf("focal %w %q", ErrUnknownImage, s.Image)
	}
	sprite, ok := lib.Image(s.Sprite)
	if !ok {
		return d, fmt.Errorf("sprite %w %q", ErrUnknownImage, s.Sprite)
	}

	d.ImageName = s.Image
	d.Image = img
	d.Sprite = sprite
	d.Caption = append([]string(nil), s.Caption...)
	d.Kind = s.Kind
	d.Palette = palette.Generate(rng, s.Swarm)
	return d, nil
}

// Len returns the number of scenes.
func (c *Catalog) Len() int { return len(c.scenes) }

// Last returns the terminal scene index.
func (c *Catalog) Last() int { return len(c.scenes) - 1 }

// Scene returns the descriptor at index i. Indices outside [0, Len()) are a
// programming error and panic.
func (c *Catalog) Scene(i int) *Descriptor {
	if i < 0 || i >= len(c.scenes) {
		panic(fmt.Sprintf("scene: index %d out of range [0, %d)", i, len(c.scenes)))
	}
	return &c.scenes[i]
}

// ImageNames lists every image name referenced by specs, focal images and
// sprites alike, in first-use order without duplicates.
func ImageNames(specs []Spec) []string {
	seen := map[string]bool{}
	var names []string
	for _, s := range specs {
		for _, name := range []string{s.Image, s.Sprite} {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
