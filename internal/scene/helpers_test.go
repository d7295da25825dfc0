package scene

import (
	"bloom/internal/core"
	"bloom/internal/palette"
	"bloom/internal/particles"
)

type fakeImage core.Size

func (f fakeImage) Size() core.Size { return core.Size(f) }

type fakeLibrary map[string]Image

func (l fakeLibrary) Image(name string) (Image, bool) {
	img, ok := l[name]
	return img, ok
}

func testLibrary() fakeLibrary {
	return fakeLibrary{
		"flower":  fakeImage{W: 100, H: 100},
		"star":    fakeImage{W: 80, H: 120},
		"rose":    fakeImage{W: 200, H: 200},
		"heart":   fakeImage{W: 32, H: 32},
		"sparkle": fakeImage{W: 16, H: 16},
	}
}

func testSpecs() []Spec {
	return []Spec{
		{
			Background: "#1a331a",
			Image:      "flower",
			Sprite:     "heart",
			Caption:    []string{"one", "two words"},
			Text:       "#ffffff",
			Outline:    "#000000",
			Kind:       particles.Ambient,
			Swarm:      palette.Swarm{Count: 100, Lo: 500, Hi: 1000, SecondaryScale: 0.2, Channels: palette.Channels{false, true, false}},
		},
		{
			Background: "#101030",
			Image:      "star",
			Sprite:     "sparkle",
			Caption:    []string{"second"},
			Text:       "#ffee00",
			Outline:    "#202020",
			Kind:       particles.Rotating,
			Swarm:      palette.Swarm{Count: 60, Lo: 300, Hi: 900, SecondaryScale: 0.3, Channels: palette.Channels{false, false, true}},
		},
		{
			Background: "#300a0a",
			Image:      "rose",
			Sprite:     "heart",
			Caption:    []string{"last", "scene", "here"},
			Text:       "#ffffff",
			Outline:    "#550000",
			Kind:       particles.Ambient,
			Swarm:      palette.Swarm{Count: 20, Lo: 600, Hi: 1000, SecondaryScale: 0.1, Channels: palette.Channels{true, false, false}},
		},
	}
}

type fakeInput struct {
	viewport core.Size
	pointer  core.Point
	pressed  bool
}

func (f *fakeInput) ViewportSize() core.Size    { return f.viewport }
func (f *fakeInput) CursorPosition() core.Point { return f.pointer }
func (f *fakeInput) Pressed() bool              { return f.pressed }

// fakeText measures every glyph as 10x20 pixels.
type fakeText struct{ fonts int }

func (f fakeText) MeasureText(line string, font int) core.Size {
	return core.Size{W: float64(len(line)) * 10, H: 20}
}

func (f fakeText) FontCount() int { return f.fonts }
