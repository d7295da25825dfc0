package app

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config represents the runtime parameters for the application. Values come
// from defaults, then SCENES_* environment variables, then command-line flags.
type Config struct {
	Catalog    string  `env:"SCENES_CATALOG"`
	Assets     string  `env:"SCENES_ASSETS"`
	Title      string  `env:"SCENES_TITLE"`
	Width      int     `env:"SCENES_WIDTH"`
	Height     int     `env:"SCENES_HEIGHT"`
	TPS        int     `env:"SCENES_TPS"`
	Seed       int64   `env:"SCENES_SEED"`
	FontSize   float64 `env:"SCENES_FONT_SIZE"`
	Fullscreen bool    `env:"SCENES_FULLSCREEN"`
	Debug      bool    `env:"SCENES_DEBUG"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Catalog:  "azalea",
		Assets:   "assets",
		Title:    "Retro Game Engine",
		Width:    1000,
		Height:   1000,
		TPS:      60,
		Seed:     42,
		FontSize: 75,
	}
}

// LoadEnv overrides fields from the environment. Unset variables keep the
// current value.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Catalog, "catalog", c.Catalog, "scene catalog to play")
	fs.StringVar(&c.Assets, "assets", c.Assets, "directory holding images/ and fonts/")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.Float64Var(&c.FontSize, "font-size", c.FontSize, "caption font size in points")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start in fullscreen")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the debug overlay at start")
}

// EffectiveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
