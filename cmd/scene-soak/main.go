package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "bloom/internal/catalogs/azalea"
	_ "bloom/internal/catalogs/single"
	"bloom/internal/core"
	"bloom/internal/scene"
	"bloom/internal/soak"
)

type tickList []int

func (l *tickList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *tickList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("tick %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	def := soak.DefaultConfig()
	catalog := flag.String("catalog", "azalea", "scene catalog to soak")
	ticks := flag.Int("ticks", def.Ticks, "number of ticks to run")
	seed := flag.Int64("seed", def.Seed, "seed for the controller and the input driver")
	width := flag.Float64("width", def.Viewport.W, "initial viewport width")
	height := flag.Float64("height", def.Viewport.H, "initial viewport height")
	clickChance := flag.Float64("click-chance", def.ClickChance, "per-tick chance of clicking the focal image")
	resizeChance := flag.Float64("resize-chance", def.ResizeChance, "per-tick chance of a random resize")
	var clicks tickList
	flag.Var(&clicks, "click", "ticks at which to click the focal image (repeatable, comma separated)")
	flag.Parse()

	factory, err := scene.Lookup(*catalog)
	if err != nil {
		log.Fatal(err)
	}

	cfg := def
	cfg.Ticks = *ticks
	cfg.Seed = *seed
	cfg.Viewport = core.Size{W: *width, H: *height}
	cfg.ClickChance = *clickChance
	cfg.ResizeChance = *resizeChance
	cfg.ClickAt = clicks

	res, err := soak.Run(factory(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Catalog %q: %d ticks, %d transitions, %d resizes, final scene %d (terminal=%v)\n",
		*catalog, res.Ticks, res.Transitions, res.Resizes, res.FinalScene, res.Terminal)
	if len(res.Violations) == 0 {
		fmt.Println("No invariant violations.")
		return
	}
	fmt.Printf("\n%d violations:\n", len(res.Violations))
	for _, v := range res.Violations {
		fmt.Println("  " + v)
	}
	os.Exit(1)
}
