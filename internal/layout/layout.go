// Package layout holds the single-pass placement generators that complement
// the tile-collapse solver: regular grid, Poisson-disk, random-walk
// deposition, cellular automata and Voronoi tessellation, plus the opacity
// blender that combines their plans.
package layout

import (
	"fmt"
	"math/rand"

	"go.uber.org/multierr"

	"cityforge/internal/city"
)

// Config sizes a layout generation run. The same config feeds every
// generator so their outputs can be blended cell-for-cell.
type Config struct {
	Width    int     // world pixels
	Height   int     // world pixels
	TileSize int     // building cell size in pixels
	Seed     int     // seeds the generators' noise fields
	Density  float64 // rough fill fraction in [0, 1]
}

// DefaultConfig returns a 800x600 canvas with 20px cells.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, TileSize: 20, Seed: 1, Density: 0.5}
}

// Validate rejects unusable configurations, reporting all violations.
func (c Config) Validate() error {
	var err error
	if c.Width <= 0 {
		err = multierr.Append(err, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if c.TileSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("tile size must be positive, got %d", c.TileSize))
	}
	if c.Density < 0 || c.Density > 1 {
		err = multierr.Append(err, fmt.Errorf("density must be in [0,1], got %g", c.Density))
	}
	return err
}

// cells returns the cell grid dimensions.
func (c Config) cells() (cols, rows int) {
	return c.Width / c.TileSize, c.Height / c.TileSize
}

// Generator produces a city plan from a config and the run's random stream.
type Generator func(cfg Config, rng *rand.Rand) city.Plan

// generators maps the CLI/server names to implementations. Order matters
// for Names, which drives deterministic blending order.
var generatorNames = []string{"grid", "poisson", "walk", "automata", "voronoi"}

var generators = map[string]Generator{
	"grid":     Grid,
	"poisson":  Poisson,
	"walk":     Walk,
	"automata": Automata,
	"voronoi":  Voronoi,
}

// Names lists the available generators in documented order.
func Names() []string {
	return append([]string(nil), generatorNames...)
}

// ByName returns the named generator.
func ByName(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q (available: %v)", name, generatorNames)
	}
	return g, nil
}

// categoryPick draws a building category with a fixed 60/25/15
// residential/commercial/industrial split.
func categoryPick(rng *rand.Rand) string {
	switch r := rng.Float64(); {
	case r < 0.60:
		return "residential"
	case r < 0.85:
		return "commercial"
	default:
		return "industrial"
	}
}

// buildingAt places a one-cell building with seeded floors.
func buildingAt(wx, wy, size float64, category string, rng *rand.Rand) city.Building {
	floors := 1 + rng.Intn(4)
	switch category {
	case "commercial":
		floors = 2 + rng.Intn(7)
	case "industrial":
		floors = 1 + rng.Intn(3)
	}
	return city.Building{
		X: wx, Y: wy, Width: size, Height: size,
		Category: category, Floors: floors, Alpha: 1,
	}
}
