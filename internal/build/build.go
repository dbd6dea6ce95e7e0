// Package build wires the terrain engine, the collapse solver and the
// layout generators into one reproducible generation run.
package build

import (
	"fmt"
	"math/rand"

	"cityforge/internal/city"
	"cityforge/internal/layout"
	"cityforge/internal/terrain"
	"cityforge/internal/wfc"
)

// GeneratorWFC selects the tile-collapse solver; GeneratorBlend runs the
// solver plus every layout generator and blends the plans.
const (
	GeneratorWFC   = "wfc"
	GeneratorBlend = "blend"
)

// blendLayoutWeight is the opacity each simple generator contributes in
// blend mode; the collapse solver's plan stays at full opacity.
const blendLayoutWeight = 0.35

// Options configures one generation run. The single seed drives the noise
// lattice, the collapse order and all placement jitter.
type Options struct {
	Name      string
	Seed      int
	Generator string // GeneratorWFC, GeneratorBlend, or a layout name
	Terrain   terrain.Config
	Collapse  wfc.Config
	Layout    layout.Config
	Catalog   *wfc.Catalog // nil means the built-in default
}

// DefaultOptions returns a coherent 800x600 run for the given seed.
func DefaultOptions(seed int) Options {
	t := terrain.DefaultConfig()
	t.Seed = seed
	c := wfc.DefaultConfig()
	c.Seed = seed
	l := layout.DefaultConfig()
	l.Seed = seed
	return Options{
		Name:      "cityforge",
		Seed:      seed,
		Generator: GeneratorWFC,
		Terrain:   t,
		Collapse:  c,
		Layout:    l,
	}
}

// GeneratorNames lists every accepted Generator value.
func GeneratorNames() []string {
	return append([]string{GeneratorWFC, GeneratorBlend}, layout.Names()...)
}

// City runs the full pipeline and assembles the export snapshot.
//
// Consumers of the seeded random stream run in a fixed order: collapse
// solve, grid emission, then the layout generators in layout.Names order.
// Reordering them changes output for the same seed, so don't.
func City(opts Options) (*city.Snapshot, error) {
	if err := opts.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("layout config: %w", err)
	}

	rng := rand.New(rand.NewSource(int64(opts.Seed)))

	tres, err := terrain.Generate(opts.Terrain)
	if err != nil {
		return nil, err
	}
	plan := city.EmitWater(tres)
	stats := city.TerrainStats(tres)

	cat := opts.Catalog
	if cat == nil {
		cat = wfc.DefaultCatalog()
	}

	runSolver := func() (city.Plan, *wfc.Stats, error) {
		solver, err := wfc.NewSolver(opts.Collapse, cat, rng)
		if err != nil {
			return city.Plan{}, nil, err
		}
		st := solver.Run()
		tileSize := float64(opts.Collapse.TileSize) * opts.Collapse.Scale
		return city.EmitGrid(solver.Grid(), cat, tileSize, rng), &st, nil
	}

	switch opts.Generator {
	case GeneratorWFC:
		p, st, err := runSolver()
		if err != nil {
			return nil, err
		}
		plan.Merge(p)
		stats.Solver = st

	case GeneratorBlend:
		p, st, err := runSolver()
		if err != nil {
			return nil, err
		}
		stats.Solver = st
		weighted := []layout.Weighted{{Name: GeneratorWFC, Plan: p, Weight: 1}}
		for _, name := range layout.Names() {
			gen, err := layout.ByName(name)
			if err != nil {
				return nil, err
			}
			weighted = append(weighted, layout.Weighted{
				Name:   name,
				Plan:   gen(opts.Layout, rng),
				Weight: blendLayoutWeight,
			})
		}
		plan.Merge(layout.Blend(weighted))

	default:
		gen, err := layout.ByName(opts.Generator)
		if err != nil {
			return nil, err
		}
		plan.Merge(gen(opts.Layout, rng))
	}

	return &city.Snapshot{
		Name:   opts.Name,
		Seed:   opts.Seed,
		Width:  opts.Terrain.Width,
		Height: opts.Terrain.Height,
		Plan:   plan,
		Legend: city.Legend(plan),
		Stats:  stats,
	}, nil
}
