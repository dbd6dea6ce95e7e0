package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCityDeterministic: the whole pipeline, solver through layout, must be
// byte-for-byte reproducible for a fixed seed.
func TestCityDeterministic(t *testing.T) {
	for _, gen := range []string{GeneratorWFC, GeneratorBlend, "grid"} {
		t.Run(gen, func(t *testing.T) {
			opts := DefaultOptions(42)
			opts.Generator = gen

			a, err := City(opts)
			require.NoError(t, err)
			b, err := City(opts)
			require.NoError(t, err)

			ja, err := a.MarshalIndent()
			require.NoError(t, err)
			jb, err := b.MarshalIndent()
			require.NoError(t, err)
			assert.Equal(t, string(ja), string(jb))
		})
	}
}

// TestCitySeedChangesOutput: a different seed gives a different city.
func TestCitySeedChangesOutput(t *testing.T) {
	a, err := City(DefaultOptions(1))
	require.NoError(t, err)
	b, err := City(DefaultOptions(2))
	require.NoError(t, err)

	ja, err := a.MarshalIndent()
	require.NoError(t, err)
	jb, err := b.MarshalIndent()
	require.NoError(t, err)
	assert.NotEqual(t, string(ja), string(jb))
}

// TestCityWFC runs the solver path and checks the snapshot carries both the
// collapse output and the terrain stats.
func TestCityWFC(t *testing.T) {
	snap, err := City(DefaultOptions(7))
	require.NoError(t, err)

	require.NotNil(t, snap.Stats.Solver)
	assert.Greater(t, snap.Stats.Solver.Collapsed, 0)
	assert.Greater(t, len(snap.Buildings), 0)
	assert.Greater(t, snap.Stats.WaterCells, 0, "default coverage should produce water")
	assert.Equal(t, 7, snap.Seed)
	assert.Equal(t, 800, snap.Width)
	assert.Equal(t, 600, snap.Height)

	require.NotEmpty(t, snap.Legend)
	hex, ok := snap.Legend["residential"]
	require.True(t, ok, "legend missing residential")
	assert.Len(t, hex, 7)
	assert.Equal(t, byte('#'), hex[0])
}

// TestCityBlend checks blended output carries reduced-alpha primitives from
// the layout generators alongside the full-alpha solver plan.
func TestCityBlend(t *testing.T) {
	opts := DefaultOptions(7)
	opts.Generator = GeneratorBlend
	snap, err := City(opts)
	require.NoError(t, err)

	var full, faded int
	for _, b := range snap.Buildings {
		switch b.Alpha {
		case 1:
			full++
		case blendLayoutWeight:
			faded++
		}
	}
	assert.Greater(t, full, 0, "solver plan should contribute full-alpha buildings")
	assert.Greater(t, faded, 0, "layout plans should contribute faded buildings")
}

// TestCityLayoutOnly runs a single named layout generator.
func TestCityLayoutOnly(t *testing.T) {
	opts := DefaultOptions(7)
	opts.Generator = "poisson"
	snap, err := City(opts)
	require.NoError(t, err)
	assert.Nil(t, snap.Stats.Solver)
	assert.Greater(t, len(snap.Buildings), 0)
}

// TestCityUnknownGenerator rejects names outside the roster.
func TestCityUnknownGenerator(t *testing.T) {
	opts := DefaultOptions(7)
	opts.Generator = "spiral"
	_, err := City(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generator")
}

// TestCityBadConfig surfaces configuration errors before any generation.
func TestCityBadConfig(t *testing.T) {
	opts := DefaultOptions(7)
	opts.Terrain.WaterCoverage = 2
	_, err := City(opts)
	require.Error(t, err)

	opts = DefaultOptions(7)
	opts.Layout.TileSize = 0
	_, err = City(opts)
	require.Error(t, err)
}

// TestGeneratorNames lists the solver modes first, then the layouts.
func TestGeneratorNames(t *testing.T) {
	names := GeneratorNames()
	require.GreaterOrEqual(t, len(names), 7)
	assert.Equal(t, GeneratorWFC, names[0])
	assert.Equal(t, GeneratorBlend, names[1])
	assert.Contains(t, names, "grid")
	assert.Contains(t, names, "voronoi")
}
