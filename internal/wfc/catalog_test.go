package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"
)

func writeCatalog(t *testing.T, content string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "catalog.json", []byte(content), 0644))
	return fs
}

const validCatalogJSON = `{
  "tiles": [
    {"id": 0, "name": "cottage", "category": "residential", "weight": 4},
    {"id": 1, "name": "mall", "category": "commercial", "weight": 2},
    {"id": 2, "name": "plaza", "category": "park", "weight": 1}
  ],
  "compatibility": {
    "residential": {"residential": 0.9, "commercial": 0.5, "park": 0.8},
    "commercial": {"residential": 0.5, "commercial": 0.8, "park": 0.4},
    "park": {"residential": 0.8, "commercial": 0.4, "park": 0.9}
  },
  "threshold": 0.45
}`

// TestLoadCatalog reads a valid catalog and checks tiles, scores and the
// threshold override all arrive intact.
func TestLoadCatalog(t *testing.T) {
	fs := writeCatalog(t, validCatalogJSON)

	cat, err := LoadCatalog(fs, "catalog.json")
	require.NoError(t, err)
	require.Len(t, cat.Tiles, 3)

	tile, ok := cat.TileByID(1)
	require.True(t, ok)
	assert.Equal(t, "mall", tile.Name)
	assert.Equal(t, CategoryCommercial, tile.Category)
	assert.Equal(t, 2.0, tile.Weight)

	assert.Equal(t, 0.45, cat.Compat.Threshold)
	assert.Equal(t, 0.5, cat.Compat.Score(CategoryResidential, CategoryCommercial))
	// 0.5 > 0.45, so the pair is compatible; 0.4 is not.
	assert.True(t, cat.Compat.Compatible(CategoryResidential, CategoryCommercial))
	assert.False(t, cat.Compat.Compatible(CategoryCommercial, CategoryPark))
}

// TestLoadCatalogDefaultThreshold: omitting the threshold keeps the
// built-in default.
func TestLoadCatalogDefaultThreshold(t *testing.T) {
	fs := writeCatalog(t, `{
  "tiles": [{"id": 0, "name": "cottage", "category": "residential", "weight": 1}],
  "compatibility": {"residential": {"residential": 0.9}}
}`)
	cat, err := LoadCatalog(fs, "catalog.json")
	require.NoError(t, err)
	assert.Equal(t, DefaultCompatThreshold, cat.Compat.Threshold)
}

// TestLoadCatalogRejects covers the validation failures.
func TestLoadCatalogRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed JSON", `{"tiles": [`, "parse catalog"},
		{"no tiles", `{"tiles": []}`, "declares no tiles"},
		{
			"duplicate id",
			`{"tiles": [
			  {"id": 1, "name": "a", "category": "park", "weight": 1},
			  {"id": 1, "name": "b", "category": "park", "weight": 1}
			]}`,
			"duplicate tile id",
		},
		{
			"unknown category",
			`{"tiles": [{"id": 0, "name": "a", "category": "swamp", "weight": 1}]}`,
			"unknown category",
		},
		{
			"zero weight",
			`{"tiles": [{"id": 0, "name": "a", "category": "park", "weight": 0}]}`,
			"non-positive weight",
		},
		{
			"score out of range",
			`{"tiles": [{"id": 0, "name": "a", "category": "park", "weight": 1}],
			  "compatibility": {"park": {"park": 1.5}}}`,
			"out of [0,1]",
		},
		{
			"unknown compatibility category",
			`{"tiles": [{"id": 0, "name": "a", "category": "park", "weight": 1}],
			  "compatibility": {"lagoon": {"park": 0.5}}}`,
			"unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := writeCatalog(t, tt.content)
			_, err := LoadCatalog(fs, "catalog.json")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(memfs.New(), "nope.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open catalog")
	})
}

// TestLoadCatalogOrDefault falls back to the built-in catalog on failure
// but still reports what went wrong.
func TestLoadCatalogOrDefault(t *testing.T) {
	cat, err := LoadCatalogOrDefault(memfs.New(), "missing.json")
	require.Error(t, err)
	require.NotNil(t, cat)
	assert.Len(t, cat.Tiles, len(DefaultCatalog().Tiles))

	fs := writeCatalog(t, validCatalogJSON)
	cat, err = LoadCatalogOrDefault(fs, "catalog.json")
	require.NoError(t, err)
	assert.Len(t, cat.Tiles, 3)
}

// TestDefaultCatalog sanity-checks the built-in fallback: every category is
// represented and the matrix is symmetric.
func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()

	seen := make(map[Category]bool)
	for _, tile := range cat.Tiles {
		assert.Greater(t, tile.Weight, 0.0, "tile %q", tile.Name)
		seen[tile.Category] = true
	}
	for _, c := range Categories {
		assert.True(t, seen[c], "no tile for category %q", c)
	}

	for _, a := range Categories {
		for _, b := range Categories {
			assert.Equal(t, cat.Compat.Score(a, b), cat.Compat.Score(b, a),
				"asymmetric score for %s/%s", a, b)
		}
	}

	// Zoning spot checks: homes next to homes, not next to factories.
	assert.True(t, cat.Compat.Compatible(CategoryResidential, CategoryResidential))
	assert.False(t, cat.Compat.Compatible(CategoryResidential, CategoryIndustrial))
}
