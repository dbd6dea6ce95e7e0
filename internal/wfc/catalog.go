package wfc

import (
	"encoding/json"
	"fmt"
	"io"

	billy "gopkg.in/src-d/go-billy.v4"
)

// jsonCatalog is the on-disk catalog format.
type jsonCatalog struct {
	Tiles         []jsonTile                        `json:"tiles"`
	Compatibility map[Category]map[Category]float64 `json:"compatibility"`
	Threshold     *float64                          `json:"threshold,omitempty"`
}

type jsonTile struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
}

// LoadCatalog reads and validates a JSON tile catalog from the given
// filesystem.
func LoadCatalog(fs billy.Filesystem, path string) (*Catalog, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var jc jsonCatalog
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}
	if len(jc.Tiles) == 0 {
		return nil, fmt.Errorf("catalog %s declares no tiles", path)
	}

	threshold := DefaultCompatThreshold
	if jc.Threshold != nil {
		threshold = *jc.Threshold
	}

	seen := make(map[int]bool, len(jc.Tiles))
	tiles := make([]Tile, 0, len(jc.Tiles))
	for _, jt := range jc.Tiles {
		if seen[jt.ID] {
			return nil, fmt.Errorf("duplicate tile id %d in %s", jt.ID, path)
		}
		seen[jt.ID] = true
		if !validCategory(jt.Category) {
			return nil, fmt.Errorf("tile %q has unknown category %q", jt.Name, jt.Category)
		}
		if jt.Weight <= 0 {
			return nil, fmt.Errorf("tile %q has non-positive weight %g", jt.Name, jt.Weight)
		}
		tiles = append(tiles, Tile(jt))
	}

	compat := NewCompatibility(threshold)
	for from, row := range jc.Compatibility {
		if !validCategory(from) {
			return nil, fmt.Errorf("compatibility row has unknown category %q", from)
		}
		for to, score := range row {
			if !validCategory(to) {
				return nil, fmt.Errorf("compatibility entry has unknown category %q", to)
			}
			if score < 0 || score > 1 {
				return nil, fmt.Errorf("compatibility %s/%s score %g out of [0,1]", from, to, score)
			}
			compat.Set(from, to, score)
		}
	}

	return &Catalog{Tiles: tiles, Compat: compat}, nil
}

// LoadCatalogOrDefault loads a catalog, substituting the built-in fallback
// on any failure. The returned error describes the failure for logging; the
// catalog is always usable.
func LoadCatalogOrDefault(fs billy.Filesystem, path string) (*Catalog, error) {
	cat, err := LoadCatalog(fs, path)
	if err != nil {
		return DefaultCatalog(), err
	}
	return cat, nil
}
