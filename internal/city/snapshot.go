package city

import (
	"encoding/json"
	"fmt"

	"cityforge/internal/palette"
	"cityforge/internal/terrain"
	"cityforge/internal/wfc"
)

// Stats summarizes a generation run for the snapshot. Solver outcomes such
// as contradictions are reported here rather than surfaced as errors.
type Stats struct {
	Solver     *wfc.Stats `json:"solver,omitempty"`
	WaterCells int        `json:"waterCells"`
	Oceans     int        `json:"oceans"`
	Lakes      int        `json:"lakes"`
	Coastlines int        `json:"coastlines"`
}

// Snapshot is the one-shot export format: the merged primitive arrays plus
// run statistics and a category color legend.
type Snapshot struct {
	Name   string `json:"name"`
	Seed   int    `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Plan
	Legend map[string]string `json:"legend"`
	Stats  Stats             `json:"stats"`
}

// Legend maps every category present in the plan to its display color, so
// export consumers render with the same palette as the preview.
func Legend(p Plan) map[string]string {
	legend := make(map[string]string)
	for _, b := range p.Buildings {
		legend[b.Category] = palette.Hex(b.Category)
	}
	if len(p.Roads) > 0 {
		legend["road"] = palette.Hex("road")
	}
	if len(p.Parks) > 0 {
		legend["park"] = palette.Hex("park")
	}
	if len(p.Water) > 0 || len(p.WaterCells) > 0 {
		legend["water"] = palette.Hex("water")
	}
	return legend
}

// TerrainStats fills the water-related counters from a terrain result.
func TerrainStats(res *terrain.Result) Stats {
	s := Stats{
		WaterCells: res.Mask.Count(),
		Coastlines: len(res.Polygons),
	}
	for _, c := range res.Components {
		if c.Kind == terrain.Ocean {
			s.Oceans++
		} else {
			s.Lakes++
		}
	}
	return s
}

// MarshalIndent renders the snapshot as indented JSON.
func (s *Snapshot) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}
