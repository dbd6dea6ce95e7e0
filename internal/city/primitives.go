package city

import "cityforge/internal/terrain"

// Typed primitives handed to the rendering/blending layer. Coordinates are
// world pixels; Alpha is the blend opacity, 1 for an unblended plan.

// Building is a filled footprint with a floor count for extrusion.
type Building struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Category string  `json:"category"`
	Floors   int     `json:"floors"`
	Alpha    float64 `json:"alpha"`
}

// Road is an axis-aligned road segment.
type Road struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Orientation string  `json:"orientation"` // "horizontal" or "vertical"
	Alpha       float64 `json:"alpha"`
}

// Park is a green footprint.
type Park struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Alpha  float64 `json:"alpha"`
}

// Rect is an axis-aligned water cell, the coarse fallback when polygon
// extraction is skipped.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Plan is one generator's contribution to a city.
type Plan struct {
	Buildings  []Building        `json:"buildings"`
	Roads      []Road            `json:"roads"`
	Parks      []Park            `json:"parks"`
	Water      [][]terrain.Point `json:"water,omitempty"`
	WaterCells []Rect            `json:"waterCells,omitempty"`
}

// Merge appends other's primitives onto p.
func (p *Plan) Merge(other Plan) {
	p.Buildings = append(p.Buildings, other.Buildings...)
	p.Roads = append(p.Roads, other.Roads...)
	p.Parks = append(p.Parks, other.Parks...)
	p.Water = append(p.Water, other.Water...)
	p.WaterCells = append(p.WaterCells, other.WaterCells...)
}

// Scale multiplies every primitive's alpha by w and drops primitives scaled
// to zero. Water geometry has no opacity of its own and passes through
// unless w is zero.
func (p Plan) Scale(w float64) Plan {
	var out Plan
	if w <= 0 {
		return out
	}
	for _, b := range p.Buildings {
		b.Alpha *= w
		out.Buildings = append(out.Buildings, b)
	}
	for _, r := range p.Roads {
		r.Alpha *= w
		out.Roads = append(out.Roads, r)
	}
	for _, pk := range p.Parks {
		pk.Alpha *= w
		out.Parks = append(out.Parks, pk)
	}
	out.Water = p.Water
	out.WaterCells = p.WaterCells
	return out
}
