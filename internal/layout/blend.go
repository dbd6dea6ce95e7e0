package layout

import "cityforge/internal/city"

// Weighted pairs a generator's plan with its blend opacity in [0, 1].
type Weighted struct {
	Name   string
	Plan   city.Plan
	Weight float64
}

// Blend linearly combines plans by scaling each primitive's alpha with its
// plan weight, dropping fully transparent contributions. Plans merge in the
// order given, which callers keep stable for reproducible output.
func Blend(plans []Weighted) city.Plan {
	var out city.Plan
	for _, w := range plans {
		out.Merge(w.Plan.Scale(w.Weight))
	}
	return out
}
