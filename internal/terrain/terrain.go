package terrain

// Result bundles everything one terrain generation run produces. The field,
// flow and mask are owned by the result and never shared between runs.
type Result struct {
	Config     Config
	Field      *Field
	Flow       *FlowField
	Mask       *Mask
	Components []Component
	Polygons   [][]Point // closed coastline loops, world coordinates
}

// Generate runs the full terrain pipeline: elevation, flow routing, water
// classification and coastline extraction. Only configuration problems
// produce an error; an all-land mask simply yields empty components and
// polygons.
func Generate(cfg Config) (*Result, error) {
	field, err := BuildElevation(cfg)
	if err != nil {
		return nil, err
	}
	flow := BuildFlow(field)
	mask := BuildMask(field, flow, cfg)
	comps := Components(mask)
	polys := ExtractPolygons(mask, comps, cfg.CellSize)
	return &Result{
		Config:     cfg,
		Field:      field,
		Flow:       flow,
		Mask:       mask,
		Components: comps,
		Polygons:   polys,
	}, nil
}

// RiverPaths traces flow paths from the n highest distinct starting cells
// and returns those with at least minLen points, longest first kept order.
func (res *Result) RiverPaths(n, minLen int) [][]Point {
	type cand struct {
		r, c int
		elev float64
	}
	// Collect the n highest samples by a single scan; n is small.
	var tops []cand
	for r := 0; r < res.Field.Rows; r++ {
		for c := 0; c < res.Field.Cols; c++ {
			e := res.Field.At(r, c)
			pos := len(tops)
			for pos > 0 && tops[pos-1].elev < e {
				pos--
			}
			if pos < n {
				tops = append(tops, cand{})
				copy(tops[pos+1:], tops[pos:])
				tops[pos] = cand{r: r, c: c, elev: e}
				if len(tops) > n {
					tops = tops[:n]
				}
			}
		}
	}

	var paths [][]Point
	for _, t := range tops {
		if p := res.Flow.TracePath(res.Field, t.r, t.c); len(p) >= minLen {
			paths = append(paths, p)
		}
	}
	return paths
}
