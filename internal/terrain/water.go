package terrain

// bayInflation is how much the water threshold rises at the bay edge. The
// boost fades linearly to zero at the opposite edge.
const bayInflation = 0.35

// Mask is a boolean water/land grid parallel to an elevation field.
type Mask struct {
	Rows  int
	Cols  int
	cells []bool
}

// NewMask returns an all-land mask of the given dimensions.
func NewMask(rows, cols int) *Mask {
	return &Mask{Rows: rows, Cols: cols, cells: make([]bool, rows*cols)}
}

// Water reports whether cell (r, c) is water.
func (m *Mask) Water(r, c int) bool {
	return m.cells[r*m.Cols+c]
}

// Set marks cell (r, c) as water or land.
func (m *Mask) Set(r, c int, water bool) {
	m.cells[r*m.Cols+c] = water
}

// Count returns the number of water cells.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.cells {
		if w {
			n++
		}
	}
	return n
}

// BuildMask thresholds the elevation field into water and land. Lake mode
// uses the coverage value directly as the threshold. Bay mode inflates the
// threshold near the configured edge so the water floods in from one side.
// River mode carves the steepest-descent path from the highest sample into
// an otherwise plain-threshold mask.
func BuildMask(f *Field, flow *FlowField, cfg Config) *Mask {
	m := NewMask(f.Rows, f.Cols)
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			m.Set(r, c, f.At(r, c) < thresholdAt(f, cfg, r, c))
		}
	}
	if cfg.Mode == ModeRiver && flow != nil {
		carveRiver(m, f, flow, cfg.RiverWidth)
	}
	return m
}

func thresholdAt(f *Field, cfg Config, r, c int) float64 {
	t := cfg.WaterCoverage
	if cfg.Mode != ModeBay {
		return t
	}
	// Distance from the bay edge, normalized so 0 is at the edge.
	var d float64
	switch cfg.BayDirection {
	case EdgeTop:
		d = float64(r) / float64(maxInt(f.Rows-1, 1))
	case EdgeBottom:
		d = float64(f.Rows-1-r) / float64(maxInt(f.Rows-1, 1))
	case EdgeLeft:
		d = float64(c) / float64(maxInt(f.Cols-1, 1))
	case EdgeRight:
		d = float64(f.Cols-1-c) / float64(maxInt(f.Cols-1, 1))
	}
	t += (1 - d) * bayInflation
	if t > 1 {
		t = 1
	}
	return t
}

// carveRiver traces the flow path from the highest elevation sample and
// widens it by radius cells (Chebyshev distance).
func carveRiver(m *Mask, f *Field, flow *FlowField, radius int) {
	sr, sc := highestCell(f)
	for _, cell := range flow.tracePathCells(sr, sc) {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				r, c := cell[0]+dr, cell[1]+dc
				if f.InBounds(r, c) {
					m.Set(r, c, true)
				}
			}
		}
	}
}

// highestCell returns the first-found cell with maximum elevation, scanning
// row-major for determinism.
func highestCell(f *Field) (int, int) {
	br, bc := 0, 0
	best := f.At(0, 0)
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			if e := f.At(r, c); e > best {
				best = e
				br, bc = r, c
			}
		}
	}
	return br, bc
}

// ComponentKind distinguishes open water from enclosed water.
type ComponentKind int

const (
	// Ocean components touch the grid boundary.
	Ocean ComponentKind = iota
	// Lake components are fully enclosed by land.
	Lake
)

func (k ComponentKind) String() string {
	if k == Ocean {
		return "ocean"
	}
	return "lake"
}

// Component is a maximal 4-connected set of water cells.
type Component struct {
	Kind  ComponentKind
	Cells []int // flat row*cols+col indices, in discovery order
}

// Components labels all connected water regions of the mask with an
// iterative 4-connectivity flood fill, scanning row-major so output order
// is deterministic.
func Components(m *Mask) []Component {
	visited := make([]bool, m.Rows*m.Cols)
	var comps []Component
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			idx := r*m.Cols + c
			if visited[idx] || !m.Water(r, c) {
				continue
			}
			comps = append(comps, floodComponent(m, visited, idx))
		}
	}
	return comps
}

func floodComponent(m *Mask, visited []bool, start int) Component {
	comp := Component{Kind: Lake}
	stack := []int{start}
	visited[start] = true
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp.Cells = append(comp.Cells, idx)

		r, c := idx/m.Cols, idx%m.Cols
		if r == 0 || r == m.Rows-1 || c == 0 || c == m.Cols-1 {
			comp.Kind = Ocean
		}
		for _, d := range [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
			nr, nc := r+d[0], c+d[1]
			if nr < 0 || nr >= m.Rows || nc < 0 || nc >= m.Cols {
				continue
			}
			nidx := nr*m.Cols + nc
			if visited[nidx] || !m.Water(nr, nc) {
				continue
			}
			visited[nidx] = true
			stack = append(stack, nidx)
		}
	}
	return comp
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
