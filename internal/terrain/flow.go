package terrain

// Point is a world-space pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// neighborOffsets is the fixed scan order for the 8 neighbors, clockwise
// from north. Tie-breaks resolve to the first neighbor found, keeping flow
// direction deterministic.
var neighborOffsets = [8][2]int{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}

// FlowField stores, per elevation cell, the index of the strictly lower
// neighbor it drains to, or -1 for a local minimum.
type FlowField struct {
	Rows int
	Cols int
	next []int
}

// BuildFlow computes the steepest-descent direction for every cell of the
// field. A cell with no strictly lower neighbor is a sink.
func BuildFlow(f *Field) *FlowField {
	ff := &FlowField{Rows: f.Rows, Cols: f.Cols, next: make([]int, f.Rows*f.Cols)}
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			ff.next[r*f.Cols+c] = lowestNeighbor(f, r, c)
		}
	}
	return ff
}

func lowestNeighbor(f *Field, r, c int) int {
	here := f.At(r, c)
	best := -1
	bestElev := here
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if !f.InBounds(nr, nc) {
			continue
		}
		if e := f.At(nr, nc); e < bestElev {
			bestElev = e
			best = nr*f.Cols + nc
		}
	}
	return best
}

// Next returns the downstream cell of (r, c), or ok=false for a sink.
func (ff *FlowField) Next(r, c int) (nr, nc int, ok bool) {
	n := ff.next[r*ff.Cols+c]
	if n < 0 {
		return 0, 0, false
	}
	return n / ff.Cols, n % ff.Cols, true
}

// TracePath follows flow links downhill from (r, c) and returns the visited
// cells as world coordinates, starting cell included. Every step strictly
// decreases elevation, so a path never revisits a cell and never exceeds
// rows*cols steps.
func (ff *FlowField) TracePath(f *Field, r, c int) []Point {
	path := []Point{f.World(r, c)}
	for steps := 0; steps < ff.Rows*ff.Cols; steps++ {
		nr, nc, ok := ff.Next(r, c)
		if !ok {
			break
		}
		r, c = nr, nc
		path = append(path, f.World(r, c))
	}
	return path
}

// tracePathCells is TracePath in grid coordinates, used by river carving.
func (ff *FlowField) tracePathCells(r, c int) [][2]int {
	cells := [][2]int{{r, c}}
	for steps := 0; steps < ff.Rows*ff.Cols; steps++ {
		nr, nc, ok := ff.Next(r, c)
		if !ok {
			break
		}
		r, c = nr, nc
		cells = append(cells, [2]int{r, c})
	}
	return cells
}
