package terrain

// Contour extraction: a marching-squares pass over each water component
// followed by segment linking into closed loops. All intermediate points are
// kept in doubled grid coordinates (integers) so endpoint matching is exact;
// conversion to world pixels happens only at the output boundary.

// gridPoint is a contour vertex at half-cell resolution: world position is
// (x2/2, y2/2) cells.
type gridPoint struct {
	x2, y2 int
}

type segment struct {
	a, b gridPoint
}

// Mid-edge ids for one 2x2 square.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// squareSegments maps a corner configuration to the boundary segments it
// emits. The index packs the corners as TL<<3 | TR<<2 | BR<<1 | BL. The two
// saddle configurations (5 and 10) emit two segments each; that exact pair
// choice fixes the topology, so it must not be altered.
var squareSegments = [16][][2]int{
	0:  {},
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeTop, edgeRight}, {edgeLeft, edgeBottom}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeTop, edgeLeft}},
	9:  {{edgeTop, edgeBottom}},
	10: {{edgeTop, edgeLeft}, {edgeBottom, edgeRight}},
	11: {{edgeTop, edgeRight}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: {},
}

// edgeMidpoint returns the doubled-coordinate midpoint of an edge of the
// square whose top-left sample is (r, c).
func edgeMidpoint(r, c, edge int) gridPoint {
	switch edge {
	case edgeTop:
		return gridPoint{x2: 2*c + 1, y2: 2 * r}
	case edgeRight:
		return gridPoint{x2: 2*c + 2, y2: 2*r + 1}
	case edgeBottom:
		return gridPoint{x2: 2*c + 1, y2: 2*r + 2}
	default:
		return gridPoint{x2: 2 * c, y2: 2*r + 1}
	}
}

// marchSquares walks every 2x2 square overlapping the grid, one square ring
// beyond the boundary included so loops around edge-touching components
// still close. member reports component membership; out-of-bounds corners
// are land.
func marchSquares(rows, cols int, member func(r, c int) bool) []segment {
	at := func(r, c int) bool {
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return false
		}
		return member(r, c)
	}

	var segs []segment
	for r := -1; r < rows; r++ {
		for c := -1; c < cols; c++ {
			idx := 0
			if at(r, c) {
				idx |= 8
			}
			if at(r, c+1) {
				idx |= 4
			}
			if at(r+1, c+1) {
				idx |= 2
			}
			if at(r+1, c) {
				idx |= 1
			}
			for _, e := range squareSegments[idx] {
				segs = append(segs, segment{
					a: edgeMidpoint(r, c, e[0]),
					b: edgeMidpoint(r, c, e[1]),
				})
			}
		}
	}
	return segs
}

// linkLoops chains segments into closed loops by exact endpoint matching.
// Loops with fewer than 3 distinct vertices are dropped.
func linkLoops(segs []segment) [][]gridPoint {
	byPoint := make(map[gridPoint][]int, len(segs)*2)
	for i, s := range segs {
		byPoint[s.a] = append(byPoint[s.a], i)
		byPoint[s.b] = append(byPoint[s.b], i)
	}

	used := make([]bool, len(segs))
	var loops [][]gridPoint
	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		start := segs[i].a
		loop := []gridPoint{start}
		cur := segs[i].b
		for cur != start {
			loop = append(loop, cur)
			next := -1
			for _, j := range byPoint[cur] {
				if !used[j] {
					next = j
					break
				}
			}
			if next < 0 {
				break // open chain; degenerate input
			}
			used[next] = true
			if segs[next].a == cur {
				cur = segs[next].b
			} else {
				cur = segs[next].a
			}
		}
		if cur == start && len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// ExtractPolygons converts each water component's boundary into closed
// polygon loops in world coordinates. Every returned loop repeats its first
// point at the end.
func ExtractPolygons(m *Mask, comps []Component, cellSize int) [][]Point {
	var polys [][]Point
	for _, comp := range comps {
		membership := make([]bool, m.Rows*m.Cols)
		for _, idx := range comp.Cells {
			membership[idx] = true
		}
		member := func(r, c int) bool { return membership[r*m.Cols+c] }

		for _, loop := range linkLoops(marchSquares(m.Rows, m.Cols, member)) {
			poly := make([]Point, 0, len(loop)+1)
			for _, p := range loop {
				poly = append(poly, Point{
					X: float64(p.x2*cellSize) / 2,
					Y: float64(p.y2*cellSize) / 2,
				})
			}
			poly = append(poly, poly[0])
			polys = append(polys, poly)
		}
	}
	return polys
}
