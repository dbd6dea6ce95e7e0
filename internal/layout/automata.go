package layout

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"cityforge/internal/city"
)

// automataSteps is how many evolution passes run over the density grid.
const automataSteps = 4

// Automata seeds a boolean occupancy grid from smooth opensimplex noise and
// evolves it with a birth/survival rule, so built-up areas consolidate into
// contiguous districts with organic edges. Surviving cells become
// buildings; cells that died in the final pass become parks.
func Automata(cfg Config, rng *rand.Rand) city.Plan {
	cols, rows := cfg.cells()
	ts := float64(cfg.TileSize)
	field := opensimplex.NewNormalized(int64(cfg.Seed))

	alive := make([]bool, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := field.Eval2(float64(x)*0.15, float64(y)*0.15)
			alive[y*cols+x] = v < cfg.Density
		}
	}

	liveNeighbors := func(cells []bool, x, y int) int {
		n := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if cells[ny*cols+nx] {
					n++
				}
			}
		}
		return n
	}

	var diedLast []bool
	for step := 0; step < automataSteps; step++ {
		next := make([]bool, cols*rows)
		died := make([]bool, cols*rows)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				idx := y*cols + x
				n := liveNeighbors(alive, x, y)
				if alive[idx] {
					next[idx] = n >= 3 && n <= 6
					died[idx] = !next[idx]
				} else {
					next[idx] = n >= 5
				}
			}
		}
		alive = next
		diedLast = died
	}

	var plan city.Plan
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			wx, wy := float64(x)*ts, float64(y)*ts
			switch {
			case alive[idx]:
				plan.Buildings = append(plan.Buildings, buildingAt(wx, wy, ts, categoryPick(rng), rng))
			case diedLast != nil && diedLast[idx]:
				plan.Parks = append(plan.Parks, city.Park{
					X: wx, Y: wy, Width: ts, Height: ts, Alpha: 1,
				})
			}
		}
	}
	return plan
}
