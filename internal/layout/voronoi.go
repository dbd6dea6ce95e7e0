package layout

import (
	"math/rand"

	"cityforge/internal/city"
)

// Voronoi splits the canvas into districts around seeded sites. Every cell
// takes its nearest site's category; cells whose right or lower neighbor
// belongs to a different district become boundary roads.
func Voronoi(cfg Config, rng *rand.Rand) city.Plan {
	cols, rows := cfg.cells()
	ts := float64(cfg.TileSize)

	numSites := cols * rows / 48
	if numSites < 3 {
		numSites = 3
	}
	type site struct {
		x, y     float64
		category string
	}
	sites := make([]site, numSites)
	for i := range sites {
		sites[i] = site{
			x:        rng.Float64() * float64(cols),
			y:        rng.Float64() * float64(rows),
			category: categoryPick(rng),
		}
	}

	nearest := func(x, y int) int {
		best, bestDist := 0, -1.0
		fx, fy := float64(x)+0.5, float64(y)+0.5
		for i, s := range sites {
			dx, dy := s.x-fx, s.y-fy
			d := dx*dx + dy*dy
			if bestDist < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		return best
	}

	owner := make([]int, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			owner[y*cols+x] = nearest(x, y)
		}
	}

	var plan city.Plan
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			wx, wy := float64(x)*ts, float64(y)*ts

			borderRight := x+1 < cols && owner[idx+1] != owner[idx]
			borderDown := y+1 < rows && owner[idx+cols] != owner[idx]
			if borderRight || borderDown {
				orientation := "vertical"
				if borderDown {
					orientation = "horizontal"
				}
				plan.Roads = append(plan.Roads, city.Road{
					X: wx, Y: wy, Width: ts, Height: ts,
					Orientation: orientation, Alpha: 1,
				})
				continue
			}
			if rng.Float64() < cfg.Density {
				cat := sites[owner[idx]].category
				plan.Buildings = append(plan.Buildings, buildingAt(wx, wy, ts, cat, rng))
			}
		}
	}
	return plan
}
