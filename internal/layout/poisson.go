package layout

import (
	"math"
	"math/rand"

	"cityforge/internal/city"
)

// poissonAttempts is Bridson's k: candidates tried around an active sample
// before it is retired.
const poissonAttempts = 30

// Poisson scatters buildings by Bridson Poisson-disk sampling, giving an
// even, organic spread with a guaranteed minimum spacing of 1.5 tiles.
func Poisson(cfg Config, rng *rand.Rand) city.Plan {
	w, h := float64(cfg.Width), float64(cfg.Height)
	ts := float64(cfg.TileSize)
	radius := ts * 1.5
	cellSide := radius / math.Sqrt2

	gridCols := int(math.Ceil(w / cellSide))
	gridRows := int(math.Ceil(h / cellSide))
	grid := make([]int, gridCols*gridRows) // sample index + 1, 0 = empty

	var samples []city.Building
	var active []int

	gridIndex := func(x, y float64) int {
		gc := int(x / cellSide)
		gr := int(y / cellSide)
		return gr*gridCols + gc
	}
	fits := func(x, y float64) bool {
		if x < 0 || y < 0 || x >= w-ts || y >= h-ts {
			return false
		}
		gc := int(x / cellSide)
		gr := int(y / cellSide)
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				nr, nc := gr+dr, gc+dc
				if nr < 0 || nr >= gridRows || nc < 0 || nc >= gridCols {
					continue
				}
				si := grid[nr*gridCols+nc]
				if si == 0 {
					continue
				}
				s := samples[si-1]
				if math.Hypot(s.X-x, s.Y-y) < radius {
					return false
				}
			}
		}
		return true
	}
	place := func(x, y float64) {
		b := buildingAt(x, y, ts, categoryPick(rng), rng)
		samples = append(samples, b)
		grid[gridIndex(x, y)] = len(samples)
		active = append(active, len(samples)-1)
	}

	place(w/2, h/2)
	for len(active) > 0 {
		ai := rng.Intn(len(active))
		s := samples[active[ai]]
		placed := false
		for try := 0; try < poissonAttempts; try++ {
			ang := rng.Float64() * 2 * math.Pi
			dist := radius * (1 + rng.Float64())
			nx := s.X + math.Cos(ang)*dist
			ny := s.Y + math.Sin(ang)*dist
			if fits(nx, ny) {
				place(nx, ny)
				placed = true
				break
			}
		}
		if !placed {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return city.Plan{Buildings: samples}
}
