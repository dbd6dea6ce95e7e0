package layout

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"cityforge/internal/city"
)

// Walk deposits structures along a random walk. A Perlin drift field bends
// the walker's heading so deposits form winding ribbons instead of a
// uniform blob; every few steps the walker drops a park instead of a
// building.
func Walk(cfg Config, rng *rand.Rand) city.Plan {
	cols, rows := cfg.cells()
	ts := float64(cfg.TileSize)
	drift := perlin.NewPerlin(2, 2, 3, int64(cfg.Seed))

	steps := int(float64(cols*rows) * cfg.Density)
	occupied := make([]bool, cols*rows)
	var plan city.Plan

	x, y := cols/2, rows/2
	heading := rng.Float64() * 2 * math.Pi

	for i := 0; i < steps; i++ {
		if x >= 0 && x < cols && y >= 0 && y < rows && !occupied[y*cols+x] {
			occupied[y*cols+x] = true
			wx, wy := float64(x)*ts, float64(y)*ts
			if i%7 == 6 {
				plan.Parks = append(plan.Parks, city.Park{
					X: wx, Y: wy, Width: ts, Height: ts, Alpha: 1,
				})
			} else {
				plan.Buildings = append(plan.Buildings, buildingAt(wx, wy, ts, categoryPick(rng), rng))
			}
		}

		// Drift field turns the heading; random jitter keeps it lively.
		turn := drift.Noise2D(float64(x)*0.1, float64(y)*0.1) * math.Pi / 2
		heading += turn + (rng.Float64()-0.5)*0.8

		x += int(math.Round(math.Cos(heading)))
		y += int(math.Round(math.Sin(heading)))

		// Re-center a walker that wanders off the canvas.
		if x < 0 || x >= cols || y < 0 || y >= rows {
			x = rng.Intn(cols)
			y = rng.Intn(rows)
			heading = rng.Float64() * 2 * math.Pi
		}
	}
	return plan
}
