package layout

import (
	"math/rand"

	"cityforge/internal/city"
)

// blockSpan is the distance between streets in cells, streets included.
const blockSpan = 5

// Grid lays out a rectangular street grid with buildings filling the
// blocks. Building footprints get a small seeded jitter so the blocks read
// as districts rather than graph paper.
func Grid(cfg Config, rng *rand.Rand) city.Plan {
	cols, rows := cfg.cells()
	ts := float64(cfg.TileSize)
	var plan city.Plan

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			wx, wy := float64(x)*ts, float64(y)*ts
			onH := y%blockSpan == 0
			onV := x%blockSpan == 0

			switch {
			case onH:
				plan.Roads = append(plan.Roads, city.Road{
					X: wx, Y: wy, Width: ts, Height: ts,
					Orientation: "horizontal", Alpha: 1,
				})
			case onV:
				plan.Roads = append(plan.Roads, city.Road{
					X: wx, Y: wy, Width: ts, Height: ts,
					Orientation: "vertical", Alpha: 1,
				})
			case rng.Float64() < cfg.Density:
				jx := (rng.Float64() - 0.5) * ts * 0.2
				jy := (rng.Float64() - 0.5) * ts * 0.2
				b := buildingAt(wx+jx, wy+jy, ts, categoryPick(rng), rng)
				plan.Buildings = append(plan.Buildings, b)
			case rng.Float64() < 0.1:
				plan.Parks = append(plan.Parks, city.Park{
					X: wx, Y: wy, Width: ts, Height: ts, Alpha: 1,
				})
			}
		}
	}
	return plan
}
