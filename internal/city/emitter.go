package city

import (
	"math/rand"

	"cityforge/internal/terrain"
	"cityforge/internal/wfc"
)

// floorRanges gives the inclusive floor count range per building category.
var floorRanges = map[wfc.Category][2]int{
	wfc.CategoryResidential: {1, 4},
	wfc.CategoryCommercial:  {2, 8},
	wfc.CategoryIndustrial:  {1, 3},
}

// EmitGrid converts a solved collapse grid into typed primitives. Cells
// left uncollapsed (contradictions, spent budget) are omitted. Floors are
// drawn from the run's random stream in row-major cell order, so a fixed
// seed reproduces the same skyline.
func EmitGrid(g *wfc.Grid, cat *wfc.Catalog, tileSize float64, rng *rand.Rand) Plan {
	var plan Plan
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			cell := g.At(x, y)
			if !cell.Collapsed {
				continue
			}
			tile, ok := cat.TileByID(cell.Tile)
			if !ok {
				continue
			}
			wx := float64(x) * tileSize
			wy := float64(y) * tileSize

			switch tile.Category {
			case wfc.CategoryResidential, wfc.CategoryCommercial, wfc.CategoryIndustrial:
				fr := floorRanges[tile.Category]
				plan.Buildings = append(plan.Buildings, Building{
					X: wx, Y: wy, Width: tileSize, Height: tileSize,
					Category: string(tile.Category),
					Floors:   fr[0] + rng.Intn(fr[1]-fr[0]+1),
					Alpha:    1,
				})
			case wfc.CategoryRoadH:
				plan.Roads = append(plan.Roads, Road{
					X: wx, Y: wy, Width: tileSize, Height: tileSize,
					Orientation: "horizontal", Alpha: 1,
				})
			case wfc.CategoryRoadV:
				plan.Roads = append(plan.Roads, Road{
					X: wx, Y: wy, Width: tileSize, Height: tileSize,
					Orientation: "vertical", Alpha: 1,
				})
			case wfc.CategoryPark:
				plan.Parks = append(plan.Parks, Park{
					X: wx, Y: wy, Width: tileSize, Height: tileSize, Alpha: 1,
				})
			}
			// CategoryEmpty emits nothing.
		}
	}
	return plan
}

// EmitWater converts a terrain result into water primitives: coastline
// polygons when extraction produced any, plus per-cell rectangles as the
// coarse fallback representation.
func EmitWater(res *terrain.Result) Plan {
	var plan Plan
	plan.Water = res.Polygons
	plan.WaterCells = WaterCellRects(res.Mask, res.Config.CellSize)
	return plan
}

// WaterCellRects returns one axis-aligned rectangle per water cell.
func WaterCellRects(m *terrain.Mask, cellSize int) []Rect {
	var rects []Rect
	cs := float64(cellSize)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if m.Water(r, c) {
				rects = append(rects, Rect{
					X: float64(c) * cs, Y: float64(r) * cs, Width: cs, Height: cs,
				})
			}
		}
	}
	return rects
}
