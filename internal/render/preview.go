package render

import (
	"fmt"
	"strings"

	"cityforge/internal/city"
	"cityforge/internal/palette"
)

// Preview rasterizes a city plan into an ANSI frame sized termW x termH.
// The last row is a status line; everything above maps the world canvas to
// terminal cells. Paint order is water, parks, roads, buildings so the
// denser primitives win overlapping cells.
func Preview(plan city.Plan, worldW, worldH, termW, termH int, status string) string {
	rows := termH - 1
	if rows < 1 || termW < 1 {
		return ""
	}

	cells := make([]Cell, termW*rows)
	for i := range cells {
		cells[i] = Cell{Ch: ' ', BgR: 18, BgG: 18, BgB: 18}
	}

	paint := func(x, y, w, h float64, c Cell) {
		x0 := int(x / float64(worldW) * float64(termW))
		y0 := int(y / float64(worldH) * float64(rows))
		x1 := int((x + w) / float64(worldW) * float64(termW))
		y1 := int((y + h) / float64(worldH) * float64(rows))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for ty := y0; ty < y1; ty++ {
			for tx := x0; tx < x1; tx++ {
				if tx < 0 || tx >= termW || ty < 0 || ty >= rows {
					continue
				}
				cells[ty*termW+tx] = c
			}
		}
	}

	wr, wg, wb := palette.RGB("water")
	for _, rect := range plan.WaterCells {
		paint(rect.X, rect.Y, rect.Width, rect.Height, Cell{
			Ch: '~', FgR: 200, FgG: 220, FgB: 255, BgR: wr, BgG: wg, BgB: wb,
		})
	}
	pr, pg, pb := palette.RGB("park")
	for _, p := range plan.Parks {
		paint(p.X, p.Y, p.Width, p.Height, Cell{
			Ch: '"', FgR: 220, FgG: 255, FgB: 220, BgR: pr, BgG: pg, BgB: pb,
		})
	}
	rr, rg, rb := palette.RGB("road")
	for _, r := range plan.Roads {
		ch := '-'
		if r.Orientation == "vertical" {
			ch = '|'
		}
		paint(r.X, r.Y, r.Width, r.Height, Cell{
			Ch: ch, FgR: 160, FgG: 160, FgB: 160, BgR: rr, BgG: rg, BgB: rb,
		})
	}
	for _, b := range plan.Buildings {
		br, bg, bb := palette.RGB(b.Category)
		ch := '#'
		if b.Floors >= 5 {
			ch = 'H'
		}
		paint(b.X, b.Y, b.Width, b.Height, Cell{
			Ch: ch, FgR: 240, FgG: 240, FgB: 240, BgR: br, BgG: bg, BgB: bb,
		})
	}

	var sb strings.Builder
	sb.WriteString(ClearScreen())
	for y := 0; y < rows; y++ {
		for x := 0; x < termW; x++ {
			writeCellSGR(&sb, cells[y*termW+x])
		}
		sb.WriteString(Reset)
		sb.WriteString("\r\n")
	}
	if runes := []rune(status); len(runes) > termW {
		status = string(runes[:termW])
	}
	sb.WriteString(Reset)
	fmt.Fprintf(&sb, "%s", status)
	return sb.String()
}
