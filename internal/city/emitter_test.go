package city

import (
	"math/rand"
	"testing"

	"cityforge/internal/terrain"
	"cityforge/internal/wfc"
)

// collapseTo marks a cell resolved to the given tile id.
func collapseTo(g *wfc.Grid, x, y, tile int) {
	cell := g.At(x, y)
	cell.Collapsed = true
	cell.Tile = tile
	cell.Possibilities = []int{tile}
	cell.Entropy = 0
}

// TestEmitGrid verifies category routing, placement and the omission of
// uncollapsed cells.
func TestEmitGrid(t *testing.T) {
	cat := wfc.DefaultCatalog()
	g, err := wfc.NewGrid(3, 2, cat)
	if err != nil {
		t.Fatal(err)
	}
	collapseTo(g, 0, 0, 0) // house, residential
	collapseTo(g, 1, 0, 4) // factory, industrial
	collapseTo(g, 2, 0, 6) // street-ew, horizontal road
	collapseTo(g, 0, 1, 7) // street-ns, vertical road
	collapseTo(g, 1, 1, 5) // park
	collapseTo(g, 2, 1, 8) // vacant, emits nothing
	// Leave no cell uncollapsed here; that case is below.

	plan := EmitGrid(g, cat, 20, rand.New(rand.NewSource(1)))

	if len(plan.Buildings) != 2 {
		t.Fatalf("got %d buildings, want 2", len(plan.Buildings))
	}
	if len(plan.Roads) != 2 {
		t.Fatalf("got %d roads, want 2", len(plan.Roads))
	}
	if len(plan.Parks) != 1 {
		t.Fatalf("got %d parks, want 1", len(plan.Parks))
	}

	res := plan.Buildings[0]
	if res.Category != "residential" || res.X != 0 || res.Y != 0 {
		t.Errorf("unexpected first building %+v", res)
	}
	if res.Floors < 1 || res.Floors > 4 {
		t.Errorf("residential floors %d outside [1, 4]", res.Floors)
	}
	ind := plan.Buildings[1]
	if ind.Category != "industrial" || ind.X != 20 {
		t.Errorf("unexpected second building %+v", ind)
	}
	if ind.Floors < 1 || ind.Floors > 3 {
		t.Errorf("industrial floors %d outside [1, 3]", ind.Floors)
	}

	if plan.Roads[0].Orientation != "horizontal" {
		t.Errorf("road 0 orientation %q, want horizontal", plan.Roads[0].Orientation)
	}
	if plan.Roads[1].Orientation != "vertical" {
		t.Errorf("road 1 orientation %q, want vertical", plan.Roads[1].Orientation)
	}
}

// TestEmitGridOmitsUncollapsed verifies cells without a resolved tile leave
// no primitive behind.
func TestEmitGridOmitsUncollapsed(t *testing.T) {
	cat := wfc.DefaultCatalog()
	g, err := wfc.NewGrid(2, 1, cat)
	if err != nil {
		t.Fatal(err)
	}
	collapseTo(g, 0, 0, 0)
	// (1, 0) stays uncollapsed.

	plan := EmitGrid(g, cat, 20, rand.New(rand.NewSource(1)))
	total := len(plan.Buildings) + len(plan.Roads) + len(plan.Parks)
	if total != 1 {
		t.Errorf("got %d primitives, want 1 (uncollapsed cell must be omitted)", total)
	}
}

// TestEmitGridFloorRanges draws many floors and checks the commercial range
// is honored end to end.
func TestEmitGridFloorRanges(t *testing.T) {
	cat := wfc.DefaultCatalog()
	g, err := wfc.NewGrid(10, 10, cat)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			collapseTo(g, x, y, 3) // office, commercial
		}
	}

	plan := EmitGrid(g, cat, 20, rand.New(rand.NewSource(2)))
	if len(plan.Buildings) != 100 {
		t.Fatalf("got %d buildings, want 100", len(plan.Buildings))
	}
	seen := make(map[int]bool)
	for _, b := range plan.Buildings {
		if b.Floors < 2 || b.Floors > 8 {
			t.Fatalf("commercial floors %d outside [2, 8]", b.Floors)
		}
		seen[b.Floors] = true
	}
	if len(seen) < 3 {
		t.Errorf("floor draw looks degenerate: only %d distinct values in 100 draws", len(seen))
	}
}

// TestWaterCellRects maps water cells to world rectangles.
func TestWaterCellRects(t *testing.T) {
	m := terrain.NewMask(3, 3)
	m.Set(1, 2, true)

	rects := WaterCellRects(m, 10)
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	want := Rect{X: 20, Y: 10, Width: 10, Height: 10}
	if rects[0] != want {
		t.Errorf("got %+v, want %+v", rects[0], want)
	}
}

// TestLegend verifies the legend lists exactly the categories the plan
// uses, with hex colors ready for the export consumer.
func TestLegend(t *testing.T) {
	plan := Plan{
		Buildings: []Building{
			{Category: "residential", Alpha: 1},
			{Category: "industrial", Alpha: 1},
		},
		Roads:      []Road{{Orientation: "horizontal", Alpha: 1}},
		WaterCells: []Rect{{Width: 10, Height: 10}},
	}

	legend := Legend(plan)
	for _, want := range []string{"residential", "industrial", "road", "water"} {
		hex, ok := legend[want]
		if !ok {
			t.Errorf("legend missing %q", want)
			continue
		}
		if len(hex) != 7 || hex[0] != '#' {
			t.Errorf("legend[%q] = %q, want #rrggbb", want, hex)
		}
	}
	if _, ok := legend["park"]; ok {
		t.Error("legend lists park for a plan without parks")
	}
	if _, ok := legend["commercial"]; ok {
		t.Error("legend lists commercial for a plan without commercial buildings")
	}

	if got := Legend(Plan{}); len(got) != 0 {
		t.Errorf("empty plan produced legend %v", got)
	}
}

// TestPlanScale verifies alpha scaling and the zero-weight cutoff.
func TestPlanScale(t *testing.T) {
	p := Plan{
		Buildings: []Building{{Alpha: 1}},
		Roads:     []Road{{Alpha: 0.5}},
		Parks:     []Park{{Alpha: 1}},
	}

	half := p.Scale(0.5)
	if half.Buildings[0].Alpha != 0.5 {
		t.Errorf("building alpha %g, want 0.5", half.Buildings[0].Alpha)
	}
	if half.Roads[0].Alpha != 0.25 {
		t.Errorf("road alpha %g, want 0.25", half.Roads[0].Alpha)
	}

	none := p.Scale(0)
	if len(none.Buildings)+len(none.Roads)+len(none.Parks) != 0 {
		t.Error("zero weight should drop every primitive")
	}
}
