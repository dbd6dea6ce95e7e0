package wfc

import (
	"fmt"
	"math/rand"
)

// Stats reports how a solve run ended. Contradictions and budget exhaustion
// are defined outcomes, not errors; cells left uncollapsed are simply
// omitted by the emitter.
type Stats struct {
	Iterations      int  `json:"iterations"`
	Collapsed       int  `json:"collapsed"`
	Contradictions  int  `json:"contradictions"`
	Uncollapsed     int  `json:"uncollapsed"`
	BudgetExhausted bool `json:"budgetExhausted"`
}

// Solver assigns a tile to every cell of a grid by entropy-guided collapse
// with constraint propagation. One solver drives one grid, then both are
// discarded.
type Solver struct {
	cfg   Config
	cat   *Catalog
	grid  *Grid
	rng   *rand.Rand
	tiles map[int]Tile // id lookup
}

// NewSolver builds the grid for cfg and prepares a run. The rng must be the
// run's seeded random stream; the solver draws from it in a fixed order so
// identical seeds reproduce identical grids.
func NewSolver(cfg Config, cat *Catalog, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("collapse config: %w", err)
	}
	cols, rows := cfg.GridSize()
	grid, err := NewGrid(cols, rows, cat)
	if err != nil {
		return nil, err
	}
	tiles := make(map[int]Tile, len(cat.Tiles))
	for _, t := range cat.Tiles {
		tiles[t.ID] = t
	}
	return &Solver{cfg: cfg, cat: cat, grid: grid, rng: rng, tiles: tiles}, nil
}

// Grid exposes the solver's grid, valid to read after Run.
func (s *Solver) Grid() *Grid { return s.grid }

// Run executes collapse iterations until every cell is either collapsed or
// contradicted, or the iteration budget is spent.
func (s *Solver) Run() Stats {
	var stats Stats
	budget := s.cfg.MaxIterations
	if budget == 0 {
		budget = 2 * s.grid.Cols * s.grid.Rows
	}

	for stats.Iterations < budget {
		idx := s.selectCell()
		if idx < 0 {
			break // nothing left to collapse
		}
		stats.Iterations++

		if !s.collapse(idx) {
			// Weights can zero out a possibility set; count it and leave
			// the cell contradicted.
			cell := &s.grid.Cells[idx]
			cell.Possibilities = cell.Possibilities[:0]
			cell.Entropy = 0
			stats.Contradictions++
			continue
		}
		stats.Contradictions += s.propagate(idx)
	}

	if stats.Iterations >= budget && s.anyLive() {
		stats.BudgetExhausted = true
	}
	stats.Collapsed = s.grid.CollapsedCount()
	stats.Uncollapsed = len(s.grid.Cells) - stats.Collapsed
	return stats
}

// selectCell picks the next cell to collapse. Cells at or below the entropy
// threshold are taken from the minimum-entropy set uniformly at random;
// above it any live cell qualifies, trading choice quality for a cheap
// candidate scan on large grids. Returns -1 when no cell is collapsible.
func (s *Solver) selectCell() int {
	minEntropy := -1
	var minSet []int
	var live []int
	for i := range s.grid.Cells {
		c := &s.grid.Cells[i]
		if c.Collapsed || c.Entropy == 0 {
			continue
		}
		live = append(live, i)
		switch {
		case minEntropy < 0 || c.Entropy < minEntropy:
			minEntropy = c.Entropy
			minSet = minSet[:0]
			minSet = append(minSet, i)
		case c.Entropy == minEntropy:
			minSet = append(minSet, i)
		}
	}
	if len(live) == 0 {
		return -1
	}
	if minEntropy <= s.cfg.EntropyThreshold {
		return minSet[s.rng.Intn(len(minSet))]
	}
	return live[s.rng.Intn(len(live))]
}

// anyLive reports whether an uncollapsed, uncontradicted cell remains.
// Unlike selectCell it draws no randomness.
func (s *Solver) anyLive() bool {
	for i := range s.grid.Cells {
		c := &s.grid.Cells[i]
		if !c.Collapsed && c.Entropy > 0 {
			return true
		}
	}
	return false
}

// collapse fixes the cell to one tile by weighted random choice over its
// possibilities. Returns false if no choice carries positive weight.
func (s *Solver) collapse(idx int) bool {
	cell := &s.grid.Cells[idx]

	var total float64
	for _, id := range cell.Possibilities {
		total += s.tiles[id].Weight
	}
	if total <= 0 {
		return false
	}

	r := s.rng.Float64() * total
	chosen := cell.Possibilities[len(cell.Possibilities)-1]
	for _, id := range cell.Possibilities {
		r -= s.tiles[id].Weight
		if r <= 0 {
			chosen = id
			break
		}
	}

	cell.Collapsed = true
	cell.Tile = chosen
	cell.Possibilities = cell.Possibilities[:1]
	cell.Possibilities[0] = chosen
	cell.Entropy = 0
	return true
}

// propagate relaxes possibility sets breadth-first from the cell at start.
// A neighbor keeps a possibility only if it is compatible with at least one
// remaining possibility of the propagating cell; any shrink re-enqueues the
// neighbor. A neighbor emptied to zero is a contradiction: it is left
// uncollapsed at entropy 0 and not propagated through. Returns the number
// of contradictions produced.
func (s *Solver) propagate(start int) int {
	contradictions := 0
	queue := []int{start}
	queued := make([]bool, len(s.grid.Cells))
	queued[start] = true

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		queued[idx] = false

		cell := &s.grid.Cells[idx]
		if cell.Entropy == 0 && !cell.Collapsed {
			continue // contradicted branch, do not spread
		}
		x, y := idx%s.grid.Cols, idx/s.grid.Cols

		for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			nx, ny := x+d[0], y+d[1]
			if !s.grid.InBounds(nx, ny) {
				continue
			}
			nidx := s.grid.Index(nx, ny)
			neighbor := &s.grid.Cells[nidx]
			if neighbor.Collapsed || neighbor.Entropy == 0 {
				continue
			}

			kept := neighbor.Possibilities[:0]
			for _, p := range neighbor.Possibilities {
				if s.anyCompatible(cell, p) {
					kept = append(kept, p)
				}
			}
			if len(kept) == len(neighbor.Possibilities) {
				continue
			}
			neighbor.Possibilities = kept
			neighbor.Entropy = len(kept)
			if neighbor.Entropy == 0 {
				contradictions++
				continue
			}
			if !queued[nidx] {
				queued[nidx] = true
				queue = append(queue, nidx)
			}
		}
	}
	return contradictions
}

// anyCompatible reports whether candidate tile p may sit next to any of the
// cell's remaining possibilities. Scores are looked up (cell category,
// candidate category) so asymmetric matrices behave predictably.
func (s *Solver) anyCompatible(cell *Cell, p int) bool {
	pc := s.tiles[p].Category
	for _, q := range cell.Possibilities {
		if s.cat.Compat.Compatible(s.tiles[q].Category, pc) {
			return true
		}
	}
	return false
}
