package wfc

import (
	"fmt"

	"go.uber.org/multierr"
)

// Config sizes the collapse grid. The cell count is the canvas divided by
// the scaled tile size.
type Config struct {
	TileSize         int
	CanvasWidth      int
	CanvasHeight     int
	Scale            float64
	EntropyThreshold int
	Seed             int
	// MaxIterations bounds the solver loop; 0 means 2 * cols * rows.
	MaxIterations int
}

// DefaultConfig returns a 40x30 cell grid at tile size 20.
func DefaultConfig() Config {
	return Config{
		TileSize:         20,
		CanvasWidth:      800,
		CanvasHeight:     600,
		Scale:            1,
		EntropyThreshold: 3,
		Seed:             1,
	}
}

// Validate rejects non-positive dimensions before any allocation.
func (c Config) Validate() error {
	var err error
	if c.TileSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("tile size must be positive, got %d", c.TileSize))
	}
	if c.CanvasWidth <= 0 {
		err = multierr.Append(err, fmt.Errorf("canvas width must be positive, got %d", c.CanvasWidth))
	}
	if c.CanvasHeight <= 0 {
		err = multierr.Append(err, fmt.Errorf("canvas height must be positive, got %d", c.CanvasHeight))
	}
	if c.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("scale must be positive, got %g", c.Scale))
	}
	if c.EntropyThreshold < 0 {
		err = multierr.Append(err, fmt.Errorf("entropy threshold must be non-negative, got %d", c.EntropyThreshold))
	}
	if c.MaxIterations < 0 {
		err = multierr.Append(err, fmt.Errorf("max iterations must be non-negative, got %d", c.MaxIterations))
	}
	return err
}

// GridSize returns the collapse grid dimensions for this configuration.
func (c Config) GridSize() (cols, rows int) {
	step := float64(c.TileSize) * c.Scale
	cols = int(float64(c.CanvasWidth) / step)
	rows = int(float64(c.CanvasHeight) / step)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Cell tracks the remaining possibilities for one grid position. Entropy is
// always the possibility count while uncollapsed. A collapsed cell keeps its
// single chosen tile with entropy 0. Entropy 0 on an uncollapsed cell marks
// a contradiction, a terminal state for that cell.
type Cell struct {
	Collapsed     bool
	Possibilities []int // tile ids, catalog order
	Entropy       int
	Tile          int // resolved tile id, -1 until collapsed
}

// Grid is the collapse state for one generation run.
type Grid struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewGrid creates a grid where every cell may still become any catalog tile.
func NewGrid(cols, rows int, cat *Catalog) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", cols, rows)
	}
	all := make([]int, len(cat.Tiles))
	for i, t := range cat.Tiles {
		all[i] = t.ID
	}
	g := &Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	for i := range g.Cells {
		g.Cells[i] = Cell{
			Possibilities: append([]int(nil), all...),
			Entropy:       len(all),
			Tile:          -1,
		}
	}
	return g, nil
}

// Index converts (x, y) to the flat cell index.
func (g *Grid) Index(x, y int) int { return y*g.Cols + x }

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) *Cell { return &g.Cells[y*g.Cols+x] }

// InBounds reports whether (x, y) is on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// CollapsedCount returns how many cells have been resolved to a tile.
func (g *Grid) CollapsedCount() int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].Collapsed {
			n++
		}
	}
	return n
}
