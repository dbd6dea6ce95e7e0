package terrain

import (
	"fmt"

	"cityforge/internal/noise"
)

// Field is a rectangular grid of elevation samples in [0, 1). It is built
// once per configuration and read-only afterwards.
type Field struct {
	Rows     int
	Cols     int
	CellSize int
	values   []float64
}

// BuildElevation samples value noise on a lattice covering the configured
// area. Grid dimensions are ceil(width/cellSize)+1 by ceil(height/cellSize)+1
// so the last sample row/column sits on or past the far edge.
func BuildElevation(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("terrain config: %w", err)
	}

	cols := ceilDiv(cfg.Width, cfg.CellSize) + 1
	rows := ceilDiv(cfg.Height, cfg.CellSize) + 1

	src := noise.New(cfg.Seed, cfg.NoiseFrequency)
	f := &Field{
		Rows:     rows,
		Cols:     cols,
		CellSize: cfg.CellSize,
		values:   make([]float64, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			wx := float64(c * cfg.CellSize)
			wy := float64(r * cfg.CellSize)
			f.values[r*cols+c] = src.At(wx, wy)
		}
	}
	return f, nil
}

// At returns the elevation sample at row r, column c.
func (f *Field) At(r, c int) float64 {
	return f.values[r*f.Cols+c]
}

// InBounds reports whether (r, c) addresses a sample.
func (f *Field) InBounds(r, c int) bool {
	return r >= 0 && r < f.Rows && c >= 0 && c < f.Cols
}

// World converts grid coordinates to world pixel coordinates.
func (f *Field) World(r, c int) Point {
	return Point{X: float64(c * f.CellSize), Y: float64(r * f.CellSize)}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
