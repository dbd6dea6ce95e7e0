package terrain

import (
	"fmt"

	"go.uber.org/multierr"
)

// Mode selects the overall water shape of a generated terrain.
type Mode string

const (
	ModeLake  Mode = "lake"
	ModeRiver Mode = "river"
	ModeBay   Mode = "bay"
)

// Edge names a side of the map, used by bay generation.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
)

// Config holds the terrain generation parameters. World dimensions are in
// pixels; the elevation field samples every CellSize pixels.
type Config struct {
	Width          int
	Height         int
	CellSize       int
	WaterCoverage  float64 // fraction of cells below the water threshold, in [0, 1]
	NoiseFrequency float64
	Seed           int
	Mode           Mode
	RiverWidth     int  // carve radius in cells, river mode only
	BayDirection   Edge // bay mode only
}

// DefaultConfig returns a workable lake-mode configuration.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		CellSize:       10,
		WaterCoverage:  0.3,
		NoiseFrequency: 0.08,
		Seed:           1,
		Mode:           ModeLake,
		RiverWidth:     1,
		BayDirection:   EdgeBottom,
	}
}

// Validate rejects configurations before any grid is allocated. All
// violations are reported together.
func (c Config) Validate() error {
	var err error
	if c.Width <= 0 {
		err = multierr.Append(err, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if c.CellSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.WaterCoverage < 0 || c.WaterCoverage > 1 {
		err = multierr.Append(err, fmt.Errorf("water coverage must be in [0,1], got %g", c.WaterCoverage))
	}
	if c.NoiseFrequency <= 0 {
		err = multierr.Append(err, fmt.Errorf("noise frequency must be positive, got %g", c.NoiseFrequency))
	}
	switch c.Mode {
	case ModeLake, ModeBay, ModeRiver:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if c.Mode == ModeRiver && c.RiverWidth < 0 {
		err = multierr.Append(err, fmt.Errorf("river width must be non-negative, got %d", c.RiverWidth))
	}
	if c.Mode == ModeBay {
		switch c.BayDirection {
		case EdgeTop, EdgeBottom, EdgeLeft, EdgeRight:
		default:
			err = multierr.Append(err, fmt.Errorf("unknown bay direction %q", c.BayDirection))
		}
	}
	return err
}
