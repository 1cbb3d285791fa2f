package generation

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"ebiten-caves/grid"
)

// ErrInvalidConfig marks configuration errors: the caller supplied
// parameters outside their valid ranges. Always raised before any
// generation work begins.
var ErrInvalidConfig = errors.New("invalid generation config")

// Config holds every parameter of a cave generation run.
type Config struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	SquareSize int `json:"squareSize"`

	Seed          string  `json:"seed"`
	UseRandomSeed bool    `json:"useRandomSeed"`
	Density       float64 `json:"density"`

	SmoothIterations   int `json:"smoothIterations"`
	MinFloorRegionSize int `json:"minFloorRegionSize"`
	MinWallRegionSize  int `json:"minWallRegionSize"`
	TunnelRadius       int `json:"tunnelRadius"`
	ExpansionRadius    int `json:"expansionRadius"`
	BorderSize         int `json:"borderSize"`
}

// DefaultConfig returns a config producing a reasonable medium cave.
func DefaultConfig() Config {
	return Config{
		Width:              80,
		Height:             60,
		SquareSize:         1,
		Seed:               "cave",
		Density:            0.47,
		SmoothIterations:   5,
		MinFloorRegionSize: 50,
		MinWallRegionSize:  50,
		TunnelRadius:       1,
		ExpansionRadius:    0,
		BorderSize:         1,
	}
}

// Validate checks every parameter range from the configuration contract.
// All violations wrap ErrInvalidConfig with a description of the offending
// field.
func (c Config) Validate() error {
	if c.Width < 5 || c.Height < 5 {
		return fmt.Errorf("%w: dimensions %dx%d must be at least 5x5", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SquareSize < 1 {
		return fmt.Errorf("%w: square size %d must be at least 1", ErrInvalidConfig, c.SquareSize)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %g must be within [0, 1]", ErrInvalidConfig, c.Density)
	}
	if c.SmoothIterations < 0 {
		return fmt.Errorf("%w: smooth iterations %d must not be negative", ErrInvalidConfig, c.SmoothIterations)
	}
	if c.MinFloorRegionSize < 0 {
		return fmt.Errorf("%w: min floor region size %d must not be negative", ErrInvalidConfig, c.MinFloorRegionSize)
	}
	if c.MinWallRegionSize < 0 {
		return fmt.Errorf("%w: min wall region size %d must not be negative", ErrInvalidConfig, c.MinWallRegionSize)
	}
	if c.TunnelRadius < 0 {
		return fmt.Errorf("%w: tunnel radius %d must not be negative", ErrInvalidConfig, c.TunnelRadius)
	}
	if c.ExpansionRadius < 0 {
		return fmt.Errorf("%w: expansion radius %d must not be negative", ErrInvalidConfig, c.ExpansionRadius)
	}
	if c.BorderSize < 0 {
		return fmt.Errorf("%w: border size %d must not be negative", ErrInvalidConfig, c.BorderSize)
	}
	return nil
}

// SeedValue resolves the config's seed to the int64 fed into the random
// source. String seeds (including decimal numbers) hash through FNV-1a;
// with UseRandomSeed set the clock decides and runs are not reproducible.
func (c Config) SeedValue() int64 {
	if c.UseRandomSeed {
		return time.Now().UnixNano()
	}
	h := fnv.New64a()
	h.Write([]byte(c.Seed))
	return int64(h.Sum64())
}

// Generate runs the full map pipeline and returns the finished grid:
// random fill, smoothing, floor pruning, connectivity repair, expansion,
// wall pruning, border. The config is validated first; on error no
// generation work has happened and no map is returned.
func Generate(cfg Config) (*grid.Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	builder, err := NewMapBuilder(cfg.Width, cfg.Height, cfg.SquareSize)
	if err != nil {
		return nil, err
	}

	builder.InitializeRandomFill(cfg.Density, cfg.SeedValue())
	builder.Smooth(cfg.SmoothIterations)
	builder.RemoveSmallFloorRegions(cfg.MinFloorRegionSize)
	builder.ConnectFloors(cfg.TunnelRadius)
	builder.ExpandRegions(cfg.ExpansionRadius)
	builder.RemoveSmallWallRegions(cfg.MinWallRegionSize)
	builder.ApplyBorder(cfg.BorderSize)

	return builder.Map().Clone(), nil
}
