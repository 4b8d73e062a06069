package session

import (
	"errors"
	"fmt"
	"time"
)

// Zoom multiplier range.
const (
	MinMultiplier = 1
	MaxMultiplier = 10
)

// BaseDivisions is the number of base-size cells across the surface width.
const BaseDivisions = 30

// SeedMode selects how a grid is populated on start, zoom and reseed.
type SeedMode string

const (
	SeedRandom SeedMode = "random"
	SeedPerlin SeedMode = "perlin"
	SeedEmpty  SeedMode = "empty"
)

// ParseSeedMode converts a flag value into a SeedMode.
func ParseSeedMode(s string) (SeedMode, error) {
	switch m := SeedMode(s); m {
	case SeedRandom, SeedPerlin, SeedEmpty:
		return m, nil
	}
	return "", fmt.Errorf("unknown seed mode %q (want random, perlin or empty)", s)
}

// Config holds the simulation parameters.
type Config struct {
	// Surface size in pixels.
	Width, Height int
	Multiplier    int
	TickInterval  time.Duration
	// AliveChance is the seeding probability. Negative draws a fresh one
	// on every reseed.
	AliveChance float64
	SeedMode    SeedMode
	// Seed for the RNG; 0 uses the clock.
	Seed      int64
	Autostart bool
}

// DefaultConfig returns the settings the simulator starts with.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Multiplier:   MinMultiplier,
		TickInterval: 500 * time.Millisecond,
		AliveChance:  -1,
		SeedMode:     SeedRandom,
		Autostart:    true,
	}
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width < BaseDivisions || c.Height < 1 {
		errs = append(errs, fmt.Errorf("surface %dx%d too small (min %dx1)", c.Width, c.Height, BaseDivisions))
	}
	if c.Multiplier < MinMultiplier || c.Multiplier > MaxMultiplier {
		errs = append(errs, fmt.Errorf("multiplier %d outside [%d,%d]", c.Multiplier, MinMultiplier, MaxMultiplier))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval %v must be positive", c.TickInterval))
	}
	if c.AliveChance > 1 {
		errs = append(errs, fmt.Errorf("alive chance %v above 1", c.AliveChance))
	}
	if _, err := ParseSeedMode(string(c.SeedMode)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BaseCellSize is the edge length of a cell at multiplier 3.
func (c Config) BaseCellSize() int {
	return max(1, c.Width/BaseDivisions)
}

// CellSize returns the cell edge length at multiplier m.
func (c Config) CellSize(m int) int {
	return max(1, c.BaseCellSize()*3/m)
}

// GridSize returns the grid dimensions at multiplier m: enough cells to
// cover the surface, including a partial last column and row.
func (c Config) GridSize(m int) (w, h int) {
	size := c.CellSize(m)
	return c.Width/size + 1, c.Height/size + 1
}
