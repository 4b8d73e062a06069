package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 26, cfg.BaseCellSize())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"narrow surface", func(c *Config) { c.Width = 29 }},
		{"flat surface", func(c *Config) { c.Height = 0 }},
		{"multiplier low", func(c *Config) { c.Multiplier = 0 }},
		{"multiplier high", func(c *Config) { c.Multiplier = MaxMultiplier + 1 }},
		{"tick", func(c *Config) { c.TickInterval = -time.Millisecond }},
		{"alive chance", func(c *Config) { c.AliveChance = 1.5 }},
		{"seed mode", func(c *Config) { c.SeedMode = "gosper" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigGeometry(t *testing.T) {
	cfg := DefaultConfig()
	// 800/30 = 26; 26*3/m
	for _, tt := range []struct {
		m, size, w, h int
	}{
		{1, 78, 11, 8},
		{3, 26, 31, 24},
		{10, 7, 115, 86},
	} {
		assert.Equal(t, tt.size, cfg.CellSize(tt.m), "m=%d", tt.m)
		w, h := cfg.GridSize(tt.m)
		assert.Equal(t, tt.w, w, "m=%d", tt.m)
		assert.Equal(t, tt.h, h, "m=%d", tt.m)
	}

	tiny := Config{Width: 30, Height: 1}
	assert.Equal(t, 1, tiny.BaseCellSize())
	assert.Equal(t, 1, tiny.CellSize(10))
}

func TestParseSeedMode(t *testing.T) {
	for _, s := range []string{"random", "perlin", "empty"} {
		m, err := ParseSeedMode(s)
		require.NoError(t, err)
		assert.Equal(t, SeedMode(s), m)
	}
	_, err := ParseSeedMode("glider")
	assert.ErrorContains(t, err, "glider")
}
