package config

import (
	"errors"
	"math"
	"testing"

	"eggpaint/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 150, cfg.CurveSteps)
	assert.Equal(t, 0.5, cfg.DisplayScale)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero egg width", func(c *Config) { c.EggWidth = 0 }},
		{"negative egg height", func(c *Config) { c.EggHeight = -600 }},
		{"NaN pattern factor", func(c *Config) { c.PatternHeightFactor = math.NaN() }},
		{"infinite background", func(c *Config) { c.BackgroundFactor = math.Inf(1) }},
		{"zero chequer span", func(c *Config) { c.ChequerSpan = 0 }},
		{"negative overhang", func(c *Config) { c.StripeOverhang = -1 }},
		{"too few steps", func(c *Config) { c.CurveSteps = 2 }},
		{"no zigzags", func(c *Config) { c.MaxZigzags = 0 }},
		{"zero scale", func(c *Config) { c.DisplayScale = 0 }},
		{"zero window", func(c *Config) { c.WindowHeight = 0 }},
		{"bad backdrop", func(c *Config) { c.Backdrop = "#xyz" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestBadBackdropKeepsColourError(t *testing.T) {
	cfg := Default()
	cfg.Backdrop = "mauvish"
	assert.True(t, errors.Is(cfg.Validate(), colorutil.ErrUnknownColour))
}

func TestWithModifiersCopy(t *testing.T) {
	base := Default()
	small := base.WithEggSize(50, 60).WithDisplayScale(1)
	assert.Equal(t, 500.0, base.EggWidth)
	assert.Equal(t, 50.0, small.EggWidth)
	assert.Equal(t, 60.0, small.EggHeight)
	assert.Equal(t, 1.0, small.DisplayScale)
}
