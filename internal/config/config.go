// Package config holds the fixed generation and display parameters.
// There is no config file; Default is the whole configuration.
package config

import (
	"errors"
	"fmt"
	"math"

	"eggpaint/internal/curve"
	"eggpaint/pkg/colorutil"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config collects the constants that shape the egg and its window.
type Config struct {
	// Nominal egg box in local units. The mask is generated from EggHeight.
	EggWidth  float64
	EggHeight float64

	CurveSteps int

	// The pattern is generated for EggWidth × EggHeight·PatternHeightFactor.
	PatternHeightFactor float64
	// The background rect is EggWidth·BackgroundFactor × EggHeight·BackgroundFactor.
	BackgroundFactor float64

	// Safety margins so rotated or scaled patterns leave no gaps under the mask.
	StripeOverhang float64 // Extra stripe width beyond the bounding width
	ChequerSpan    float64 // Chequer grid extent as a multiple of the bounding box
	MaxZigzags     int     // Upper bound on zigzag bands

	DisplayScale float64 // Scale applied to the composite on screen
	Backdrop     string  // Colour behind the egg

	WindowWidth  float32
	WindowHeight float32
}

// Default returns the configuration the application runs with.
func Default() Config {
	return Config{
		EggWidth:   500,
		EggHeight:  600,
		CurveSteps: curve.DefaultSteps,

		PatternHeightFactor: 1.3,
		BackgroundFactor:    2,

		// Empirical: 600 covers the egg at every palette angle,
		// and a 2× chequer grid survives the mask at display scale.
		StripeOverhang: 600,
		ChequerSpan:    2,
		MaxZigzags:     6,

		DisplayScale: 0.5,
		Backdrop:     "#333",

		WindowWidth:  1024,
		WindowHeight: 768,
	}
}

// WithEggSize returns a copy of the config with a different nominal egg box.
func (c Config) WithEggSize(width, height float64) Config {
	c.EggWidth = width
	c.EggHeight = height
	return c
}

// WithDisplayScale returns a copy of the config with a different on-screen scale.
func (c Config) WithDisplayScale(scale float64) Config {
	c.DisplayScale = scale
	return c
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"egg width", c.EggWidth},
		{"egg height", c.EggHeight},
		{"pattern height factor", c.PatternHeightFactor},
		{"background factor", c.BackgroundFactor},
		{"chequer span", c.ChequerSpan},
		{"display scale", c.DisplayScale},
		{"window width", float64(c.WindowWidth)},
		{"window height", float64(c.WindowHeight)},
	}
	for _, f := range positive {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, f.name, f.v)
		}
	}
	if c.StripeOverhang < 0 || math.IsNaN(c.StripeOverhang) || math.IsInf(c.StripeOverhang, 0) {
		return fmt.Errorf("%w: stripe overhang must be >= 0, got %v", ErrInvalid, c.StripeOverhang)
	}
	if c.CurveSteps < 3 {
		return fmt.Errorf("%w: curve steps must be >= 3, got %d", ErrInvalid, c.CurveSteps)
	}
	if c.MaxZigzags < 1 {
		return fmt.Errorf("%w: max zigzags must be >= 1, got %d", ErrInvalid, c.MaxZigzags)
	}
	if _, err := colorutil.Parse(c.Backdrop); err != nil {
		return fmt.Errorf("%w: backdrop: %w", ErrInvalid, err)
	}
	return nil
}
