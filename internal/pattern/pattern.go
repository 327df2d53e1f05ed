// Package pattern tiles the geometric primitives that fill the egg.
//
// Every generator works in the egg's local frame (origin at the centre,
// y down) over a nominal bounding box of Width × Height, and returns a
// shape.Group whose Rotation is applied about the origin by the renderer.
package pattern

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	ErrInvalidGeometry = errors.New("invalid pattern geometry")
	ErrNoColour        = errors.New("pattern colour is required")
)

// maxTiles bounds the primitives one generator may emit; tiny size
// fractions are rejected rather than tiled.
const maxTiles = 100_000

// Margins are the over-draw allowances that keep rotated or scaled
// patterns gap-free under the mask.
type Margins struct {
	StripeOverhang float64 // Added to the stripe width
	ChequerSpan    float64 // Grid extent as a multiple of the bounding box
	MaxZigzags     int     // Upper bound on zigzag bands
}

// DefaultMargins returns the margins the egg is drawn with.
func DefaultMargins() Margins {
	return Margins{StripeOverhang: 600, ChequerSpan: 2, MaxZigzags: 6}
}

// Params are the inputs shared by all generators.
type Params struct {
	Width, Height float64     // Bounding box
	Size          float64     // Tile scale as a fraction in (0, 1)
	Colour        color.Color // Foreground colour
	Angle         float64     // Radians, ignored by Flat and Chequer
	Margins       Margins
}

// NewParams returns params with DefaultMargins.
func NewParams(width, height, size float64, colour color.Color, angle float64) Params {
	return Params{
		Width:   width,
		Height:  height,
		Size:    size,
		Colour:  colour,
		Angle:   angle,
		Margins: DefaultMargins(),
	}
}

// Validate rejects parameters that would tile nothing or tile forever.
func (p Params) Validate() error {
	if !finitePositive(p.Width) || !finitePositive(p.Height) {
		return fmt.Errorf("%w: bounding box %vx%v", ErrInvalidGeometry, p.Width, p.Height)
	}
	if !(p.Size > 0 && p.Size < 1) {
		return fmt.Errorf("%w: size fraction %v outside (0, 1)", ErrInvalidGeometry, p.Size)
	}
	if math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
		return fmt.Errorf("%w: angle %v", ErrInvalidGeometry, p.Angle)
	}
	if p.Colour == nil {
		return ErrNoColour
	}
	m := p.Margins
	if m.StripeOverhang < 0 || math.IsNaN(m.StripeOverhang) || math.IsInf(m.StripeOverhang, 0) {
		return fmt.Errorf("%w: stripe overhang %v", ErrInvalidGeometry, m.StripeOverhang)
	}
	if !finitePositive(m.ChequerSpan) {
		return fmt.Errorf("%w: chequer span %v", ErrInvalidGeometry, m.ChequerSpan)
	}
	if m.MaxZigzags < 1 {
		return fmt.Errorf("%w: max zigzags %d", ErrInvalidGeometry, m.MaxZigzags)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// checkTiles fails when a grid of the given dimensions is too large to emit.
func checkTiles(size float64, counts ...float64) error {
	total := 1.0
	for _, c := range counts {
		total *= c
	}
	if total > maxTiles {
		return fmt.Errorf("%w: size fraction %v needs %.0f tiles (max %d)",
			ErrInvalidGeometry, size, total, maxTiles)
	}
	return nil
}
