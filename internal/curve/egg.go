// Package curve samples the egg outline used as the clip mask.
//
// The outline is a Hugelschaffer egg: an oval with one blunt and one pointed
// end. For t in [0, 2π)
//
//	xx = (sqrt(a² − d²·sin²t) + d·cos t)·cos t
//	yy = b·sin t
//
// and with scale = h/4 the sampled point is (yy·scale, d·scale − xx·scale),
// so the long axis runs vertically in a y-down frame.
package curve

import (
	"errors"
	"fmt"
	"math"

	"eggpaint/internal/shape"
	"eggpaint/pkg/geometry"

	"gonum.org/v1/gonum/floats"
)

// DefaultSteps is the number of samples taken around the outline.
const DefaultSteps = 150

var (
	ErrTooFewSteps = errors.New("egg curve needs at least 3 steps")
	ErrDomain      = errors.New("egg curve constants out of domain")
	ErrBadExtent   = errors.New("egg curve height must be positive and finite")
)

// Constants are the shape parameters of the egg family.
type Constants struct {
	A float64 // Half-length of the long axis, in units of scale
	B float64 // Half-width, in units of scale
	D float64 // Asymmetry; 0 gives an ellipse
}

// DefaultConstants returns a=3, b=2, d=0.5.
func DefaultConstants() Constants {
	return Constants{A: 3, B: 2, D: 0.5}
}

// Validate rejects constants for which the square root goes negative.
func (c Constants) Validate() error {
	if c.A <= 0 || c.B <= 0 || c.D < 0 {
		return fmt.Errorf("%w: a=%v b=%v d=%v", ErrDomain, c.A, c.B, c.D)
	}
	if c.A < c.D {
		return fmt.Errorf("%w: a=%v < d=%v", ErrDomain, c.A, c.D)
	}
	return nil
}

// Egg samples the default egg for a nominal box of width w and height h.
// Only h sets the size (the egg comes out 1.5·h tall and h wide); the width
// is accepted so every generator takes the same bounding-box arguments.
func Egg(_, h float64, steps int) (*shape.Path, error) {
	return EggWithConstants(DefaultConstants(), h, steps)
}

// EggWithConstants samples steps points of the egg with the given constants
// and returns them as a closed, unpainted path.
func EggWithConstants(c Constants, h float64, steps int) (*shape.Path, error) {
	if steps < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSteps, steps)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if h <= 0 || math.IsInf(h, 0) || math.IsNaN(h) {
		return nil, fmt.Errorf("%w: got %v", ErrBadExtent, h)
	}

	scale := h / 4
	// steps+1 samples over [0, 2π]; the last one duplicates the first.
	ts := floats.Span(make([]float64, steps+1), 0, 2*math.Pi)[:steps]

	points := make([]geometry.Point2D, steps)
	for i, t := range ts {
		points[i] = pointAt(c, scale, t)
	}
	return shape.NewPolyline(points, true, shape.Paint{}), nil
}

func pointAt(c Constants, scale, t float64) geometry.Point2D {
	sin, cos := math.Sincos(t)
	xx := (math.Sqrt(c.A*c.A-c.D*c.D*sin*sin) + c.D*cos) * cos
	yy := c.B * sin
	return geometry.Point2D{
		X: yy * scale,
		Y: c.D*scale - xx*scale,
	}
}
