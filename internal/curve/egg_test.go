package curve

import (
	"errors"
	"math"
	"testing"

	"eggpaint/internal/shape"
	"eggpaint/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestEggSampleCount(t *testing.T) {
	for _, n := range []int{3, 4, 7, 150, 151} {
		p, err := Egg(500, 600, n)
		require.NoError(t, err)
		require.Len(t, p.Vertices, n)
		assert.True(t, p.Closed)
		assert.Equal(t, shape.OpMove, p.Vertices[0].Op)
		for _, v := range p.Vertices[1:] {
			assert.Equal(t, shape.OpLine, v.Op)
		}
		assert.Nil(t, p.Fill)
		assert.Nil(t, p.Stroke)
	}
}

func TestEggFirstPointMatchesFormula(t *testing.T) {
	p, err := Egg(500, 600, DefaultSteps)
	require.NoError(t, err)

	// t=0: xx = (sqrt(9) + 0.5)·1 = 3.5, scale = 150
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0.5*150 - 3.5*150}, p.Vertices[0].Point2D)
	assert.Equal(t, pointAt(DefaultConstants(), 150, 0), p.Vertices[0].Point2D)
}

func TestEggSampledAtEvenParameterSteps(t *testing.T) {
	const n = 150
	p, err := Egg(500, 600, n)
	require.NoError(t, err)
	for i, v := range p.Vertices {
		want := pointAt(DefaultConstants(), 150, float64(i)/n*2*math.Pi)
		assert.True(t, scalar.EqualWithinAbs(want.X, v.X, tol), "x at %d", i)
		assert.True(t, scalar.EqualWithinAbs(want.Y, v.Y, tol), "y at %d", i)
	}
}

// The outline is symmetric about the vertical axis: reflecting t -> -t
// negates x and keeps y, which pairs sample i with sample N-i.
func TestEggMirrorSymmetry(t *testing.T) {
	for _, n := range []int{150, 151, 64} {
		p, err := Egg(500, 600, n)
		require.NoError(t, err)
		for i := 1; i < n; i++ {
			a, b := p.Vertices[i], p.Vertices[n-i]
			assert.True(t, scalar.EqualWithinAbs(a.X, -b.X, tol), "n=%d i=%d x", n, i)
			assert.True(t, scalar.EqualWithinAbs(a.Y, b.Y, tol), "n=%d i=%d y", n, i)
		}
	}
}

func TestEggExtents(t *testing.T) {
	p, err := Egg(500, 600, 360)
	require.NoError(t, err)
	box := p.Bounds()

	// x spans ±b·scale = ±300, y spans [(d−(a+d))·scale, (d+(a−d))·scale] = [−450, 450].
	assert.InDelta(t, -300, box.X, 0.01)
	assert.InDelta(t, 600, box.Width, 0.01)
	assert.InDelta(t, -450, box.Y, tol)
	assert.InDelta(t, 900, box.Height, tol)

	// The origin lies inside the outline.
	assert.True(t, geometry.PointInPolygon(geometry.Point2D{}, p.Points()))
}

func TestEggRejectsDegenerateInput(t *testing.T) {
	_, err := Egg(500, 600, 2)
	assert.True(t, errors.Is(err, ErrTooFewSteps))

	_, err = Egg(500, 0, DefaultSteps)
	assert.True(t, errors.Is(err, ErrBadExtent))

	_, err = Egg(500, math.Inf(1), DefaultSteps)
	assert.True(t, errors.Is(err, ErrBadExtent))

	_, err = EggWithConstants(Constants{A: 0.25, B: 2, D: 0.5}, 600, DefaultSteps)
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestDefaultConstantsValid(t *testing.T) {
	require.NoError(t, DefaultConstants().Validate())
}
