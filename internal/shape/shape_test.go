package shape

import (
	"math"
	"testing"

	"eggpaint/pkg/colorutil"
	"eggpaint/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolylineOps(t *testing.T) {
	p := NewPolyline([]geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, true, Paint{})
	require.Len(t, p.Vertices, 3)
	assert.Equal(t, OpMove, p.Vertices[0].Op)
	assert.Equal(t, OpLine, p.Vertices[1].Op)
	assert.Equal(t, OpLine, p.Vertices[2].Op)
	assert.True(t, p.Closed)
	assert.Equal(t, geometry.Rect{Width: 1, Height: 1}, p.Bounds())
}

func TestNewRectIsCentred(t *testing.T) {
	r := NewRect(geometry.NewPoint2D(0, 10), 40, 20, Filled(colorutil.White))
	assert.Equal(t, geometry.Rect{X: -20, Y: 0, Width: 40, Height: 20}, r.Bounds())
	assert.Equal(t, colorutil.White, r.Fill)
	assert.Nil(t, r.Stroke)
}

func TestGroupBoundsAndTransformed(t *testing.T) {
	var g Group
	assert.Equal(t, geometry.Rect{}, g.Bounds())

	g.Add(
		NewRect(geometry.Point2D{}, 2, 2, Filled(colorutil.Black)),
		NewPolyline([]geometry.Point2D{{X: 3, Y: 0}, {X: 4, Y: 0}}, false, Stroked(colorutil.White, 1)),
	)
	assert.Equal(t, geometry.Rect{X: -1, Y: -1, Width: 5, Height: 2}, g.Bounds())

	g.Rotation = math.Pi / 2
	paths := g.Transformed()
	require.Len(t, paths, 2)
	assert.True(t, paths[0].Closed)
	assert.Len(t, paths[0].Vertices, 4)
	assert.False(t, paths[1].Closed)

	// (3,0) rotated a quarter turn lands on (0,3).
	end := paths[1].Vertices[0]
	assert.InDelta(t, 0, end.X, 1e-12)
	assert.InDelta(t, 3, end.Y, 1e-12)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "move", OpMove.String())
	assert.Equal(t, "line", OpLine.String())
	assert.Equal(t, "unknown", Op(9).String())
}
