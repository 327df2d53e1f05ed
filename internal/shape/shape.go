// Package shape holds the drawable value objects produced by the curve and
// pattern generators. Nothing here knows how to render; see package render.
package shape

import (
	"image/color"

	"eggpaint/pkg/geometry"
)

// Op says how a path vertex connects to the one before it.
type Op int

const (
	OpMove Op = iota // Start a new sub-path
	OpLine           // Straight line from the previous vertex
)

func (o Op) String() string {
	switch o {
	case OpMove:
		return "move"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Vertex is one point of a Path.
type Vertex struct {
	geometry.Point2D
	Op Op
}

// Paint describes how a primitive is coloured. A nil colour means no fill
// (or no stroke). LineWidth is in local units and only matters with Stroke.
type Paint struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
}

// Filled returns a fill-only paint.
func Filled(c color.Color) Paint {
	return Paint{Fill: c}
}

// Stroked returns a stroke-only paint.
func Stroked(c color.Color, width float64) Paint {
	return Paint{Stroke: c, LineWidth: width}
}

// Primitive is a drawable unit: a *Rect or a *Path.
type Primitive interface {
	Bounds() geometry.Rect
	isPrimitive()
}

// Rect is a filled and/or stroked axis-aligned rectangle.
type Rect struct {
	geometry.Rect
	Paint
}

// NewRect returns a rectangle of the given size centred on c.
func NewRect(c geometry.Point2D, width, height float64, paint Paint) *Rect {
	return &Rect{Rect: geometry.CenteredRect(c, width, height), Paint: paint}
}

// Bounds returns the rectangle itself.
func (r *Rect) Bounds() geometry.Rect { return r.Rect }

func (*Rect) isPrimitive() {}

// Path is a polyline. Closed paths are used as masks, open ones as stroked bands.
type Path struct {
	Vertices []Vertex
	Closed   bool
	Paint
}

// NewPolyline builds a path whose first vertex is a move and the rest lines.
func NewPolyline(points []geometry.Point2D, closed bool, paint Paint) *Path {
	verts := make([]Vertex, len(points))
	for i, p := range points {
		op := OpLine
		if i == 0 {
			op = OpMove
		}
		verts[i] = Vertex{Point2D: p, Op: op}
	}
	return &Path{Vertices: verts, Closed: closed, Paint: paint}
}

// Points returns the vertex positions in order.
func (p *Path) Points() []geometry.Point2D {
	pts := make([]geometry.Point2D, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.Point2D
	}
	return pts
}

// Bounds returns the bounding box of the vertices, ignoring stroke width.
func (p *Path) Bounds() geometry.Rect {
	return geometry.BoundingBox(p.Points())
}

func (*Path) isPrimitive() {}

// Group is a Pattern Result: primitives drawn in order, then rotated as a
// whole about the local origin.
type Group struct {
	Items    []Primitive
	Rotation float64
}

// Add appends primitives to the group.
func (g *Group) Add(items ...Primitive) {
	g.Items = append(g.Items, items...)
}

// Bounds returns the union of the item bounds before rotation.
func (g Group) Bounds() geometry.Rect {
	if len(g.Items) == 0 {
		return geometry.Rect{}
	}
	b := g.Items[0].Bounds()
	for _, it := range g.Items[1:] {
		b = b.Union(it.Bounds())
	}
	return b
}

// Transformed returns the outline of every item with the group rotation
// applied. Rectangles come back as closed four-point paths.
func (g Group) Transformed() []*Path {
	rot := geometry.Rotation(g.Rotation)
	out := make([]*Path, 0, len(g.Items))
	for _, it := range g.Items {
		switch v := it.(type) {
		case *Rect:
			corners := v.Corners()
			out = append(out, NewPolyline(geometry.TransformAll(rot, corners[:]), true, v.Paint))
		case *Path:
			p := NewPolyline(geometry.TransformAll(rot, v.Points()), v.Closed, v.Paint)
			out = append(out, p)
		}
	}
	return out
}
