// Package render draws a composite egg onto a 2D vector surface.
//
// The geometry packages only build values; this is the one place that talks
// to a drawing library. Any surface with the gg.Context method set works.
package render

import (
	"image"
	"image/color"

	"eggpaint/internal/egg"
	"eggpaint/internal/shape"

	"github.com/fogleman/gg"
)

// Surface is the subset of the drawing API the egg needs.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Scale(x, y float64)
	Rotate(angle float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	DrawRectangle(x, y, w, h float64)

	SetColor(c color.Color)
	SetLineWidth(lineWidth float64)
	Fill()
	FillPreserve()
	Stroke()
	Clip()
}

var _ Surface = (*gg.Context)(nil)

// Draw renders c: it moves to c.Position, scales by c.Scale, clips to the
// mask and paints each layer in order. The surface state is restored on return.
func Draw(s Surface, c egg.Composite) {
	s.Push()
	defer s.Pop()

	s.Translate(c.Position.X, c.Position.Y)
	s.Scale(c.Scale, c.Scale)

	if c.Mask != nil {
		s.ClearPath()
		tracePath(s, c.Mask)
		s.Clip()
	}
	for _, layer := range c.Layers {
		drawGroup(s, layer, c.Scale)
	}
}

// Image renders c onto a new width × height raster filled with backdrop.
func Image(c egg.Composite, width, height int, backdrop color.Color) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(backdrop)
	dc.Clear()
	Draw(dc, c)
	return dc.Image()
}

func drawGroup(s Surface, g shape.Group, scale float64) {
	s.Push()
	defer s.Pop()

	if g.Rotation != 0 {
		s.Rotate(g.Rotation)
	}
	for _, it := range g.Items {
		switch v := it.(type) {
		case *shape.Rect:
			s.DrawRectangle(v.X, v.Y, v.Width, v.Height)
			paint(s, v.Paint, scale)
		case *shape.Path:
			tracePath(s, v)
			paint(s, v.Paint, scale)
		}
	}
}

func tracePath(s Surface, p *shape.Path) {
	for _, v := range p.Vertices {
		switch v.Op {
		case shape.OpMove:
			s.MoveTo(v.X, v.Y)
		default:
			s.LineTo(v.X, v.Y)
		}
	}
	if p.Closed {
		s.ClosePath()
	}
}

// paint fills and/or strokes the current path. gg strokes in device space,
// so the local line width is multiplied by the composite scale.
func paint(s Surface, p shape.Paint, scale float64) {
	switch {
	case p.Fill != nil && p.Stroke != nil:
		s.SetColor(p.Fill)
		s.FillPreserve()
		s.SetColor(p.Stroke)
		s.SetLineWidth(p.LineWidth * scale)
		s.Stroke()
	case p.Fill != nil:
		s.SetColor(p.Fill)
		s.Fill()
	case p.Stroke != nil:
		s.SetColor(p.Stroke)
		s.SetLineWidth(p.LineWidth * scale)
		s.Stroke()
	default:
		s.ClearPath()
	}
}
