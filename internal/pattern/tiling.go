package pattern

import (
	"math"

	"eggpaint/internal/shape"
	"eggpaint/pkg/geometry"
)

// Flat covers three times the bounding box with a single rectangle so the
// mask is filled whatever the scale or placement.
func Flat(p Params) (shape.Group, error) {
	if err := p.Validate(); err != nil {
		return shape.Group{}, err
	}
	var g shape.Group
	g.Add(shape.NewRect(geometry.Point2D{}, p.Width*3, p.Height*3, shape.Filled(p.Colour)))
	return g, nil
}

// Stripe emits horizontal bands of height Size·Height separated by equal
// gaps, from −Height/2 down to Height/2. Each band is StripeOverhang wider
// than the box so the group can be rotated by Angle without bare corners.
func Stripe(p Params) (shape.Group, error) {
	if err := p.Validate(); err != nil {
		return shape.Group{}, err
	}
	stripeHeight := p.Size * p.Height
	step := stripeHeight * 2
	top, bottom := -p.Height/2, p.Height/2
	if err := checkTiles(p.Size, math.Ceil((bottom-top)/step)); err != nil {
		return shape.Group{}, err
	}

	width := p.Width + p.Margins.StripeOverhang
	g := shape.Group{Rotation: p.Angle}
	for i := 0; ; i++ {
		y := top + float64(i)*step
		if y >= bottom {
			break
		}
		g.Add(&shape.Rect{
			Rect:  geometry.NewRect(-width/2, y, width, stripeHeight),
			Paint: shape.Filled(p.Colour),
		})
	}
	return g, nil
}

// Chequer fills a grid of Size·Width squares spanning ChequerSpan times the
// bounding box. Only cells whose row and column parity match are emitted,
// starting with the top-left cell; the rest show the background.
func Chequer(p Params) (shape.Group, error) {
	if err := p.Validate(); err != nil {
		return shape.Group{}, err
	}
	side := p.Size * p.Width
	halfW := p.Width * p.Margins.ChequerSpan / 2
	halfH := p.Height * p.Margins.ChequerSpan / 2
	if err := checkTiles(p.Size, math.Ceil(2*halfW/side), math.Ceil(2*halfH/side)); err != nil {
		return shape.Group{}, err
	}

	var g shape.Group
	for row := 0; ; row++ {
		y := -halfH + float64(row)*side
		if y >= halfH {
			break
		}
		for col := 0; ; col++ {
			x := -halfW + float64(col)*side
			if x >= halfW {
				break
			}
			if (row+col)%2 != 0 {
				continue
			}
			g.Add(&shape.Rect{
				Rect:  geometry.NewRect(x, y, side, side),
				Paint: shape.Filled(p.Colour),
			})
		}
	}
	return g, nil
}

// Zigzag draws up to MaxZigzags open polylines stroked Size·Width thick.
// Bands start at −Height/2 + zig and repeat every 3·zig while above
// Height − zig. Each band runs from −Width to Width in steps of zig,
// alternating between the band line and zig below it, which gives 45° legs.
func Zigzag(p Params) (shape.Group, error) {
	if err := p.Validate(); err != nil {
		return shape.Group{}, err
	}
	zig := p.Size * p.Width
	// 1e-9 keeps x = Width in the band when 2·Width/zig is integral but
	// rounds just below.
	vertices := int(math.Floor(2*p.Width/zig+1e-9)) + 1
	if err := checkTiles(p.Size, float64(vertices), float64(p.Margins.MaxZigzags)); err != nil {
		return shape.Group{}, err
	}
	zag := zig * math.Tan(math.Pi/4)

	g := shape.Group{Rotation: p.Angle}
	for band := 0; band < p.Margins.MaxZigzags; band++ {
		y := -p.Height/2 + zig + float64(band)*zig*3
		if y >= p.Height-zig {
			break
		}
		points := make([]geometry.Point2D, vertices)
		for i := range points {
			yy := y
			if i%2 == 0 {
				yy += zag
			}
			points[i] = geometry.NewPoint2D(-p.Width+float64(i)*zig, yy)
		}
		g.Add(shape.NewPolyline(points, false, shape.Stroked(p.Colour, zig)))
	}
	return g, nil
}
