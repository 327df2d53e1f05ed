// Package egg assembles the mask, background and pattern into one composite.
package egg

import (
	"fmt"

	"eggpaint/internal/config"
	"eggpaint/internal/curve"
	"eggpaint/internal/pattern"
	"eggpaint/internal/shape"
	"eggpaint/pkg/colorutil"
	"eggpaint/pkg/geometry"
)

// Descriptor is the full set of choices behind one egg.
type Descriptor struct {
	Background string       // Colour under the pattern
	Foreground string       // Pattern colour
	Kind       pattern.Kind // Which tiling fills the egg
	Size       float64      // Size fraction in (0, 1)
	Angle      float64      // Pattern rotation in radians
	Scale      float64      // On-screen scale of the whole egg; zero means 1
	Position   geometry.Point2D
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s %s on %s, size %.2f, angle %.3f",
		d.Kind, d.Foreground, d.Background, d.Size, d.Angle)
}

// Composite is an egg ready to render: Layers are drawn in order and
// clipped to Mask, all in local coordinates, then scaled by Scale and moved
// so the local origin lands on Position.
type Composite struct {
	Mask     *shape.Path
	Layers   []shape.Group
	Scale    float64
	Position geometry.Point2D
}

// Compose builds the composite for d.
func Compose(d Descriptor, cfg config.Config) (Composite, error) {
	if err := cfg.Validate(); err != nil {
		return Composite{}, err
	}
	if !d.Kind.Valid() {
		return Composite{}, fmt.Errorf("compose: %w: %v", pattern.ErrUnknownKind, d.Kind)
	}
	bg, err := colorutil.Parse(d.Background)
	if err != nil {
		return Composite{}, fmt.Errorf("compose: background: %w", err)
	}
	fg, err := colorutil.Parse(d.Foreground)
	if err != nil {
		return Composite{}, fmt.Errorf("compose: foreground: %w", err)
	}

	mask, err := curve.Egg(cfg.EggWidth, cfg.EggHeight, cfg.CurveSteps)
	if err != nil {
		return Composite{}, fmt.Errorf("compose: mask: %w", err)
	}

	var background shape.Group
	background.Add(shape.NewRect(geometry.Point2D{},
		cfg.EggWidth*cfg.BackgroundFactor, cfg.EggHeight*cfg.BackgroundFactor,
		shape.Filled(bg)))

	p := pattern.NewParams(cfg.EggWidth, cfg.EggHeight*cfg.PatternHeightFactor, d.Size, fg, d.Angle)
	p.Margins = pattern.Margins{
		StripeOverhang: cfg.StripeOverhang,
		ChequerSpan:    cfg.ChequerSpan,
		MaxZigzags:     cfg.MaxZigzags,
	}
	fill, err := pattern.Generate(d.Kind, p)
	if err != nil {
		return Composite{}, fmt.Errorf("compose: %s pattern: %w", d.Kind, err)
	}

	scale := d.Scale
	if scale == 0 {
		scale = 1
	}
	return Composite{
		Mask:     mask,
		Layers:   []shape.Group{background, fill},
		Scale:    scale,
		Position: d.Position,
	}, nil
}

// ComposeNamed resolves a pattern name before composing. Unknown names fail
// with pattern.ErrUnknownKind.
func ComposeNamed(background, foreground, kind string, size, angle float64, cfg config.Config) (Composite, error) {
	k, err := pattern.ParseKind(kind)
	if err != nil {
		return Composite{}, fmt.Errorf("compose: %w", err)
	}
	return Compose(Descriptor{
		Background: background,
		Foreground: foreground,
		Kind:       k,
		Size:       size,
		Angle:      angle,
		Scale:      1,
	}, cfg)
}

// Placed returns a copy of c with a new scale and position.
func (c Composite) Placed(scale float64, pos geometry.Point2D) Composite {
	c.Scale = scale
	c.Position = pos
	return c
}

// Transform maps local coordinates to surface coordinates.
func (c Composite) Transform() geometry.AffineTransform {
	return geometry.Translation(c.Position.X, c.Position.Y).
		Compose(geometry.Scale(c.Scale, c.Scale))
}

// Covers reports whether a local point falls inside the mask.
func (c Composite) Covers(p geometry.Point2D) bool {
	if c.Mask == nil {
		return false
	}
	return geometry.PointInPolygon(p, c.Mask.Points())
}

// CoversSurface reports whether a surface point falls inside the mask.
func (c Composite) CoversSurface(p geometry.Point2D) bool {
	inv, ok := c.Transform().Inverse()
	if !ok {
		return false
	}
	return c.Covers(inv.Apply(p))
}

// Pattern returns the pattern layer.
func (c Composite) Pattern() shape.Group {
	return c.Layers[len(c.Layers)-1]
}
