// Package random picks the parameters of one egg. All randomness goes
// through a Source so tests can script the draws.
package random

import (
	"math"
	"math/rand/v2"

	"eggpaint/internal/egg"
	"eggpaint/internal/pattern"
	"eggpaint/pkg/geometry"
)

// Source draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// ColourPair is a background and a foreground colour.
type ColourPair struct {
	Background string
	Foreground string
}

// Palette lists the colour pairs an egg is painted with.
var Palette = []ColourPair{
	{"black", "white"},
	{"#474", "#ddd"},
	{"cornflowerblue", "black"},
	{"orange", "red"},
	{"purple", "black"},
	{"gold", "black"},
}

// Angles are the pattern rotations on offer: horizontal, top-left to
// bottom-right, vertical and top-right to bottom-left.
var Angles = []float64{0, math.Pi / 4, math.Pi / 2, 3 * math.Pi / 4}

// NewSource returns a PCG generator seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pick draws one descriptor: a palette pair, a pattern kind, a size from the
// kind's choices and, except for zigzags, an angle. The egg is drawn at
// scale and centred in a viewport of the given size. Draws happen in that
// order, one IntN call each; zigzags skip the angle draw.
func Pick(src Source, viewport geometry.Size, scale float64) egg.Descriptor {
	colours := Palette[src.IntN(len(Palette))]

	kinds := pattern.Kinds()
	kind := kinds[src.IntN(len(kinds))]

	sizes := kind.SizeChoices()
	size := sizes[src.IntN(len(sizes))]

	angle := 0.0
	if kind != pattern.KindZigzag {
		angle = Angles[src.IntN(len(Angles))]
	}

	return egg.Descriptor{
		Background: colours.Background,
		Foreground: colours.Foreground,
		Kind:       kind,
		Size:       size,
		Angle:      angle,
		Scale:      scale,
		Position:   viewport.Center(),
	}
}
