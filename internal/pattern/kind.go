package pattern

import (
	"errors"
	"fmt"
	"strings"

	"eggpaint/internal/shape"
)

// ErrUnknownKind is returned for a pattern name or value outside the fixed set.
var ErrUnknownKind = errors.New("unknown pattern kind")

// Kind selects one of the tiling algorithms.
type Kind int

const (
	KindFlat Kind = iota
	KindStripe
	KindChequer
	KindZigzag
)

// DefaultSize is the size fraction used when a kind has no choice.
const DefaultSize = 0.2

var kindNames = map[Kind]string{
	KindFlat:    "flat",
	KindStripe:  "stripe",
	KindChequer: "chequer",
	KindZigzag:  "zigzag",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindFlat, KindStripe, KindChequer, KindZigzag}
}

// ParseKind maps a pattern name to its Kind. Matching ignores case and
// surrounding space, so "Stripe" and "stripe" are the same pattern.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if kn == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// SizeChoices lists the size fractions a kind is drawn with. Stripes and
// zigzags come in two widths; the others always use DefaultSize.
func (k Kind) SizeChoices() []float64 {
	switch k {
	case KindStripe, KindZigzag:
		return []float64{0.2, 0.1}
	default:
		return []float64{DefaultSize}
	}
}

// UsesAngle reports whether the generator honours Params.Angle.
func (k Kind) UsesAngle() bool {
	return k == KindStripe || k == KindZigzag
}

// Generate runs the generator for kind.
func Generate(kind Kind, p Params) (shape.Group, error) {
	switch kind {
	case KindFlat:
		return Flat(p)
	case KindStripe:
		return Stripe(p)
	case KindChequer:
		return Chequer(p)
	case KindZigzag:
		return Zigzag(p)
	default:
		return shape.Group{}, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
