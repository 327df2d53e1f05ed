// Package colorutil turns the colour strings used by the egg palette into
// image/color values.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Common colours used throughout the application.
var (
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Backdrop = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255} // #333 behind the egg
)

// ErrUnknownColour is returned when a colour string is neither a CSS colour
// name nor a #rgb / #rrggbb hex triple.
var ErrUnknownColour = errors.New("unknown colour")

// Parse converts a CSS colour name ("cornflowerblue") or a hex triple
// ("#474", "#dddddd") into an opaque RGBA colour. Names are case-insensitive.
func Parse(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, s)
}

// MustParse is like Parse but panics on error. Only used for literals.
func MustParse(s string) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (color.RGBA, error) {
	digits := s[1:]
	switch len(digits) {
	case 3:
		// #rgb expands each nibble: #474 == #447744
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
