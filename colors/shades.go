package colors

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/vdobler/prettyplot/errors"
)

// Saturation and value of the lightest shade.
const (
	ShadeSaturation = 0.25
	ShadeValue      = 1.0
)

// linspace returns n evenly spaced values from a to b. For n == 1 it
// returns a.
func linspace(a, b float64, n int) []float64 {
	if n == 1 {
		return []float64{a}
	}
	return floats.Span(make([]float64, n), a, b)
}

// Shades returns n shades of base. The saturation is interpolated linearly
// from that of base to ShadeSaturation, the value from that of base to
// ShadeValue, the hue is kept. Shade 0 is base itself.
//
// Grey bases have no meaningful hue; their shades get the red channel set
// to the green one so that they stay grey.
func Shades(n int, base colorful.Color) ([]colorful.Color, error) {
	if n < 1 {
		return nil, errors.New(errors.ErrCodeInvalidNumber,
			"number of shades needs to be at least 1 but given %d", n)
	}
	h, s, v := base.Hsv()
	if h >= 360 {
		h -= 360
	}
	ss := linspace(s, ShadeSaturation, n)
	vs := linspace(v, ShadeValue, n)
	grey := IsGreyShade(base)

	shades := make([]colorful.Color, n)
	for i := range shades {
		c := colorful.Hsv(h, ss[i], vs[i])
		if grey {
			c.R = c.G
		}
		shades[i] = c
	}
	return shades, nil
}

// ShadesHex parses base and returns its shades as "#rrggbb" strings.
func ShadesHex(n int, base string) ([]string, error) {
	c, err := Parse(base)
	if err != nil {
		return nil, err
	}
	shades, err := Shades(n, c)
	if err != nil {
		return nil, err
	}
	hex := make([]string, len(shades))
	for i, s := range shades {
		hex[i] = s.Hex()
	}
	return hex, nil
}

// IsGreyShade reports whether all channels of c are equal. This includes
// black and white.
func IsGreyShade(c colorful.Color) bool {
	return math.Min(math.Min(c.R, c.G), c.B) == math.Max(math.Max(c.R, c.G), c.B)
}
