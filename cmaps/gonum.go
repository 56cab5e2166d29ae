package cmaps

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// NRGBA converts c to a color with the given alpha in [0, 1].
func NRGBA(c colorful.Color, alpha float64) color.NRGBA {
	c = c.Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}
}

// Palette is a plain list of colors, it implements palette.Palette.
type Palette []color.Color

func (p Palette) Colors() []color.Color { return p }

// AsPalette returns the N colors of cm as a gonum palette.
func AsPalette(cm Colormap) Palette {
	cs := cm.Colors()
	p := make(Palette, len(cs))
	for i, c := range cs {
		p[i] = NRGBA(c, 1)
	}
	return p
}

// ColorMap adapts a Colormap to palette.ColorMap. Values between Min and
// Max are mapped linearly onto [0, 1].
type ColorMap struct {
	cm       Colormap
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*ColorMap)(nil)

// NewColorMap returns an adapter for cm with range [0, 1] and alpha 1.
func NewColorMap(cm Colormap) *ColorMap {
	return &ColorMap{cm: cm, max: 1, alpha: 1}
}

// Colormap returns the adapted colormap.
func (m *ColorMap) Colormap() Colormap { return m.cm }

func (m *ColorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	x := 0.0
	if m.max > m.min {
		x = (v - m.min) / (m.max - m.min)
	}
	return NRGBA(m.cm.At(x), m.alpha), nil
}

func (m *ColorMap) Max() float64     { return m.max }
func (m *ColorMap) SetMax(v float64) { m.max = v }
func (m *ColorMap) Min() float64     { return m.min }
func (m *ColorMap) SetMin(v float64) { m.min = v }
func (m *ColorMap) Alpha() float64   { return m.alpha }

func (m *ColorMap) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("cmaps: alpha out of range")
	}
	m.alpha = a
}

// Palette samples n colors evenly over the whole range.
func (m *ColorMap) Palette(n int) palette.Palette {
	p := make(Palette, n)
	for i := range p {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		p[i] = NRGBA(m.cm.At(x), m.alpha)
	}
	return p
}
