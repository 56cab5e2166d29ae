// Package cmaps provides colormaps: listed ones made of a few discrete
// colors and linear ones interpolating between color stops. The built-in
// palettes are registered with Load into a Registry; adapters make every
// colormap usable as a gonum palette.
package cmaps

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vdobler/prettyplot/colors"
	"github.com/vdobler/prettyplot/errors"
)

// LinearN is the number of distinct colors of a linear colormap.
const LinearN = 256

// Colormap maps values in [0, 1] to colors.
type Colormap interface {
	Name() string
	// N is the number of distinct colors the map yields.
	N() int
	// At returns the color for x; x is clamped to [0, 1].
	At(x float64) colorful.Color
	// Colors returns the N distinct colors in order.
	Colors() []colorful.Color
	// Reversed returns the map with reversed order, named Name()+"_r".
	Reversed() Colormap
	// Discrete reports whether the map is a list of separate colors
	// rather than a continuum.
	Discrete() bool
}

func index(x float64, n int) int {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	i := int(x * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Listed is a colormap with a fixed list of colors.
type Listed struct {
	name   string
	colors []colorful.Color
}

// NewListed returns a listed colormap. It panics without colors.
func NewListed(name string, cs []colorful.Color) *Listed {
	if len(cs) == 0 {
		panic("cmaps: listed colormap " + name + " without colors")
	}
	return &Listed{name: name, colors: append([]colorful.Color(nil), cs...)}
}

// ParseListed builds a listed colormap from color strings.
func ParseListed(name string, cs ...string) (*Listed, error) {
	if len(cs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidColor, "colormap %q needs at least one color", name)
	}
	list := make([]colorful.Color, len(cs))
	for i, s := range cs {
		c, err := colors.Parse(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "colormap %q, color %d", name, i)
		}
		list[i] = c
	}
	return &Listed{name: name, colors: list}, nil
}

func mustListed(name string, cs ...string) *Listed {
	l, err := ParseListed(name, cs...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Listed) Name() string   { return l.name }
func (l *Listed) N() int         { return len(l.colors) }
func (l *Listed) Discrete() bool { return true }

func (l *Listed) At(x float64) colorful.Color {
	return l.colors[index(x, len(l.colors))]
}

func (l *Listed) Colors() []colorful.Color {
	return append([]colorful.Color(nil), l.colors...)
}

func (l *Listed) Reversed() Colormap {
	rev := make([]colorful.Color, len(l.colors))
	for i, c := range l.colors {
		rev[len(rev)-1-i] = c
	}
	return &Listed{name: l.name + "_r", colors: rev}
}

// Linear interpolates linearly in RGB between equally spaced color stops
// and quantizes the result to n colors.
type Linear struct {
	name  string
	stops []colorful.Color
	n     int
}

// NewLinear returns a linear colormap through the given stops with
// LinearN colors. It panics with less than two stops.
func NewLinear(name string, stops []colorful.Color) *Linear {
	if len(stops) < 2 {
		panic("cmaps: linear colormap " + name + " needs two stops")
	}
	return &Linear{name: name, stops: append([]colorful.Color(nil), stops...), n: LinearN}
}

func linearRGB(name string, data [][3]float64) *Linear {
	stops := make([]colorful.Color, len(data))
	for i, d := range data {
		stops[i] = colorful.Color{R: d[0], G: d[1], B: d[2]}
	}
	return NewLinear(name, stops)
}

func (m *Linear) Name() string   { return m.name }
func (m *Linear) N() int         { return m.n }
func (m *Linear) Discrete() bool { return false }

// Stops returns the color stops of m.
func (m *Linear) Stops() []colorful.Color {
	return append([]colorful.Color(nil), m.stops...)
}

func (m *Linear) interpolate(t float64) colorful.Color {
	pos := t * float64(len(m.stops)-1)
	i := int(pos)
	if i >= len(m.stops)-1 {
		return m.stops[len(m.stops)-1]
	}
	return m.stops[i].BlendRgb(m.stops[i+1], pos-float64(i))
}

func (m *Linear) At(x float64) colorful.Color {
	i := index(x, m.n)
	return m.interpolate(float64(i) / float64(m.n-1))
}

func (m *Linear) Colors() []colorful.Color {
	cs := make([]colorful.Color, m.n)
	for i := range cs {
		cs[i] = m.interpolate(float64(i) / float64(m.n-1))
	}
	return cs
}

func (m *Linear) Reversed() Colormap {
	rev := make([]colorful.Color, len(m.stops))
	for i, c := range m.stops {
		rev[len(rev)-1-i] = c
	}
	return &Linear{name: m.name + "_r", stops: rev, n: m.n}
}
