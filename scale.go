package prettyplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"

	"github.com/vdobler/prettyplot/cmaps"
	"github.com/vdobler/prettyplot/errors"
)

// Scale maps the values of an image onto a colormap. The domain is
// trained from the data unless fixed.
type Scale struct {
	DomainMin float64
	DomainMax float64
	FixedMin  bool
	FixedMax  bool

	// Set up by Prepare.
	Breaks []float64
	Levels []string

	Map cmaps.Colormap
	cm  *cmaps.ColorMap
}

// NewScale sets up an untrained scale for cm.
func NewScale(cm cmaps.Colormap) *Scale {
	return &Scale{
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
		Map:       cm,
		cm:        cmaps.NewColorMap(cm),
	}
}

// Fix sets the lower and upper end of the domain. Training no longer
// changes fixed ends.
func (s *Scale) Fix(min, max *float64) {
	if min != nil {
		s.DomainMin, s.FixedMin = *min, true
	}
	if max != nil {
		s.DomainMax, s.FixedMax = *max, true
	}
}

// Train widens the domain to the finite values in data.
func (s *Scale) Train(data [][]float64) {
	for _, row := range data {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !s.FixedMin && v < s.DomainMin {
				s.DomainMin = v
			}
			if !s.FixedMax && v > s.DomainMax {
				s.DomainMax = v
			}
		}
	}
}

// Prepare initialises the remaining fields after training. An untrained
// scale spans [0, 1], a single value v spans [v-0.5, v+0.5].
func (s *Scale) Prepare() error {
	lo, hi := s.DomainMin, s.DomainMax
	switch {
	case math.IsInf(lo, +1) && math.IsInf(hi, -1):
		lo, hi = 0, 1
	case math.IsInf(lo, +1):
		lo = hi - 1
	case math.IsInf(hi, -1):
		hi = lo + 1
	case lo == hi && !s.FixedMin && !s.FixedMax:
		lo, hi = lo-0.5, hi+0.5
	}
	if !(lo < hi) {
		return errors.New(errors.ErrCodeInvalidNumber,
			"color scale needs vmin < vmax but has [%g, %g]", lo, hi)
	}
	s.DomainMin, s.DomainMax = lo, hi
	s.cm.SetMin(lo)
	s.cm.SetMax(hi)

	s.Breaks, s.Levels = s.Breaks[:0], s.Levels[:0]
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.IsMinor() {
			continue
		}
		s.Breaks = append(s.Breaks, t.Value)
		s.Levels = append(s.Levels, t.Label)
	}
	return nil
}

// Color maps v onto the colormap. Values outside the domain get the
// color of the nearest end, NaN is transparent.
func (s *Scale) Color(v float64) color.Color {
	if math.IsNaN(v) {
		return color.Transparent
	}
	v = math.Max(s.DomainMin, math.Min(s.DomainMax, v))
	c, err := s.cm.At(v)
	if err != nil {
		return color.Transparent
	}
	return c
}

// SetAlpha sets the opacity of all colors.
func (s *Scale) SetAlpha(a float64) { s.cm.SetAlpha(a) }

// ColorMap returns the scale as a gonum palette.ColorMap.
func (s *Scale) ColorMap() palette.ColorMap { return s.cm }

func (s *Scale) ticks() []plot.Tick {
	ts := make([]plot.Tick, len(s.Breaks))
	for i, b := range s.Breaks {
		ts[i] = plot.Tick{Value: b, Label: s.Levels[i]}
	}
	return ts
}
