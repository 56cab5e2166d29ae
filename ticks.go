package prettyplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/vdobler/prettyplot/layout"
)

// niceSteps are the mantissas tick distances are chosen from.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// niceTicks returns major ticks in [min, max] spaced by a nice step such
// that about bins intervals cover the range.
func niceTicks(min, max, bins float64) []plot.Tick {
	if !(max > min) {
		return nil
	}
	if bins < 1 {
		bins = 1
	}
	raw := (max - min) / bins
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range niceSteps {
		if m*mag >= raw*(1-1e-9) {
			step = m * mag
			break
		}
	}

	prec := 0
	if e := -int(math.Floor(math.Log10(step) + 1e-9)); e > 0 {
		prec = e
	}
	if m := step / math.Pow(10, math.Floor(math.Log10(step)+1e-9)); math.Abs(m-2.5) < 1e-9 {
		prec++
	}

	eps := step * 1e-9
	first := RoundUp(min-eps, step)
	var ts []plot.Tick
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > max+eps {
			break
		}
		if math.Abs(v) < eps {
			v = 0
		}
		ts = append(ts, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', prec, 64)})
	}
	return ts
}

// majorCount is the number of major ticks the default ticker puts into
// [min, max].
func majorCount(min, max float64) int {
	n := 0
	for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
		if !t.IsMinor() && t.Value >= min && t.Value <= max {
			n++
		}
	}
	return n
}

// reduceTicks thins out the automatic ticks of every axes with more than
// four ticks. Fixed ticks are left alone.
func (f *Figure) reduceTicks() {
	for _, a := range f.axes {
		if a.hidden {
			continue
		}
		a.prepare()
		for _, ax := range []struct {
			st       *axisState
			min, max float64
		}{
			{&a.x, a.p.X.Min, a.p.X.Max},
			{&a.y, a.p.Y.Min, a.p.Y.Max},
		} {
			if ax.st.fixedTicks {
				continue
			}
			ax.st.bins = 0
			if bins, ok := layout.ReduceTickCount(majorCount(ax.min, ax.max)); ok {
				ax.st.bins = bins
			}
		}
	}
}
