package layout

// TickReduction is the factor by which the MINIMAL style thins out ticks.
const TickReduction = 1.5

// ReduceTickCount returns the number of tick bins to use for an axis that
// currently has n ticks. Axes with at most four ticks are left alone and
// reported with ok == false.
func ReduceTickCount(n int) (bins float64, ok bool) {
	if n <= 4 {
		return float64(n), false
	}
	return float64(n) / TickReduction, true
}

// ExpandRange widens the data range [min, max] by margin times its width
// on both sides.
func ExpandRange(min, max, margin float64) (lo, hi float64) {
	w := max - min
	return min - margin*w, max + margin*w
}

// SpineBounds recovers the data range from axis limits that were widened
// by ExpandRange with the same margin.
func SpineBounds(lim0, lim1, margin float64) (lo, hi float64) {
	w := lim1 - lim0
	lo = lim0 + margin/(1+2*margin)*w
	hi = lim0 + (margin+1)/(1+2*margin)*w
	return lo, hi
}
