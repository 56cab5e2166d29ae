package prettyplot

import (
	"testing"

	"github.com/vdobler/prettyplot/layout"
)

func TestNiceTicks(t *testing.T) {
	tests := []struct {
		min, max, bins float64
		want           []string
	}{
		{0, 10, 5, []string{"0", "2", "4", "6", "8", "10"}},
		{0, 1, 4, []string{"0.00", "0.25", "0.50", "0.75", "1.00"}},
		{-1, 1, 2, []string{"-1", "0", "1"}},
		{0.5, 9.5, 2, []string{"5"}},
		{0, 100, 0, []string{"0", "100"}},
	}
	for _, tt := range tests {
		ts := niceTicks(tt.min, tt.max, tt.bins)
		got := make([]string, len(ts))
		for i, tk := range ts {
			got[i] = tk.Label
		}
		if len(got) != len(tt.want) {
			t.Errorf("niceTicks(%g, %g, %g) = %v, want %v", tt.min, tt.max, tt.bins, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("niceTicks(%g, %g, %g) = %v, want %v", tt.min, tt.max, tt.bins, got, tt.want)
				break
			}
		}
	}

	if ts := niceTicks(1, 0, 3); ts != nil {
		t.Errorf("niceTicks(1, 0, 3) = %v, want nil", ts)
	}
}

func TestReduceTicks(t *testing.T) {
	f := newTestFigure(t, Config{Style: Ptr(StyleMinimal)}, 1, 2)
	auto, fixed := f.Axes(0, 0), f.Axes(0, 1)
	auto.Plot([]float64{0, 7.3}, []float64{0, 1.1}, LineOptions{})
	fixed.Plot([]float64{0, 7.3}, []float64{0, 1.1}, LineOptions{})
	fixed.SetXTicks([]float64{0, 1, 2, 3, 4, 5, 6, 7})

	f.reduceTicks()

	n := majorCount(auto.p.X.Min, auto.p.X.Max)
	want, ok := layout.ReduceTickCount(n)
	if !ok {
		want = 0
	}
	if auto.x.bins != want {
		t.Errorf("x bins with %d default ticks = %g, want %g", n, auto.x.bins, want)
	}
	if fixed.x.bins != 0 {
		t.Errorf("fixed x ticks got bins %g", fixed.x.bins)
	}
	if got := len(fixed.ticks(&fixed.x, fixed.p.X.Min, fixed.p.X.Max)); got != 8 {
		t.Errorf("fixed ticks after reduceTicks() = %d, want 8", got)
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		a, b, up float64
	}{
		{7, 5, 10},
		{-7, 5, -5},
		{10, 5, 10},
		{0.3, 0.25, 0.5},
	}
	for _, tt := range tests {
		if got := RoundUp(tt.a, tt.b); got != tt.up {
			t.Errorf("RoundUp(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.up)
		}
	}
}
