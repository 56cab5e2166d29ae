package layout

import (
	"math"
	"testing"

	"github.com/vdobler/prettyplot/errors"
)

// fixedMargins mimics a figure whose decorations take a constant amount of
// room around the plotted region.
func fixedMargins(mx, my float64) Measurer {
	return func(c Size) (float64, float64, error) {
		return (c.W - mx) / c.W, (c.H - my) / c.H, nil
	}
}

func TestCorrectCanvas(t *testing.T) {
	req := Size{W: 3, H: 2}

	t.Run("constant fractions converge after two passes", func(t *testing.T) {
		m := func(Size) (float64, float64, error) { return 0.75, 0.5, nil }
		res, err := CorrectCanvas(req, m, 3, 0.001)
		if err != nil {
			t.Fatalf("CorrectCanvas() error = %v", err)
		}
		if res.Canvas != (Size{W: 4, H: 4}) {
			t.Errorf("Canvas = %v, want (4, 4)", res.Canvas)
		}
		if !res.Converged || res.Passes != 2 {
			t.Errorf("Converged, Passes = %v, %d, want true, 2", res.Converged, res.Passes)
		}
	})

	t.Run("single pass equals one shot correction", func(t *testing.T) {
		res, err := CorrectCanvas(req, fixedMargins(0.5, 0.5), 1, 0.001)
		if err != nil {
			t.Fatalf("CorrectCanvas() error = %v", err)
		}
		want := Size{W: 3 / (2.5 / 3.0), H: 2 / (1.5 / 2.0)}
		if math.Abs(res.Canvas.W-want.W) > 1e-12 || math.Abs(res.Canvas.H-want.H) > 1e-12 {
			t.Errorf("Canvas = %v, want %v", res.Canvas, want)
		}
		if res.Passes != 1 {
			t.Errorf("Passes = %d, want 1", res.Passes)
		}
	})

	t.Run("iterating approaches the exact canvas", func(t *testing.T) {
		one, _ := CorrectCanvas(req, fixedMargins(0.5, 0.5), 1, 0.001)
		three, err := CorrectCanvas(req, fixedMargins(0.5, 0.5), 3, 0.001)
		if err != nil {
			t.Fatalf("CorrectCanvas() error = %v", err)
		}
		exact := Size{W: 3.5, H: 2.5}
		if math.Abs(three.Canvas.W-exact.W) >= math.Abs(one.Canvas.W-exact.W) {
			t.Errorf("three passes %v not closer to %v than one pass %v", three.Canvas, exact, one.Canvas)
		}
		if three.Passes != 3 || three.Converged {
			t.Errorf("Passes, Converged = %d, %v, want 3, false", three.Passes, three.Converged)
		}
	})

	t.Run("invalid fractions", func(t *testing.T) {
		for _, f := range []float64{0, -0.2, 1.5, math.NaN()} {
			m := func(Size) (float64, float64, error) { return f, 0.5, nil }
			if _, err := CorrectCanvas(req, m, 3, 0.001); !errors.Is(err, errors.ErrCodeInvalidSize) {
				t.Errorf("fraction %v: error = %v, want %s", f, err, errors.ErrCodeInvalidSize)
			}
		}
	})

	t.Run("invalid request", func(t *testing.T) {
		if _, err := CorrectCanvas(Size{W: 0, H: 2}, fixedMargins(0, 0), 3, 0.001); err == nil {
			t.Error("CorrectCanvas() with zero width succeeded")
		}
	})
}

func TestExtent(t *testing.T) {
	tests := []struct {
		in     string
		want   Extent
		points float64
	}{
		{"7%", Extent{7, true}, 14},
		{" 0% ", Extent{0, true}, 0},
		{"0.5", Extent{0.5, false}, 36},
		{"2", Extent{2, false}, 144},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExtent(tt.in)
			if err != nil {
				t.Fatalf("ParseExtent() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseExtent() = %v, want %v", got, tt.want)
			}
			if p := got.Points(200); math.Abs(p-tt.points) > 1e-12 {
				t.Errorf("Points(200) = %v, want %v", p, tt.points)
			}
		})
	}

	for _, in := range []string{"", "%", "abc", "-3%", "seven%"} {
		if _, err := ParseExtent(in); !errors.Is(err, errors.ErrCodeInvalidExtent) {
			t.Errorf("ParseExtent(%q) error = %v, want %s", in, err, errors.ErrCodeInvalidExtent)
		}
	}

	if s := (Extent{7, true}).String(); s != "7%" {
		t.Errorf("String() = %q, want 7%%", s)
	}
}
