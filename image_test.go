package prettyplot

import (
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"

	"github.com/vdobler/prettyplot/cmaps"
	perrors "github.com/vdobler/prettyplot/errors"
)

func TestImshow(t *testing.T) {
	a := newTestFigure(t, Config{}, 1, 1).Axes(0, 0)
	img, err := a.Imshow([][]float64{{1, 2, 3}, {4, 5, 6}}, ImageOptions{Cmap: "parula"})
	if err != nil {
		t.Fatalf("Imshow() error = %v", err)
	}
	if img.Rows() != 2 || img.Cols() != 3 {
		t.Errorf("Rows(), Cols() = %d, %d, want 2, 3", img.Rows(), img.Cols())
	}
	if img.Scale.DomainMin != 1 || img.Scale.DomainMax != 6 {
		t.Errorf("Scale domain = [%g, %g], want [1, 6]", img.Scale.DomainMin, img.Scale.DomainMax)
	}
	if img.Scale.Map.Name() != "parula" {
		t.Errorf("Scale.Map = %s, want parula", img.Scale.Map.Name())
	}

	a.prepare()
	if a.p.X.Min != -0.5 || a.p.X.Max != 2.5 || a.p.Y.Min != -0.5 || a.p.Y.Max != 1.5 {
		t.Errorf("ranges = x [%g, %g] y [%g, %g], want the image edges",
			a.p.X.Min, a.p.X.Max, a.p.Y.Min, a.p.Y.Max)
	}
	if _, ok := a.p.Y.Scale.(plot.InvertedScale); !ok {
		t.Errorf("y scale = %T, want an inverted scale", a.p.Y.Scale)
	}
}

func TestImshowDefaultCmap(t *testing.T) {
	a := newTestFigure(t, Config{Cmap: Ptr("rainforest")}, 1, 1).Axes(0, 0)
	img, err := a.Imshow([][]float64{{0, 1}}, ImageOptions{})
	if err != nil {
		t.Fatalf("Imshow() error = %v", err)
	}
	if img.Scale.Map.Name() != "rainforest" {
		t.Errorf("Scale.Map = %s, want the theme colormap rainforest", img.Scale.Map.Name())
	}
}

func TestImshowWithLine(t *testing.T) {
	a := newTestFigure(t, Config{}, 1, 1).Axes(0, 0)
	a.Imshow([][]float64{{1, 2}, {3, 4}}, ImageOptions{})
	a.Plot([]float64{0, 10}, []float64{0, 1}, LineOptions{})
	a.prepare()
	if !near(a.p.X.Min, -0.5) || !near(a.p.X.Max, 10.5) {
		t.Errorf("x range = [%g, %g], want [-0.5, 10.5]", a.p.X.Min, a.p.X.Max)
	}
}

func TestImshowErrors(t *testing.T) {
	vmin, vmax := 2.0, 2.0
	tests := []struct {
		name string
		data [][]float64
		opts ImageOptions
		code perrors.Code
	}{
		{"empty", nil, ImageOptions{}, perrors.ErrCodeInvalidNumber},
		{"no columns", [][]float64{{}}, ImageOptions{}, perrors.ErrCodeInvalidNumber},
		{"ragged", [][]float64{{1, 2}, {3}}, ImageOptions{}, perrors.ErrCodeInvalidNumber},
		{"alpha", [][]float64{{1}}, ImageOptions{Alpha: 1.5}, perrors.ErrCodeInvalidNumber},
		{"vmin=vmax", [][]float64{{1}}, ImageOptions{VMin: &vmin, VMax: &vmax}, perrors.ErrCodeInvalidNumber},
		{"cmap", [][]float64{{1}}, ImageOptions{Cmap: "nosuchmap"}, perrors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestFigure(t, Config{}, 1, 1).Axes(0, 0)
			if _, err := a.Imshow(tt.data, tt.opts); !perrors.Is(err, tt.code) {
				t.Errorf("Imshow() error = %v, want %s", err, tt.code)
			}
			if !a.Empty() {
				t.Errorf("failed Imshow() added a layer")
			}
		})
	}
}

func TestScale(t *testing.T) {
	cm := cmaps.NewListed("bw", []colorful.Color{{R: 0, G: 0, B: 0}, {R: 1, G: 1, B: 1}})
	s := NewScale(cm)
	s.Train([][]float64{{2, math.NaN()}, {math.Inf(1), 4}})
	if err := s.Prepare(); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if s.DomainMin != 2 || s.DomainMax != 4 {
		t.Errorf("domain = [%g, %g], want [2, 4]", s.DomainMin, s.DomainMax)
	}
	if len(s.Breaks) == 0 || len(s.Breaks) != len(s.Levels) {
		t.Errorf("Breaks, Levels = %v, %v", s.Breaks, s.Levels)
	}

	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for _, tt := range []struct {
		v    float64
		want color.Color
	}{
		{2, black},
		{-10, black},
		{4, white},
		{100, white},
		{math.NaN(), color.Transparent},
	} {
		if got := s.Color(tt.v); got != tt.want {
			t.Errorf("Color(%g) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestScalePrepare(t *testing.T) {
	cm := cmaps.NewListed("bw", []colorful.Color{{}, {R: 1, G: 1, B: 1}})
	one := 1.0
	tests := []struct {
		name     string
		data     [][]float64
		min, max *float64
		lo, hi   float64
	}{
		{"untrained", nil, nil, nil, 0, 1},
		{"single value", [][]float64{{3}}, nil, nil, 2.5, 3.5},
		{"fixed min", [][]float64{{3, 5}}, &one, nil, 1, 5},
		{"only min", nil, &one, nil, 1, 2},
	}
	for _, tt := range tests {
		s := NewScale(cm)
		s.Fix(tt.min, tt.max)
		s.Train(tt.data)
		if err := s.Prepare(); err != nil {
			t.Fatalf("%s: Prepare() error = %v", tt.name, err)
		}
		if s.DomainMin != tt.lo || s.DomainMax != tt.hi {
			t.Errorf("%s: domain = [%g, %g], want [%g, %g]", tt.name, s.DomainMin, s.DomainMax, tt.lo, tt.hi)
		}
	}
}

func TestScaleAlpha(t *testing.T) {
	cm := cmaps.NewListed("bw", []colorful.Color{{}, {R: 1, G: 1, B: 1}})
	s := NewScale(cm)
	s.Train([][]float64{{0, 1}})
	s.Prepare()
	s.SetAlpha(0.5)
	if c := s.Color(0).(color.NRGBA); c.A != 128 {
		t.Errorf("Color(0) alpha = %d, want 128", c.A)
	}
	if s.ColorMap().Max() != 1 {
		t.Errorf("ColorMap().Max() = %g, want 1", s.ColorMap().Max())
	}
}

func TestFlipRows(t *testing.T) {
	a := newTestFigure(t, Config{}, 1, 1).Axes(0, 0)
	img, _ := a.Imshow([][]float64{{0}, {1}}, ImageOptions{})
	r := img.render()
	f := flipRows(r)
	if f.At(0, 0) != r.At(0, 1) || f.At(0, 1) != r.At(0, 0) {
		t.Errorf("flipRows() did not swap the rows")
	}
}
