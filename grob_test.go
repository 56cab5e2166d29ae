package prettyplot

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	perrors "github.com/vdobler/prettyplot/errors"
)

func TestAxesText(t *testing.T) {
	f := newTestFigure(t, Config{}, 1, 1)
	th := f.Theme()
	a := f.Axes(0, 0)

	g, err := a.Text(1, 2, "label", TextOptions{})
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if g.Text() != "label" || len(a.grobs) != 1 || a.Empty() {
		t.Errorf("Text() = %q with %d grobs", g.Text(), len(a.grobs))
	}
	sty := g.Style()
	if sty.XAlign != draw.XCenter || sty.YAlign != draw.YCenter {
		t.Errorf("Text() alignment = %g, %g, want center", sty.XAlign, sty.YAlign)
	}
	if sty.Font.Size != vg.Points(th.FontSize) || sty.Color != color.Color(th.TextColor) {
		t.Errorf("Text() size, color = %v, %v, want the theme's", sty.Font.Size, sty.Color)
	}
	if g.contour {
		t.Errorf("Text() without Contour draws a contour")
	}

	g, err = a.Text(0, 0, "big", TextOptions{
		HAlign: "left", VAlign: "top", Size: 20, Rotation: 90, Color: color.Black, Contour: true,
	})
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	sty = g.Style()
	if sty.XAlign != draw.XLeft || sty.YAlign != draw.YTop || sty.Font.Size != 20 {
		t.Errorf("Text() style = %+v", sty)
	}
	if math.Abs(sty.Rotation-math.Pi/2) > 1e-12 {
		t.Errorf("Text() rotation = %g, want π/2", sty.Rotation)
	}
	if g.contourWidth != vg.Points(th.LineWidth) || g.contourColor != color.Color(color.White) {
		t.Errorf("Text() contour = %v, %v, want the line width in white", g.contourWidth, g.contourColor)
	}
}

func TestTextErrors(t *testing.T) {
	tests := []struct {
		opts TextOptions
		code perrors.Code
	}{
		{TextOptions{HAlign: "middle"}, perrors.ErrCodeInvalidSide},
		{TextOptions{VAlign: "baseline"}, perrors.ErrCodeInvalidSide},
		{TextOptions{Size: -1}, perrors.ErrCodeInvalidNumber},
		{TextOptions{Contour: true, ContourWidth: -2}, perrors.ErrCodeInvalidNumber},
	}
	a := newTestFigure(t, Config{}, 1, 1).Axes(0, 0)
	for _, tt := range tests {
		if _, err := a.Text(0, 0, "x", tt.opts); !perrors.Is(err, tt.code) {
			t.Errorf("Text(%+v) error = %v, want %s", tt.opts, err, tt.code)
		}
	}
	if !a.Empty() {
		t.Errorf("failed Text() calls added grobs")
	}
}

func TestGrobTextDraw(t *testing.T) {
	count := func(g *GrobText) int {
		rec := &recorder.Canvas{}
		c := draw.NewCanvas(rec, 100, 100)
		g.Draw(fractionViewport(c))
		n := 0
		for _, a := range rec.Actions {
			if _, ok := a.(*recorder.FillString); ok {
				n++
			}
		}
		return n
	}
	f := newTestFigure(t, Config{}, 1, 1)
	plain, _ := f.Text(0.5, 0.5, "x", TextOptions{})
	if n := count(plain); n != 1 {
		t.Errorf("plain text drew %d strings, want 1", n)
	}
	outlined, _ := f.Text(0.5, 0.5, "x", TextOptions{Contour: true})
	if n := count(outlined); n != contourSteps+1 {
		t.Errorf("contoured text drew %d strings, want %d", n, contourSteps+1)
	}
}
