package prettyplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/prettyplot/errors"
)

// Viewport maps grob coordinates onto a canvas.
type Viewport struct {
	Canvas draw.Canvas
	X, Y   func(float64) vg.Length
}

// fractionViewport maps [0, 1]² onto the rectangle of c.
func fractionViewport(c draw.Canvas) Viewport {
	return Viewport{Canvas: c, X: c.X, Y: c.Y}
}

// Grob is a graphical object drawn on top of the data.
type Grob interface {
	Draw(vp Viewport)
}

// -------------------------------------------------------------------------
// Grob Text

// TextOptions style the output of Axes.Text and Figure.Text.
type TextOptions struct {
	// HAlign is "left", "center" or "right", VAlign "bottom", "center"
	// or "top". Both default to "center".
	HAlign, VAlign string
	// Color defaults to the theme's text color.
	Color color.Color
	// Size is the font size in points, default the theme's.
	Size float64
	// Rotation in degrees, counter clockwise.
	Rotation float64

	// Contour draws an outline around the glyphs. ContourWidth
	// defaults to the theme's line width, ContourColor to white.
	Contour      bool
	ContourWidth float64
	ContourColor color.Color
}

// GrobText is a text placed at x, y in viewport coordinates.
type GrobText struct {
	x, y  float64
	text  string
	style text.Style

	contour      bool
	contourWidth vg.Length
	contourColor color.Color
}

// contourSteps is the number of copies drawn around a contoured text.
const contourSteps = 16

func (t GrobText) Draw(vp Viewport) {
	pt := vg.Point{X: vp.X(t.x), Y: vp.Y(t.y)}
	if t.contour && t.contourWidth > 0 {
		outline := t.style
		outline.Color = t.contourColor
		r := t.contourWidth / 2
		for i := 0; i < contourSteps; i++ {
			phi := 2 * math.Pi * float64(i) / contourSteps
			off := vg.Point{X: r * vg.Length(math.Cos(phi)), Y: r * vg.Length(math.Sin(phi))}
			vp.Canvas.FillText(outline, pt.Add(off), t.text)
		}
	}
	vp.Canvas.FillText(t.style, pt, t.text)
}

// Text returns the drawn string.
func (t GrobText) Text() string { return t.text }

// Style returns the text style used to draw t.
func (t GrobText) Style() text.Style { return t.style }

var (
	hAligns = map[string]text.XAlignment{"left": draw.XLeft, "center": draw.XCenter, "right": draw.XRight}
	vAligns = map[string]text.YAlignment{"bottom": draw.YBottom, "center": draw.YCenter, "top": draw.YTop}
)

// newText sets up a GrobText from opts and the figure theme.
func (f *Figure) newText(x, y float64, s string, opts TextOptions) (*GrobText, error) {
	if opts.HAlign == "" {
		opts.HAlign = "center"
	}
	if opts.VAlign == "" {
		opts.VAlign = "center"
	}
	xa, ok := hAligns[opts.HAlign]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidSide,
			"horizontal alignment %q needs to be left, center or right", opts.HAlign)
	}
	ya, ok := vAligns[opts.VAlign]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidSide,
			"vertical alignment %q needs to be bottom, center or top", opts.VAlign)
	}
	if opts.Size < 0 || opts.ContourWidth < 0 {
		return nil, errors.New(errors.ErrCodeInvalidNumber,
			"text size %g and contour width %g need to be non-negative", opts.Size, opts.ContourWidth)
	}

	size := opts.Size
	if size == 0 {
		size = f.theme.FontSize
	}
	c := opts.Color
	if c == nil {
		c = f.theme.TextColor
	}
	sty, err := f.textStyle(size, c)
	if err != nil {
		return nil, err
	}
	sty.XAlign, sty.YAlign = xa, ya
	sty.Rotation = opts.Rotation * math.Pi / 180

	g := &GrobText{x: x, y: y, text: s, style: sty, contour: opts.Contour}
	if opts.Contour {
		w := opts.ContourWidth
		if w == 0 {
			w = f.theme.LineWidth
		}
		g.contourWidth = vg.Points(w)
		g.contourColor = opts.ContourColor
		if g.contourColor == nil {
			g.contourColor = color.White
		}
	}
	return g, nil
}

// Text puts s at (x, y) in data coordinates.
func (a *Axes) Text(x, y float64, s string, opts TextOptions) (*GrobText, error) {
	g, err := a.fig.newText(x, y, s, opts)
	if err != nil {
		return nil, err
	}
	a.grobs = append(a.grobs, g)
	return g, nil
}

// Text puts s at (x, y) given as fractions of the figure width and
// height.
func (f *Figure) Text(x, y float64, s string, opts TextOptions) (*GrobText, error) {
	g, err := f.newText(x, y, s, opts)
	if err != nil {
		return nil, err
	}
	f.grobs = append(f.grobs, g)
	return g, nil
}

// -------------------------------------------------------------------------
// Grob Rect

// GrobRect is a filled rectangle in viewport coordinates.
type GrobRect struct {
	xmin, ymin float64
	xmax, ymax float64
	fill       color.Color
}

func (r GrobRect) Draw(vp Viewport) {
	x0, x1 := vp.X(r.xmin), vp.X(r.xmax)
	y0, y1 := vp.Y(r.ymin), vp.Y(r.ymax)
	vp.Canvas.FillPolygon(r.fill, []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
}
