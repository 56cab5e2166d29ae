package prettyplot

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

// Default z-orders. Layers with a lower z are drawn first.
const (
	ImageZ = 1
	LineZ  = 2
	TextZ  = 3
)

// Axes is one panel of a Figure. It wraps a plot.Plot which keeps the axis
// ranges and scales handed to the plotters; everything around the data
// area is drawn by Axes itself so that axes may live on any side.
type Axes struct {
	fig    *Figure
	p      *plot.Plot
	span   layout.Span
	hidden bool

	layers []*layer
	ncolor int

	x, y  axisState
	title string
	grid  bool

	legend   *Legend
	colorbar *Colorbar
	grobs    []Grob

	// data is the data area of the last Draw.
	data vg.Rectangle
}

// layer is one plotter of an Axes. Legend entries are taken from layers
// with a label.
type layer struct {
	plotter plot.Plotter
	z       float64
	order   int
	label   string
	sticky  bool // no margin is added around its data range
}

func newAxes(f *Figure, span layout.Span) *Axes {
	p := plot.New()
	p.TextHandler = f.handler
	a := &Axes{
		fig:  f,
		p:    p,
		span: span,
		x:    newAxisState(layout.Bottom),
		y:    newAxisState(layout.Left),
		grid: f.theme.Grid,
	}
	return a
}

// Figure returns the figure a belongs to.
func (a *Axes) Figure() *Figure { return a.fig }

// Span returns the grid cells covered by a.
func (a *Axes) Span() layout.Span { return a.span }

// Hidden reports whether a was hidden by HideEmptyAxes or SetHidden.
func (a *Axes) Hidden() bool { return a.hidden }

func (a *Axes) SetHidden(h bool) { a.hidden = h }

// Empty reports whether nothing has been drawn into a.
func (a *Axes) Empty() bool { return len(a.layers) == 0 && len(a.grobs) == 0 }

// DataArea returns the data area of the last Draw in canvas coordinates.
func (a *Axes) DataArea() vg.Rectangle { return a.data }

func (a *Axes) add(l *layer) {
	l.order = len(a.layers)
	a.layers = append(a.layers, l)
}

// nextColor returns the next color of the theme's color cycle.
func (a *Axes) nextColor() color.Color {
	cycle := a.fig.theme.Cycle
	if len(cycle) == 0 {
		return color.Black
	}
	c := cycle[a.ncolor%len(cycle)]
	a.ncolor++
	return c
}

// -------------------------------------------------------------------------
// Lines

// LineOptions style the output of Plot. The zero value draws a solid line
// in the next color of the cycle.
type LineOptions struct {
	Label string
	// Color defaults to the next cycle color.
	Color color.Color
	// Width defaults to the theme's line width.
	Width float64
	// Type is the dash type. BlankLine, the zero value, draws a solid
	// line unless a Marker is set; then only the markers are drawn.
	Type       LineType
	Marker     PointShape
	MarkerSize float64
	// Z defaults to LineZ.
	Z float64
}

// Plot draws ys against xs. In the minimal style the spines are limited to
// the data range.
func (a *Axes) Plot(xs, ys []float64, opts LineOptions) (*Line, error) {
	if len(xs) != len(ys) {
		return nil, errors.New(errors.ErrCodeInvalidNumber,
			"xs and ys need the same length but have %d and %d", len(xs), len(ys))
	}
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	if err := plotter.CheckFloats(xs...); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNumber, err, "plotting xs")
	}
	if err := plotter.CheckFloats(ys...); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNumber, err, "plotting ys")
	}

	t := a.fig.theme
	c := opts.Color
	if c == nil {
		c = a.nextColor()
	}
	width := opts.Width
	if width <= 0 {
		width = t.LineWidth
	}
	lt := opts.Type
	if lt == BlankLine && opts.Marker == BlankPoint {
		lt = SolidLine
	}
	size := opts.MarkerSize
	if size <= 0 {
		size = t.MarkerSize
	}
	z := opts.Z
	if z == 0 {
		z = LineZ
	}

	l := &Line{XYs: xys, Z: z}
	if lt != BlankLine {
		l.LineStyle = lt.LineStyle(c, vg.Points(width))
	}
	if g := opts.Marker.Glyph(); g != nil {
		l.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(size / 2), Shape: g}
	}
	a.add(&layer{plotter: l, z: z, label: opts.Label})
	if t.SpineBounds {
		a.x.spineBounds, a.y.spineBounds = true, true
	}
	return l, nil
}

// Line is a polyline with optional markers.
type Line struct {
	plotter.XYs
	LineStyle  draw.LineStyle
	GlyphStyle draw.GlyphStyle
	Z          float64
}

func (l *Line) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	pts := make([]vg.Point, len(l.XYs))
	for i, xy := range l.XYs {
		pts[i] = vg.Point{X: trX(xy.X), Y: trY(xy.Y)}
	}
	if l.LineStyle.Width > 0 {
		c.StrokeLines(l.LineStyle, c.ClipLinesXY(pts)...)
	}
	if l.GlyphStyle.Shape != nil {
		for _, pt := range pts {
			if c.Contains(pt) {
				c.DrawGlyph(l.GlyphStyle, pt)
			}
		}
	}
}

func (l *Line) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(l.XYs)
}

func (l *Line) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	if l.LineStyle.Width > 0 {
		c.StrokeLine2(l.LineStyle, c.Min.X, y, c.Max.X, y)
	}
	if l.GlyphStyle.Shape != nil {
		c.DrawGlyph(l.GlyphStyle, c.Center())
	}
}

// -------------------------------------------------------------------------
// Decoration

// Grid shows or hides the grid. The minimal style never shows a grid.
func (a *Axes) Grid(show bool) {
	a.grid = show && a.fig.style != StyleMinimal
}

func (a *Axes) SetTitle(s string)  { a.title = s }
func (a *Axes) SetXLabel(s string) { a.x.label = s }
func (a *Axes) SetYLabel(s string) { a.y.label = s }

// SetXLim fixes the x range. min must be less than max.
func (a *Axes) SetXLim(min, max float64) error { return a.x.setLimits("x", min, max) }

// SetYLim fixes the y range. min must be less than max.
func (a *Axes) SetYLim(min, max float64) error { return a.y.setLimits("y", min, max) }

// SetXTicks fixes the major x ticks. Labels are optional; if given there
// must be one per tick.
func (a *Axes) SetXTicks(ticks []float64, labels ...string) error {
	return a.x.setTicks("x", ticks, labels)
}

// SetYTicks fixes the major y ticks like SetXTicks.
func (a *Axes) SetYTicks(ticks []float64, labels ...string) error {
	return a.y.setTicks("y", ticks, labels)
}

// ActivateAxis moves the ticks, tick labels and label of the x axis to
// top or bottom and those of the y axis to left or right.
func (a *Axes) ActivateAxis(sides ...layout.Side) error {
	for _, s := range sides {
		if !s.Valid() {
			return errors.New(errors.ErrCodeInvalidSide, "side %d needs to be top, bottom, left or right", int(s))
		}
	}
	for _, s := range sides {
		if s.Horizontal() {
			a.x.side = s
		} else {
			a.y.side = s
		}
	}
	return nil
}

// ActivateAxisNamed is ActivateAxis for side names like "top".
func (a *Axes) ActivateAxisNamed(names ...string) error {
	sides := make([]layout.Side, len(names))
	for i, n := range names {
		s, err := layout.ParseSide(n)
		if err != nil {
			return err
		}
		sides[i] = s
	}
	return a.ActivateAxis(sides...)
}

// XSide and YSide report where the x and y axes are drawn.
func (a *Axes) XSide() layout.Side { return a.x.side }
func (a *Axes) YSide() layout.Side { return a.y.side }

// -------------------------------------------------------------------------
// Ranges

// prepare sets the axis ranges of a.p from the data or the fixed limits.
func (a *Axes) prepare() {
	t := a.fig.theme
	var loose, sticky dataRange
	loose.reset()
	sticky.reset()
	for _, l := range a.layers {
		dr, ok := l.plotter.(plot.DataRanger)
		if !ok {
			continue
		}
		xmin, xmax, ymin, ymax := dr.DataRange()
		if l.sticky {
			sticky.update(xmin, xmax, ymin, ymax)
		} else {
			loose.update(xmin, xmax, ymin, ymax)
		}
	}
	a.x.data = loose.x.union(sticky.x)
	a.y.data = loose.y.union(sticky.y)
	a.p.X.Min, a.p.X.Max = a.x.limits(loose.x, sticky.x, t.Margin)
	a.p.Y.Min, a.p.Y.Max = a.y.limits(loose.y, sticky.y, t.Margin)
	if a.y.inverted {
		a.p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	} else {
		a.p.Y.Scale = plot.LinearScale{}
	}
}

type interval struct{ min, max float64 }

func (i interval) empty() bool { return !(i.min <= i.max) }

func (i interval) union(j interval) interval {
	switch {
	case i.empty():
		return j
	case j.empty():
		return i
	}
	return interval{math.Min(i.min, j.min), math.Max(i.max, j.max)}
}

type dataRange struct{ x, y interval }

func (r *dataRange) reset() {
	inf := math.Inf(1)
	r.x = interval{inf, -inf}
	r.y = interval{inf, -inf}
}

func (r *dataRange) update(xmin, xmax, ymin, ymax float64) {
	if !math.IsNaN(xmin) && !math.IsNaN(xmax) {
		r.x = r.x.union(interval{xmin, xmax})
	}
	if !math.IsNaN(ymin) && !math.IsNaN(ymax) {
		r.y = r.y.union(interval{ymin, ymax})
	}
}

// -------------------------------------------------------------------------
// Drawing

// sortedLayers returns the layers ordered by z, then by insertion.
func (a *Axes) sortedLayers() []*layer {
	ls := append([]*layer(nil), a.layers...)
	sort.SliceStable(ls, func(i, j int) bool {
		if ls[i].z != ls[j].z {
			return ls[i].z < ls[j].z
		}
		return ls[i].order < ls[j].order
	})
	return ls
}

// draw draws a into the cell c. Nothing is drawn for hidden axes.
func (a *Axes) draw(c draw.Canvas) {
	if a.hidden {
		return
	}
	a.prepare()
	st := a.styles()
	xt := a.ticks(&a.x, a.p.X.Min, a.p.X.Max)
	yt := a.ticks(&a.y, a.p.Y.Min, a.p.Y.Max)

	fr := a.frame(st, xt, yt)
	data := fr.dataArea(c.Rectangle)
	a.data = data
	dc := draw.Canvas{Canvas: c.Canvas, Rectangle: data}

	if a.grid {
		a.drawGrid(dc, st, xt, yt)
	}
	for _, l := range a.sortedLayers() {
		l.plotter.Plot(dc, a.p)
	}
	a.drawSpines(dc, st)
	a.drawAxis(dc, st, &a.x, xt)
	a.drawAxis(dc, st, &a.y, yt)

	if a.colorbar != nil {
		a.colorbar.draw(dc, st, a.fig.theme, fr.axis[a.colorbar.side])
	}
	out := fr.inner(data)
	if a.legend != nil {
		a.legend.draw(dc, st, out)
	}
	if a.title != "" {
		sty := st.title
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YBottom
		y := data.Max.Y + out[layout.Top] + vg.Points(a.fig.theme.TitlePad)
		if a.legend != nil && a.legend.outside && a.legend.side == layout.Top {
			y += a.legend.size.Y
		}
		dc.FillText(sty, vg.Point{X: (data.Min.X + data.Max.X) / 2, Y: y}, a.title)
	}
	vp := a.viewport(dc)
	for _, g := range a.grobs {
		g.Draw(vp)
	}
}

func (a *Axes) viewport(dc draw.Canvas) Viewport {
	trX, trY := a.p.Transforms(&dc)
	return Viewport{Canvas: dc, X: trX, Y: trY}
}
