package prettyplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

// LegendOptions configure Axes.Legend.
type LegendOptions struct {
	// Outside places the legend next to the axes: "top", "bottom",
	// "left" or "right". Empty keeps it inside.
	Outside string
	// Loc is the location inside the axes like "upper right", the
	// default.
	Loc string
	// Columns defaults to the number of entries for top and bottom and
	// to one otherwise.
	Columns int
	Title   string
	// Axes lists the axes whose labelled plots make up the entries.
	// Default is the axes the legend belongs to.
	Axes []*Axes
}

// Legend lists labelled plots in a grid filled column by column.
type Legend struct {
	entries    []legendEntry
	placement  layout.Placement
	outside    bool
	side       layout.Side
	rows, cols int
	title      string
	// shiftTitle puts the title left of the entries instead of above.
	shiftTitle bool
	frameWidth float64

	// Set by measure, in points.
	size   vg.Point
	colW   []vg.Length
	rowH   vg.Length
	titleW vg.Length
	titleH vg.Length
	m      legendMetrics
}

type legendEntry struct {
	label string
	thumb plot.Thumbnailer
}

// legendMetrics are the spacings of a legend, in points.
type legendMetrics struct {
	borderPad, labelSpacing, handleLength, handlePad, columnSpacing, axesPad vg.Length
}

func metricsFor(fontSize float64) legendMetrics {
	fs := vg.Points(fontSize)
	return legendMetrics{
		borderPad:     0.4 * fs,
		labelSpacing:  0.5 * fs,
		handleLength:  2 * fs,
		handlePad:     0.8 * fs,
		columnSpacing: 2 * fs,
		axesPad:       0.5 * fs,
	}
}

// Legend adds a legend to a. An outside legend moves the axis on that
// side to the opposite one. Invalid sides fail with INVALID_SIDE.
func (a *Axes) Legend(opts LegendOptions) (*Legend, error) {
	l := &Legend{title: opts.Title}
	if opts.Outside != "" {
		side, err := layout.ParseSide(opts.Outside)
		if err != nil {
			return nil, err
		}
		l.outside, l.side = true, side
		l.placement = layout.LegendPlacement(side)
	} else {
		loc, err := layout.ParseLoc(opts.Loc)
		if err != nil {
			return nil, err
		}
		l.placement = layout.InsidePlacement(loc)
	}
	if opts.Columns < 0 {
		return nil, errors.New(errors.ErrCodeInvalidNumber,
			"legend columns need to be positive but given %d", opts.Columns)
	}

	sources := opts.Axes
	if len(sources) == 0 {
		sources = []*Axes{a}
	}
	for _, src := range sources {
		for _, ly := range src.layers {
			th, ok := ly.plotter.(plot.Thumbnailer)
			if ly.label == "" || !ok {
				continue
			}
			l.entries = append(l.entries, legendEntry{label: ly.label, thumb: th})
		}
	}

	cols := opts.Columns
	if cols == 0 {
		cols = l.placement.DefaultColumns(len(l.entries))
	}
	l.rows, l.cols = layout.GridShape(len(l.entries), cols)
	l.shiftTitle = l.outside && l.side.Horizontal() && l.title != ""

	t := a.fig.theme
	switch a.fig.style {
	case StyleMinimal:
		l.frameWidth = 0
	case StyleDefault:
		l.frameWidth = t.LegendFrameWidth()
	default:
		l.frameWidth = t.PatchLineWidth
	}

	if l.outside {
		if err := a.ActivateAxis(l.side.Opposite()); err != nil {
			return nil, err
		}
	}
	a.legend = l
	return l, nil
}

// Len returns the number of entries.
func (l *Legend) Len() int { return len(l.entries) }

// Shape returns the number of rows and columns of the entry grid.
func (l *Legend) Shape() (rows, cols int) { return l.rows, l.cols }

// Side reports the side of an outside legend.
func (l *Legend) Side() (layout.Side, bool) { return l.side, l.outside }

// measure computes the size of the legend box.
func (l *Legend) measure(st styles) {
	sty := st.legend
	l.m = metricsFor(sty.Font.Size.Points())
	m := l.m

	l.rowH = sty.Height("Mg")
	l.colW = make([]vg.Length, l.cols)
	for i, e := range l.entries {
		_, col := layout.GridCell(i, l.rows)
		w := m.handleLength + m.handlePad + sty.Width(e.label)
		l.colW[col] = max(l.colW[col], w)
	}
	var w, h vg.Length
	for i, cw := range l.colW {
		w += cw
		if i > 0 {
			w += m.columnSpacing
		}
	}
	if l.rows > 0 {
		h = vg.Length(l.rows)*l.rowH + vg.Length(l.rows-1)*m.labelSpacing
	}

	l.titleW, l.titleH = 0, 0
	if l.title != "" {
		l.titleW, l.titleH = sty.Width(l.title), sty.Height(l.title)
		if l.shiftTitle {
			w += l.titleW + m.handlePad
			h = max(h, l.titleH)
		} else {
			w = max(w, l.titleW)
			h += l.titleH + m.labelSpacing
		}
	}
	l.size = vg.Point{X: w + 2*m.borderPad, Y: h + 2*m.borderPad}
}

// extent returns the room an outside legend takes beyond the data area:
// abs points plus rel times the data width or height. The placement box
// is affine in the data size, so two evaluations suffice.
func (l *Legend) extent() (abs vg.Length, rel float64) {
	ext := func(d float64) float64 {
		b := l.placement.Box(layout.Rect{MaxX: d, MaxY: d}, float64(l.size.X), float64(l.size.Y))
		switch l.side {
		case layout.Right:
			return b.MaxX - d
		case layout.Left:
			return -b.MinX
		case layout.Top:
			return b.MaxY - d
		}
		return -b.MinY
	}
	e0 := ext(0)
	return vg.Length(e0), ext(1) - e0
}

// box returns the legend rectangle for the data area dc. inner holds per
// side the room already taken by axis and colorbar.
func (l *Legend) box(data vg.Rectangle, inner [4]vg.Length) vg.Rectangle {
	d := layout.Rect{
		MinX: float64(data.Min.X), MinY: float64(data.Min.Y),
		MaxX: float64(data.Max.X), MaxY: float64(data.Max.Y),
	}
	if !l.outside {
		p := float64(l.m.axesPad)
		d = layout.Rect{MinX: d.MinX + p, MinY: d.MinY + p, MaxX: d.MaxX - p, MaxY: d.MaxY - p}
	}
	b := l.placement.Box(d, float64(l.size.X), float64(l.size.Y))
	r := vg.Rectangle{
		Min: vg.Point{X: vg.Length(b.MinX), Y: vg.Length(b.MinY)},
		Max: vg.Point{X: vg.Length(b.MaxX), Y: vg.Length(b.MaxY)},
	}
	if l.outside {
		var off vg.Point
		switch l.side {
		case layout.Right:
			off.X = inner[layout.Right]
		case layout.Left:
			off.X = -inner[layout.Left]
		case layout.Top:
			off.Y = inner[layout.Top]
		case layout.Bottom:
			off.Y = -inner[layout.Bottom]
		}
		r = r.Add(off)
	}
	return r
}

func (l *Legend) draw(dc draw.Canvas, st styles, inner [4]vg.Length) {
	if len(l.entries) == 0 && l.title == "" {
		return
	}
	if !l.outside {
		l.measure(st)
	}
	r := l.box(dc.Rectangle, inner)
	l.size = r.Size()
	m := l.m

	bg := SetAlpha(st.background, st.legendAlpha)
	dc.FillPolygon(bg, []vg.Point{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}})
	if l.frameWidth > 0 {
		frame := st.spine
		frame.Width = vg.Points(l.frameWidth)
		dc.StrokeLines(frame, []vg.Point{
			r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}, r.Min,
		})
	}

	sty := st.legend
	x0 := r.Min.X + m.borderPad
	top := r.Max.Y - m.borderPad
	if l.title != "" {
		ts := sty
		if l.shiftTitle {
			ts.XAlign, ts.YAlign = draw.XLeft, draw.YCenter
			dc.FillText(ts, vg.Point{X: x0, Y: top - l.rowH/2}, l.title)
			x0 += l.titleW + m.handlePad
		} else {
			ts.XAlign, ts.YAlign = draw.XCenter, draw.YTop
			dc.FillText(ts, vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: top}, l.title)
			top -= l.titleH + m.labelSpacing
		}
	}

	colX := make([]vg.Length, l.cols)
	x := x0
	for i, w := range l.colW {
		colX[i] = x
		x += w + m.columnSpacing
	}
	sty.XAlign, sty.YAlign = draw.XLeft, draw.YCenter
	for i, e := range l.entries {
		row, col := layout.GridCell(i, l.rows)
		y := top - vg.Length(row)*(l.rowH+m.labelSpacing)
		icon := draw.Canvas{
			Canvas: dc.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: colX[col], Y: y - l.rowH},
				Max: vg.Point{X: colX[col] + m.handleLength, Y: y},
			},
		}
		e.thumb.Thumbnail(&icon)
		dc.FillText(sty, vg.Point{X: colX[col] + m.handleLength + m.handlePad, Y: y - l.rowH/2}, e.label)
	}
}
