package prettyplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

// axisState is the configuration of the x or the y axis of an Axes.
type axisState struct {
	label string
	side  layout.Side

	fixed    bool
	min, max float64

	fixedTicks bool
	ticks      []float64
	tickLabels []string
	// bins thins out automatic ticks if positive.
	bins float64

	hideTickLabels bool
	spineBounds    bool
	inverted       bool

	// Set by prepare.
	data   interval
	bounds interval
}

func newAxisState(side layout.Side) axisState {
	return axisState{side: side}
}

func (ax *axisState) setLimits(name string, min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min >= max {
		return errors.New(errors.ErrCodeInvalidNumber,
			"%s limits (%g, %g) need to be finite with min < max", name, min, max)
	}
	ax.fixed, ax.min, ax.max = true, min, max
	return nil
}

func (ax *axisState) setTicks(name string, ticks []float64, labels []string) error {
	if len(labels) != 0 && len(labels) != len(ticks) {
		return errors.New(errors.ErrCodeInvalidNumber,
			"%s ticks need one label per tick but have %d ticks and %d labels", name, len(ticks), len(labels))
	}
	for _, v := range ticks {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidNumber, "%s tick %g needs to be finite", name, v)
		}
	}
	ax.fixedTicks = true
	ax.ticks = append([]float64(nil), ticks...)
	ax.tickLabels = append([]string(nil), labels...)
	return nil
}

// limits returns the axis range and records the spine bounds. Loose data
// gets a margin, sticky data is shown edge to edge.
func (ax *axisState) limits(loose, sticky interval, margin float64) (min, max float64) {
	if ax.fixed {
		min, max = ax.min, ax.max
		ax.bounds = interval{math.Max(ax.data.min, min), math.Min(ax.data.max, max)}
		return min, max
	}

	r := loose
	if !r.empty() {
		lo, hi := layout.ExpandRange(r.min, r.max, margin)
		r = interval{lo, hi}
	}
	r = r.union(sticky)
	switch {
	case r.empty():
		r = interval{0, 1}
	case r.min == r.max:
		r = interval{r.min - 0.5, r.max + 0.5}
	}
	if sticky.empty() {
		lo, hi := layout.SpineBounds(r.min, r.max, margin)
		ax.bounds = interval{lo, hi}
	} else {
		ax.bounds = ax.data
	}
	return r.min, r.max
}

// ticks returns the ticks of ax inside [min, max].
func (a *Axes) ticks(ax *axisState, min, max float64) []plot.Tick {
	var ts []plot.Tick
	switch {
	case ax.fixedTicks:
		for i, v := range ax.ticks {
			lbl := strconv.FormatFloat(v, 'g', -1, 64)
			if len(ax.tickLabels) > 0 {
				lbl = ax.tickLabels[i]
			}
			ts = append(ts, plot.Tick{Value: v, Label: lbl})
		}
	case ax.bins > 0:
		ts = niceTicks(min, max, ax.bins)
	default:
		ts = plot.DefaultTicks{}.Ticks(min, max)
	}

	eps := 1e-9 * (max - min)
	out := ts[:0:0]
	for _, t := range ts {
		if t.Value < min-eps || t.Value > max+eps {
			continue
		}
		if t.IsMinor() && !a.fig.theme.MinorTicks {
			continue
		}
		out = append(out, t)
	}
	return out
}

// -------------------------------------------------------------------------
// Frame

// frame holds what is drawn around the data area, per side. Colorbars
// and legends placed outside take room proportional to the data area;
// that part is kept in rel as a fraction of the data width (left, right)
// or height (top, bottom).
type frame struct {
	axis   [4]vg.Length
	cbar   [4]vg.Length
	cbarR  [4]float64
	legend [4]vg.Length
	legR   [4]float64
	title  vg.Length
}

func (a *Axes) frame(st styles, xt, yt []plot.Tick) frame {
	var f frame
	f.axis[a.x.side] = a.axisExtent(st, &a.x, xt)
	f.axis[a.y.side] = a.axisExtent(st, &a.y, yt)
	for _, s := range layout.Sides {
		if a.spineVisible(s) {
			f.axis[s] = max(f.axis[s], vg.Points(a.fig.theme.AxesLineWidth/2))
		}
	}
	if cb := a.colorbar; cb != nil {
		abs, rel := cb.extent(st, a.fig.theme)
		f.cbar[cb.side], f.cbarR[cb.side] = abs, rel
	}
	if l := a.legend; l != nil && l.outside {
		l.measure(st)
		abs, rel := l.extent()
		f.legend[l.side], f.legR[l.side] = abs, rel
	}
	if a.title != "" {
		f.title = st.title.Height(a.title) + vg.Points(a.fig.theme.TitlePad)
	}
	return f
}

// dataArea returns the data area inside cell.
func (f frame) dataArea(cell vg.Rectangle) vg.Rectangle {
	abs := func(s layout.Side) vg.Length {
		v := f.axis[s] + f.cbar[s] + f.legend[s]
		if s == layout.Top {
			v += f.title
		}
		return v
	}
	rel := func(s layout.Side) float64 { return f.cbarR[s] + f.legR[s] }

	w := (cell.Size().X - abs(layout.Left) - abs(layout.Right)) /
		vg.Length(1+rel(layout.Left)+rel(layout.Right))
	h := (cell.Size().Y - abs(layout.Bottom) - abs(layout.Top)) /
		vg.Length(1+rel(layout.Bottom)+rel(layout.Top))
	w, h = max(w, 1), max(h, 1)

	x0 := cell.Min.X + abs(layout.Left) + vg.Length(rel(layout.Left))*w
	y0 := cell.Min.Y + abs(layout.Bottom) + vg.Length(rel(layout.Bottom))*h
	return vg.Rectangle{Min: vg.Point{X: x0, Y: y0}, Max: vg.Point{X: x0 + w, Y: y0 + h}}
}

// inner returns per side the distance from the data area to the outer
// edge of the axis decoration and the colorbar.
func (f frame) inner(data vg.Rectangle) [4]vg.Length {
	var out [4]vg.Length
	for _, s := range layout.Sides {
		ref := data.Size().Y
		if !s.Horizontal() {
			ref = data.Size().X
		}
		out[s] = f.axis[s] + f.cbar[s] + vg.Length(f.cbarR[s])*ref
	}
	return out
}

// -------------------------------------------------------------------------
// Spines, ticks and labels

func (a *Axes) spineVisible(s layout.Side) bool {
	t := a.fig.theme
	switch s {
	case layout.Top:
		return t.TopSpine || a.x.side == layout.Top
	case layout.Right:
		return t.RightSpine || a.y.side == layout.Right
	}
	return true
}

func (a *Axes) drawSpines(dc draw.Canvas, st styles) {
	r := dc.Rectangle
	x0, x1 := r.Min.X, r.Max.X
	y0, y1 := r.Min.Y, r.Max.Y
	if a.x.spineBounds && !a.x.bounds.empty() {
		x0, x1 = dc.X(a.p.X.Norm(a.x.bounds.min)), dc.X(a.p.X.Norm(a.x.bounds.max))
	}
	if a.y.spineBounds && !a.y.bounds.empty() {
		y0, y1 = dc.Y(a.p.Y.Norm(a.y.bounds.min)), dc.Y(a.p.Y.Norm(a.y.bounds.max))
	}
	for _, s := range layout.Sides {
		if !a.spineVisible(s) {
			continue
		}
		switch s {
		case layout.Bottom:
			dc.StrokeLine2(st.spine, x0, r.Min.Y, x1, r.Min.Y)
		case layout.Top:
			dc.StrokeLine2(st.spine, x0, r.Max.Y, x1, r.Max.Y)
		case layout.Left:
			dc.StrokeLine2(st.spine, r.Min.X, y0, r.Min.X, y1)
		case layout.Right:
			dc.StrokeLine2(st.spine, r.Max.X, y0, r.Max.X, y1)
		}
	}
}

// labelExtent is the height (horizontal axes) or width of the widest
// major tick label.
func labelExtent(sty text.Style, ticks []plot.Tick, horizontal bool) vg.Length {
	var ext vg.Length
	for _, t := range ticks {
		if t.IsMinor() {
			continue
		}
		r := sty.Rectangle(t.Label)
		if horizontal {
			ext = max(ext, r.Max.Y-r.Min.Y)
		} else {
			ext = max(ext, r.Max.X-r.Min.X)
		}
	}
	return ext
}

// tickLabelOffset is the distance from the spine to the tick labels.
func (a *Axes) tickLabelOffset() vg.Length {
	t := a.fig.theme
	return vg.Points(t.MajorTickLength + t.MajorTickPad)
}

// axisExtent is the room ticks, tick labels and the label of ax take.
func (a *Axes) axisExtent(st styles, ax *axisState, ticks []plot.Tick) vg.Length {
	return sideExtent(a.fig.theme, st, ax.side, ticks, !ax.hideTickLabels, ax.label)
}

func sideExtent(t Theme, st styles, side layout.Side, ticks []plot.Tick, tickLabels bool, label string) vg.Length {
	var ext vg.Length
	if len(ticks) > 0 {
		ext = vg.Points(t.MajorTickLength)
		if tickLabels {
			ext += vg.Points(t.MajorTickPad) + labelExtent(st.tick, ticks, side.Horizontal())
		}
	}
	if label != "" {
		ext += vg.Points(t.LabelPad) + st.label.Height(label) + st.label.FontExtents().Descent
	}
	return ext
}

func (a *Axes) drawAxis(dc draw.Canvas, st styles, ax *axisState, ticks []plot.Tick) {
	norm := a.p.X.Norm
	if !ax.side.Horizontal() {
		norm = a.p.Y.Norm
	}
	drawSide(dc, a.fig.theme, st, ax.side, norm, ticks, !ax.hideTickLabels, ax.label)
}

// drawSide draws ticks, tick labels and the label on one side of the
// rectangle of dc, pointing outwards.
func drawSide(dc draw.Canvas, t Theme, st styles, side layout.Side, norm func(float64) float64,
	ticks []plot.Tick, tickLabels bool, label string) {
	r := dc.Rectangle
	// edge returns the point at distance d outside of the rectangle at
	// position pos along the side.
	edge := func(pos, d vg.Length) vg.Point {
		switch side {
		case layout.Bottom:
			return vg.Point{X: pos, Y: r.Min.Y - d}
		case layout.Top:
			return vg.Point{X: pos, Y: r.Max.Y + d}
		case layout.Left:
			return vg.Point{X: r.Min.X - d, Y: pos}
		}
		return vg.Point{X: r.Max.X + d, Y: pos}
	}
	at := func(v float64) vg.Length {
		if side.Horizontal() {
			return dc.X(norm(v))
		}
		return dc.Y(norm(v))
	}

	for _, tk := range ticks {
		sty, l := st.major, vg.Points(t.MajorTickLength)
		if tk.IsMinor() {
			sty, l = st.minor, vg.Points(t.MinorTickLength)
		}
		pos := at(tk.Value)
		p0, p1 := edge(pos, 0), edge(pos, l)
		dc.StrokeLine2(sty, p0.X, p0.Y, p1.X, p1.Y)
	}

	var d vg.Length
	if len(ticks) > 0 {
		d = vg.Points(t.MajorTickLength)
	}
	if tickLabels && len(ticks) > 0 {
		d += vg.Points(t.MajorTickPad)
		sty := st.tick
		switch side {
		case layout.Bottom:
			sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
		case layout.Top:
			sty.XAlign, sty.YAlign = draw.XCenter, draw.YBottom
		case layout.Left:
			sty.XAlign, sty.YAlign = draw.XRight, draw.YCenter
		case layout.Right:
			sty.XAlign, sty.YAlign = draw.XLeft, draw.YCenter
		}
		for _, tk := range ticks {
			if tk.IsMinor() {
				continue
			}
			dc.FillText(sty, edge(at(tk.Value), d), tk.Label)
		}
		d += labelExtent(st.tick, ticks, side.Horizontal())
	}

	if label == "" {
		return
	}
	d += vg.Points(t.LabelPad)
	sty := st.label
	var mid vg.Length
	switch side {
	case layout.Bottom:
		mid = (r.Min.X + r.Max.X) / 2
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
	case layout.Top:
		mid = (r.Min.X + r.Max.X) / 2
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YBottom
	case layout.Left:
		mid = (r.Min.Y + r.Max.Y) / 2
		sty.Rotation = math.Pi / 2
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YBottom
		d += sty.FontExtents().Descent
	case layout.Right:
		mid = (r.Min.Y + r.Max.Y) / 2
		sty.Rotation = math.Pi / 2
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
	}
	dc.FillText(sty, edge(mid, d), label)
}

// drawGrid draws the major and minor grid lines below the data.
func (a *Axes) drawGrid(dc draw.Canvas, st styles, xt, yt []plot.Tick) {
	r := dc.Rectangle
	for _, tk := range xt {
		sty := st.gridMajor
		if tk.IsMinor() {
			sty = st.gridMinor
		}
		if sty.Width == 0 {
			continue
		}
		x := dc.X(a.p.X.Norm(tk.Value))
		dc.StrokeLine2(sty, x, r.Min.Y, x, r.Max.Y)
	}
	for _, tk := range yt {
		sty := st.gridMajor
		if tk.IsMinor() {
			sty = st.gridMinor
		}
		if sty.Width == 0 {
			continue
		}
		y := dc.Y(a.p.Y.Norm(tk.Value))
		dc.StrokeLine2(sty, r.Min.X, y, r.Max.X, y)
	}
}
