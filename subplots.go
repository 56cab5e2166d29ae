package prettyplot

import "github.com/vdobler/prettyplot/layout"

func (f *Figure) spans() ([]layout.Span, []bool) {
	spans := make([]layout.Span, len(f.axes))
	hidden := make([]bool, len(f.axes))
	for i, a := range f.axes {
		spans[i], hidden[i] = a.span, a.hidden
	}
	return spans, hidden
}

// HideEmptyAxes hides all axes nothing was drawn into. Axes whose left or
// bottom neighbour got hidden show their y or x tick labels again.
func (f *Figure) HideEmptyAxes() {
	for _, a := range f.axes {
		if a.Empty() {
			a.hidden = true
		}
	}
	spans, hidden := f.spans()
	for i, a := range f.axes {
		if a.hidden {
			continue
		}
		left, bottom := layout.OuterHidden(spans, hidden, i)
		if left {
			a.y.hideTickLabels = false
		}
		if bottom {
			a.x.hideTickLabels = false
		}
	}
}

// LabelOuter keeps tick labels and axis labels only at the outer edges of
// the grid: x on the bottom row, y on the first column. Edges next to a
// hidden axes count as outer.
func (f *Figure) LabelOuter() {
	spans, hidden := f.spans()
	for i, v := range layout.LabelOuter(spans, hidden, f.rows) {
		a := f.axes[i]
		if !v.X {
			a.x.hideTickLabels = true
			a.x.label = ""
		}
		if !v.Y {
			a.y.hideTickLabels = true
			a.y.label = ""
		}
	}
}

// SubplotLabels sets an x label below and a y label left of the whole
// grid. Empty strings leave that label out.
func (f *Figure) SubplotLabels(xlabel, ylabel string) {
	f.xlabel, f.ylabel = xlabel, ylabel
}
