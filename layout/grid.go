package layout

// Span is the block of grid cells covered by one axes of a subplot grid.
// Rows and columns are half open; row 0 is the top row.
type Span struct {
	Row0, Row1 int
	Col0, Col1 int
}

// Cell is the span of the single cell at (row, col).
func Cell(row, col int) Span {
	return Span{Row0: row, Row1: row + 1, Col0: col, Col1: col + 1}
}

func overlaps(a0, a1, off, b0, b1 int) bool {
	for i := a0; i < a1; i++ {
		if i+off >= b0 && i+off < b1 {
			return true
		}
	}
	return false
}

// HasNeighborDistance reports whether moving a by the given row and column
// offsets makes it overlap b.
func HasNeighborDistance(a, b Span, drow, dcol int) bool {
	return overlaps(a.Row0, a.Row1, drow, b.Row0, b.Row1) &&
		overlaps(a.Col0, a.Col1, dcol, b.Col0, b.Col1)
}

// IsLeftNeighbor reports whether b sits directly right of a, i.e. a is
// the left neighbour of b.
func IsLeftNeighbor(a, b Span) bool {
	return HasNeighborDistance(a, b, 0, 1)
}

// IsBottomNeighbor reports whether b sits directly above a, i.e. a is the
// bottom neighbour of b.
func IsBottomNeighbor(a, b Span) bool {
	return HasNeighborDistance(a, b, -1, 0)
}

// OuterHidden reports for spans[i] whether its left neighbour or its
// bottom neighbour is hidden. A span that is the left neighbour of i is
// not considered as bottom neighbour.
func OuterHidden(spans []Span, hidden []bool, i int) (leftHidden, bottomHidden bool) {
	for j, s := range spans {
		if j == i {
			continue
		}
		switch {
		case IsLeftNeighbor(s, spans[i]):
			leftHidden = leftHidden || hidden[j]
		case IsBottomNeighbor(s, spans[i]):
			bottomHidden = bottomHidden || hidden[j]
		}
	}
	return leftHidden, bottomHidden
}

// Visibility says which tick labels of an axes stay visible.
type Visibility struct {
	X, Y bool
}

// LabelOuter keeps x tick labels only on axes in the last row or above a
// hidden axes, and y tick labels only on axes in the first column or right
// of a hidden axes.
func LabelOuter(spans []Span, hidden []bool, nrows int) []Visibility {
	vis := make([]Visibility, len(spans))
	for i, s := range spans {
		left, bottom := OuterHidden(spans, hidden, i)
		vis[i] = Visibility{
			X: s.Row1 >= nrows || bottom,
			Y: s.Col0 == 0 || left,
		}
	}
	return vis
}
