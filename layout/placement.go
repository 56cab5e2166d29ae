package layout

import (
	"fmt"
	"strings"

	"github.com/vdobler/prettyplot/errors"
)

// Loc is the reference point of a box, given as fractions of its width and
// height measured from the lower left corner. The legend's Loc point is
// placed onto the anchor box's Loc point.
type Loc struct {
	H, V float64
}

// Common locations.
var (
	LowerLeft   = Loc{0, 0}
	LowerCenter = Loc{0.5, 0}
	LowerRight  = Loc{1, 0}
	CenterLeft  = Loc{0, 0.5}
	Center      = Loc{0.5, 0.5}
	CenterRight = Loc{1, 0.5}
	UpperLeft   = Loc{0, 1}
	UpperCenter = Loc{0.5, 1}
	UpperRight  = Loc{1, 1}
)

var locNames = map[string]Loc{
	"lower left":   LowerLeft,
	"lower center": LowerCenter,
	"lower right":  LowerRight,
	"center left":  CenterLeft,
	"center":       Center,
	"center right": CenterRight,
	"upper left":   UpperLeft,
	"upper center": UpperCenter,
	"upper right":  UpperRight,
}

// ParseLoc parses names like "upper right". The empty string yields
// UpperRight.
func ParseLoc(s string) (Loc, error) {
	name := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if name == "" {
		return UpperRight, nil
	}
	if l, ok := locNames[name]; ok {
		return l, nil
	}
	return Loc{}, errors.New(errors.ErrCodeInvalidSide,
		"legend location %q needs to be like \"upper right\" or \"center left\"", s)
}

func (l Loc) String() string {
	for name, loc := range locNames {
		if loc == l {
			return name
		}
	}
	return fmt.Sprintf("(%g, %g)", l.H, l.V)
}

// Rect is an axis aligned rectangle, y pointing up.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Dx is the width of r.
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// Dy is the height of r.
func (r Rect) Dy() float64 { return r.MaxY - r.MinY }

// Placement positions a box relative to the data area of an axes.
// Anchor is (x, y, width, height) in fractions of the data area; a zero
// width and height anchors at a point. With Expand the box is stretched
// to the anchor width.
type Placement struct {
	Anchor  [4]float64
	Loc     Loc
	Expand  bool
	Outside bool
	Side    Side
}

// LegendPlacement returns the preset for a legend outside of the axes on
// the given side. It panics on an invalid side.
func LegendPlacement(side Side) Placement {
	p := Placement{Outside: true, Side: side}
	switch side {
	case Top:
		p.Anchor = [4]float64{0, 1, 1, 0.01}
		p.Loc = LowerLeft
		p.Expand = true
	case Bottom:
		p.Anchor = [4]float64{0, 0, 1, 0.01}
		p.Loc = UpperLeft
		p.Expand = true
	case Right:
		p.Anchor = [4]float64{1.03, 0.5, 0, 0}
		p.Loc = CenterLeft
	case Left:
		p.Anchor = [4]float64{-0.03, 0.5, 0, 0}
		p.Loc = CenterRight
	default:
		panic("layout: legend placement for invalid side")
	}
	return p
}

// InsidePlacement places a box inside the data area at loc.
func InsidePlacement(loc Loc) Placement {
	return Placement{Anchor: [4]float64{0, 0, 1, 1}, Loc: loc}
}

// DefaultColumns is the number of legend columns used when none is
// requested: all entries in one row for top and bottom, a single column
// otherwise.
func (p Placement) DefaultColumns(entries int) int {
	if p.Outside && p.Side.Horizontal() && entries > 0 {
		return entries
	}
	return 1
}

// Box returns the rectangle of a w×h box placed relative to data.
// If p expands, the returned width is the anchor width instead of w.
func (p Placement) Box(data Rect, w, h float64) Rect {
	bx := data.MinX + p.Anchor[0]*data.Dx()
	by := data.MinY + p.Anchor[1]*data.Dy()
	bw := p.Anchor[2] * data.Dx()
	bh := p.Anchor[3] * data.Dy()
	if p.Expand {
		w = bw
	}
	x := bx + p.Loc.H*(bw-w)
	y := by + p.Loc.V*(bh-h)
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// GridShape returns the number of rows and columns needed to lay out n
// entries in at most cols columns. Entries fill columns first.
func GridShape(n, cols int) (rows, ncols int) {
	if n <= 0 {
		return 0, 0
	}
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	rows = (n + cols - 1) / cols
	return rows, (n + rows - 1) / rows
}

// GridCell returns the row and column of entry i when n entries fill
// rows×cols column by column.
func GridCell(i, rows int) (row, col int) {
	if rows < 1 {
		return 0, i
	}
	return i % rows, i / rows
}
