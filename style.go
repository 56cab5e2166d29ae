package prettyplot

import (
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/prettyplot/errors"
)

// -------------------------------------------------------------------------
// Style and Mode

// Style selects the cosmetic preset applied by a StyleContext.
type Style int

const (
	// StyleDefault enables the grid and all four spines.
	StyleDefault Style = iota
	// StyleMinimal removes every line not needed to read the data.
	StyleMinimal
	// StyleNone keeps the library defaults untouched.
	StyleNone
)

var styleNames = [...]string{"default", "minimal", "none"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
	return styleNames[s]
}

// ParseStyle parses a style name, ignoring case.
func ParseStyle(s string) (Style, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidStyle,
		"style %q is not supported, use one of [%s]", s, strings.Join(styleNames[:], ", "))
}

func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Style) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Mode selects the size preset: font size, line widths and tick lengths.
type Mode int

const (
	// ModeDefault is meant for screens.
	ModeDefault Mode = iota
	// ModePrint uses slightly larger fonts and lines.
	ModePrint
	// ModeBeamer uses large fonts for slides.
	ModeBeamer
	// ModePoster uses large fonts for A0 posters.
	ModePoster
)

var modeNames = [...]string{"default", "print", "beamer", "poster"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidMode,
		"mode %q is not supported, use one of [%s]", s, strings.Join(modeNames[:], ", "))
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// enlarged reports whether figures are tripled in size on save.
func (m Mode) enlarged() bool { return m == ModeBeamer || m == ModePoster }

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

var lineTypeNames = map[string]LineType{
	"blank":    BlankLine,
	"none":     BlankLine,
	"solid":    SolidLine,
	"-":        SolidLine,
	"dashed":   DashedLine,
	"--":       DashedLine,
	"dotted":   DottedLine,
	":":        DottedLine,
	"dotdash":  DotDashLine,
	"dashdot":  DotDashLine,
	"-.":       DotDashLine,
	"longdash": LongdashLine,
	"twodash":  TwodashLine,
}

// ParseLineType accepts names like "dashed" as well as the short forms
// "-", "--", ":" and "-.".
func ParseLineType(s string) (LineType, error) {
	if lt, ok := lineTypeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lt, nil
	}
	return BlankLine, errors.New(errors.ErrCodeInvalidStyle,
		"line type %q needs to be one of solid, dashed, dotted, dotdash, longdash, twodash or blank", s)
}

func (lt *LineType) UnmarshalText(text []byte) error {
	v, err := ParseLineType(string(text))
	if err != nil {
		return err
	}
	*lt = v
	return nil
}

// dashPatterns are given in multiples of the line width.
var dashPatterns = map[LineType][]float64{
	DashedLine:   {3.7, 1.6},
	DottedLine:   {1, 1.65},
	DotDashLine:  {6.4, 1.6, 1, 1.6},
	LongdashLine: {8, 2.5},
	TwodashLine:  {5, 1.6, 1.5, 1.6},
}

// Dashes returns the dash pattern of lt scaled to width. Solid and blank
// lines have no dashes.
func (lt LineType) Dashes(width vg.Length) []vg.Length {
	pat := dashPatterns[lt]
	if len(pat) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}
	ds := make([]vg.Length, len(pat))
	for i, d := range pat {
		ds[i] = vg.Length(d) * width
	}
	return ds
}

// LineStyle returns a draw.LineStyle for lt. A blank line has zero width.
func (lt LineType) LineStyle(c color.Color, width vg.Length) draw.LineStyle {
	if lt == BlankLine {
		return draw.LineStyle{}
	}
	return draw.LineStyle{Color: c, Width: width, Dashes: lt.Dashes(width)}
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DeltaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDeltaPoint
	CrossPoint
	PlusPoint
)

var pointShapeNames = map[string]PointShape{
	"":             BlankPoint,
	"none":         BlankPoint,
	"circle":       CirclePoint,
	"square":       SquarePoint,
	"delta":        DeltaPoint,
	"solid-circle": SolidCirclePoint,
	"o":            SolidCirclePoint,
	"solid-square": SolidSquarePoint,
	"s":            SolidSquarePoint,
	"solid-delta":  SolidDeltaPoint,
	"^":            SolidDeltaPoint,
	"cross":        CrossPoint,
	"x":            CrossPoint,
	"plus":         PlusPoint,
	"+":            PlusPoint,
}

// ParsePointShape accepts names like "solid-circle" and the marker codes
// "o", "s", "^", "x" and "+".
func ParsePointShape(s string) (PointShape, error) {
	if ps, ok := pointShapeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return ps, nil
	}
	return BlankPoint, errors.New(errors.ErrCodeInvalidStyle,
		"point shape %q needs to be a name like \"solid-circle\" or one of o, s, ^, x, +", s)
}

// Glyph returns the glyph drawer of ps, nil for BlankPoint.
func (ps PointShape) Glyph() draw.GlyphDrawer {
	switch ps {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

// SetAlpha returns c with its opacity replaced by a in [0, 1].
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	n.A = uint8(a*0xff + 0.5)
	return n
}
