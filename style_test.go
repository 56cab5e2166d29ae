package prettyplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"

	perrors "github.com/vdobler/prettyplot/errors"
)

func TestParseStyleAndMode(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Style
	}{
		{"default", StyleDefault},
		{"MINIMAL", StyleMinimal},
		{" None ", StyleNone},
	} {
		if got, err := ParseStyle(tt.in); err != nil || got != tt.want {
			t.Errorf("ParseStyle(%q) = %s, %v, want %s", tt.in, got, err, tt.want)
		}
	}
	for _, tt := range []struct {
		in   string
		want Mode
	}{
		{"default", ModeDefault},
		{"Print", ModePrint},
		{"beamer", ModeBeamer},
		{"POSTER", ModePoster},
	} {
		if got, err := ParseMode(tt.in); err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %s, %v, want %s", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseStyle("fancy"); !perrors.Is(err, perrors.ErrCodeInvalidStyle) {
		t.Errorf("ParseStyle(fancy) error = %v, want %s", err, perrors.ErrCodeInvalidStyle)
	}
	if _, err := ParseMode("talk"); !perrors.Is(err, perrors.ErrCodeInvalidMode) {
		t.Errorf("ParseMode(talk) error = %v, want %s", err, perrors.ErrCodeInvalidMode)
	}
	if s := Style(5).String(); s != "Style(5)" {
		t.Errorf("Style(5).String() = %q, want %q", s, "Style(5)")
	}
}

func TestModeEnlarged(t *testing.T) {
	for m, want := range map[Mode]bool{
		ModeDefault: false, ModePrint: false, ModeBeamer: true, ModePoster: true,
	} {
		if got := m.enlarged(); got != want {
			t.Errorf("%s.enlarged() = %t, want %t", m, got, want)
		}
	}
}

func TestLineType(t *testing.T) {
	tests := []struct {
		in     string
		want   LineType
		dashes []vg.Length
	}{
		{"-", SolidLine, nil},
		{"--", DashedLine, []vg.Length{7.4, 3.2}},
		{":", DottedLine, []vg.Length{2, 3.3}},
		{"dashdot", DotDashLine, []vg.Length{12.8, 3.2, 2, 3.2}},
		{"none", BlankLine, nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lt, err := ParseLineType(tt.in)
			if err != nil || lt != tt.want {
				t.Fatalf("ParseLineType(%q) = %d, %v, want %d", tt.in, lt, err, tt.want)
			}
			got := lt.Dashes(2)
			if len(got) != len(tt.dashes) {
				t.Fatalf("Dashes(2) = %v, want %v", got, tt.dashes)
			}
			for i := range got {
				if d := got[i] - tt.dashes[i]; d > 1e-9 || d < -1e-9 {
					t.Errorf("Dashes(2)[%d] = %v, want %v", i, got[i], tt.dashes[i])
				}
			}
		})
	}

	if _, err := ParseLineType("~~"); !perrors.Is(err, perrors.ErrCodeInvalidStyle) {
		t.Errorf("ParseLineType(~~) error = %v, want %s", err, perrors.ErrCodeInvalidStyle)
	}
	if ls := BlankLine.LineStyle(color.Black, 2); ls.Width != 0 {
		t.Errorf("BlankLine.LineStyle().Width = %v, want 0", ls.Width)
	}
	if ls := DashedLine.LineStyle(color.Black, 0.5); ls.Dashes[0] != 3.7 {
		t.Errorf("DashedLine.LineStyle(0.5).Dashes = %v, want dashes of a 1pt line", ls.Dashes)
	}
}

func TestPointShape(t *testing.T) {
	for in, want := range map[string]PointShape{
		"o": SolidCirclePoint, "circle": CirclePoint, "^": SolidDeltaPoint, "+": PlusPoint, "": BlankPoint,
	} {
		if got, err := ParsePointShape(in); err != nil || got != want {
			t.Errorf("ParsePointShape(%q) = %d, %v, want %d", in, got, err, want)
		}
	}
	if BlankPoint.Glyph() != nil {
		t.Errorf("BlankPoint.Glyph() = %v, want nil", BlankPoint.Glyph())
	}
	if CrossPoint.Glyph() == nil {
		t.Error("CrossPoint.Glyph() = nil")
	}
	if _, err := ParsePointShape("star"); err == nil {
		t.Error("ParsePointShape(star) succeeded")
	}
}

func TestSetAlpha(t *testing.T) {
	tests := []struct {
		a    float64
		want uint8
	}{
		{0.5, 128},
		{1, 255},
		{-1, 0},
		{3, 255},
	}
	for _, tt := range tests {
		got := SetAlpha(color.RGBA{R: 255, A: 255}, tt.a).(color.NRGBA)
		if got.A != tt.want || got.R != 255 {
			t.Errorf("SetAlpha(red, %g) = %v, want alpha %d", tt.a, got, tt.want)
		}
	}
}
