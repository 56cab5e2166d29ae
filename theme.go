package prettyplot

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vdobler/prettyplot/colors"
	"github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

//go:embed stylelib/*.toml
var stylelib embed.FS

// ModeScales are the factors a Mode applies to the base sizes of a Theme.
// FontSize is absolute, in points.
type ModeScales struct {
	Large, Medium, Small, Tick, FontSize float64
}

var modeScales = map[Mode]ModeScales{
	ModeDefault: {Large: 1, Medium: 1, Small: 1, Tick: 1, FontSize: 10},
	ModePrint:   {Large: 1.5, Medium: 1.7, Small: 1.7, Tick: 1.7, FontSize: 12},
	ModeBeamer:  {Large: 4, Medium: 4, Small: 4, Tick: 4, FontSize: 28},
	ModePoster:  {Large: 4, Medium: 4, Small: 4, Tick: 4, FontSize: 28},
}

// ScalesFor returns the scales of m. Unknown modes get the default scales.
func ScalesFor(m Mode) ModeScales {
	if s, ok := modeScales[m]; ok {
		return s
	}
	return modeScales[ModeDefault]
}

// Base sizes in points, scaled by ModeScales.
const (
	baseAxesLineWidth   = 0.8
	baseGridLineWidth   = 0.8
	baseMajorTickWidth  = 0.8
	baseMinorTickWidth  = 0.6
	baseMajorTickLength = 3.5
	baseMinorTickLength = 2.0
	baseMajorTickPad    = 3.5
	baseMinorTickPad    = 3.4
	basePatchLineWidth  = 1.0
	baseMarkerEdgeWidth = 1.0
	baseLineWidth       = 1.5
	baseMarkerSize      = 6
)

const (
	// ScreenDPI is the resolution of raster output in ipython mode.
	ScreenDPI = 100
	// PrintDPI is the resolution of raster output otherwise.
	PrintDPI = 384
)

// Font families understood by Theme.Font.
const (
	FontSerif = "serif"
	FontSans  = "sans"
	FontMono  = "mono"
	FontGo    = "go"
)

// Theme holds every parameter used when drawing a figure. Lengths are in
// points, the figure size in inches.
type Theme struct {
	AxesLineWidth   float64
	GridLineWidth   float64
	MajorTickWidth  float64
	MinorTickWidth  float64
	MajorTickLength float64
	MinorTickLength float64
	MajorTickPad    float64
	MinorTickPad    float64
	PatchLineWidth  float64
	MarkerEdgeWidth float64
	LineWidth       float64
	MarkerSize      float64
	FontSize        float64

	DPI     float64
	FigSize layout.Size

	// Margin widens the data range on each side by this fraction.
	Margin      float64
	Grid        bool
	GridMajor   LineType
	GridMinor   LineType
	MinorTicks  bool
	TopSpine    bool
	RightSpine  bool
	SpineBounds bool
	ReduceTicks bool

	LegendFrame      bool
	LegendFrameAlpha float64
	LegendFontScale  float64
	TitlePad         float64
	LabelPad         float64

	AxesColor  colorful.Color
	LabelColor colorful.Color
	TextColor  colorful.Color
	GridColor  colorful.Color
	Background colorful.Color

	Cycle []colorful.Color
	Cmap  string
	Font  string
	Latex bool
}

// DefaultTheme returns the library defaults, without any prettyplot
// cosmetics.
func DefaultTheme() Theme {
	t := Theme{
		DPI:     ScreenDPI,
		FigSize: layout.Size{W: 6.4, H: 4.8},

		Margin:     0.05,
		GridMajor:  SolidLine,
		GridMinor:  SolidLine,
		TopSpine:   true,
		RightSpine: true,

		LegendFrame:      true,
		LegendFrameAlpha: 0.8,
		LegendFontScale:  1,
		TitlePad:         6,
		LabelPad:         4,

		AxesColor:  colors.Black,
		LabelColor: colors.Black,
		TextColor:  colors.Black,
		GridColor:  colors.MustParse("#b0b0b0"),
		Background: colors.White,

		Cmap: "turbo",
		Font: FontSerif,
	}
	for _, h := range []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	} {
		t.Cycle = append(t.Cycle, colors.MustParse(h))
	}
	t.applyMode(ModeDefault)
	return t
}

// applyMode sets all mode dependent sizes from the base sizes.
func (t *Theme) applyMode(m Mode) {
	s := ScalesFor(m)
	t.AxesLineWidth = s.Small * baseAxesLineWidth
	t.GridLineWidth = s.Small * baseGridLineWidth
	t.MajorTickWidth = s.Small * baseMajorTickWidth
	t.MinorTickWidth = s.Small * baseMinorTickWidth
	t.MajorTickLength = s.Tick * baseMajorTickLength
	t.MinorTickLength = s.Tick * baseMinorTickLength
	t.MajorTickPad = s.Tick * baseMajorTickPad
	t.MinorTickPad = s.Tick * baseMinorTickPad
	t.PatchLineWidth = s.Medium * basePatchLineWidth
	t.MarkerEdgeWidth = s.Medium * baseMarkerEdgeWidth
	t.LineWidth = s.Large * baseLineWidth
	t.MarkerSize = s.Large * baseMarkerSize
	t.FontSize = s.FontSize
}

// applyGrays colors axes, labels and text in the dark tone and the grid in
// the light one.
func (t *Theme) applyGrays(g colors.GrayTones, darkMode bool) {
	t.AxesColor = g.Dark
	t.LabelColor = g.Dark
	t.TextColor = g.Dark
	t.GridColor = g.Light
	t.Background = colors.White
	if darkMode {
		t.Background = darkBackground
	}
}

var darkBackground = colors.MustParse("#121212")

// LegendFrameWidth is the line width of the legend frame, zero if the
// frame is off.
func (t Theme) LegendFrameWidth() float64 {
	if !t.LegendFrame {
		return 0
	}
	return t.AxesLineWidth
}

// -------------------------------------------------------------------------
// Presets

// preset is the content of a style file in stylelib. Unset keys leave
// the theme alone.
type preset struct {
	Grid             *bool     `toml:"grid"`
	GridMajor        *LineType `toml:"grid_major"`
	GridMinor        *LineType `toml:"grid_minor"`
	MinorTicks       *bool     `toml:"minor_ticks"`
	TopSpine         *bool     `toml:"top_spine"`
	RightSpine       *bool     `toml:"right_spine"`
	SpineBounds      *bool     `toml:"spine_bounds"`
	ReduceTicks      *bool     `toml:"reduce_ticks"`
	Margin           *float64  `toml:"margin"`
	LegendFrame      *bool     `toml:"legend_frame"`
	LegendFrameAlpha *float64  `toml:"legend_frame_alpha"`
	LegendFontScale  *float64  `toml:"legend_font_scale"`
	TitlePad         *float64  `toml:"title_pad"`
	LabelPad         *float64  `toml:"label_pad"`
}

// loadPreset decodes stylelib/<name>.toml. Unknown keys are an error.
func loadPreset(name string) (preset, error) {
	var p preset
	path := "stylelib/" + name + ".toml"
	md, err := toml.DecodeFS(stylelib, path, &p)
	if err != nil {
		return preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding style preset %s", path)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return preset{}, errors.New(errors.ErrCodeInvalidConfig,
			"style preset %s has unknown key %q", path, und[0].String())
	}
	return p, nil
}

// presetsFor lists the presets of style s in the order they are applied.
func presetsFor(s Style) []string {
	switch s {
	case StyleDefault:
		return []string{"default"}
	case StyleMinimal:
		return []string{"default", "minimal"}
	}
	return nil
}

func (t *Theme) applyPreset(p preset) {
	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setBool(&t.Grid, p.Grid)
	if p.GridMajor != nil {
		t.GridMajor = *p.GridMajor
	}
	if p.GridMinor != nil {
		t.GridMinor = *p.GridMinor
	}
	setBool(&t.MinorTicks, p.MinorTicks)
	setBool(&t.TopSpine, p.TopSpine)
	setBool(&t.RightSpine, p.RightSpine)
	setBool(&t.SpineBounds, p.SpineBounds)
	setBool(&t.ReduceTicks, p.ReduceTicks)
	setFloat(&t.Margin, p.Margin)
	setBool(&t.LegendFrame, p.LegendFrame)
	setFloat(&t.LegendFrameAlpha, p.LegendFrameAlpha)
	setFloat(&t.LegendFontScale, p.LegendFontScale)
	setFloat(&t.TitlePad, p.TitlePad)
	setFloat(&t.LabelPad, p.LabelPad)
}
