package prettyplot

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

// Canvas correction parameters used by Save and WriteTo.
const (
	correctionPasses = 3
	correctionEps    = 0.001
)

// Formats lists the file formats understood by WriteTo and Save.
var Formats = NewStringSetFrom([]string{"png", "jpg", "jpeg", "tif", "tiff", "pdf", "svg", "eps"})

// Figure is a grid of Axes drawn with the theme of the StyleContext it
// was created from. Later changes to the context do not affect it.
type Figure struct {
	// Size is the requested size of the first axes' data area in
	// inches. Saving never changes it.
	Size layout.Size
	// KeepSize uses Size as canvas size and skips the correction.
	KeepSize bool

	ctx     *StyleContext
	theme   Theme
	style   Style
	mode    Mode
	logger  *log.Logger
	handler text.Handler
	st      styles

	rows, cols int
	axes       []*Axes
	grobs      []Grob

	xlabel, ylabel string
}

// NewFigure returns a figure with rows×cols axes using the current theme
// of ctx.
func NewFigure(ctx *StyleContext, rows, cols int) (*Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidNumber,
			"figure needs at least one row and column but got %d×%d", rows, cols)
	}
	ctx.mu.RLock()
	f := &Figure{
		ctx:    ctx,
		theme:  ctx.theme,
		style:  ctx.style,
		mode:   ctx.mode,
		logger: ctx.logger,
		rows:   rows,
		cols:   cols,
	}
	f.theme.Cycle = append(f.theme.Cycle[:0:0], ctx.theme.Cycle...)
	ctx.mu.RUnlock()
	f.Size = f.theme.FigSize

	var err error
	if f.handler, err = textHandler(f.theme); err != nil {
		return nil, err
	}
	if f.st, err = f.newStyles(); err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.axes = append(f.axes, newAxes(f, layout.Cell(r, c)))
		}
	}
	return f, nil
}

// Axes returns the axes in row r and column c. It panics if they are out
// of range.
func (f *Figure) Axes(r, c int) *Axes {
	if r < 0 || r >= f.rows || c < 0 || c >= f.cols {
		panic("prettyplot: axes index out of range")
	}
	return f.axes[r*f.cols+c]
}

// AllAxes returns the axes row by row.
func (f *Figure) AllAxes() []*Axes { return append([]*Axes(nil), f.axes...) }

// Shape returns the number of rows and columns.
func (f *Figure) Shape() (rows, cols int) { return f.rows, f.cols }

// Theme returns the theme the figure is drawn with.
func (f *Figure) Theme() Theme { return f.theme }

// SetSize sets Size like the figsize and figratio config entries.
func (f *Figure) SetSize(spec []float64, ratio string) error {
	s, err := layout.ParseSize(spec, ratio)
	if err != nil {
		return err
	}
	f.Size = s
	return nil
}

// -------------------------------------------------------------------------
// Styles

// styles are the text and line styles derived from the theme.
type styles struct {
	tick, label, title, legend text.Style

	spine, major, minor  draw.LineStyle
	gridMajor, gridMinor draw.LineStyle

	background  color.Color
	legendAlpha float64
}

func (f *Figure) textStyle(size float64, c color.Color) (text.Style, error) {
	fnt, err := fontFor(f.theme.Font, size)
	if err != nil {
		return text.Style{}, err
	}
	return text.Style{Color: c, Font: fnt, Handler: f.handler}, nil
}

func (f *Figure) newStyles() (styles, error) {
	t := f.theme
	var st styles
	for _, s := range []struct {
		dst   *text.Style
		scale float64
		color color.Color
	}{
		{&st.tick, 1, t.LabelColor},
		{&st.label, 1, t.LabelColor},
		{&st.title, 1.2, t.TextColor},
		{&st.legend, t.LegendFontScale, t.TextColor},
	} {
		sty, err := f.textStyle(t.FontSize*s.scale, s.color)
		if err != nil {
			return styles{}, err
		}
		*s.dst = sty
	}
	st.spine = draw.LineStyle{Color: t.AxesColor, Width: vg.Points(t.AxesLineWidth)}
	st.major = draw.LineStyle{Color: t.AxesColor, Width: vg.Points(t.MajorTickWidth)}
	st.minor = draw.LineStyle{Color: t.AxesColor, Width: vg.Points(t.MinorTickWidth)}
	st.gridMajor = t.GridMajor.LineStyle(t.GridColor, vg.Points(t.GridLineWidth))
	st.gridMinor = t.GridMinor.LineStyle(t.GridColor, vg.Points(t.MinorTickWidth))
	st.background = t.Background
	st.legendAlpha = t.LegendFrameAlpha
	return st, nil
}

func (a *Axes) styles() styles { return a.fig.st }

// -------------------------------------------------------------------------
// Drawing

// Draw draws the figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	GrobRect{xmin: 0, ymin: 0, xmax: 1, ymax: 1, fill: f.theme.Background}.Draw(fractionViewport(c))

	pad := vg.Points(f.theme.FontSize / 2)
	inner := c.Rectangle
	inner.Min.X += pad
	inner.Min.Y += pad
	inner.Max.X -= pad
	inner.Max.Y -= pad

	// Subplot labels take a band at the bottom and at the left.
	sty := f.st.label
	if f.xlabel != "" {
		s := sty
		s.XAlign, s.YAlign = draw.XCenter, draw.YBottom
		c.FillText(s, vg.Point{X: (inner.Min.X + inner.Max.X) / 2, Y: inner.Min.Y}, f.xlabel)
		inner.Min.Y += s.Height(f.xlabel) + vg.Points(f.theme.LabelPad)
	}
	if f.ylabel != "" {
		s := sty
		s.Rotation = math.Pi / 2
		s.XAlign, s.YAlign = draw.XCenter, draw.YTop
		c.FillText(s, vg.Point{X: inner.Min.X, Y: (inner.Min.Y + inner.Max.Y) / 2}, f.ylabel)
		inner.Min.X += s.Height(f.ylabel) + vg.Points(f.theme.LabelPad)
	}

	grid := draw.Canvas{Canvas: c.Canvas, Rectangle: inner}
	tiles := draw.Tiles{
		Rows: f.rows, Cols: f.cols,
		PadX: vg.Points(f.theme.FontSize), PadY: vg.Points(f.theme.FontSize),
	}
	for _, a := range f.axes {
		a.draw(f.cell(tiles, grid, a.span))
	}

	vp := fractionViewport(c)
	for _, g := range f.grobs {
		g.Draw(vp)
	}
}

// cell returns the canvas covering all tiles of span.
func (f *Figure) cell(tiles draw.Tiles, c draw.Canvas, span layout.Span) draw.Canvas {
	tl := tiles.At(c, span.Col0, span.Row0)
	br := tiles.At(c, span.Col1-1, span.Row1-1)
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: tl.Min.X, Y: br.Min.Y},
			Max: vg.Point{X: br.Max.X, Y: tl.Max.Y},
		},
	}
}

// firstVisible returns the first axes not hidden, nil if there is none.
func (f *Figure) firstVisible() *Axes {
	for _, a := range f.axes {
		if !a.hidden {
			return a
		}
	}
	return nil
}

// measure draws f onto a recording canvas of the given size and reports
// the fraction of it taken by the data area of the first visible axes.
func (f *Figure) measure(size layout.Size) (fx, fy float64, err error) {
	a := f.firstVisible()
	if a == nil {
		return 0, 0, errors.New(errors.ErrCodeNotFound, "figure has no visible axes to measure")
	}
	w, h := vg.Length(size.W)*vg.Inch, vg.Length(size.H)*vg.Inch
	f.Draw(draw.NewCanvas(&recorder.Canvas{}, w, h))
	d := a.data.Size()
	return float64(d.X / w), float64(d.Y / h), nil
}

// canvasSize returns the size of the canvas to draw on when saving.
// Beamer and poster triple the figure; the minimal style thins out the
// ticks before measuring.
func (f *Figure) canvasSize() (layout.Size, error) {
	size := f.Size
	if f.mode.enlarged() {
		size = layout.Size{W: 3 * size.W, H: 3 * size.H}
	}
	if f.theme.ReduceTicks {
		f.reduceTicks()
	}
	if f.KeepSize || f.firstVisible() == nil {
		return size, nil
	}
	res, err := layout.CorrectCanvas(size, f.measure, correctionPasses, correctionEps)
	if err != nil {
		return layout.Size{}, err
	}
	if !res.Converged {
		f.logger.Warn("canvas correction did not converge", "requested", size, "canvas", res.Canvas, "passes", res.Passes)
	}
	return res.Canvas, nil
}

// WriteTo draws f in the given format, one of Formats, to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if !Formats.Contains(format) {
		return 0, errors.New(errors.ErrCodeInvalidFormat,
			"format %q needs to be one of %s", format, strings.Join(Formats.Elements(), ", "))
	}
	size, err := f.canvasSize()
	if err != nil {
		return 0, err
	}
	c := f.newCanvas(format, vg.Length(size.W)*vg.Inch, vg.Length(size.H)*vg.Inch)
	f.Draw(draw.New(c))
	n, err := c.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(errors.ErrCodeRender, err, "writing %s", format)
	}
	return n, nil
}

func (f *Figure) newCanvas(format string, w, h vg.Length) vg.CanvasWriterTo {
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(f.theme.DPI)))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster()}
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster()}
	case "svg":
		return vgsvg.New(w, h)
	case "eps":
		return vgeps.New(w, h)
	}
	return vgpdf.New(w, h)
}

// Save writes f to path in the format given by its extension. A path
// without extension gets ".pdf". Size is left unchanged.
func (f *Figure) Save(path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".pdf"
		path += ext
	}
	format := strings.ToLower(ext[1:])
	if !Formats.Contains(format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"extension %q of %s needs to be one of %s", ext, path, strings.Join(Formats.Elements(), ", "))
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "creating %s", path)
	}
	n, err := f.WriteTo(file, format)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = errors.Wrap(errors.ErrCodeRender, cerr, "closing %s", path)
	}
	if err != nil {
		return err
	}
	f.logger.Info("saved figure", "path", path, "bytes", n, "size", f.Size)
	return nil
}
