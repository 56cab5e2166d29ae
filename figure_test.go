package prettyplot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	perrors "github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

// screenConfig keeps raster output small.
var screenConfig = Config{IPython: Ptr(true)}

func lineFigure(t *testing.T, cfg Config) *Figure {
	t.Helper()
	f := newTestFigure(t, cfg, 1, 1)
	a := f.Axes(0, 0)
	if _, err := a.Plot([]float64{0, 1, 2, 3}, []float64{1, 3, 2, 4}, LineOptions{Label: "data"}); err != nil {
		t.Fatalf("Plot() error = %v", err)
	}
	a.SetXLabel("x")
	a.SetYLabel("y")
	a.SetTitle("title")
	return f
}

func TestNewFigure(t *testing.T) {
	f := newTestFigure(t, Config{}, 2, 3)
	if r, c := f.Shape(); r != 2 || c != 3 || len(f.AllAxes()) != 6 {
		t.Fatalf("Shape() = %d, %d with %d axes, want 2, 3 with 6", r, c, len(f.AllAxes()))
	}
	if s := f.Axes(1, 2).Span(); s != layout.Cell(1, 2) {
		t.Errorf("Axes(1, 2).Span() = %v, want %v", s, layout.Cell(1, 2))
	}
	if f.Size != f.Theme().FigSize {
		t.Errorf("Size = %v, want the theme figure size %v", f.Size, f.Theme().FigSize)
	}

	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		if _, err := NewFigure(newTestContext(t, Config{}), rc[0], rc[1]); !perrors.Is(err, perrors.ErrCodeInvalidNumber) {
			t.Errorf("NewFigure(%d, %d) error = %v, want %s", rc[0], rc[1], err, perrors.ErrCodeInvalidNumber)
		}
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Axes(2, 0) did not panic")
		}
	}()
	f.Axes(2, 0)
}

func TestFigureSnapshotsTheme(t *testing.T) {
	ctx := newTestContext(t, Config{})
	f, err := NewFigure(ctx, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Update(Config{Colors: Ptr("cbf4"), Cmap: Ptr("parula")}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if th := f.Theme(); len(th.Cycle) != 5 || th.Cmap != "turbo" {
		t.Errorf("figure theme followed Update(): cycle %d, cmap %s", len(th.Cycle), th.Cmap)
	}
}

func TestSetSize(t *testing.T) {
	f := newTestFigure(t, Config{}, 1, 1)
	if err := f.SetSize([]float64{4}, "2"); err != nil {
		t.Fatalf("SetSize() error = %v", err)
	}
	if f.Size.W != 4 || f.Size.H != 2 {
		t.Errorf("Size = %v, want 4×2", f.Size)
	}
	if err := f.SetSize([]float64{4}, ""); !perrors.Is(err, perrors.ErrCodeInvalidSize) {
		t.Errorf("SetSize([4], \"\") error = %v, want %s", err, perrors.ErrCodeInvalidSize)
	}
	if f.Size.W != 4 || f.Size.H != 2 {
		t.Errorf("failed SetSize() changed Size to %v", f.Size)
	}
}

func TestWriteTo(t *testing.T) {
	tests := []struct {
		format string
		check  func([]byte) bool
	}{
		{"png", func(b []byte) bool { return bytes.HasPrefix(b, []byte("\x89PNG")) }},
		{".PNG", func(b []byte) bool { return bytes.HasPrefix(b, []byte("\x89PNG")) }},
		{"jpg", func(b []byte) bool { return bytes.HasPrefix(b, []byte{0xff, 0xd8}) }},
		{"pdf", func(b []byte) bool { return bytes.HasPrefix(b, []byte("%PDF")) }},
		{"svg", func(b []byte) bool { return bytes.Contains(b, []byte("<svg")) }},
		{"eps", func(b []byte) bool { return bytes.Contains(b, []byte("PS-Adobe")) }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f := lineFigure(t, screenConfig)
			var buf bytes.Buffer
			n, err := f.WriteTo(&buf, tt.format)
			if err != nil {
				t.Fatalf("WriteTo() error = %v", err)
			}
			if n != int64(buf.Len()) || !tt.check(buf.Bytes()) {
				n := min(buf.Len(), 16)
				t.Errorf("WriteTo(%s) wrote %q...", tt.format, buf.Bytes()[:n])
			}
		})
	}

	f := lineFigure(t, screenConfig)
	if _, err := f.WriteTo(new(bytes.Buffer), "gif"); !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
		t.Errorf("WriteTo(gif) error = %v, want %s", err, perrors.ErrCodeInvalidFormat)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	f := lineFigure(t, screenConfig)
	size := f.Size

	if err := f.Save(filepath.Join(dir, "figure")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "figure.pdf")); err != nil {
		t.Errorf("Save() without extension did not write a pdf: %v", err)
	}
	if err := f.Save(filepath.Join(dir, "figure.SVG")); err != nil {
		t.Fatalf("Save(.SVG) error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "figure.SVG")); err != nil {
		t.Errorf("Save(.SVG) did not write the file: %v", err)
	}
	if f.Size != size {
		t.Errorf("Save() changed Size from %v to %v", size, f.Size)
	}

	gif := filepath.Join(dir, "figure.gif")
	if err := f.Save(gif); !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
		t.Errorf("Save(gif) error = %v, want %s", err, perrors.ErrCodeInvalidFormat)
	}
	if _, err := os.Stat(gif); !os.IsNotExist(err) {
		t.Errorf("Save(gif) created %s", gif)
	}
	if err := f.Save(filepath.Join(dir, "missing", "figure.png")); !perrors.Is(err, perrors.ErrCodeRender) {
		t.Errorf("Save() into a missing directory error = %v, want %s", err, perrors.ErrCodeRender)
	}
}

func TestCanvasSize(t *testing.T) {
	f := lineFigure(t, Config{})
	canvas, err := f.canvasSize()
	if err != nil {
		t.Fatalf("canvasSize() error = %v", err)
	}
	if canvas.W <= f.Size.W || canvas.H <= f.Size.H {
		t.Errorf("canvasSize() = %v, want larger than the data area %v", canvas, f.Size)
	}
	// The corrected canvas brings the data area much closer to Size than
	// drawing on a canvas of Size itself.
	fx0, fy0, err := f.measure(f.Size)
	if err != nil {
		t.Fatalf("measure() error = %v", err)
	}
	fx, fy, err := f.measure(canvas)
	if err != nil {
		t.Fatalf("measure() error = %v", err)
	}
	before := math.Abs(fx0*f.Size.W - f.Size.W)
	if after := math.Abs(fx*canvas.W - f.Size.W); after > before/2 {
		t.Errorf("data width misses %g in after correction, %g in before", after, before)
	}
	before = math.Abs(fy0*f.Size.H - f.Size.H)
	if after := math.Abs(fy*canvas.H - f.Size.H); after > before/2 {
		t.Errorf("data height misses %g in after correction, %g in before", after, before)
	}
}

func TestCanvasSizeKeepSize(t *testing.T) {
	tests := []struct {
		mode   Mode
		factor float64
	}{
		{ModeDefault, 1},
		{ModePrint, 1},
		{ModeBeamer, 3},
		{ModePoster, 3},
	}
	for _, tt := range tests {
		f := lineFigure(t, Config{Mode: Ptr(tt.mode)})
		f.KeepSize = true
		got, err := f.canvasSize()
		if err != nil {
			t.Fatalf("%s: canvasSize() error = %v", tt.mode, err)
		}
		if got.W != tt.factor*f.Size.W || got.H != tt.factor*f.Size.H {
			t.Errorf("%s: canvasSize() = %v, want %g × %v", tt.mode, got, tt.factor, f.Size)
		}
	}

	empty := newTestFigure(t, Config{}, 1, 1)
	empty.HideEmptyAxes()
	if got, err := empty.canvasSize(); err != nil || got != empty.Size {
		t.Errorf("canvasSize() without visible axes = %v, %v, want %v", got, err, empty.Size)
	}
}

// dataArea draws f on a fixed canvas and returns the data area of the
// first axes.
func dataArea(f *Figure) vg.Rectangle {
	f.Draw(draw.NewCanvas(&recorder.Canvas{}, 400, 300))
	return f.Axes(0, 0).DataArea()
}

func TestDataAreaShrinks(t *testing.T) {
	base := dataArea(lineFigure(t, Config{}))
	if base.Size().X <= 0 || base.Size().Y <= 0 {
		t.Fatalf("data area = %v", base)
	}
	if base.Min.X < 0 || base.Max.X > 400 || base.Min.Y < 0 || base.Max.Y > 300 {
		t.Errorf("data area %v is outside the canvas", base)
	}

	right := lineFigure(t, Config{})
	right.Axes(0, 0).Legend(LegendOptions{Outside: "right"})
	if got := dataArea(right); got.Size().X >= base.Size().X {
		t.Errorf("data width with a right legend = %v, want less than %v", got.Size().X, base.Size().X)
	}

	top := lineFigure(t, Config{})
	top.Axes(0, 0).Legend(LegendOptions{Outside: "top"})
	if got := dataArea(top); got.Size().Y >= base.Size().Y {
		t.Errorf("data height with a top legend = %v, want less than %v", got.Size().Y, base.Size().Y)
	}

	cb := lineFigure(t, Config{})
	img, err := cb.Axes(0, 0).Imshow([][]float64{{0, 1}, {2, 3}}, ImageOptions{})
	if err != nil {
		t.Fatal(err)
	}
	cb.Axes(0, 0).Colorbar(img, ColorbarOptions{})
	if got := dataArea(cb); got.Size().X >= base.Size().X {
		t.Errorf("data width with a colorbar = %v, want less than %v", got.Size().X, base.Size().X)
	}

	labelled := lineFigure(t, Config{})
	labelled.SubplotLabels("time", "value")
	if got := dataArea(labelled); got.Size().X >= base.Size().X || got.Size().Y >= base.Size().Y {
		t.Errorf("data area with subplot labels = %v, want smaller than %v", got.Size(), base.Size())
	}
}

func TestFigureText(t *testing.T) {
	f := lineFigure(t, Config{})
	if _, err := f.Text(0.5, 0.95, "caption", TextOptions{}); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if len(f.grobs) != 1 {
		t.Errorf("Text() kept %d grobs, want 1", len(f.grobs))
	}
	if _, err := f.WriteTo(new(bytes.Buffer), "svg"); err != nil {
		t.Errorf("WriteTo() with text error = %v", err)
	}
}
