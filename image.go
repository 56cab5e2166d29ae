package prettyplot

import (
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/prettyplot/errors"
)

// ImageOptions style the output of Imshow.
type ImageOptions struct {
	// Cmap defaults to the theme's colormap.
	Cmap string
	// VMin and VMax fix the ends of the color scale.
	VMin, VMax *float64
	// Alpha is the opacity in (0, 1]; zero means opaque.
	Alpha float64
}

// Image is a raster of values drawn through a colormap. Cell (i, j) of
// the data covers [j-0.5, j+0.5] × [i-0.5, i+0.5]; row 0 is at the top.
type Image struct {
	Scale *Scale

	data       [][]float64
	rows, cols int
	raster     *image.NRGBA
}

// Imshow draws data as an image with z-order ImageZ: above the grid and
// below lines. The axes limits are fitted tightly around the image and the
// y axis points down.
func (a *Axes) Imshow(data [][]float64, opts ImageOptions) (*Image, error) {
	rows := len(data)
	if rows == 0 || len(data[0]) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidNumber, "image data needs at least one row and one column")
	}
	cols := len(data[0])
	cp := make([][]float64, rows)
	for i, row := range data {
		if len(row) != cols {
			return nil, errors.New(errors.ErrCodeInvalidNumber,
				"image row %d has %d values but row 0 has %d", i, len(row), cols)
		}
		cp[i] = append([]float64(nil), row...)
	}
	if opts.Alpha < 0 || opts.Alpha > 1 {
		return nil, errors.New(errors.ErrCodeInvalidNumber, "alpha %g needs to be in [0, 1]", opts.Alpha)
	}

	name := opts.Cmap
	if name == "" {
		name = a.fig.theme.Cmap
	}
	cm, err := a.fig.ctx.Colormap(name)
	if err != nil {
		return nil, err
	}
	s := NewScale(cm)
	s.Fix(opts.VMin, opts.VMax)
	s.Train(cp)
	if err := s.Prepare(); err != nil {
		return nil, err
	}
	if opts.Alpha > 0 {
		s.SetAlpha(opts.Alpha)
	}

	img := &Image{Scale: s, data: cp, rows: rows, cols: cols}
	a.add(&layer{plotter: img, z: ImageZ, sticky: true})
	a.y.inverted = true
	return img, nil
}

// Rows and Cols return the size of the image data.
func (img *Image) Rows() int { return img.rows }
func (img *Image) Cols() int { return img.cols }

// render returns the raster, row 0 first.
func (img *Image) render() *image.NRGBA {
	if img.raster != nil {
		return img.raster
	}
	r := image.NewNRGBA(image.Rect(0, 0, img.cols, img.rows))
	for i, row := range img.data {
		for j, v := range row {
			r.Set(j, i, img.Scale.Color(v))
		}
	}
	img.raster = r
	return r
}

func (img *Image) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	x0, x1 := trX(-0.5), trX(float64(img.cols)-0.5)
	yFirst, yLast := trY(-0.5), trY(float64(img.rows)-0.5)

	src := img.render()
	if yFirst < yLast {
		// Row 0 ends up at the bottom.
		src = flipRows(src)
	}
	rect := vg.Rectangle{
		Min: vg.Point{X: min(x0, x1), Y: min(yFirst, yLast)},
		Max: vg.Point{X: max(x0, x1), Y: max(yFirst, yLast)},
	}
	c.DrawImage(rect, src)
}

func flipRows(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		copy(dst.Pix[(b.Max.Y-1-y)*dst.Stride:], src.Pix[y*src.Stride:y*src.Stride+b.Dx()*4])
	}
	return dst
}

func (img *Image) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -0.5, float64(img.cols) - 0.5, -0.5, float64(img.rows) - 0.5
}
