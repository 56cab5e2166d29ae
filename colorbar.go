package prettyplot

import (
	"image"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

// ColorbarOptions configure Axes.Colorbar.
type ColorbarOptions struct {
	// Width and Pad are inches like "0.2" or percentages of the data
	// area like "7%". Defaults are "7%" and "0%".
	Width, Pad string
	// Position is "top", "bottom", "left" or "right", the default.
	Position string
	Label    string
}

// Colorbar shows the color scale of an Image next to the axes.
type Colorbar struct {
	img   *Image
	side  layout.Side
	width layout.Extent
	pad   layout.Extent
	label string
}

// colorbarSteps is the resolution of the drawn color gradient.
const colorbarSteps = 256

// Colorbar attaches a colorbar for img to a. The axis on the colorbar's
// side moves to the opposite side.
func (a *Axes) Colorbar(img *Image, opts ColorbarOptions) (*Colorbar, error) {
	if img == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "colorbar needs an image")
	}
	if opts.Width == "" {
		opts.Width = "7%"
	}
	if opts.Pad == "" {
		opts.Pad = "0%"
	}
	if opts.Position == "" {
		opts.Position = "right"
	}
	side, err := layout.ParseSide(opts.Position)
	if err != nil {
		return nil, err
	}
	width, err := layout.ParseExtent(opts.Width)
	if err != nil {
		return nil, err
	}
	pad, err := layout.ParseExtent(opts.Pad)
	if err != nil {
		return nil, err
	}
	if err := a.ActivateAxis(side.Opposite()); err != nil {
		return nil, err
	}
	cb := &Colorbar{img: img, side: side, width: width, pad: pad, label: opts.Label}
	a.colorbar = cb
	return cb, nil
}

// Side returns where the colorbar is drawn.
func (cb *Colorbar) Side() layout.Side { return cb.side }

// extent returns the room the colorbar takes beyond the axis decoration:
// abs points plus rel times the data width (left, right) or height.
func (cb *Colorbar) extent(st styles, t Theme) (abs vg.Length, rel float64) {
	for _, e := range []layout.Extent{cb.width, cb.pad} {
		if e.Relative {
			rel += e.Value / 100
		} else {
			abs += vg.Length(e.Points(0))
		}
	}
	abs += sideExtent(t, st, cb.side, cb.img.Scale.ticks(), true, cb.label)
	return abs, rel
}

// rect returns the rectangle of the color gradient for the data area
// data. start is the distance of the colorbar from the data area.
func (cb *Colorbar) rect(data vg.Rectangle, start vg.Length) vg.Rectangle {
	ref := data.Size().X
	if cb.side.Horizontal() {
		ref = data.Size().Y
	}
	pad := vg.Length(cb.pad.Points(float64(ref)))
	w := vg.Length(cb.width.Points(float64(ref)))
	r := data
	switch cb.side {
	case layout.Right:
		r.Min.X = data.Max.X + start + pad
		r.Max.X = r.Min.X + w
	case layout.Left:
		r.Max.X = data.Min.X - start - pad
		r.Min.X = r.Max.X - w
	case layout.Top:
		r.Min.Y = data.Max.Y + start + pad
		r.Max.Y = r.Min.Y + w
	case layout.Bottom:
		r.Max.Y = data.Min.Y - start - pad
		r.Min.Y = r.Max.Y - w
	}
	return r
}

// gradient renders the scale from its minimum to its maximum: bottom to
// top for vertical bars, left to right otherwise.
func (cb *Colorbar) gradient() image.Image {
	s := cb.img.Scale
	vertical := !cb.side.Horizontal()
	w, h := colorbarSteps, 1
	if vertical {
		w, h = 1, colorbarSteps
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < colorbarSteps; i++ {
		v := s.DomainMin + (float64(i)+0.5)/colorbarSteps*(s.DomainMax-s.DomainMin)
		if vertical {
			img.Set(0, colorbarSteps-1-i, s.Color(v))
		} else {
			img.Set(i, 0, s.Color(v))
		}
	}
	return img
}

func (cb *Colorbar) draw(dc draw.Canvas, st styles, t Theme, start vg.Length) {
	r := cb.rect(dc.Rectangle, start)
	if r.Size().X <= 0 || r.Size().Y <= 0 {
		return
	}
	dc.DrawImage(r, cb.gradient())
	dc.StrokeLines(st.spine, []vg.Point{
		r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}, r.Min,
	})

	s := cb.img.Scale
	norm := func(v float64) float64 { return (v - s.DomainMin) / (s.DomainMax - s.DomainMin) }
	bar := draw.Canvas{Canvas: dc.Canvas, Rectangle: r}
	drawSide(bar, t, st, cb.side, norm, s.ticks(), true, cb.label)
}
