package layout

import (
	"math"

	"github.com/vdobler/prettyplot/errors"
)

// Measurer draws a figure on a canvas of the given size and reports which
// fraction of the canvas width and height the plotted region actually
// occupies. Both fractions must be in (0, 1].
type Measurer func(canvas Size) (fx, fy float64, err error)

// Correction is the outcome of CorrectCanvas.
type Correction struct {
	Canvas    Size
	Passes    int
	Converged bool
}

// CorrectCanvas enlarges the canvas so that the plotted region ends up with
// the requested size. Each pass divides the requested size by the measured
// fractions; the loop stops once neither dimension moved more than eps or
// after maxIter passes.
func CorrectCanvas(req Size, measure Measurer, maxIter int, eps float64) (Correction, error) {
	if req.W <= 0 || req.H <= 0 || math.IsNaN(req.W) || math.IsNaN(req.H) {
		return Correction{}, errors.New(errors.ErrCodeInvalidSize,
			"requested size %v needs two positive values", req)
	}
	if maxIter < 1 {
		maxIter = 1
	}

	canvas := req
	res := Correction{Canvas: canvas}
	for res.Passes < maxIter {
		fx, fy, err := measure(canvas)
		if err != nil {
			return Correction{}, errors.Wrap(errors.ErrCodeRender, err, "measuring canvas %v", canvas)
		}
		if !(fx > 0 && fx <= 1) || !(fy > 0 && fy <= 1) {
			return Correction{}, errors.New(errors.ErrCodeInvalidSize,
				"measured fractions (%g, %g) need to be in (0, 1]", fx, fy)
		}
		next := Size{W: req.W / fx, H: req.H / fy}
		res.Passes++
		moved := math.Max(math.Abs(next.W-canvas.W), math.Abs(next.H-canvas.H))
		canvas = next
		res.Canvas = canvas
		if moved < eps {
			res.Converged = true
			break
		}
	}
	return res, nil
}
