package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/vdobler/prettyplot/errors"
)

// PointsPerInch converts inches to the points used for drawing.
const PointsPerInch = 72

// Extent is a length either relative to some reference length ("7%") or
// absolute in inches ("0.2").
type Extent struct {
	Value    float64
	Relative bool
}

// ParseExtent parses "7%" or "0.2". Negative values are rejected.
func ParseExtent(s string) (Extent, error) {
	t := strings.TrimSpace(s)
	rel := strings.HasSuffix(t, "%")
	t = strings.TrimSpace(strings.TrimSuffix(t, "%"))
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return Extent{}, errors.Wrap(errors.ErrCodeInvalidExtent, err,
			"extent %q needs to be a number of inches or a percentage like \"7%%\"", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Extent{}, errors.New(errors.ErrCodeInvalidExtent,
			"extent %q needs to be finite and non-negative", s)
	}
	return Extent{Value: v, Relative: rel}, nil
}

// Points resolves e in points. Relative extents refer to ref, which is
// given in points as well.
func (e Extent) Points(ref float64) float64 {
	if e.Relative {
		return e.Value / 100 * ref
	}
	return e.Value * PointsPerInch
}

func (e Extent) String() string {
	s := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if e.Relative {
		return s + "%"
	}
	return s
}
