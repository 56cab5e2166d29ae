// Package layout holds the numeric and geometric bookkeeping of prettyplot:
// figure ratios and sizes, axis sides and outside placements, extents,
// canvas-size correction, subplot neighbourhoods and tick reduction.
//
// Nothing in here draws. All functions are pure and work in plain float64
// coordinates so that they can be tested without a rendering backend.
package layout

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vdobler/prettyplot/errors"
)

// Named aspect ratios.
const (
	Sqrt2  = math.Sqrt2
	Sqrt3  = 1.7320508075688772935274463415058723669428052538103806280558069794
	Golden = math.Phi
)

var namedRatios = map[string]float64{
	"sqrt(2)": Sqrt2,
	"sqrt(3)": Sqrt3,
	"golden":  Golden,
}

// RatioNames returns the accepted ratio names in sorted order.
func RatioNames() []string {
	names := make([]string, 0, len(namedRatios))
	for n := range namedRatios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Size is a width and a height in inches.
type Size struct {
	W, H float64
}

func (s Size) String() string {
	return fmt.Sprintf("(%g, %g)", s.W, s.H)
}

// ParseRatio resolves a ratio spec, either a number like "1.5" or one of
// the names returned by RatioNames.
func ParseRatio(spec string) (float64, error) {
	spec = strings.TrimSpace(spec)
	if r, ok := namedRatios[spec]; ok {
		return r, nil
	}
	r, err := strconv.ParseFloat(spec, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidRatio,
			"ratio %q needs to be a number or one of [%s]", spec, strings.Join(RatioNames(), ", "))
	}
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidRatio,
			"ratio %q needs to be a finite positive number", spec)
	}
	return r, nil
}

// ParseSize resolves a size spec. Two values are returned verbatim and the
// ratio is ignored. A single value is the width; the height is derived
// from the ratio, which must then be given.
func ParseSize(spec []float64, ratio string) (Size, error) {
	for i, v := range spec {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return Size{}, errors.New(errors.ErrCodeInvalidSize,
				"size element %d is %g, needs to be a finite positive number", i, v)
		}
	}

	switch len(spec) {
	case 2:
		return Size{W: spec[0], H: spec[1]}, nil
	case 1:
		if strings.TrimSpace(ratio) == "" {
			return Size{}, errors.New(errors.ErrCodeInvalidSize,
				"a single size value requires a ratio but none was given")
		}
		r, err := ParseRatio(ratio)
		if err != nil {
			return Size{}, err
		}
		return Size{W: spec[0], H: spec[0] / r}, nil
	}
	return Size{}, errors.New(errors.ErrCodeInvalidSize,
		"size needs one or two values, not %d", len(spec))
}

// ParseSizeString is ParseSize for textual specs like "3", "3,2", "3x2"
// or "(3, 2)".
func ParseSizeString(spec, ratio string) (Size, error) {
	s := strings.TrimSpace(spec)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ",")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == ' '
	})
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Size{}, errors.Wrap(errors.ErrCodeInvalidSize, err,
				"size %q contains non-numeric element %q", spec, f)
		}
		values[i] = v
	}
	return ParseSize(values, ratio)
}
