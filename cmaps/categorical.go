package cmaps

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/vdobler/prettyplot/colors"
	"github.com/vdobler/prettyplot/errors"
)

// Categorical picks nc colors from cm and expands each into nsc shades.
// Listed maps contribute their first nc colors, linear maps are sampled
// evenly over their whole range. Row i holds the shades of color i,
// starting with the color itself.
func Categorical(nc, nsc int, cm Colormap) ([][]colorful.Color, error) {
	if nc < 1 {
		return nil, errors.New(errors.ErrCodeInvalidNumber,
			"number of colors needs to be at least 1 but given %d", nc)
	}
	if nsc < 1 {
		return nil, errors.New(errors.ErrCodeInvalidNumber,
			"number of shades needs to be at least 1 but given %d", nsc)
	}
	if nc > cm.N() {
		return nil, errors.New(errors.ErrCodeTooManyCategories,
			"%d categories requested but colormap %q has only %d colors", nc, cm.Name(), cm.N())
	}

	var base []colorful.Color
	if cm.Discrete() {
		base = cm.Colors()[:nc]
	} else {
		xs := []float64{0}
		if nc > 1 {
			xs = floats.Span(make([]float64, nc), 0, 1)
		}
		for _, x := range xs {
			base = append(base, cm.At(x))
		}
	}

	out := make([][]colorful.Color, nc)
	for i, c := range base {
		shades, err := colors.Shades(nsc, c)
		if err != nil {
			return nil, err
		}
		out[i] = shades
	}
	return out, nil
}

// CategoricalMap is Categorical flattened into a listed colormap: all
// shades of the first color, then those of the second and so on.
func CategoricalMap(nc, nsc int, cm Colormap) (*Listed, error) {
	rows, err := Categorical(nc, nsc, cm)
	if err != nil {
		return nil, err
	}
	flat := make([]colorful.Color, 0, nc*nsc)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return NewListed(cm.Name()+"_categorical", flat), nil
}
