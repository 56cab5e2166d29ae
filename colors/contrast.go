package colors

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vdobler/prettyplot/errors"
)

// Black and White are the default text color candidates.
var (
	Black = colorful.Color{R: 0, G: 0, B: 0}
	White = colorful.Color{R: 1, G: 1, B: 1}
)

func checkUnit(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return errors.New(errors.ErrCodeInvalidNumber,
			"%s needs to be within [0, 1] but given %g", name, v)
	}
	return nil
}

func channel(c float64) float64 {
	if c < 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance computes the WCAG 2.1 relative luminance of c.
func RelativeLuminance(c colorful.Color) (float64, error) {
	for _, ch := range [...]struct {
		name string
		v    float64
	}{{"red channel", c.R}, {"green channel", c.G}, {"blue channel", c.B}} {
		if err := checkUnit(ch.name, ch.v); err != nil {
			return 0, err
		}
	}
	return 0.2126*channel(c.R) + 0.7152*channel(c.G) + 0.0722*channel(c.B), nil
}

// Contrast computes the WCAG contrast ratio of two luminances. The result
// is symmetric and lies in [1, 21].
func Contrast(l1, l2 float64) (float64, error) {
	if err := checkUnit("luminance", l1); err != nil {
		return 0, err
	}
	if err := checkUnit("luminance", l2); err != nil {
		return 0, err
	}
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), nil
}

// TextColor returns the candidate with the highest contrast on bg.
// Without candidates it chooses between Black and White. On ties the
// first candidate wins.
func TextColor(bg colorful.Color, candidates ...colorful.Color) (colorful.Color, error) {
	if len(candidates) == 0 {
		candidates = []colorful.Color{Black, White}
	}
	i, err := bestContrast(bg, candidates)
	if err != nil {
		return colorful.Color{}, err
	}
	return candidates[i], nil
}

// TextColorName is TextColor on color strings. The winning candidate is
// returned exactly as given. Without candidates it chooses between
// "#000000" and "#ffffff".
func TextColorName(bg string, candidates ...string) (string, error) {
	if len(candidates) == 0 {
		candidates = []string{"#000000", "#ffffff"}
	}
	bgc, err := Parse(bg)
	if err != nil {
		return "", err
	}
	cs := make([]colorful.Color, len(candidates))
	for i, s := range candidates {
		if cs[i], err = Parse(s); err != nil {
			return "", err
		}
	}
	i, err := bestContrast(bgc, cs)
	if err != nil {
		return "", err
	}
	return candidates[i], nil
}

func bestContrast(bg colorful.Color, candidates []colorful.Color) (int, error) {
	lbg, err := RelativeLuminance(bg)
	if err != nil {
		return 0, err
	}
	best, bestContrast := 0, -1.0
	for i, c := range candidates {
		l, err := RelativeLuminance(c)
		if err != nil {
			return 0, err
		}
		contrast, err := Contrast(lbg, l)
		if err != nil {
			return 0, err
		}
		if contrast > bestContrast {
			best, bestContrast = i, contrast
		}
	}
	return best, nil
}
