package prettyplot

import (
	"sync"

	stdfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"

	"github.com/vdobler/prettyplot/errors"
)

var (
	fontsOnce sync.Once
	fonts     *font.Cache
	fontsErr  error
)

// goCollection parses the Go fonts shipped with x/image.
func goCollection() (font.Collection, error) {
	faces := []struct {
		variant font.Variant
		style   stdfont.Style
		weight  stdfont.Weight
		ttf     []byte
	}{
		{"", stdfont.StyleNormal, stdfont.WeightNormal, goregular.TTF},
		{"", stdfont.StyleNormal, stdfont.WeightBold, gobold.TTF},
		{"", stdfont.StyleItalic, stdfont.WeightNormal, goitalic.TTF},
		{"", stdfont.StyleItalic, stdfont.WeightBold, gobolditalic.TTF},
		{"Mono", stdfont.StyleNormal, stdfont.WeightNormal, gomono.TTF},
	}
	var coll font.Collection
	for _, f := range faces {
		otf, err := opentype.Parse(f.ttf)
		if err != nil {
			return nil, err
		}
		coll = append(coll, font.Face{
			Font: font.Font{Typeface: "Go", Variant: f.variant, Style: f.style, Weight: f.weight},
			Face: otf,
		})
	}
	return coll, nil
}

// fontCache returns the cache holding the Liberation and the Go fonts.
// Liberation is the default typeface.
func fontCache() (*font.Cache, error) {
	fontsOnce.Do(func() {
		c := font.NewCache(liberation.Collection())
		coll, err := goCollection()
		if err != nil {
			fontsErr = errors.Wrap(errors.ErrCodeRender, err, "parsing Go fonts")
			return
		}
		c.Add(coll)
		fonts = c
	})
	return fonts, fontsErr
}

// fontFor returns the font of a family name as used in Theme.Font.
func fontFor(family string, size float64) (font.Font, error) {
	var f font.Font
	switch family {
	case FontSerif, "":
		f = font.Font{Typeface: "Liberation", Variant: "Serif"}
	case FontSans:
		f = font.Font{Typeface: "Liberation", Variant: "Sans"}
	case FontMono:
		f = font.Font{Typeface: "Liberation", Variant: "Mono"}
	case FontGo:
		f = font.Font{Typeface: "Go"}
	default:
		return font.Font{}, errors.New(errors.ErrCodeInvalidConfig,
			"font %q needs to be one of %s, %s, %s or %s", family, FontSerif, FontSans, FontMono, FontGo)
	}
	f.Size = font.Points(size)
	return f, nil
}

// textHandler returns the handler drawing text for t: LaTeX if t.Latex is
// set, plain text otherwise.
func textHandler(t Theme) (text.Handler, error) {
	cache, err := fontCache()
	if err != nil {
		return nil, err
	}
	if t.Latex {
		return text.Latex{Fonts: cache, DPI: t.DPI}, nil
	}
	return text.Plain{Fonts: cache}, nil
}
