package cmaps

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// morelandStops is the number of stops sampled from the moreland maps.
const morelandStops = 32

var morelandMaps = []struct {
	name string
	make func() palette.ColorMap
}{
	{"moreland:blackbody", moreland.BlackBody},
	{"moreland:extended_blackbody", moreland.ExtendedBlackBody},
	{"moreland:kindlmann", moreland.Kindlmann},
	{"moreland:extended_kindlmann", moreland.ExtendedKindlmann},
	{"moreland:smooth_blue_red", func() palette.ColorMap { return moreland.SmoothBlueRed() }},
	{"moreland:smooth_purple_orange", func() palette.ColorMap { return moreland.SmoothPurpleOrange() }},
	{"moreland:smooth_green_purple", func() palette.ColorMap { return moreland.SmoothGreenPurple() }},
	{"moreland:smooth_blue_tan", func() palette.ColorMap { return moreland.SmoothBlueTan() }},
	{"moreland:smooth_green_red", func() palette.ColorMap { return moreland.SmoothGreenRed() }},
}

func fromImageColors(cs []color.Color) []colorful.Color {
	out := make([]colorful.Color, 0, len(cs))
	for _, c := range cs {
		cc, _ := colorful.MakeColor(c)
		out = append(out, cc)
	}
	return out
}

// largest returns the palette with the most colors.
func largest[P palette.Palette](byCount map[int]P) []color.Color {
	best := -1
	for n := range byCount {
		if n > best {
			best = n
		}
	}
	if best < 0 {
		return nil
	}
	return byCount[best].Colors()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func brewerMaps() []Colormap {
	var maps []Colormap
	for _, name := range sortedKeys(brewer.QualitativePalettes) {
		cs := largest(brewer.QualitativePalettes[name])
		maps = append(maps, NewListed("brewer:"+name, fromImageColors(cs)))
	}
	for _, name := range sortedKeys(brewer.SequentialPalettes) {
		cs := largest(brewer.SequentialPalettes[name])
		maps = append(maps, NewLinear("brewer:"+name, fromImageColors(cs)))
	}
	for _, name := range sortedKeys(brewer.DivergingPalettes) {
		cs := largest(brewer.DivergingPalettes[name])
		maps = append(maps, NewLinear("brewer:"+name, fromImageColors(cs)))
	}
	return maps
}

// Builtins returns freshly built copies of all built-in colormaps.
func Builtins() []Colormap {
	maps := make([]Colormap, 0, len(listedData)+64)
	for _, d := range listedData {
		maps = append(maps, mustListed(d.name, d.colors...))
	}
	maps = append(maps,
		linearRGB("turbo", turboData),
		linearRGB("parula", parulaData),
		linearRGB("rainforest", rainforestData),
	)
	maps = append(maps, brewerMaps()...)
	for _, m := range morelandMaps {
		cs := m.make().Palette(morelandStops).Colors()
		maps = append(maps, NewLinear(m.name, fromImageColors(cs)))
	}
	return maps
}

// Load registers all built-in colormaps and their reversed versions in
// store. Names already present are left untouched, so calling Load twice
// is harmless. It returns the number of colormaps added.
func Load(store Store) int {
	added := 0
	for _, cm := range Builtins() {
		for _, m := range []Colormap{cm, cm.Reversed()} {
			if store.Add(m) {
				added++
			}
		}
	}
	return added
}
