package colors

import "github.com/lucasb-eyer/go-colorful"

// GrayTones is a pair of a dark and a light gray. The dark tone is used
// for axes, ticks and text, the light one for grids.
type GrayTones struct {
	Dark, Light colorful.Color
}

var (
	BlackGrays           = GrayTones{Dark: mustHex("#000000"), Light: mustHex("#dddfe5")}
	BlackGraysDarkMode   = GrayTones{Dark: mustHex("#ffffff"), Light: mustHex("#22201a")}
	DefaultGrays         = GrayTones{Dark: mustHex("#4d4f53"), Light: mustHex("#dddfe5")}
	DefaultGraysDarkMode = GrayTones{Dark: mustHex("#b2b0ac"), Light: mustHex("#22201a")}
)

// Grays selects the gray tones for the given flags.
func Grays(trueBlack, darkMode bool) GrayTones {
	switch {
	case trueBlack && darkMode:
		return BlackGraysDarkMode
	case trueBlack:
		return BlackGrays
	case darkMode:
		return DefaultGraysDarkMode
	}
	return DefaultGrays
}
