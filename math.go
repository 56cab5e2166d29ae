package prettyplot

import "math"

// RoundUp rounds a up to a multiple of b.
func RoundUp(a, b float64) float64 {
	return math.Ceil(a/b) * b
}
