// Package colors parses colors and derives new ones from them: text
// colors with maximal contrast, shade series for categorical palettes and
// the gray tones used for axes and grids.
//
// Colors are colorful.Color values with channels in [0, 1]. Alpha is not
// modelled.
package colors

import (
	"sort"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vdobler/prettyplot/errors"
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("colors: bad builtin " + s)
	}
	return c
}

// Builtin maps the basic color names to colors. It contains the single
// letter shorthands, a few plain names, gray levels and the tab: colors.
var Builtin = map[string]colorful.Color{
	"k": mustHex("#000000"),
	"w": mustHex("#ffffff"),
	"r": mustHex("#ff0000"),
	"g": mustHex("#008000"),
	"b": mustHex("#0000ff"),
	"c": mustHex("#00bfbf"),
	"m": mustHex("#bf00bf"),
	"y": mustHex("#bfbf00"),

	"black":   mustHex("#000000"),
	"white":   mustHex("#ffffff"),
	"red":     mustHex("#ff0000"),
	"green":   mustHex("#008000"),
	"blue":    mustHex("#0000ff"),
	"cyan":    mustHex("#00ffff"),
	"magenta": mustHex("#ff00ff"),
	"yellow":  mustHex("#ffff00"),
	"orange":  mustHex("#ffa500"),
	"purple":  mustHex("#800080"),
	"brown":   mustHex("#a52a2a"),
	"pink":    mustHex("#ffc0cb"),
	"gray":    mustHex("#808080"),
	"grey":    mustHex("#808080"),
	"gray20":  mustHex("#333333"),
	"gray40":  mustHex("#666666"),
	"gray60":  mustHex("#999999"),
	"gray80":  mustHex("#cccccc"),

	"tab:blue":   mustHex("#1f77b4"),
	"tab:orange": mustHex("#ff7f0e"),
	"tab:green":  mustHex("#2ca02c"),
	"tab:red":    mustHex("#d62728"),
	"tab:purple": mustHex("#9467bd"),
	"tab:brown":  mustHex("#8c564b"),
	"tab:pink":   mustHex("#e377c2"),
	"tab:gray":   mustHex("#7f7f7f"),
	"tab:grey":   mustHex("#7f7f7f"),
	"tab:olive":  mustHex("#bcbd22"),
	"tab:cyan":   mustHex("#17becf"),
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseHex parses "#rgb", "#rrggbb" and "#rrggbbaa". The alpha part is
// dropped.
func ParseHex(s string) (colorful.Color, error) {
	if !strings.HasPrefix(s, "#") || !isHexDigits(s[1:]) {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor,
			"color %q is not a hex color like #rgb or #rrggbb", s)
	}
	switch len(s) {
	case 4, 7:
	case 9:
		s = s[:7]
	default:
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor,
			"hex color %q needs 3, 6 or 8 digits", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parsing hex color %q", s)
	}
	return c, nil
}

// Parse parses a hex color or one of the Builtin names.
func Parse(s string) (colorful.Color, error) {
	return parse(s, nil)
}

func parse(s string, lookup func(string) (colorful.Color, bool)) (colorful.Color, error) {
	name := strings.TrimSpace(s)
	if strings.HasPrefix(name, "#") {
		return ParseHex(name)
	}
	if lookup != nil {
		if c, ok := lookup(name); ok {
			return c, nil
		}
	}
	if c, ok := Builtin[name]; ok {
		return c, nil
	}
	if c, ok := Builtin[strings.ToLower(name)]; ok && len(name) > 1 {
		return c, nil
	}
	return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor,
		"color %q is neither a hex color nor a known color name", s)
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Table holds named colors on top of the Builtin ones, e.g. the pplt:
// colors registered by a style context. It is safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	colors map[string]colorful.Color
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{colors: make(map[string]colorful.Color)}
}

// Register adds or replaces the named color.
func (t *Table) Register(name string, c colorful.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.colors[name] = c
}

// RegisterAll adds or replaces all given colors at once.
func (t *Table) RegisterAll(colors map[string]colorful.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, c := range colors {
		t.colors[name] = c
	}
}

// Clear removes all registered colors.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.colors)
}

// Lookup returns the registered color of that name.
func (t *Table) Lookup(name string) (colorful.Color, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.colors[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.colors))
	for n := range t.colors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parse parses s like the package level Parse but consults the registered
// names first.
func (t *Table) Parse(s string) (colorful.Color, error) {
	return parse(s, t.Lookup)
}
