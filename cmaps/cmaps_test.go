package cmaps

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"

	perrors "github.com/vdobler/prettyplot/errors"
)

func near(a, b colorful.Color, eps float64) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestListed(t *testing.T) {
	l := mustListed("rgb", "#ff0000", "#00ff00", "#0000ff")
	tests := []struct {
		x    float64
		want string
	}{
		{-1, "#ff0000"},
		{0, "#ff0000"},
		{0.3, "#ff0000"},
		{0.34, "#00ff00"},
		{0.99, "#0000ff"},
		{1, "#0000ff"},
		{7, "#0000ff"},
		{math.NaN(), "#ff0000"},
	}
	for _, tt := range tests {
		if got := l.At(tt.x).Hex(); got != tt.want {
			t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	r := l.Reversed()
	if r.Name() != "rgb_r" || r.At(0).Hex() != "#0000ff" || r.At(1).Hex() != "#ff0000" {
		t.Errorf("Reversed() = %s from %s to %s", r.Name(), r.At(0).Hex(), r.At(1).Hex())
	}
	if l.At(0).Hex() != "#ff0000" {
		t.Error("Reversed() modified the original")
	}
	if !l.Discrete() || l.N() != 3 {
		t.Errorf("Discrete(), N() = %v, %d", l.Discrete(), l.N())
	}

	if _, err := ParseListed("bad", "#ff0000", "nocolor"); !perrors.Is(err, perrors.ErrCodeInvalidColor) {
		t.Errorf("ParseListed() error = %v, want %s", err, perrors.ErrCodeInvalidColor)
	}
}

func TestLinear(t *testing.T) {
	black, white := colorful.Color{}, colorful.Color{R: 1, G: 1, B: 1}
	m := NewLinear("bw", []colorful.Color{black, white})

	if m.N() != LinearN || m.Discrete() {
		t.Errorf("N(), Discrete() = %d, %v", m.N(), m.Discrete())
	}
	if got := m.At(0); got != black {
		t.Errorf("At(0) = %v, want black", got.Hex())
	}
	if got := m.At(1); got != white {
		t.Errorf("At(1) = %v, want white", got.Hex())
	}
	if got := m.At(0.5); !near(got, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, 0.01) {
		t.Errorf("At(0.5) = %v, want mid gray", got.Hex())
	}
	if cs := m.Colors(); len(cs) != LinearN || cs[0] != black || cs[LinearN-1] != white {
		t.Errorf("Colors() has %d colors from %v to %v", len(cs), cs[0].Hex(), cs[len(cs)-1].Hex())
	}

	r := m.Reversed()
	if r.Name() != "bw_r" || r.At(0) != white || r.At(1) != black {
		t.Errorf("Reversed() = %s from %s to %s", r.Name(), r.At(0).Hex(), r.At(1).Hex())
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	a := mustListed("a", "#000000")
	if !reg.Add(a) {
		t.Fatal("Add(a) = false on empty registry")
	}
	if reg.Add(mustListed("a", "#ffffff")) {
		t.Error("Add() replaced an existing colormap")
	}
	got, err := reg.Get("a")
	if err != nil || got.At(0).Hex() != "#000000" {
		t.Errorf("Get(a) = %v, %v", got, err)
	}
	if _, err := reg.Get("b"); !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("Get(b) error = %v, want %s", err, perrors.ErrCodeNotFound)
	}
}

func TestRegistryConcurrentAdd(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	added := make(chan bool, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			added <- reg.Add(mustListed("same", "#123456"))
		}()
	}
	wg.Wait()
	close(added)
	n := 0
	for ok := range added {
		if ok {
			n++
		}
	}
	if n != 1 || reg.Len() != 1 {
		t.Errorf("%d successful adds, Len() = %d, want 1, 1", n, reg.Len())
	}
}

func TestLoad(t *testing.T) {
	reg := NewRegistry()
	builtins := Builtins()

	if n := Load(reg); n != 2*len(builtins) {
		t.Errorf("Load() = %d, want %d", n, 2*len(builtins))
	}
	if n := Load(reg); n != 0 {
		t.Errorf("second Load() = %d, want 0", n)
	}
	if reg.Len() != 2*len(builtins) {
		t.Errorf("Len() = %d, want %d", reg.Len(), 2*len(builtins))
	}

	for _, name := range []string{
		"pastel5", "pastel5_r", "cbf8", "tol:bright", "gdv:mars", "tab10",
		"turbo", "turbo_r", "parula", "rainforest",
		"brewer:Set1", "brewer:Blues_r", "brewer:RdBu", "moreland:kindlmann",
	} {
		if _, err := reg.Get(name); err != nil {
			t.Errorf("Get(%s) error = %v", name, err)
		}
	}

	for _, cm := range builtins {
		rev, err := reg.Get(cm.Name() + "_r")
		if err != nil {
			t.Errorf("Get(%s_r) error = %v", cm.Name(), err)
			continue
		}
		if !near(rev.At(0), cm.At(1), 1e-9) || !near(rev.At(1), cm.At(0), 1e-9) {
			t.Errorf("%s_r endpoints %s, %s do not mirror %s, %s", cm.Name(),
				rev.At(0).Hex(), rev.At(1).Hex(), cm.At(0).Hex(), cm.At(1).Hex())
		}
	}

	pastel5, _ := reg.Get("pastel5")
	if got := pastel5.At(0).Hex(); got != "#3362b0" {
		t.Errorf("pastel5 starts with %s, want #3362b0", got)
	}
	turbo, _ := reg.Get("turbo")
	if !near(turbo.At(0), colorful.Color{R: 0.18995, G: 0.07176, B: 0.23217}, 1e-9) {
		t.Errorf("turbo starts with %v", turbo.At(0))
	}
}

func TestCategorical(t *testing.T) {
	reg := NewRegistry()
	Load(reg)
	tab10, _ := reg.Get("tab10")

	rows, err := Categorical(2, 2, tab10)
	if err != nil {
		t.Fatalf("Categorical() error = %v", err)
	}
	want := [][]colorful.Color{
		{{R: 0.12, G: 0.47, B: 0.71}, {R: 0.75, G: 0.9, B: 1.0}},
		{{R: 1.0, G: 0.5, B: 0.06}, {R: 1.0, G: 0.87, B: 0.75}},
	}
	for i := range want {
		for j := range want[i] {
			if !near(rows[i][j], want[i][j], 0.015) {
				t.Errorf("Categorical()[%d][%d] = %v, want %v", i, j, rows[i][j], want[i][j])
			}
		}
	}

	flat, err := CategoricalMap(2, 2, tab10)
	if err != nil {
		t.Fatalf("CategoricalMap() error = %v", err)
	}
	if flat.N() != 4 || flat.Colors()[2] != rows[1][0] {
		t.Errorf("CategoricalMap() = %v", flat.Colors())
	}

	turbo, _ := reg.Get("turbo")
	rows, err = Categorical(3, 1, turbo)
	if err != nil {
		t.Fatalf("Categorical(turbo) error = %v", err)
	}
	if !near(rows[0][0], turbo.At(0), 1e-9) || !near(rows[2][0], turbo.At(1), 1e-9) {
		t.Errorf("Categorical(turbo) does not span the whole map: %v", rows)
	}
}

func TestCategoricalErrors(t *testing.T) {
	tab10 := mustListed("ten", "#000000", "#111111", "#222222", "#333333", "#444444",
		"#555555", "#666666", "#777777", "#888888", "#999999")
	tests := []struct {
		name    string
		nc, nsc int
		code    perrors.Code
	}{
		{"too many", 20, 2, perrors.ErrCodeTooManyCategories},
		{"no colors", -2, 2, perrors.ErrCodeInvalidNumber},
		{"no shades", 2, -2, perrors.ErrCodeInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Categorical(tt.nc, tt.nsc, tab10); !perrors.Is(err, tt.code) {
				t.Errorf("Categorical() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestColorMapAdapter(t *testing.T) {
	m := NewColorMap(mustListed("bw", "#000000", "#ffffff"))
	m.SetMin(10)
	m.SetMax(20)

	tests := []struct {
		v    float64
		want error
	}{
		{5, palette.ErrUnderflow},
		{25, palette.ErrOverflow},
		{math.NaN(), palette.ErrNaN},
		{15, nil},
	}
	for _, tt := range tests {
		_, err := m.At(tt.v)
		if !errors.Is(err, tt.want) {
			t.Errorf("At(%v) error = %v, want %v", tt.v, err, tt.want)
		}
	}

	c, _ := m.At(20)
	if r, g, b, _ := c.RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("At(max) = %v, want white", c)
	}

	m.SetAlpha(0.5)
	c, _ = m.At(10)
	if _, _, _, a := c.RGBA(); a != 0x8080 {
		t.Errorf("alpha = %#x, want 0x8080", a)
	}

	if p := m.Palette(5).Colors(); len(p) != 5 {
		t.Errorf("Palette(5) has %d colors", len(p))
	}
	if p := AsPalette(mustListed("x", "#102030", "#405060")); len(p) != 2 {
		t.Errorf("AsPalette() has %d colors", len(p))
	}
}
