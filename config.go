package prettyplot

import (
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

// Config lists the settings of a StyleContext. Nil fields are not
// touched: Use fills them from the defaults, Update keeps the values of
// the previous call.
type Config struct {
	// Colors is the colormap the color cycle is taken from.
	Colors *string `toml:"colors"`
	// Cmap is the default colormap of images.
	Cmap *string `toml:"cmap"`
	// NCS is the number of cycle colors sampled from a continuous map.
	NCS *int `toml:"ncs"`
	// FigSize is (width) or (width, height) in inches.
	FigSize  FigSize `toml:"figsize"`
	FigRatio *Ratio    `toml:"figratio"`

	Mode  *Mode  `toml:"mode"`
	Style *Style `toml:"style"`

	// IPython keeps the screen resolution for raster output.
	IPython   *bool   `toml:"ipython"`
	TrueBlack *bool   `toml:"true_black"`
	DarkMode  *bool   `toml:"dark_mode"`
	Latex     *bool   `toml:"latex"`
	SansSerif *bool   `toml:"sf"`
	Font      *string `toml:"font"`
}

// FigSize is a figure size spec. In TOML files it may be a bare width or
// an array of one or two numbers.
type FigSize []float64

func (s *FigSize) UnmarshalTOML(v any) error {
	if f, ok := number(v); ok {
		*s = FigSize{f}
		return nil
	}
	switch x := v.(type) {
	case []any:
		fs := make(FigSize, len(x))
		for i, e := range x {
			f, ok := number(e)
			if !ok {
				return errors.New(errors.ErrCodeInvalidSize, "figsize entries need to be numbers, not %T", e)
			}
			fs[i] = f
		}
		*s = fs
	default:
		return errors.New(errors.ErrCodeInvalidSize, "figsize needs to be a number or an array, not %T", v)
	}
	return nil
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// Ratio is a figure ratio spec like "golden" or "1.5". In TOML files it
// may also be given as a number.
type Ratio string

func (r *Ratio) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		*r = Ratio(x)
	case int64:
		*r = Ratio(strconv.FormatInt(x, 10))
	case float64:
		*r = Ratio(strconv.FormatFloat(x, 'g', -1, 64))
	default:
		return errors.New(errors.ErrCodeInvalidRatio, "figratio needs to be a string or a number, not %T", v)
	}
	return nil
}

// Value resolves r with layout.ParseRatio.
func (r Ratio) Value() (float64, error) { return layout.ParseRatio(string(r)) }

// Ptr returns a pointer to v, handy for filling a Config.
func Ptr[T any](v T) *T { return &v }

// DefaultConfig holds the values Use starts from. Style and Mode are nil:
// Use keeps the ones currently set.
func DefaultConfig() Config {
	return Config{
		Colors:    Ptr("pastel5"),
		Cmap:      Ptr("turbo"),
		NCS:       Ptr(10),
		FigSize:   []float64{3},
		FigRatio:  Ptr(Ratio("golden")),
		IPython:   Ptr(false),
		TrueBlack: Ptr(false),
		DarkMode:  Ptr(false),
		Latex:     Ptr(false),
		SansSerif: Ptr(false),
		Font:      Ptr(""),
	}
}

// Merge returns c with every field set in o replaced.
func (c Config) Merge(o Config) Config {
	if o.Colors != nil {
		c.Colors = o.Colors
	}
	if o.Cmap != nil {
		c.Cmap = o.Cmap
	}
	if o.NCS != nil {
		c.NCS = o.NCS
	}
	if o.FigSize != nil {
		c.FigSize = append([]float64(nil), o.FigSize...)
	}
	if o.FigRatio != nil {
		c.FigRatio = o.FigRatio
	}
	if o.Mode != nil {
		c.Mode = o.Mode
	}
	if o.Style != nil {
		c.Style = o.Style
	}
	if o.IPython != nil {
		c.IPython = o.IPython
	}
	if o.TrueBlack != nil {
		c.TrueBlack = o.TrueBlack
	}
	if o.DarkMode != nil {
		c.DarkMode = o.DarkMode
	}
	if o.Latex != nil {
		c.Latex = o.Latex
	}
	if o.SansSerif != nil {
		c.SansSerif = o.SansSerif
	}
	if o.Font != nil {
		c.Font = o.Font
	}
	return c
}

// ParseConfig decodes a TOML config. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding config")
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config has unknown key %q", und[0].String())
	}
	return c, nil
}

// LoadConfig reads and decodes the TOML config file at path.
func LoadConfig(path string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding config file %s", path)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"config file %s has unknown key %q", path, und[0].String())
	}
	return c, nil
}
