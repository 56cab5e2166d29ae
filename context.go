package prettyplot

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/vdobler/prettyplot/cmaps"
	"github.com/vdobler/prettyplot/colors"
	"github.com/vdobler/prettyplot/errors"
	"github.com/vdobler/prettyplot/layout"
)

// StyleContext holds the active style, mode and theme. Figures take a
// snapshot of the theme when they are created. A StyleContext is safe for
// concurrent use; a failed Use or Update leaves it unchanged.
type StyleContext struct {
	mu    sync.RWMutex
	style Style
	mode  Mode
	cfg   Config
	theme Theme

	registry cmaps.Store
	colors   *colors.Table
	logger   *log.Logger
}

// Option configures a StyleContext.
type Option func(*StyleContext)

// WithLogger sets the logger. The default logs warnings to stderr.
func WithLogger(l *log.Logger) Option {
	return func(c *StyleContext) { c.logger = l }
}

// WithRegistry sets the store colormaps are registered in and looked up
// from. The default is cmaps.Default.
func WithRegistry(s cmaps.Store) Option {
	return func(c *StyleContext) { c.registry = s }
}

// NewStyleContext returns a context in the default style and mode with
// the library default theme. The builtin colormaps are registered in the
// context's store. No cosmetics are applied before Use.
func NewStyleContext(opts ...Option) *StyleContext {
	c := &StyleContext{
		style:    StyleDefault,
		mode:     ModeDefault,
		theme:    DefaultTheme(),
		registry: cmaps.Default,
		colors:   colors.NewTable(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = defaultLogger()
	}
	if n := cmaps.Load(c.registry); n > 0 {
		c.logger.Debug("registered colormaps", "added", n)
	}
	return c
}

// Use resets the context to the library defaults and applies cfg merged
// over DefaultConfig. Style and mode stay as they are unless cfg sets
// them.
func (c *StyleContext) Use(cfg Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	full := DefaultConfig()
	full.Style = Ptr(c.style)
	full.Mode = Ptr(c.mode)
	return c.apply(full.Merge(cfg), true)
}

// Update applies the fields set in cfg and keeps all others from the
// previous Use or Update.
func (c *StyleContext) Update(cfg Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(c.cfg.Merge(cfg), cfg.Mode != nil)
}

// Reset restores the library default theme and drops the pplt: colors.
// Style and mode are kept.
func (c *StyleContext) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = Config{}
	c.theme = DefaultTheme()
	c.colors.Clear()
	c.logger.Debug("style reset")
}

// apply builds the new state from cfg and swaps it in. c.mu must be held.
func (c *StyleContext) apply(cfg Config, modeGiven bool) error {
	style, mode := c.style, c.mode
	if cfg.Style != nil {
		style = *cfg.Style
	}
	if cfg.Mode != nil {
		mode = *cfg.Mode
	}
	if _, ok := modeScales[mode]; !ok {
		return errors.New(errors.ErrCodeInvalidMode, "mode %s is not supported", mode)
	}
	if int(style) < 0 || int(style) >= len(styleNames) {
		return errors.New(errors.ErrCodeInvalidStyle, "style %s is not supported", style)
	}

	theme, err := c.buildTheme(cfg, style)
	if err != nil {
		return err
	}
	// Without style the mode sizes are only applied on request.
	if style != StyleNone || modeGiven {
		theme.applyMode(mode)
	}
	named, err := c.namedColors(cfg, theme)
	if err != nil {
		return err
	}

	c.style, c.mode = style, mode
	c.cfg = cfg
	c.theme = theme
	c.colors.RegisterAll(named)
	c.logger.Debug("style applied", "style", style, "mode", mode, "cmap", theme.Cmap, "figsize", theme.FigSize)
	return nil
}

func (c *StyleContext) buildTheme(cfg Config, style Style) (Theme, error) {
	t := DefaultTheme()
	if style == StyleNone {
		return t, nil
	}

	for _, name := range presetsFor(style) {
		p, err := loadPreset(name)
		if err != nil {
			return Theme{}, err
		}
		t.applyPreset(p)
	}

	if cfg.Colors != nil {
		ncs := 10
		if cfg.NCS != nil {
			ncs = *cfg.NCS
		}
		cycle, err := c.cycle(*cfg.Colors, ncs)
		if err != nil {
			return Theme{}, err
		}
		t.Cycle = cycle
	}
	if cfg.Cmap != nil {
		if _, err := c.registry.Get(*cfg.Cmap); err != nil {
			return Theme{}, err
		}
		t.Cmap = *cfg.Cmap
	}

	trueBlack := cfg.TrueBlack != nil && *cfg.TrueBlack
	darkMode := cfg.DarkMode != nil && *cfg.DarkMode
	t.applyGrays(colors.Grays(trueBlack, darkMode), darkMode)

	if cfg.FigSize != nil {
		ratio := ""
		if cfg.FigRatio != nil {
			ratio = string(*cfg.FigRatio)
		}
		size, err := layout.ParseSize(cfg.FigSize, ratio)
		if err != nil {
			return Theme{}, err
		}
		t.FigSize = size
	}

	if cfg.IPython == nil || !*cfg.IPython {
		t.DPI = PrintDPI
	}
	t.Latex = cfg.Latex != nil && *cfg.Latex
	if cfg.SansSerif != nil && *cfg.SansSerif {
		t.Font = FontSans
	}
	if cfg.Font != nil && *cfg.Font != "" {
		t.Font = *cfg.Font
	}
	if _, err := fontFor(t.Font, t.FontSize); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// cycle returns the color cycle taken from the named colormap: all colors
// of a listed map, ncs samples of a continuous one.
func (c *StyleContext) cycle(name string, ncs int) ([]colorful.Color, error) {
	cm, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	if cm.Discrete() {
		return cm.Colors(), nil
	}
	if ncs < 1 {
		return nil, errors.New(errors.ErrCodeInvalidNumber,
			"ncs needs to be at least 1 but given %d", ncs)
	}
	if ncs == 1 {
		return []colorful.Color{cm.At(0)}, nil
	}
	cs := make([]colorful.Color, ncs)
	for i, x := range floats.Span(make([]float64, ncs), 0, 1) {
		cs[i] = cm.At(x)
	}
	return cs, nil
}

// namedColors returns the pplt: colors for theme t.
func (c *StyleContext) namedColors(cfg Config, t Theme) (map[string]colorful.Color, error) {
	pastel, err := c.registry.Get("pastel5")
	if err != nil {
		return nil, err
	}
	pc := pastel.Colors()
	grays := colors.Grays(
		cfg.TrueBlack != nil && *cfg.TrueBlack,
		cfg.DarkMode != nil && *cfg.DarkMode,
	)
	named := map[string]colorful.Color{
		"pplt:axes":      t.AxesColor,
		"pplt:text":      t.TextColor,
		"pplt:grid":      t.GridColor,
		"pplt:gray":      grays.Dark,
		"pplt:grey":      grays.Dark,
		"pplt:lightgray": grays.Light,
		"pplt:lightgrey": grays.Light,
	}
	for i, name := range []string{"blue", "red", "green", "orange", "lightblue"} {
		if i < len(pc) {
			named["pplt:"+name] = pc[i]
		}
	}
	return named, nil
}

// -------------------------------------------------------------------------
// Accessors

func (c *StyleContext) Style() Style {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.style
}

func (c *StyleContext) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Theme returns a copy of the active theme.
func (c *StyleContext) Theme() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t := c.theme
	t.Cycle = append([]colorful.Color(nil), t.Cycle...)
	return t
}

// Config returns the settings of the last Use or Update.
func (c *StyleContext) Config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Config{}.Merge(c.cfg)
}

func (c *StyleContext) Logger() *log.Logger { return c.logger }

// Color parses a hex color, a builtin color name or one of the pplt:
// names registered by Use.
func (c *StyleContext) Color(name string) (colorful.Color, error) {
	return c.colors.Parse(name)
}

// Colormap returns the named colormap, the theme's default for "".
func (c *StyleContext) Colormap(name string) (cmaps.Colormap, error) {
	if name == "" {
		c.mu.RLock()
		name = c.theme.Cmap
		c.mu.RUnlock()
	}
	return c.registry.Get(name)
}

// CategoricalCmap returns nc colors in nsc shades each, taken from the
// named colormap or from the color cycle if name is "".
func (c *StyleContext) CategoricalCmap(nc, nsc int, name string) (*cmaps.Listed, error) {
	var cm cmaps.Colormap
	if name == "" {
		c.mu.RLock()
		cycle := append([]colorful.Color(nil), c.theme.Cycle...)
		c.mu.RUnlock()
		cm = cmaps.NewListed("cycle", cycle)
	} else {
		var err error
		if cm, err = c.registry.Get(name); err != nil {
			return nil, err
		}
	}
	return cmaps.CategoricalMap(nc, nsc, cm)
}
