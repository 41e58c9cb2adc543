package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/decker502/folio/internal/particle"
	"github.com/decker502/folio/pkg/embedded"
	"github.com/decker502/folio/pkg/field"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// EmbeddedPresetsPath 内置预设文件路径
const EmbeddedPresetsPath = "data/presets.yaml"

// PresetFile is the root of a presets YAML document.
type PresetFile struct {
	Presets []Preset `yaml:"presets"`
}

// Preset describes one page background. Any combination of layers may be
// present; they are drawn twinkle, drift, network from bottom to top.
type Preset struct {
	Name     string       `yaml:"name"`
	Title    string       `yaml:"title"`
	Backdrop string       `yaml:"backdrop"`
	Network  *NetworkSpec `yaml:"network"`
	Drift    *DriftSpec   `yaml:"drift"`
	Twinkle  *TwinkleSpec `yaml:"twinkle"`
}

// NetworkSpec is the YAML form of field.Config.
type NetworkSpec struct {
	Count     int         `yaml:"count"`
	Speed     string      `yaml:"speed"`
	Radius    string      `yaml:"radius"`
	Threshold float64     `yaml:"threshold"`
	LineWidth float64     `yaml:"line_width"`
	MaxAlpha  float64     `yaml:"max_alpha"`
	DotAlpha  *float64    `yaml:"dot_alpha"`
	Glow      float64     `yaml:"glow"`
	Palette   PaletteSpec `yaml:"palette"`
}

// PaletteSpec is the YAML form of field.Palette.
type PaletteSpec struct {
	Mode          string   `yaml:"mode"`
	Colors        []string `yaml:"colors"`
	OnDark        string   `yaml:"on_dark"`
	OnLight       string   `yaml:"on_light"`
	Backdrop      string   `yaml:"backdrop"`
	BackdropLight string   `yaml:"backdrop_light"`
}

// DriftSpec is the YAML form of field.DriftConfig.
type DriftSpec struct {
	Count         int      `yaml:"count"`
	Rise          string   `yaml:"rise"`
	Sway          string   `yaml:"sway"`
	Size          string   `yaml:"size"`
	Alpha         string   `yaml:"alpha"`
	Spin          string   `yaml:"spin"`
	SwayAmplitude float64  `yaml:"sway_amplitude"`
	SwayPeriod    float64  `yaml:"sway_period"`
	Margin        float64  `yaml:"margin"`
	Glyphs        string   `yaml:"glyphs"`
	Colors        []string `yaml:"colors"`
}

// TwinkleSpec is the YAML form of field.TwinkleConfig.
type TwinkleSpec struct {
	Count int     `yaml:"count"`
	Size  string  `yaml:"size"`
	Rate  float64 `yaml:"rate"`
	Color string  `yaml:"color"`
}

// Presets is an ordered, name-indexed preset collection.
type Presets struct {
	list   []Preset
	byName map[string]int
}

// ParsePresets decodes and validates a presets YAML document.
func ParsePresets(data []byte) (*Presets, error) {
	var file PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets YAML: %w", err)
	}

	ps := &Presets{byName: make(map[string]int, len(file.Presets))}
	for i, p := range file.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset #%d is missing 'name'", i)
		}
		if _, dup := ps.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		if p.Network == nil && p.Drift == nil && p.Twinkle == nil {
			return nil, fmt.Errorf("preset %q has no layers", p.Name)
		}
		// 提前构建一次，尽早暴露格式错误
		if _, err := p.NetworkConfig(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if _, err := p.DriftConfig(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if _, err := p.TwinkleConfig(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if _, err := p.BackdropColor(false); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		ps.byName[p.Name] = len(ps.list)
		ps.list = append(ps.list, p)
	}
	return ps, nil
}

// LoadPresets reads presets from a file on disk.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file %s: %w", path, err)
	}
	ps, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("invalid presets in %s: %w", path, err)
	}
	return ps, nil
}

// LoadEmbeddedPresets reads the built-in presets.
func LoadEmbeddedPresets() (*Presets, error) {
	data, err := embedded.ReadFile(EmbeddedPresetsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded presets: %w", err)
	}
	return ParsePresets(data)
}

// Get returns the named preset.
func (ps *Presets) Get(name string) (Preset, bool) {
	i, ok := ps.byName[name]
	if !ok {
		return Preset{}, false
	}
	return ps.list[i], true
}

// Names lists preset names in file order.
func (ps *Presets) Names() []string {
	names := make([]string, len(ps.list))
	for i, p := range ps.list {
		names[i] = p.Name
	}
	return names
}

// All returns the presets in file order.
func (ps *Presets) All() []Preset {
	return ps.list
}

// Len is the number of presets.
func (ps *Presets) Len() int {
	return len(ps.list)
}

// NetworkConfig converts the network layer, if any.
func (p Preset) NetworkConfig() (*field.Config, error) {
	if p.Network == nil {
		return nil, nil
	}
	n := p.Network
	cfg := field.DefaultConfig()
	if n.Count != 0 {
		cfg.Count = n.Count
	}
	if n.Threshold != 0 {
		cfg.Threshold = n.Threshold
	}
	if n.LineWidth != 0 {
		cfg.LineWidth = n.LineWidth
	}
	if n.MaxAlpha != 0 {
		cfg.MaxAlpha = n.MaxAlpha
	}
	if n.DotAlpha != nil {
		cfg.DotAlpha = *n.DotAlpha
	}
	if n.Glow != 0 {
		cfg.Glow = n.Glow
	}

	var err error
	if n.Speed != "" {
		if cfg.Speed, err = parseRange(n.Speed); err != nil {
			return nil, fmt.Errorf("network speed: %w", err)
		}
	}
	if n.Radius != "" {
		if cfg.Radius, err = parseRange(n.Radius); err != nil {
			return nil, fmt.Errorf("network radius: %w", err)
		}
	}
	if cfg.Palette, err = n.Palette.palette(cfg.Palette); err != nil {
		return nil, fmt.Errorf("network palette: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	return &cfg, nil
}

func (s PaletteSpec) palette(base field.Palette) (field.Palette, error) {
	mode, err := field.ParsePaletteMode(s.Mode)
	if err != nil {
		return base, err
	}
	if s.Mode == "" {
		mode = base.Mode
	}
	p := base
	p.Mode = mode
	if len(s.Colors) > 0 {
		if p.Colors, err = parseColors(s.Colors); err != nil {
			return base, err
		}
	}
	for _, c := range []struct {
		src string
		dst *color.NRGBA
	}{
		{s.OnDark, &p.OnDark},
		{s.OnLight, &p.OnLight},
		{s.Backdrop, &p.Backdrop},
		{s.BackdropLight, &p.BackdropLight},
	} {
		if c.src == "" {
			continue
		}
		if *c.dst, err = ParseColor(c.src); err != nil {
			return base, err
		}
	}
	return p, nil
}

// DriftConfig converts the drift layer, if any.
func (p Preset) DriftConfig() (*field.DriftConfig, error) {
	if p.Drift == nil {
		return nil, nil
	}
	d := p.Drift
	cfg := &field.DriftConfig{
		Count:         d.Count,
		SwayAmplitude: d.SwayAmplitude,
		SwayPeriod:    d.SwayPeriod,
		Margin:        d.Margin,
		Glyphs:        []rune(d.Glyphs),
	}
	if d.Count < 0 {
		return nil, fmt.Errorf("drift count must be non-negative, got %d", d.Count)
	}
	for _, r := range []struct {
		name string
		src  string
		dst  *field.Range
	}{
		{"rise", d.Rise, &cfg.Rise},
		{"sway", d.Sway, &cfg.Sway},
		{"size", d.Size, &cfg.Size},
		{"alpha", d.Alpha, &cfg.Alpha},
		{"spin", d.Spin, &cfg.Spin},
	} {
		if r.src == "" {
			continue
		}
		v, err := parseRange(r.src)
		if err != nil {
			return nil, fmt.Errorf("drift %s: %w", r.name, err)
		}
		*r.dst = v
	}
	if len(d.Colors) > 0 {
		colors, err := parseColors(d.Colors)
		if err != nil {
			return nil, fmt.Errorf("drift colors: %w", err)
		}
		cfg.Colors = colors
	}
	return cfg, nil
}

// TwinkleConfig converts the twinkle layer, if any.
func (p Preset) TwinkleConfig() (*field.TwinkleConfig, error) {
	if p.Twinkle == nil {
		return nil, nil
	}
	t := p.Twinkle
	if t.Count < 0 {
		return nil, fmt.Errorf("twinkle count must be non-negative, got %d", t.Count)
	}
	cfg := &field.TwinkleConfig{
		Count: t.Count,
		Rate:  t.Rate,
		Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	if t.Size != "" {
		size, err := parseRange(t.Size)
		if err != nil {
			return nil, fmt.Errorf("twinkle size: %w", err)
		}
		cfg.Size = size
	}
	if t.Color != "" {
		c, err := ParseColor(t.Color)
		if err != nil {
			return nil, fmt.Errorf("twinkle color: %w", err)
		}
		cfg.Color = c
	}
	return cfg, nil
}

// BackdropColor returns the clear colour of the preset for a theme. An
// explicit backdrop wins over the network palette.
func (p Preset) BackdropColor(light bool) (color.NRGBA, error) {
	if p.Backdrop != "" {
		return ParseColor(p.Backdrop)
	}
	cfg, err := p.NetworkConfig()
	if err != nil {
		return color.NRGBA{}, err
	}
	if cfg != nil {
		return cfg.Palette.Background(light), nil
	}
	return color.NRGBA{A: 255}, nil
}

// Build creates the layers of the preset for a surface.
func (p Preset) Build(opts field.Options) (*field.Composite, error) {
	backdrop, err := p.BackdropColor(opts.Light)
	if err != nil {
		return nil, err
	}
	c := &field.Composite{Backdrop: backdrop}

	tw, err := p.TwinkleConfig()
	if err != nil {
		return nil, err
	}
	if tw != nil {
		c.Layers = append(c.Layers, field.NewTwinkle(*tw, opts))
	}

	dr, err := p.DriftConfig()
	if err != nil {
		return nil, err
	}
	if dr != nil {
		c.Layers = append(c.Layers, field.NewDrift(*dr, opts))
	}

	nw, err := p.NetworkConfig()
	if err != nil {
		return nil, err
	}
	if nw != nil {
		c.Layers = append(c.Layers, field.New(*nw, opts))
	}
	return c, nil
}

func parseRange(s string) (field.Range, error) {
	min, max, err := particle.ParseValue(s)
	if err != nil {
		return field.Range{}, err
	}
	return field.Range{Min: min, Max: max}, nil
}

func parseColors(in []string) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, 0, len(in))
	for _, s := range in {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseColor accepts "#rgb", "#rrggbb", named black/white and
// "hsl(h, s%, l%)".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "white":
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nil
	case "black":
		return color.NRGBA{A: 255}, nil
	}

	var c colorful.Color
	if strings.HasPrefix(s, "hsl(") {
		var h, sat, l float64
		compact := strings.ReplaceAll(s, " ", "")
		if _, err := fmt.Sscanf(compact, "hsl(%f,%f%%,%f%%)", &h, &sat, &l); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hsl colour %q: %w", s, err)
		}
		c = colorful.Hsl(h, sat/100, l/100).Clamped()
	} else {
		var err error
		c, err = colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
