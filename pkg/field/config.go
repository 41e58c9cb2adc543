package field

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/decker502/folio/internal/particle"
)

// Range is a closed interval sampled uniformly when particles are created.
type Range struct {
	Min, Max float64
}

// Sample draws a value from the range.
func (r Range) Sample(rng *rand.Rand) float64 {
	return particle.RandomInRange(rng, r.Min, r.Max)
}

// String formats the range in preset syntax: "1.5" or "[-0.6 0.6]".
func (r Range) String() string {
	return particle.FormatValue(r.Min, r.Max)
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// PaletteMode selects how particle colours are chosen.
type PaletteMode int

const (
	// PaletteFixed paints every particle with Colors[0].
	PaletteFixed PaletteMode = iota
	// PaletteRandom picks one of Colors per particle at creation.
	PaletteRandom
	// PaletteTheme follows the light/dark background: OnDark or OnLight.
	PaletteTheme
)

func (m PaletteMode) String() string {
	switch m {
	case PaletteFixed:
		return "fixed"
	case PaletteRandom:
		return "random"
	case PaletteTheme:
		return "theme"
	default:
		return fmt.Sprintf("PaletteMode(%d)", int(m))
	}
}

// ParsePaletteMode converts a preset string to a PaletteMode.
func ParsePaletteMode(s string) (PaletteMode, error) {
	switch s {
	case "", "fixed":
		return PaletteFixed, nil
	case "random":
		return PaletteRandom, nil
	case "theme":
		return PaletteTheme, nil
	default:
		return PaletteFixed, fmt.Errorf("unknown palette mode %q", s)
	}
}

// Palette is the colour selection rule of a field.
type Palette struct {
	Mode   PaletteMode
	Colors []color.NRGBA

	// Theme mode colours, keyed by the background they are drawn on.
	OnDark  color.NRGBA
	OnLight color.NRGBA

	Backdrop      color.NRGBA
	BackdropLight color.NRGBA
}

// Pick returns the colour of a new particle.
func (p Palette) Pick(rng *rand.Rand, light bool) color.NRGBA {
	switch p.Mode {
	case PaletteTheme:
		if light {
			return p.OnLight
		}
		return p.OnDark
	case PaletteRandom:
		if len(p.Colors) > 0 {
			return p.Colors[rng.Intn(len(p.Colors))]
		}
	}
	if len(p.Colors) > 0 {
		return p.Colors[0]
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

// Background returns the clear colour for the given theme.
func (p Palette) Background(light bool) color.NRGBA {
	if light && p.Mode == PaletteTheme {
		return p.BackdropLight
	}
	return p.Backdrop
}

// Config describes one particle network. Lengths are logical pixels and are
// multiplied by the device pixel ratio when the field is built.
type Config struct {
	Count     int
	Speed     Range // per-axis velocity, device pixels per frame
	Radius    Range
	Threshold float64
	LineWidth float64
	MaxAlpha  float64 // connection alpha at distance zero
	DotAlpha  float64
	Glow      float64
	Palette   Palette
}

// DefaultConfig matches the loader background: 60 white neurons on black.
func DefaultConfig() Config {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}
	return Config{
		Count:     60,
		Speed:     Range{Min: -0.6, Max: 0.6},
		Radius:    Range{Min: 1.3, Max: 3.3},
		Threshold: 120,
		LineWidth: 0.6,
		MaxAlpha:  0.8,
		DotAlpha:  1,
		Glow:      15,
		Palette: Palette{
			Mode:          PaletteTheme,
			OnDark:        white,
			OnLight:       black,
			Backdrop:      black,
			BackdropLight: white,
		},
	}
}

// Validate checks the configuration for values the renderer cannot use.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %v", c.Threshold)
	}
	if c.Radius.Min < 0 {
		return fmt.Errorf("radius must be non-negative, got %s", c.Radius)
	}
	if c.MaxAlpha < 0 || c.MaxAlpha > 1 {
		return fmt.Errorf("max_alpha must be within [0, 1], got %v", c.MaxAlpha)
	}
	if c.DotAlpha < 0 || c.DotAlpha > 1 {
		return fmt.Errorf("dot_alpha must be within [0, 1], got %v", c.DotAlpha)
	}
	if c.Palette.Mode != PaletteTheme && len(c.Palette.Colors) == 0 {
		return fmt.Errorf("palette mode %s needs at least one colour", c.Palette.Mode)
	}
	return nil
}

// Options carries the surface-dependent inputs of a layer.
type Options struct {
	Width, Height float64 // device pixels
	DPR           float64
	Light         bool
	Rand          *rand.Rand
}

func (o Options) normalized() Options {
	if o.DPR <= 0 {
		o.DPR = 1
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
