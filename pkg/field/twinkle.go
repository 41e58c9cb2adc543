package field

import (
	"image/color"
	"math"
)

// Star is a fixed point whose brightness pulses.
type Star struct {
	X, Y  float64
	Size  float64
	Phase float64
}

// Alpha is the star opacity for its current phase, within [0, 1].
func (s Star) Alpha() float64 {
	return (math.Sin(s.Phase) + 1) / 2
}

// TwinkleConfig describes a starfield layer.
type TwinkleConfig struct {
	Count int
	Size  Range
	Rate  float64 // phase advance per frame, radians
	Color color.NRGBA
}

// Twinkle is a static starfield with pulsing brightness.
type Twinkle struct {
	cfg     TwinkleConfig
	stars   []Star
	dpr     float64
	stopped bool
}

// NewTwinkle scatters cfg.Count stars over the surface.
func NewTwinkle(cfg TwinkleConfig, opts Options) *Twinkle {
	opts = opts.normalized()
	t := &Twinkle{cfg: cfg, dpr: opts.DPR}
	if cfg.Count > 0 {
		t.stars = make([]Star, cfg.Count)
	}
	for i := range t.stars {
		t.stars[i] = Star{
			X:     opts.Rand.Float64() * opts.Width,
			Y:     opts.Rand.Float64() * opts.Height,
			Size:  cfg.Size.Sample(opts.Rand),
			Phase: opts.Rand.Float64() * math.Pi,
		}
	}
	return t
}

// Stars exposes the current stars.
func (t *Twinkle) Stars() []Star {
	return t.stars
}

// Render draws every star at its current brightness.
func (t *Twinkle) Render(s Surface) {
	if s == nil {
		return
	}
	for _, st := range t.stars {
		s.Dot(st.X, st.Y, st.Size*t.dpr, t.cfg.Color, st.Alpha(), 0)
	}
}

// Step advances every star's phase.
func (t *Twinkle) Step() {
	if t.stopped {
		return
	}
	for i := range t.stars {
		t.stars[i].Phase += t.cfg.Rate
	}
}

// Resize is a no-op: stars stay where they were placed.
func (t *Twinkle) Resize(w, h float64) {}

// Stop freezes the layer.
func (t *Twinkle) Stop() {
	t.stopped = true
}
