// Package field implements the decorative particle backgrounds: a network of
// drifting points joined by distance-faded lines, plus the rising sprite and
// twinkling star variants used by the project pages.
//
// Every layer owns its particles and exposes a deterministic Step that
// advances one frame, so hosts decide when frames happen and tests can drive
// single steps.
package field

import (
	"image/color"
	"math"
	"math/rand"
)

// Particle is one point of the network.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.NRGBA
}

// Speed returns the magnitude of the particle velocity.
func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// Field is the particle network renderer.
type Field struct {
	cfg       Config
	particles []Particle

	width, height float64
	dpr           float64
	light         bool
	rng           *rand.Rand

	threshold float64
	lineWidth float64
	glow      float64

	stopped bool
}

// New allocates cfg.Count particles spread uniformly over the surface.
func New(cfg Config, opts Options) *Field {
	opts = opts.normalized()
	f := &Field{
		cfg:       cfg,
		width:     opts.Width,
		height:    opts.Height,
		dpr:       opts.DPR,
		light:     opts.Light,
		rng:       opts.Rand,
		threshold: cfg.Threshold * opts.DPR,
		lineWidth: cfg.LineWidth * opts.DPR,
		glow:      cfg.Glow * opts.DPR,
	}

	count := cfg.Count
	if count < 0 {
		count = 0
	}
	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      f.rng.Float64() * f.width,
			Y:      f.rng.Float64() * f.height,
			VX:     cfg.Speed.Sample(f.rng),
			VY:     cfg.Speed.Sample(f.rng),
			Radius: cfg.Radius.Sample(f.rng) * f.dpr,
			Color:  cfg.Palette.Pick(f.rng, f.light),
		}
	}
	return f
}

// Particles exposes the particle slice. Callers must not retain it across
// steps.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Place overwrites the particle at index i.
func (f *Field) Place(i int, p Particle) {
	f.particles[i] = p
}

// Bounds returns the current surface dimensions in device pixels.
func (f *Field) Bounds() (w, h float64) {
	return f.width, f.height
}

// Threshold returns the connection distance in device pixels.
func (f *Field) Threshold() float64 {
	return f.threshold
}

// Light reports which theme the palette was resolved for.
func (f *Field) Light() bool {
	return f.light
}

// ConnectionAlpha returns the line opacity for two particles d apart:
// MaxAlpha at zero, falling linearly to zero at the threshold.
func (f *Field) ConnectionAlpha(d float64) float64 {
	if d >= f.threshold {
		return 0
	}
	a := f.cfg.MaxAlpha * (1 - d/f.threshold)
	if a < 0 {
		return 0
	}
	return a
}

// Connections calls fn for every unordered pair closer than the threshold.
func (f *Field) Connections(fn func(i, j int, alpha float64)) {
	ps := f.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if d < f.threshold {
				fn(i, j, f.ConnectionAlpha(d))
			}
		}
	}
}

// Render draws connections and particles without clearing.
func (f *Field) Render(s Surface) {
	if s == nil {
		return
	}
	f.Connections(func(i, j int, alpha float64) {
		a, b := f.particles[i], f.particles[j]
		s.Line(a.X, a.Y, b.X, b.Y, f.lineWidth, a.Color, alpha)
	})
	for _, p := range f.particles {
		s.Dot(p.X, p.Y, p.Radius, p.Color, f.cfg.DotAlpha, f.glow)
	}
}

// Draw clears the surface and renders the field.
func (f *Field) Draw(s Surface) {
	if s == nil {
		return
	}
	s.Clear(f.cfg.Palette.Background(f.light))
	f.Render(s)
}

// Frame runs one full frame: clear, draw at the current positions, advance.
// Missing surfaces and stopped fields are no-ops.
func (f *Field) Frame(s Surface) {
	if s == nil || f.stopped {
		return
	}
	f.Draw(s)
	f.Step()
}

// Step advances every particle by its velocity and reflects velocity
// components whose coordinate has left the bounds. Positions are never
// clamped, so a particle may sit up to one step outside an edge.
func (f *Field) Step() {
	if f.stopped {
		return
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X < 0 {
			p.VX = math.Abs(p.VX)
		} else if p.X > f.width {
			p.VX = -math.Abs(p.VX)
		}
		if p.Y < 0 {
			p.VY = math.Abs(p.VY)
		} else if p.Y > f.height {
			p.VY = -math.Abs(p.VY)
		}
	}
}

// Resize updates the bounds only. Particles keep their positions and find
// their way back through reflection.
func (f *Field) Resize(w, h float64) {
	f.width = w
	f.height = h
}

// Stop freezes the field. Later Frame and Step calls change nothing.
func (f *Field) Stop() {
	f.stopped = true
}

// Stopped reports whether Stop has been called.
func (f *Field) Stopped() bool {
	return f.stopped
}
