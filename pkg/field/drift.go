package field

import (
	"image/color"
	"math"
	"math/rand"
)

// Sprite is a rising decorative element, drawn as a glyph or a soft blob.
type Sprite struct {
	X, Y     float64
	Rise     float64 // upward speed, device pixels per frame
	VX       float64
	Size     float64
	Alpha    float64
	Rotation float64
	Spin     float64
	Glyph    rune
	Color    color.NRGBA
}

// DriftConfig describes a layer of sprites floating upwards.
type DriftConfig struct {
	Count         int
	Rise          Range
	Sway          Range // horizontal velocity
	Size          Range
	Alpha         Range
	Spin          Range
	SwayAmplitude float64 // extra sideways motion per frame
	SwayPeriod    float64 // vertical distance of one sway cycle
	Margin        float64 // distance past the top edge before respawning
	Glyphs        []rune
	Colors        []color.NRGBA
}

// Drift moves sprites up the surface and respawns them below the bottom
// edge once they leave through the top.
type Drift struct {
	cfg     DriftConfig
	sprites []Sprite

	width, height float64
	dpr           float64
	rng           *rand.Rand
	stopped       bool
}

// NewDrift scatters cfg.Count sprites over the whole surface.
func NewDrift(cfg DriftConfig, opts Options) *Drift {
	opts = opts.normalized()
	d := &Drift{
		cfg:    cfg,
		width:  opts.Width,
		height: opts.Height,
		dpr:    opts.DPR,
		rng:    opts.Rand,
	}
	if cfg.Count > 0 {
		d.sprites = make([]Sprite, cfg.Count)
	}
	for i := range d.sprites {
		d.sprites[i] = d.spawn(d.rng.Float64() * d.height)
	}
	return d
}

func (d *Drift) spawn(y float64) Sprite {
	s := Sprite{
		X:        d.rng.Float64() * d.width,
		Y:        y,
		Rise:     d.cfg.Rise.Sample(d.rng),
		VX:       d.cfg.Sway.Sample(d.rng),
		Size:     d.cfg.Size.Sample(d.rng) * d.dpr,
		Alpha:    d.cfg.Alpha.Sample(d.rng),
		Rotation: d.rng.Float64() * 2 * math.Pi,
		Spin:     d.cfg.Spin.Sample(d.rng),
		Color:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	if len(d.cfg.Glyphs) > 0 {
		s.Glyph = d.cfg.Glyphs[d.rng.Intn(len(d.cfg.Glyphs))]
	}
	if len(d.cfg.Colors) > 0 {
		s.Color = d.cfg.Colors[d.rng.Intn(len(d.cfg.Colors))]
	}
	return s
}

// Sprites exposes the current sprites.
func (d *Drift) Sprites() []Sprite {
	return d.sprites
}

// Render draws every sprite.
func (d *Drift) Render(s Surface) {
	if s == nil {
		return
	}
	for _, sp := range d.sprites {
		s.Sprite(sp.X, sp.Y, sp.Size, sp.Rotation, sp.Glyph, sp.Color, sp.Alpha)
	}
}

// Step raises every sprite, applies the sway, and recycles sprites that
// have left through the top.
func (d *Drift) Step() {
	if d.stopped {
		return
	}
	margin := d.cfg.Margin * d.dpr
	for i := range d.sprites {
		sp := &d.sprites[i]
		sp.Y -= sp.Rise
		sp.X += sp.VX
		if d.cfg.SwayPeriod > 0 {
			sp.X += math.Sin(sp.Y/(d.cfg.SwayPeriod*d.dpr)) * d.cfg.SwayAmplitude
		}
		sp.Rotation += sp.Spin

		if sp.Y < -margin {
			*sp = d.spawn(d.height + margin)
		}
	}
}

// Resize updates the bounds used for respawning.
func (d *Drift) Resize(w, h float64) {
	d.width = w
	d.height = h
}

// Stop freezes the layer.
func (d *Drift) Stop() {
	d.stopped = true
}
