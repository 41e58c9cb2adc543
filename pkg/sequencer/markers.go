package sequencer

import (
	"math"

	"github.com/decker502/folio/pkg/config"
)

// MarkerConfig holds the marker physics in logical pixels and frames.
type MarkerConfig struct {
	Radius          float64
	ApproachSpeed   float64
	BandWidth       float64
	SettleDecay     float64
	WobblePeriod    float64
	WobbleAmplitude float64
	SettleFrames    int
	ConvergeSpeed   float64
	ApartSpeed      float64
	ApartFrames     int
}

// DefaultMarkerConfig returns the loader marker physics.
func DefaultMarkerConfig() MarkerConfig {
	return MarkerConfig{
		Radius:          config.MarkerRadius,
		ApproachSpeed:   config.MarkerApproachSpeed,
		BandWidth:       config.MarkerBandWidth,
		SettleDecay:     config.MarkerSettleDecay,
		WobblePeriod:    config.MarkerWobblePeriod,
		WobbleAmplitude: config.MarkerWobbleAmplitude,
		SettleFrames:    config.MarkerSettleFrames,
		ConvergeSpeed:   config.MarkerConvergeSpeed,
		ApartSpeed:      config.MarkerApartSpeed,
		ApartFrames:     config.MarkerApartFrames,
	}
}

// MarkerState is the motion stage of the marker pair.
type MarkerState int

const (
	MarkerApproach MarkerState = iota
	MarkerSettle
	MarkerConverge
	MarkerApart
	MarkerHidden
)

func (s MarkerState) String() string {
	switch s {
	case MarkerApproach:
		return "approach"
	case MarkerSettle:
		return "settle"
	case MarkerConverge:
		return "converge"
	case MarkerApart:
		return "apart"
	case MarkerHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// MarkerEvent is reported by Step when the pair crosses a stage boundary.
type MarkerEvent int

const (
	MarkerNoEvent MarkerEvent = iota
	// MarkerArrived: both markers reached the band and started settling.
	MarkerArrived
	// MarkerCollided: both near edges are inside the band.
	MarkerCollided
	// MarkerGone: the markers moved apart for long enough to be hidden.
	MarkerGone
)

// Marker is one ball. VX is its approach velocity, kept after arrival for
// the settle recoil.
type Marker struct {
	X, Y   float64
	VX     float64
	frames int
	landed bool
}

// Markers simulates the two balls that meet over the mark. Step is one
// animation frame.
type Markers struct {
	cfg    MarkerConfig
	dpr    float64
	radius float64
	cx, cy float64
	band   float64

	Left, Right Marker
	state       MarkerState
	apartFrames int
}

// NewMarkers places the markers just off the left and right edges of a
// w×h device-pixel surface, vertically centred.
func NewMarkers(cfg MarkerConfig, w, h, dpr float64) *Markers {
	if dpr <= 0 {
		dpr = 1
	}
	m := &Markers{
		cfg:    cfg,
		dpr:    dpr,
		radius: cfg.Radius * dpr,
		cx:     w / 2,
		cy:     h / 2,
		band:   cfg.BandWidth * dpr,
	}
	speed := cfg.ApproachSpeed * dpr
	m.Left = Marker{X: -m.radius, Y: m.cy, VX: speed}
	m.Right = Marker{X: w + m.radius, Y: m.cy, VX: -speed}
	return m
}

// State returns the current motion stage.
func (m *Markers) State() MarkerState {
	return m.state
}

// Radius is the drawn radius in device pixels.
func (m *Markers) Radius() float64 {
	return m.radius
}

// Visible reports whether the markers should be drawn.
func (m *Markers) Visible() bool {
	return m.state != MarkerHidden
}

func (m *Markers) bandLeft() float64  { return m.cx - m.band/2 }
func (m *Markers) bandRight() float64 { return m.cx + m.band/2 }

// StartApart sends the markers off-screen. Step normally does this itself
// on collision.
func (m *Markers) StartApart() {
	if m.state < MarkerApart {
		m.state = MarkerApart
		m.apartFrames = 0
	}
}

// Step advances one frame.
func (m *Markers) Step() MarkerEvent {
	switch m.state {
	case MarkerApproach, MarkerSettle:
		return m.stepSettle()
	case MarkerConverge:
		return m.stepConverge()
	case MarkerApart:
		m.apartFrames++
		d := m.cfg.ApartSpeed * m.dpr
		m.Left.X -= d
		m.Right.X += d
		if m.apartFrames > m.cfg.ApartFrames {
			m.state = MarkerHidden
			return MarkerGone
		}
	}
	return MarkerNoEvent
}

func (m *Markers) stepSettle() MarkerEvent {
	wobble := m.cfg.WobbleAmplitude * m.dpr
	wasApproaching := m.state == MarkerApproach

	l := &m.Left
	if !l.landed {
		if l.X+m.radius < m.bandLeft() {
			l.X += l.VX
		} else {
			l.landed = true
		}
	} else {
		l.frames++
		l.X -= l.VX * math.Exp(-float64(l.frames)/m.cfg.SettleDecay)
		l.Y += math.Sin(float64(l.frames)/m.cfg.WobblePeriod) * wobble
	}

	r := &m.Right
	if !r.landed {
		if r.X-m.radius > m.bandRight() {
			r.X += r.VX
		} else {
			r.landed = true
		}
	} else {
		r.frames++
		r.X -= r.VX * math.Exp(-float64(r.frames)/m.cfg.SettleDecay)
		r.Y -= math.Sin(float64(r.frames)/m.cfg.WobblePeriod) * wobble
	}

	if !l.landed || !r.landed {
		return MarkerNoEvent
	}
	if l.frames > m.cfg.SettleFrames && r.frames > m.cfg.SettleFrames {
		m.state = MarkerConverge
	} else {
		m.state = MarkerSettle
	}
	if wasApproaching {
		return MarkerArrived
	}
	return MarkerNoEvent
}

func (m *Markers) stepConverge() MarkerEvent {
	d := m.cfg.ConvergeSpeed * m.dpr
	m.Left.X += d
	m.Right.X -= d
	if m.Left.X+m.radius >= m.bandLeft() && m.Right.X-m.radius <= m.bandRight() {
		m.StartApart()
		return MarkerCollided
	}
	return MarkerNoEvent
}
