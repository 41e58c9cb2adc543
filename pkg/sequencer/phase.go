// Package sequencer drives the loader: a counter, two converging markers,
// a typed name and a final navigation, in strict forward order.
package sequencer

import "fmt"

// Phase is one stage of the loader.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseProgress
	PhaseMark
	PhaseConverge
	PhaseCollision
	PhaseTyping
	PhaseNavigate
)

var phaseNames = [...]string{
	PhaseIdle:      "idle",
	PhaseProgress:  "progress",
	PhaseMark:      "mark",
	PhaseConverge:  "converge",
	PhaseCollision: "collision",
	PhaseTyping:    "typing",
	PhaseNavigate:  "navigate",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Audible reports whether the loader cue plays during p.
func (p Phase) Audible() bool {
	return p >= PhaseProgress && p <= PhaseTyping
}

// Screen is what the host shows for a phase. Mark, Converge and Collision
// share one screen.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenCounter
	ScreenMark
	ScreenTyping
	ScreenGone
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenCounter:
		return "counter"
	case ScreenMark:
		return "mark"
	case ScreenTyping:
		return "typing"
	case ScreenGone:
		return "gone"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// Screen maps the phase to its screen.
func (p Phase) Screen() Screen {
	switch p {
	case PhaseIdle:
		return ScreenStart
	case PhaseProgress:
		return ScreenCounter
	case PhaseMark, PhaseConverge, PhaseCollision:
		return ScreenMark
	case PhaseTyping:
		return ScreenTyping
	default:
		return ScreenGone
	}
}
