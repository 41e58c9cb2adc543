package sequencer

import "testing"

func TestPhase(t *testing.T) {
	tests := []struct {
		phase   Phase
		name    string
		audible bool
		screen  Screen
	}{
		{PhaseIdle, "idle", false, ScreenStart},
		{PhaseProgress, "progress", true, ScreenCounter},
		{PhaseMark, "mark", true, ScreenMark},
		{PhaseConverge, "converge", true, ScreenMark},
		{PhaseCollision, "collision", true, ScreenMark},
		{PhaseTyping, "typing", true, ScreenTyping},
		{PhaseNavigate, "navigate", false, ScreenGone},
		{Phase(42), "Phase(42)", false, ScreenGone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.phase.Audible(); got != tt.audible {
				t.Errorf("Audible() = %v, want %v", got, tt.audible)
			}
			if got := tt.phase.Screen(); got != tt.screen {
				t.Errorf("Screen() = %s, want %s", got, tt.screen)
			}
		})
	}
}
