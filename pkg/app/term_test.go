package app

import (
	"context"
	"testing"
	"time"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/sequencer"
	"github.com/gdamore/tcell/v2"
)

const termPresets = `
presets:
  - name: loader
    network:
      count: 6
      palette: {mode: theme}
  - name: notes
    backdrop: "#121212"
    drift:
      count: 5
      rise: "[0.3 0.9]"
      size: "[10 20]"
      glyphs: "♪"
      colors: ["#1db954"]
`

func newTermScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func loadTermPresets(t *testing.T) *config.Presets {
	t.Helper()
	ps, err := config.ParsePresets([]byte(termPresets))
	if err != nil {
		t.Fatalf("ParsePresets failed: %v", err)
	}
	return ps
}

func TestTermHost_UnknownPreset(t *testing.T) {
	screen := newTermScreen(t, 40, 12)
	if _, err := newTermHost(screen, loadTermPresets(t), TermConfig{Preset: "missing"}); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestTermHost_StepDrawsBackdrop(t *testing.T) {
	screen := newTermScreen(t, 40, 12)
	h, err := newTermHost(screen, loadTermPresets(t), TermConfig{Preset: "notes", Seed: 3})
	if err != nil {
		t.Fatalf("newTermHost failed: %v", err)
	}
	h.step(1.0 / 30)

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	r, g, b := bg.RGB()
	if r != 0x12 || g != 0x12 || b != 0x12 {
		t.Errorf("backdrop = #%02x%02x%02x, want #121212", r, g, b)
	}
	h.stop()
}

func TestTermHost_SequenceFinishes(t *testing.T) {
	screen := newTermScreen(t, 100, 30)
	h, err := newTermHost(screen, loadTermPresets(t), TermConfig{Sequence: true, Target: "KR", Seed: 1})
	if err != nil {
		t.Fatalf("newTermHost failed: %v", err)
	}
	if h.loader.Phase() != sequencer.PhaseProgress {
		t.Fatalf("phase = %s, want the sequence started", h.loader.Phase())
	}

	sawCounter := false
	for i := 0; i < 5000; i++ {
		h.step(1.0 / 60)
		if h.loader.Phase() == sequencer.PhaseProgress && h.loader.Count() == 50 && !sawCounter {
			sawCounter = true
			// 100×30 cells, centre cell (50, 15); "50%" starts one cell left
			if r, _, _, _ := screen.GetContent(49, 15); r != '5' {
				t.Errorf("counter cell = %q, want '5'", r)
			}
		}
		select {
		case <-h.finished:
			if !h.light {
				t.Error("light theme not applied before finishing")
			}
			h.stop()
			if !h.loader.Stopped() {
				t.Error("loader not stopped")
			}
			return
		default:
		}
	}
	t.Fatalf("sequence did not finish, phase %s", h.loader.Phase())
}

func TestTermHost_Resize(t *testing.T) {
	screen := newTermScreen(t, 20, 10)
	h, err := newTermHost(screen, loadTermPresets(t), TermConfig{Preset: "loader"})
	if err != nil {
		t.Fatalf("newTermHost failed: %v", err)
	}
	screen.SetSize(30, 12)
	h.resize()
	w, hh := h.surface.Size()
	if w != 30*render.CellWidth || hh != 12*render.CellHeight {
		t.Errorf("surface size = %vx%v after resize", w, hh)
	}
	h.stop()
}

func TestRunTerm_Duration(t *testing.T) {
	screen := newTermScreen(t, 20, 10)
	start := time.Now()
	err := RunTerm(context.Background(), screen, loadTermPresets(t), TermConfig{Preset: "loader", FPS: 60, Duration: 80 * time.Millisecond})
	if err != nil {
		t.Fatalf("RunTerm failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("RunTerm returned after %v, before the duration", elapsed)
	}
}

func TestRunTerm_QuitKey(t *testing.T) {
	screen := newTermScreen(t, 20, 10)
	go func() {
		time.Sleep(20 * time.Millisecond)
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	}()
	done := make(chan error, 1)
	go func() {
		done <- RunTerm(context.Background(), screen, loadTermPresets(t), TermConfig{Preset: "loader"})
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("RunTerm failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunTerm did not stop on q")
	}
}
