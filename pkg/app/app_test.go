package app

import (
	"testing"

	"github.com/decker502/folio/pkg/config"
)

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		dpr          float64
		wantW, wantH int
	}{
		{"unit", 1280, 720, 1, 1280, 720},
		{"retina", 640, 360, 2, 1280, 720},
		{"fractional", 100, 50, 1.5, 150, 75},
		{"zero dpr", 300, 200, 0, 300, 200},
		{"zero size", 0, 0, 2, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ScaledSize(tt.w, tt.h, tt.dpr)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ScaledSize(%d, %d, %v) = (%d, %d), want (%d, %d)", tt.w, tt.h, tt.dpr, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestConfigFrom(t *testing.T) {
	ac := config.DefaultAppConfig()
	ac.Verbose = true
	ac.StartScene = "project:kaska"
	ac.Seed = 42
	ac.PresetsFile = "custom.yaml"

	cfg := ConfigFrom(ac)
	if !cfg.Verbose || cfg.StartScene != "project:kaska" || cfg.Seed != 42 || cfg.PresetsFile != "custom.yaml" {
		t.Errorf("ConfigFrom lost fields: %+v", cfg)
	}
	if cfg.Width != config.GameWindowWidth || cfg.Height != config.GameWindowHeight {
		t.Errorf("size = %dx%d, want defaults", cfg.Width, cfg.Height)
	}
	if cfg.Target != config.LoaderTarget || !cfg.Audio {
		t.Errorf("Target/Audio = %q/%v, want defaults", cfg.Target, cfg.Audio)
	}
}
