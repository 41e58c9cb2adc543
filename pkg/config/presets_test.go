package config

import (
	"image/color"
	"math/rand"
	"os"
	"testing"

	"github.com/decker502/folio/pkg/embedded"
	"github.com/decker502/folio/pkg/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedPresets(t *testing.T) {
	embedded.Init(os.DirFS("../.."))
	defer embedded.Init(nil)

	ps, err := LoadEmbeddedPresets()
	require.NoError(t, err)
	assert.Equal(t, []string{"loader", "home", "kaska", "greenprompt", "dreampartner", "spotifyclone"}, ps.Names())

	for _, name := range HomeProjects {
		_, ok := ps.Get(name)
		assert.True(t, ok, "missing project preset %q", name)
	}

	loader, _ := ps.Get("loader")
	cfg, err := loader.NetworkConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 60, cfg.Count)
	assert.Equal(t, field.Range{Min: -0.6, Max: 0.6}, cfg.Speed)
	assert.Equal(t, 120.0, cfg.Threshold)
	assert.Equal(t, field.PaletteTheme, cfg.Palette.Mode)

	green, _ := ps.Get("greenprompt")
	gcfg, err := green.NetworkConfig()
	require.NoError(t, err)
	assert.Equal(t, 80, gcfg.Count)
	assert.Equal(t, 0.2, gcfg.MaxAlpha)
	assert.Equal(t, 0.9, gcfg.DotAlpha)
	assert.Len(t, gcfg.Palette.Colors, 2)
}

func TestLoadEmbeddedPresets_NotInitialized(t *testing.T) {
	embedded.Init(nil)
	_, err := LoadEmbeddedPresets()
	assert.Error(t, err)
}

func TestParsePresets_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "presets: [\n"},
		{"missing name", "presets:\n  - network: {count: 1, threshold: 10}\n"},
		{"no layers", "presets:\n  - name: empty\n"},
		{"duplicate", "presets:\n  - name: a\n    twinkle: {count: 1}\n  - name: a\n    twinkle: {count: 1}\n"},
		{"bad range", "presets:\n  - name: a\n    network: {count: 1, speed: \"[1 x]\"}\n"},
		{"bad colour", "presets:\n  - name: a\n    backdrop: \"#zz\"\n    twinkle: {count: 1}\n"},
		{"bad palette mode", "presets:\n  - name: a\n    network: {count: 1, palette: {mode: plaid}}\n"},
		{"random without colours", "presets:\n  - name: a\n    network: {count: 1, palette: {mode: random}}\n"},
		{"negative drift", "presets:\n  - name: a\n    drift: {count: -1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestPresetBuild_LayerOrder(t *testing.T) {
	src := `
presets:
  - name: mixed
    backdrop: "#102030"
    network:
      count: 5
      threshold: 50
    drift:
      count: 3
      rise: "1"
      glyphs: "♪"
    twinkle:
      count: 4
      rate: 0.1
`
	ps, err := ParsePresets([]byte(src))
	require.NoError(t, err)
	p, ok := ps.Get("mixed")
	require.True(t, ok)

	c, err := p.Build(field.Options{Width: 200, Height: 100, DPR: 1, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	require.Len(t, c.Layers, 3)
	assert.IsType(t, &field.Twinkle{}, c.Layers[0])
	assert.IsType(t, &field.Drift{}, c.Layers[1])
	assert.IsType(t, &field.Field{}, c.Layers[2])
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}, c.Backdrop)

	drift := c.Layers[1].(*field.Drift)
	for _, sp := range drift.Sprites() {
		assert.Equal(t, '♪', sp.Glyph)
		assert.Equal(t, 1.0, sp.Rise)
	}
}

func TestPresetBackdrop_FollowsTheme(t *testing.T) {
	src := `
presets:
  - name: themed
    network:
      count: 1
      palette:
        mode: theme
        on_dark: white
        on_light: black
        backdrop: black
        backdrop_light: white
`
	ps, err := ParsePresets([]byte(src))
	require.NoError(t, err)
	p, _ := ps.Get("themed")

	dark, err := p.BackdropColor(false)
	require.NoError(t, err)
	light, err := p.BackdropColor(true)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, dark)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, light)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ffffff", color.NRGBA{255, 255, 255, 255}, false},
		{"#00aaff", color.NRGBA{0, 170, 255, 255}, false},
		{"#fff", color.NRGBA{255, 255, 255, 255}, false},
		{"white", color.NRGBA{255, 255, 255, 255}, false},
		{" Black ", color.NRGBA{0, 0, 0, 255}, false},
		{"hsl(0, 100%, 50%)", color.NRGBA{255, 0, 0, 255}, false},
		{"hsl(120,100%,50%)", color.NRGBA{0, 255, 0, 255}, false},
		{"hsl(nope)", color.NRGBA{}, true},
		{"chartreuse", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
