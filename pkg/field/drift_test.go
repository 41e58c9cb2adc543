package field

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heartsConfig() DriftConfig {
	return DriftConfig{
		Count:         40,
		Rise:          Range{Min: 0.3, Max: 0.9},
		Sway:          Range{Min: -0.15, Max: 0.15},
		Size:          Range{Min: 10, Max: 22},
		Alpha:         Range{Min: 0.2, Max: 0.7},
		Spin:          Range{Min: -0.01, Max: 0.01},
		SwayAmplitude: 0.4,
		SwayPeriod:    60,
		Margin:        50,
		Glyphs:        []rune{'♥'},
		Colors:        []color.NRGBA{{R: 255, G: 105, B: 180, A: 255}},
	}
}

func TestDrift_SpritesRiseAndRespawn(t *testing.T) {
	cfg := heartsConfig()
	d := NewDrift(cfg, testOptions(400, 300, 11))
	require.Len(t, d.Sprites(), cfg.Count)

	for frame := 0; frame < 3000; frame++ {
		d.Step()
		for i, sp := range d.Sprites() {
			require.GreaterOrEqual(t, sp.Y, -cfg.Margin-cfg.Rise.Max, "frame %d sprite %d escaped above the margin", frame, i)
			require.LessOrEqual(t, sp.Y, 300+cfg.Margin, "frame %d sprite %d below respawn line", frame, i)
			require.Equal(t, '♥', sp.Glyph)
		}
	}
}

func TestDrift_Respawn(t *testing.T) {
	cfg := heartsConfig()
	cfg.Count = 1
	d := NewDrift(cfg, testOptions(400, 300, 1))
	d.sprites[0].Y = -cfg.Margin + 0.1
	d.sprites[0].Rise = 1

	d.Step()
	sp := d.Sprites()[0]
	assert.Equal(t, 300+cfg.Margin, sp.Y)
	assert.True(t, cfg.Rise.Contains(sp.Rise), "respawned sprite should draw a new rise speed")
}

func TestDrift_RenderAndStop(t *testing.T) {
	cfg := heartsConfig()
	d := NewDrift(cfg, testOptions(400, 300, 2))
	s := newRecordingSurface(400, 300)
	d.Render(s)
	assert.Equal(t, cfg.Count, s.sprites)

	before := append([]Sprite(nil), d.Sprites()...)
	d.Stop()
	d.Step()
	assert.Equal(t, before, d.Sprites())
}

func TestTwinkle_AlphaStaysInUnitRange(t *testing.T) {
	tw := NewTwinkle(TwinkleConfig{
		Count: 60,
		Size:  Range{Min: 0, Max: 2},
		Rate:  0.03,
		Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}, testOptions(400, 300, 3))

	s := newRecordingSurface(400, 300)
	for frame := 0; frame < 500; frame++ {
		s.reset()
		tw.Render(s)
		tw.Step()
		require.Len(t, s.dots, 60)
		for _, d := range s.dots {
			require.True(t, d.alpha >= 0 && d.alpha <= 1, "alpha %v outside [0,1]", d.alpha)
		}
	}
}

func TestComposite_ClearsOnce(t *testing.T) {
	net := New(DefaultConfig(), testOptions(200, 200, 1))
	tw := NewTwinkle(TwinkleConfig{Count: 5, Size: Range{Min: 1, Max: 1}, Rate: 0.1}, testOptions(200, 200, 1))
	c := &Composite{Layers: []Layer{tw, net}}

	s := newRecordingSurface(200, 200)
	c.Frame(s)
	assert.Equal(t, 1, s.clears)
	assert.Len(t, s.dots, 5+60)

	c.Resize(100, 50)
	w, h := net.Bounds()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)

	c.Stop()
	assert.True(t, net.Stopped())
	c.Frame(nil)
}
