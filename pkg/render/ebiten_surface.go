// Package render draws particle layers onto ebiten images and terminals.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowRings is the number of translucent halos drawn around a glowing dot.
const glowRings = 3

// EbitenSurface draws onto an *ebiten.Image. A nil target makes every
// call a no-op.
type EbitenSurface struct {
	dst  *ebiten.Image
	face *text.GoTextFace
}

// NewEbitenSurface wraps dst. face is used for sprite glyphs and may be nil,
// in which case sprites are drawn as discs.
func NewEbitenSurface(dst *ebiten.Image, face *text.GoTextFace) *EbitenSurface {
	return &EbitenSurface{dst: dst, face: face}
}

// SetTarget swaps the destination image, normally once per Draw.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Size returns the target size in pixels.
func (s *EbitenSurface) Size() (float64, float64) {
	if s.dst == nil {
		return 0, 0
	}
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the target.
func (s *EbitenSurface) Clear(bg color.NRGBA) {
	if s.dst == nil {
		return
	}
	s.dst.Fill(bg)
}

// Line strokes an anti-aliased segment.
func (s *EbitenSurface) Line(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64) {
	if s.dst == nil || alpha <= 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), WithAlpha(c, alpha), true)
}

// Dot fills a disc with soft halos approximating a canvas shadow blur.
func (s *EbitenSurface) Dot(x, y, r float64, c color.NRGBA, alpha, glow float64) {
	if s.dst == nil || alpha <= 0 {
		return
	}
	if glow > 0 {
		for i := glowRings; i >= 1; i-- {
			rr := r + glow*float64(i)/glowRings
			vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(rr), WithAlpha(c, alpha*0.12), true)
		}
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), WithAlpha(c, alpha), true)
}

// Sprite draws a glyph centred on (x, y) rotated by rotation radians.
func (s *EbitenSurface) Sprite(x, y, size, rotation float64, glyph rune, c color.NRGBA, alpha float64) {
	if s.dst == nil || alpha <= 0 {
		return
	}
	if s.face == nil || glyph == 0 || glyph > 0xFFFF {
		vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(size/2), WithAlpha(c, alpha), true)
		return
	}

	face := *s.face
	face.Size = size
	str := string(glyph)
	w, h := text.Measure(str, &face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(s.dst, str, &face, op)
}

// WithAlpha multiplies the colour's alpha by a, clamped to [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}
