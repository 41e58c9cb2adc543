package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		a    float64
		want uint8
	}{
		{"opaque", white, 1, 255},
		{"half", white, 0.5, 128},
		{"zero", white, 0, 0},
		{"clamped high", white, 3, 255},
		{"clamped low", white, -1, 0},
		{"already translucent", color.NRGBA{A: 100}, 0.5, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithAlpha(tt.in, tt.a)
			if got.A != tt.want {
				t.Errorf("WithAlpha(%v, %v).A = %d, want %d", tt.in, tt.a, got.A, tt.want)
			}
			if got.R != tt.in.R || got.G != tt.in.G || got.B != tt.in.B {
				t.Errorf("WithAlpha changed RGB: %v", got)
			}
		})
	}
}

func TestEbitenSurface_Size(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(64, 32), nil)
	if w, h := s.Size(); w != 64 || h != 32 {
		t.Errorf("Size() = %vx%v, want 64x32", w, h)
	}
}

func TestEbitenSurface_NilTarget(t *testing.T) {
	s := NewEbitenSurface(nil, nil)
	s.Clear(black)
	s.Line(0, 0, 10, 10, 1, white, 1)
	s.Dot(1, 1, 1, white, 1, 4)
	s.Sprite(1, 1, 10, 0, '♪', white, 1)
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("nil target Size() = %vx%v", w, h)
	}
}
