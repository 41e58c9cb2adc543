package utils

import (
	"math"
	"testing"
)

func TestEasing_Endpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
	}
	for name, fn := range funcs {
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := fn(-0.5); math.Abs(got) > 1e-9 {
			t.Errorf("%s(-0.5) = %v, want clamped to 0", name, got)
		}
		if got := fn(2); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(2) = %v, want clamped to 1", name, got)
		}
	}
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}
	if got := EaseOutCubic(0.5); got <= 0.5 {
		t.Errorf("EaseOutCubic(0.5) = %v, want > 0.5", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{10, -10, 0.5, 0},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, step float64
		want                  float64
	}{
		{"up", 0, 1, 0.25, 0.25},
		{"down", 1, 0, 0.25, 0.75},
		{"no overshoot up", 0.9, 1, 0.25, 1},
		{"no overshoot down", 0.1, 0, 0.25, 0},
		{"at target", 1, 1, 0.25, 1},
		{"zero step", 0.3, 1, 0, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approach(tt.current, tt.target, tt.step); got != tt.want {
				t.Errorf("Approach(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.step, got, tt.want)
			}
		})
	}
}
