package utils

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"EaseOutCubic": EaseOutCubic,
		"EaseInQuad":   EaseInQuad,
	}
	for name, f := range funcs {
		t.Run(name, func(t *testing.T) {
			if got := f(0); got != 0 {
				t.Errorf("f(0) = %v, want 0", got)
			}
			if got := f(1); math.Abs(got-1) > 1e-12 {
				t.Errorf("f(1) = %v, want 1", got)
			}
			if got := f(-1); got != 0 {
				t.Errorf("f(-1) = %v, want 0 (clamped)", got)
			}
			if got := f(2); math.Abs(got-1) > 1e-12 {
				t.Errorf("f(2) = %v, want 1 (clamped)", got)
			}
		})
	}
}

func TestLerpUint8(t *testing.T) {
	tests := []struct {
		a, b uint8
		t    float64
		want uint8
	}{
		{0, 255, 0, 0},
		{0, 255, 1, 255},
		{0, 200, 0.5, 100},
		{100, 0, 2, 0},
	}
	for _, tt := range tests {
		if got := LerpUint8(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("LerpUint8(%d, %d, %v) = %d, want %d", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}
