package geom

import (
	"math"
	"testing"
)

func TestPercentToPixels(t *testing.T) {
	tests := []struct {
		name      string
		percent   float64
		dimension float64
		want      float64
	}{
		{name: "half", percent: 50, dimension: 1280, want: 640},
		{name: "full", percent: 100, dimension: 720, want: 720},
		{name: "zero", percent: 0, dimension: 1920, want: 0},
		{name: "fractional", percent: 12.5, dimension: 800, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentToPixels(tt.percent, tt.dimension); got != tt.want {
				t.Errorf("PercentToPixels(%v, %v) = %v, want %v", tt.percent, tt.dimension, got, tt.want)
			}
		})
	}
}

func TestPixelsToPercentRounding(t *testing.T) {
	// 333 px of 1000 px is 33.3%, not 33.300000000000004.
	if got := PixelsToPercent(333, 1000); got != 33.3 {
		t.Errorf("PixelsToPercent(333, 1000) = %v, want 33.3", got)
	}
	if got := PixelsToPercent(100, 0); got != 0 {
		t.Errorf("PixelsToPercent with zero dimension = %v, want 0", got)
	}
}

func TestRoundTrip(t *testing.T) {
	// pixelsToPercent(percentToPixels(p, d), d) ≈ p within 0.1 for the
	// dimensions the engine actually renders at.
	dims := []float64{720, 1080, 1280, 1584, 1920}
	for _, d := range dims {
		for p := 0.0; p <= 100; p += 0.5 {
			got := PixelsToPercent(PercentToPixels(p, d), d)
			if math.Abs(got-p) > 0.1 {
				t.Fatalf("round trip p=%v d=%v: got %v", p, d, got)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{name: "below", v: -5, lo: 0, hi: 100, want: 0},
		{name: "above", v: 120, lo: 0, hi: 100, want: 100},
		{name: "inside", v: 42, lo: 0, hi: 100, want: 42},
		{name: "at bound", v: 100, lo: 0, hi: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name      string
		v         float64
		step      float64
		tolerance float64
		want      float64
	}{
		{name: "grid rounds down", v: 62, step: 5, tolerance: 3, want: 60},
		{name: "grid rounds up", v: 63, step: 5, tolerance: 3, want: 65},
		{name: "anchor zero", v: 2.5, step: 5, tolerance: 3, want: 0},
		{name: "anchor center", v: 48.2, step: 5, tolerance: 3, want: 50},
		{name: "anchor full", v: 97.5, step: 5, tolerance: 3, want: 100},
		{name: "no step", v: 37.3, step: 0, tolerance: 0, want: 37.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(tt.v, tt.step, tt.tolerance); got != tt.want {
				t.Errorf("Snap(%v, %v, %v) = %v, want %v", tt.v, tt.step, tt.tolerance, got, tt.want)
			}
		})
	}
}
