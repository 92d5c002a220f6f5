package geom

import "math"

// Point is a coordinate pair. Whether it is percent or pixel space depends on
// context; conversion always happens through this package.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PercentToPixels converts a percent coordinate to pixels at the given
// dimension.
func PercentToPixels(percent, dimension float64) float64 {
	return percent / 100 * dimension
}

// PixelsToPercent converts a pixel coordinate to percent of the given
// dimension, rounded to one decimal place. The rounding keeps repeated
// pixel→percent→pixel conversions stable during interactive dragging.
func PixelsToPercent(px, dimension float64) float64 {
	if dimension == 0 {
		return 0
	}
	return math.Round(px/dimension*1000) / 10
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Snap rounds v to the nearest multiple of step. Values within tolerance of
// an anchor (0, 50, 100) snap to the anchor first, so edges and the center
// win over the regular grid.
func Snap(v, step, tolerance float64) float64 {
	for _, anchor := range []float64{0, 50, 100} {
		if math.Abs(v-anchor) <= tolerance {
			return anchor
		}
	}
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
