// internal/utils/math.go
package utils

import "math"

// Normalize returns the unit vector of (x, y). The zero vector stays zero
// instead of dividing by zero.
func Normalize(x, y float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Dist returns the euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
