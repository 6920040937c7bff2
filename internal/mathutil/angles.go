package mathutil

import "math"

// WrapDeg wraps an angle in degrees into [0, 360).
func WrapDeg(a float64) float64 {
	d := math.Mod(a, 360)
	if d < 0 {
		d += 360
	}
	return d
}
