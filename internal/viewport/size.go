// Package viewport describes render targets: their pixel size and the
// pane hierarchy that lays them out.
package viewport

import "camview/internal/mathutil"

// Size is a viewport's dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// Square returns an n×n viewport.
func Square(n int) Size {
	return Size{Width: n, Height: n}
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Dims returns the size as a float vector.
func (s Size) Dims() mathutil.Vec2 {
	return mathutil.Vec2{float64(s.Width), float64(s.Height)}
}

// Scaled returns the size multiplied by k, used for supersampled targets.
func (s Size) Scaled(k int) Size {
	return Size{Width: s.Width * k, Height: s.Height * k}
}
