package camera

import "camview/internal/mathutil"

// Frustum bounds the visible volume: the near-plane rectangle in eye
// units plus the positive near and far depths, in glFrustum order.
type Frustum struct {
	Left, Right, Bottom, Top, Near, Far float64
}

// Tuple returns (left, right, bottom, top, near, far).
func (f Frustum) Tuple() [6]float64 {
	return [6]float64{f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far}
}

// Matrix returns the standard off-axis perspective projection for the
// frustum, mapping eye space to OpenGL clip space.
func (f Frustum) Matrix() mathutil.Mat4 {
	rl := f.Right - f.Left
	tb := f.Top - f.Bottom
	fn := f.Far - f.Near
	return mathutil.Mat4{
		2 * f.Near / rl, 0, (f.Right + f.Left) / rl, 0,
		0, 2 * f.Near / tb, (f.Top + f.Bottom) / tb, 0,
		0, 0, -(f.Far + f.Near) / fn, -2 * f.Far * f.Near / fn,
		0, 0, -1, 0,
	}
}
