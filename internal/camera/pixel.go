package camera

import (
	"camview/internal/mathutil"
	"camview/internal/viewport"
)

// EyeToTangent flips Y (image Y grows downward) and writes -z into W, so
// the consumer's perspective divide yields image-tangent coordinates.
// Z becomes 1, which divides to 1/depth.
//
// The sign convention is right-handed eye space looking down -Z; check it
// against a backend's clip space before feeding the result to a GPU.
var EyeToTangent = mathutil.Mat4{
	1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 0, 1,
	0, 0, -1, 0,
}

// TangentToPixel returns the 2D map from image-tangent to image-pixel
// coordinates for vp.
func (c Camera) TangentToPixel(vp viewport.Size) mathutil.AffineCw2 {
	unitToPixel := mathutil.AffineCw2{Scales: vp.Dims()}
	return c.TangentToUnit.Then(unitToPixel)
}

// EyeToPixel returns the homogeneous transform from eye space to image
// pixels, before the perspective divide.
func (c Camera) EyeToPixel(vp viewport.Size) mathutil.Mat4 {
	t := c.TangentToPixel(vp)
	var pix mathutil.Mat4
	pix[0] = t.Scales[0]
	pix[5] = t.Scales[1]
	pix[10] = 1
	pix[15] = 1
	pix[3] = t.Trans[0]
	pix[7] = t.Trans[1]
	return mathutil.Mat4Mul(pix, EyeToTangent)
}

// PixelTransform returns the full object-space to image-pixel transform.
// Apply it to (x, y, z, 1) and divide X and Y by W to get pixel coordinates;
// Z/W is inverse eye depth and W is eye depth.
func (c Camera) PixelTransform(vp viewport.Size) mathutil.Mat4 {
	return mathutil.Mat4Mul(c.EyeToPixel(vp), c.ModelView)
}

// ProjectionGL returns the OpenGL-style projection of the frustum, for
// backends that take a projection matrix rather than pixel coordinates.
func (c Camera) ProjectionGL() mathutil.Mat4 {
	return c.Frustum.Matrix()
}
