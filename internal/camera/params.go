// Package camera derives a viewing transform and projection frustum from
// bounds, pose, pan, zoom and field of view, and composes the
// object-space to pixel-space transform for a viewport.
//
// Coordinate spaces, in order:
//
//	object → eye (ModelView) → image-tangent → image-unit [0,1]² → image-pixel
//
// Eye space looks down -Z with +Y up. Image spaces have +Y down.
package camera

import "camview/internal/mathutil"

// DefaultFovMaxDeg is the field of view DefaultParams uses.
const DefaultFovMaxDeg = 17.0

// Pose is the rotation applied to recentered object space before the
// camera placement.
type Pose struct {
	R mathutil.Mat3
}

// IdentityPose returns the pose that leaves object space unrotated.
func IdentityPose() Pose {
	return Pose{R: mathutil.Mat3Identity()}
}

// PoseFromQuat builds a pose from a quaternion; q is normalized first.
func PoseFromQuat(q mathutil.Quat) Pose {
	return Pose{R: mathutil.QuatToMat3(q.Normalize())}
}

// PoseFromEulerDeg builds a pose rotating about X, then Y, then Z.
func PoseFromEulerDeg(rx, ry, rz float64) Pose {
	return Pose{R: mathutil.RotEulerDeg(rx, ry, rz)}
}

// matrix treats the zero Pose as identity so Params{} is usable.
func (p Pose) matrix() mathutil.Mat3 {
	if p.R == (mathutil.Mat3{}) {
		return mathutil.Mat3Identity()
	}
	return p.R
}

// Params is the caller-owned camera configuration. Everything else is
// derived from it by Resolve.
type Params struct {
	// ModelBounds is the object-space bounding box of the content.
	ModelBounds mathutil.Bounds3
	Pose        Pose
	// RelTrans pans the view, in units of the content's half size.
	RelTrans mathutil.Vec2
	// LogRelScale is the natural log of the zoom factor. 0 fills the view.
	LogRelScale float64
	// FovMaxDeg is the field of view across the larger viewport dimension.
	// Values near zero approach an orthographic projection.
	FovMaxDeg float64
}

// DefaultParams frames bounds with an identity pose, no pan or zoom.
func DefaultParams(bounds mathutil.Bounds3) Params {
	return Params{
		ModelBounds: bounds,
		Pose:        IdentityPose(),
		FovMaxDeg:   DefaultFovMaxDeg,
	}
}

// Zoom returns a copy with the zoom changed by delta log units.
func (p Params) Zoom(delta float64) Params {
	p.LogRelScale += delta
	return p
}

// Pan returns a copy with the pan offset moved by d.
func (p Params) Pan(d mathutil.Vec2) Params {
	p.RelTrans = p.RelTrans.Add(d)
	return p
}

// Rotate returns a copy with r applied after the current pose.
func (p Params) Rotate(r mathutil.Mat3) Params {
	p.Pose = Pose{R: mathutil.Mat3Mul(r, p.Pose.matrix())}
	return p
}
