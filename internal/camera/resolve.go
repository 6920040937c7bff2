package camera

import (
	"math"

	"camview/internal/mathutil"
	"camview/internal/viewport"
)

const (
	// MinFovDeg stands in for smaller fields of view. Tiny but nonzero keeps
	// tan well defined and gives a near-orthographic projection.
	MinFovDeg = 0.0001

	// The camera never gets closer than clipFloor half-dims to the content
	// center, and the clip planes sit clipMargin half-dims either side of it.
	// clipFloor > clipMargin keeps near > 0.
	clipFloor  = 1.3
	clipMargin = 1.2
)

// Camera is a resolved view, valid for one parameter set and viewport.
type Camera struct {
	// ModelView maps object space to eye space.
	ModelView mathutil.Mat4
	Frustum   Frustum
	// TangentToUnit maps image-tangent coordinates to image-unit [0,1]².
	TangentToUnit mathutil.AffineCw2

	// Derived scalars, kept for diagnostics.
	HalfDim        float64
	HalfFovTan     float64
	FillDistance   float64
	CenterDistance float64
	Aspect         mathutil.Vec2
}

// Resolve derives the camera for p viewed in a viewport of size vp.
// It never fails: degenerate bounds, field of view and viewport are
// replaced with usable stand-ins.
func Resolve(p Params, vp viewport.Size) Camera {
	bmin, bmax := p.ModelBounds.Min, p.ModelBounds.Max
	dims := bmax.Sub(bmin)
	centre := bmin.Add(bmax).Scale(0.5)
	if dims.IsZero() {
		dims = mathutil.Splat3(1)
	} else if dims.Volume() == 0 {
		dims = mathutil.Splat3(dims.MaxElem())
	}

	fov := math.Max(p.FovMaxDeg, MinFovDeg)
	halfDim := dims.MaxElem() * 0.5
	relScale := math.Exp(p.LogRelScale)
	halfFovTan := math.Tan(mathutil.Deg2Rad(fov) * 0.5)
	// Distance at which the largest dimension spans the full field of view.
	fillDist := halfDim / halfFovTan
	centreDist := fillDist / relScale

	if vp.IsZero() {
		vp = viewport.Size{Width: 1, Height: 1}
	}
	imgDims := vp.Dims()
	aspect := imgDims.Scale(1 / imgDims.MaxElem())

	if centreDist < halfDim*clipFloor {
		centreDist = halfDim * clipFloor
	}
	near := centreDist - halfDim*clipMargin
	far := centreDist + halfDim*clipMargin
	// Similar triangles against the unclamped fill distance so the clip
	// floor doesn't change how much of the frame the content covers.
	hw := halfDim * near / fillDist

	pan := mathutil.Vec3{p.RelTrans[0] * halfDim, p.RelTrans[1] * halfDim, -centreDist}
	modelView := mathutil.Mat4Mul(
		mathutil.Mat4Translation(pan),
		mathutil.FromMat3Translation(p.Pose.matrix(), p.Pose.matrix().MulVec3(centre.Scale(-1))),
	)

	halfFov := aspect.Scale(halfFovTan)
	return Camera{
		ModelView: modelView,
		Frustum: Frustum{
			Left:   -hw * aspect[0],
			Right:  hw * aspect[0],
			Bottom: -hw * aspect[1],
			Top:    hw * aspect[1],
			Near:   near,
			Far:    far,
		},
		TangentToUnit: mathutil.AffineCw2FromRanges(
			halfFov.Scale(-1), halfFov,
			mathutil.Vec2{0, 0}, mathutil.Vec2{1, 1},
		),
		HalfDim:        halfDim,
		HalfFovTan:     halfFovTan,
		FillDistance:   fillDist,
		CenterDistance: centreDist,
		Aspect:         aspect,
	}
}

// EyePosition returns the camera's position in object space.
func (c Camera) EyePosition() mathutil.Vec3 {
	t := mathutil.Vec3{c.ModelView[3], c.ModelView[7], c.ModelView[11]}
	return c.ModelView.Linear().Inverse().MulVec3(t.Scale(-1))
}
