package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestAffineCw2FromRanges(t *testing.T) {
	a := AffineCw2FromRanges(Vec2{-2, -1}, Vec2{2, 1}, Vec2{0, 0}, Vec2{1, 1})
	assert.InDeltaSlice(t, []float64{0, 0}, s2(a.Apply(Vec2{-2, -1})), tol)
	assert.InDeltaSlice(t, []float64{1, 1}, s2(a.Apply(Vec2{2, 1})), tol)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, s2(a.Apply(Vec2{})), tol)

	flat := AffineCw2FromRanges(Vec2{3, 0}, Vec2{3, 1}, Vec2{5, 0}, Vec2{6, 1})
	assert.Equal(t, 0.0, flat.Scales[0])
	assert.Equal(t, 5.0, flat.Apply(Vec2{100, 0})[0])
}

func TestAffineCw2Then(t *testing.T) {
	a := AffineCw2{Scales: Vec2{2, 3}, Trans: Vec2{1, -1}}
	b := AffineCw2{Scales: Vec2{-1, 0.5}, Trans: Vec2{4, 2}}
	p := Vec2{0.25, 7}
	want := b.Apply(a.Apply(p))
	got := a.Then(b).Apply(p)
	assert.InDeltaSlice(t, want[:], got[:], tol)
	assert.Equal(t, a, a.Then(AffineCw2{Scales: Vec2{1, 1}}))
}

func TestBounds(t *testing.T) {
	b := BoundsOf([]Vec3{{1, 2, 3}, {-1, 5, 0}, {0, 0, 4}})
	assert.Equal(t, Vec3{-1, 0, 0}, b.Min)
	assert.Equal(t, Vec3{1, 5, 4}, b.Max)
	assert.Equal(t, Vec3{2, 5, 4}, b.Dims())
	assert.Equal(t, Vec3{0, 2.5, 2}, b.Center())

	assert.Equal(t, Bounds3{}, BoundsOf(nil))
	assert.Equal(t, Bounds3{Min: Vec3{1, 2, 3}, Max: Vec3{1, 2, 3}}, EmptyBounds3().Extend(Vec3{1, 2, 3}))
}

func TestVec3Reductions(t *testing.T) {
	v := Vec3{2, -1, 3}
	assert.Equal(t, 3.0, v.MaxElem())
	assert.Equal(t, -6.0, v.Volume())
	assert.False(t, v.IsZero())
	assert.True(t, Vec3{}.IsZero())
	assert.Equal(t, 0.0, Vec3{4, 0, 1}.Volume())
}

func TestMat4Compose(t *testing.T) {
	r := RotEulerDeg(10, 20, 30)
	m := Mat4Mul(Mat4Translation(Vec3{1, 2, 3}), FromMat3Translation(r, Vec3{}))
	p := Vec3{0.5, -2, 4}
	want := r.MulVec3(p).Add(Vec3{1, 2, 3})
	got := m.MulPoint(p)
	assert.InDeltaSlice(t, want[:], got[:], tol)
	assert.True(t, m.Linear().ApproxEqual(r, tol))
	assert.Equal(t, m, Mat4Mul(Mat4Identity(), m))
	assert.InDeltaSlice(t, s3(r.MulVec3(p)), s3(m.MulDir(p)), tol)
}

func TestMat4Project(t *testing.T) {
	// w = -z, the camera's perspective pattern.
	m := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, -1, 0,
	}
	out, w, ok := m.Project(Vec3{2, 4, -2})
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.InDeltaSlice(t, []float64{1, 2, 0.5}, out[:], tol)

	_, _, ok = m.Project(Vec3{1, 1, 0})
	assert.False(t, ok)
}

func TestMat4Export(t *testing.T) {
	m := Mat4Translation(Vec3{7, 8, 9})
	assert.Equal(t, 7.0, m.F64()[3])
	cm := m.ColumnMajor()
	assert.Equal(t, float32(7), cm[12])
	assert.Equal(t, float32(9), cm[14])
	assert.Equal(t, float32(1), cm[15])
}

func TestQuatToMat3(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 2}, math.Pi/2)
	assert.True(t, QuatToMat3(q).ApproxEqual(RotZ(math.Pi/2), tol))

	e := EulerToQuat(Deg2Rad(10), Deg2Rad(20), Deg2Rad(30))
	assert.True(t, QuatToMat3(e).ApproxEqual(RotEulerDeg(10, 20, 30), tol))

	assert.Equal(t, QuatIdentity(), Quat{}.Normalize())
	assert.True(t, QuatToMat3(Quat{0, 0, 0, 2}.Normalize()).ApproxEqual(Mat3Identity(), tol))
}

func TestMat3Inverse(t *testing.T) {
	r := RotEulerDeg(-15, 12, 80)
	assert.True(t, Mat3Mul(r, r.Inverse()).ApproxEqual(Mat3Identity(), tol))
	assert.InDelta(t, 1, r.Det(), tol)

	s := Mat3{2, 0, 0, 0, 4, 0, 0, 0, 0.5}
	assert.True(t, s.Inverse().ApproxEqual(Mat3{0.5, 0, 0, 0, 0.25, 0, 0, 0, 2}, tol))
	assert.Equal(t, Mat3Identity(), Mat3{}.Inverse())
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, 350, WrapDeg(-10), tol)
	assert.InDelta(t, 0, WrapDeg(720), tol)
}

func s2(v Vec2) []float64 { return v[:] }

func s3(v Vec3) []float64 { return v[:] }
