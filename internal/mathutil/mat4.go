package mathutil

import "golang.org/x/image/math/f64"

// Mat4 is a 4×4 matrix stored row-major, acting on column vectors (M·v).
// Used for affine viewing transforms and homogeneous projections.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns the affine translation by t.
func Mat4Translation(t Vec3) Mat4 {
	return Mat4{
		1, 0, 0, t[0],
		0, 1, 0, t[1],
		0, 0, 1, t[2],
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[r*4+c]
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulPoint transforms a 3D point (w=1) by the affine part of the matrix.
// The bottom row is ignored; use MulVec4 or Project for projective matrices.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// MulDir transforms a direction (w=0) by the linear part of the matrix.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2],
	}
}

// MulVec4 returns M × v for a homogeneous vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var o Vec4
	for r := 0; r < 4; r++ {
		o[r] = m[r*4+0]*v[0] + m[r*4+1]*v[1] + m[r*4+2]*v[2] + m[r*4+3]*v[3]
	}
	return o
}

// Project transforms p (w=1) and performs the perspective divide.
// ok is false when the resulting w is zero.
func (m Mat4) Project(p Vec3) (out Vec3, w float64, ok bool) {
	h := m.MulVec4(Vec4{p[0], p[1], p[2], 1})
	if h[3] == 0 {
		return Vec3{}, 0, false
	}
	inv := 1 / h[3]
	return Vec3{h[0] * inv, h[1] * inv, h[2] * inv}, h[3], true
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// Linear returns the upper-left 3×3 block.
func (m Mat4) Linear() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// F64 converts to the x/image row-major 4×4 type.
func (m Mat4) F64() f64.Mat4 {
	return f64.Mat4(m)
}

// ColumnMajor returns the matrix as float32 in column-major order,
// the layout GPU uniform buffers expect.
func (m Mat4) ColumnMajor() [16]float32 {
	var o [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			o[c*4+r] = float32(m[r*4+c])
		}
	}
	return o
}

// Vec4 is a homogeneous 4-component vector.
type Vec4 [4]float64
