// Package mesh holds the triangle geometry that gets rendered and the
// bounding-box query the camera is framed from.
package mesh

import "camview/internal/mathutil"

// Triangle indexes three vertices, counter-clockwise when viewed from outside.
type Triangle [3]int

// Mesh is an indexed triangle list.
type Mesh struct {
	Name  string
	Verts []mathutil.Vec3
	Tris  []Triangle
}

// Bounds returns the axis-aligned bounds of the vertices. A mesh without
// vertices reports the point box at the origin.
func (m *Mesh) Bounds() mathutil.Bounds3 {
	return mathutil.BoundsOf(m.Verts)
}

// FaceNormal returns the unit normal of tri, or the zero vector for a
// degenerate or out-of-range triangle.
func (m *Mesh) FaceNormal(tri Triangle) mathutil.Vec3 {
	for _, i := range tri {
		if i < 0 || i >= len(m.Verts) {
			return mathutil.Vec3{}
		}
	}
	v0, v1, v2 := m.Verts[tri[0]], m.Verts[tri[1]], m.Verts[tri[2]]
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}
