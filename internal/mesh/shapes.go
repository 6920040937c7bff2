package mesh

import (
	"fmt"
	"math"
	"sort"

	"camview/internal/mathutil"
)

// Cube returns the axis-aligned cube [-1,1]³.
func Cube() *Mesh {
	v := []mathutil.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	quads := [][4]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{3, 7, 6, 2}, // +Y
		{0, 4, 7, 3}, // -X
		{1, 2, 6, 5}, // +X
	}
	return &Mesh{Name: "cube", Verts: v, Tris: quadsToTris(quads)}
}

// Tetrahedron returns a regular tetrahedron inscribed in the unit sphere.
func Tetrahedron() *Mesh {
	s := 1 / math.Sqrt(3)
	v := []mathutil.Vec3{{s, s, s}, {-s, -s, s}, {-s, s, -s}, {s, -s, -s}}
	return &Mesh{Name: "tetrahedron", Verts: v, Tris: []Triangle{
		{0, 1, 3}, {0, 2, 1}, {0, 3, 2}, {1, 2, 3},
	}}
}

// Octahedron returns the octahedron with vertices on the unit axes.
func Octahedron() *Mesh {
	v := []mathutil.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	return &Mesh{Name: "octahedron", Verts: v, Tris: []Triangle{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}}
}

// Pyramid returns a square-based pyramid with its apex on +Y.
func Pyramid() *Mesh {
	v := []mathutil.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}, {0, 1, 0}}
	return &Mesh{Name: "pyramid", Verts: v, Tris: []Triangle{
		{0, 1, 2}, {0, 2, 3},
		{3, 2, 4}, {2, 1, 4}, {1, 0, 4}, {0, 3, 4},
	}}
}

// Tent returns an n-sided cone-like tent: a ring of n vertices in the XZ
// plane joined to an apex on +Y. n is clamped to at least 3.
func Tent(n int) *Mesh {
	n = max(n, 3)
	v := make([]mathutil.Vec3, 0, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		v = append(v, mathutil.Vec3{math.Cos(a), 0, -math.Sin(a)})
	}
	v = append(v, mathutil.Vec3{0, 1, 0})
	tris := make([]Triangle, 0, n)
	for i := 0; i < n; i++ {
		tris = append(tris, Triangle{i, (i + 1) % n, n})
	}
	return &Mesh{Name: fmt.Sprintf("tent%d", n), Verts: v, Tris: tris}
}

// Square returns the unit square in the XY plane: flat content with zero volume.
func Square() *Mesh {
	v := []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	return &Mesh{Name: "square", Verts: v, Tris: quadsToTris([][4]int{{0, 1, 2, 3}})}
}

// Point returns a single vertex and no faces: point-like content.
func Point() *Mesh {
	return &Mesh{Name: "point", Verts: []mathutil.Vec3{{0, 0, 0}}}
}

func quadsToTris(quads [][4]int) []Triangle {
	tris := make([]Triangle, 0, len(quads)*2)
	for _, q := range quads {
		tris = append(tris, Triangle{q[0], q[1], q[2]}, Triangle{q[0], q[2], q[3]})
	}
	return tris
}

var builtins = map[string]func() *Mesh{
	"cube":        Cube,
	"tetrahedron": Tetrahedron,
	"octahedron":  Octahedron,
	"pyramid":     Pyramid,
	"square":      Square,
	"point":       Point,
}

// Builtin returns a named built-in shape. "tentN" builds Tent(N).
func Builtin(name string) (*Mesh, error) {
	if f, ok := builtins[name]; ok {
		return f(), nil
	}
	var n int
	if _, err := fmt.Sscanf(name, "tent%d", &n); err == nil && n >= 3 {
		return Tent(n), nil
	}
	return nil, fmt.Errorf("mesh: unknown shape %q", name)
}

// BuiltinNames lists the fixed shape names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
