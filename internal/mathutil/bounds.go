package mathutil

import "math"

// Bounds3 is an axis-aligned box. Min <= Max componentwise; equal
// components describe flat or point-like content and are legal.
type Bounds3 struct {
	Min Vec3
	Max Vec3
}

// EmptyBounds3 returns an inverted box that any Extend call replaces.
func EmptyBounds3() Bounds3 {
	return Bounds3{Min: Splat3(math.Inf(1)), Max: Splat3(math.Inf(-1))}
}

// BoundsOf returns the bounds of pts, or the zero box at the origin when pts is empty.
func BoundsOf(pts []Vec3) Bounds3 {
	if len(pts) == 0 {
		return Bounds3{}
	}
	b := EmptyBounds3()
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// Extend grows the box to contain p.
func (b Bounds3) Extend(p Vec3) Bounds3 {
	return Bounds3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

func (b Bounds3) Dims() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Bounds3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
