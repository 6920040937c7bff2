package mathutil

import "math"

// Vec2 is a 2-component vector (value type).
type Vec2 [2]float64

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Mul multiplies componentwise.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a[0] * b[0], a[1] * b[1]}
}

func (v Vec2) MaxElem() float64 {
	return math.Max(v[0], v[1])
}

// AffineCw2 is a component-wise 2D affine map: p' = Scales*p + Trans.
// No rotation or shear, so it composes and inverts per axis.
type AffineCw2 struct {
	Scales Vec2
	Trans  Vec2
}

// AffineCw2FromRanges maps the interval [dLo[i], dHi[i]] onto [rLo[i], rHi[i]] on each axis.
// A zero-width domain axis maps to the range low bound.
func AffineCw2FromRanges(dLo, dHi, rLo, rHi Vec2) AffineCw2 {
	var a AffineCw2
	for i := 0; i < 2; i++ {
		dw := dHi[i] - dLo[i]
		if dw == 0 {
			a.Trans[i] = rLo[i]
			continue
		}
		a.Scales[i] = (rHi[i] - rLo[i]) / dw
		a.Trans[i] = rLo[i] - dLo[i]*a.Scales[i]
	}
	return a
}

// Apply maps p.
func (a AffineCw2) Apply(p Vec2) Vec2 {
	return a.Scales.Mul(p).Add(a.Trans)
}

// Then returns the map that applies a first and b second (b ∘ a).
func (a AffineCw2) Then(b AffineCw2) AffineCw2 {
	return AffineCw2{
		Scales: b.Scales.Mul(a.Scales),
		Trans:  b.Scales.Mul(a.Trans).Add(b.Trans),
	}
}
