// Package vector provides the Vec3 algebra shared by every other package in
// this module. It is a thin, epsilon-aware layer over mgl64.Vec3: the base
// arithmetic (Add, Sub, Mul, Cross, Dot, Len, Normalize) comes straight from
// mathgl, and this package only adds the guarded operations the physics
// kernel needs (safe normalize, reflection, projection, distance) so that
// every degenerate-geometry check in the solver reads the same threshold.
package vector

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the position/velocity/acceleration type used throughout the
// kernel. It is a direct alias of mgl64.Vec3, not a wrapper, so particles
// and constraints can call its native methods (Add, Sub, Mul, Cross, Dot,
// Len, Normalize) without a conversion at every call site.
type Vec3 = mgl64.Vec3

// Numerical guards shared across the kernel (spec ranges: lengths 1e-6,
// squared norms 1e-8, denominators 1e-12).
const (
	Epsilon       = 1e-6
	EpsilonSq     = 1e-8
	EpsilonDenom  = 1e-12
)

// Zero returns the zero vector.
func Zero() Vec3 { return Vec3{0, 0, 0} }

// Length returns the Euclidean norm of v.
func Length(v Vec3) float64 { return v.Len() }

// LengthSq returns the squared Euclidean norm of v, avoiding the sqrt.
func LengthSq(v Vec3) float64 { return v.Dot(v) }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 { return a.Sub(b).Len() }

// Normalize returns v/||v||, or the zero vector if ||v|| < Epsilon. Unlike
// mgl64.Vec3.Normalize, this never produces NaN/Inf components.
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l < Epsilon {
		return Zero()
	}
	return v.Mul(1 / l)
}

// Reflect reflects v about the unit normal n: v - 2*(v.n)*n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Proj projects a onto n.
func Proj(a, n Vec3) Vec3 {
	nn := Normalize(n)
	l := n.Len()
	if l < Epsilon {
		return Zero()
	}
	return nn.Mul(a.Dot(n) / l)
}

// Tangent returns the component of a orthogonal to n (a minus its
// projection onto n).
func Tangent(a, n Vec3) Vec3 {
	return a.Sub(Proj(a, n))
}

// ApproxEqual reports whether a and b are within eps of each other in every
// component.
func ApproxEqual(a, b Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps && math.Abs(a[1]-b[1]) <= eps && math.Abs(a[2]-b[2]) <= eps
}
