// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package lin

// Vector performs 3 element vector math needed for ray tracing: points,
// directions, and colors all share this type.

import "math"

// Vec3 is a 3 element vector used interchangeably as a point, a direction,
// or a color. Unlike the vector types in some sibling math libraries, Vec3
// is a pure value: every operation returns a new Vec3 instead of mutating
// a receiver, so Vec3 values can be freely shared across goroutines.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Eq (==) returns true if each component of v has the same value as a.
func (v Vec3) Eq(a Vec3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) almost-equals returns true if v and a are close enough that the
// difference makes no practical difference.
func (v Vec3) Aeq(a Vec3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// Add (+) returns v+a.
func (v Vec3) Add(a Vec3) Vec3 { return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub (-) returns v-a.
func (v Vec3) Sub(a Vec3) Vec3 { return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Neg (-) returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Scale (*) returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div (/) returns v divided componentwise by s.
func (v Vec3) Div(s float64) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// Mul returns the componentwise (Hadamard) product of v and a. Used for
// modulating a color by a texture sample or a light color.
func (v Vec3) Mul(a Vec3) Vec3 { return Vec3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Dot (.) returns the dot product of v and a.
func (v Vec3) Dot(a Vec3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross (x) returns the cross product of v and a.
func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// LenSqr returns the squared length of v, avoiding a sqrt.
func (v Vec3) LenSqr() float64 { return v.Dot(v) }

// Len returns the length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.LenSqr()) }

// Unit returns v normalized to unit length. The zero vector is returned
// unchanged rather than producing NaN.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation of v to a by the given ratio.
func (v Vec3) Lerp(a Vec3, ratio float64) Vec3 {
	return Vec3{Lerp(v.X, a.X, ratio), Lerp(v.Y, a.Y, ratio), Lerp(v.Z, a.Z, ratio)}
}

// Index returns the i'th component of v, 0=X, 1=Y, 2=Z.
func (v Vec3) Index(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Clamp01 returns v with every component clamped to [0,1]. Used when
// converting a shaded color to an 8-bit channel.
func (v Vec3) Clamp01() Vec3 {
	return Vec3{Clamp(v.X, 0, 1), Clamp(v.Y, 0, 1), Clamp(v.Z, 0, 1)}
}

// Reflect returns the reflection of direction d about normal n:
// d - 2*(n.d)*n. n is expected to be unit length.
func Reflect(d, n Vec3) Vec3 {
	return d.Sub(n.Scale(2 * n.Dot(d)))
}
