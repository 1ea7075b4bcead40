// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package lin

// Quaternion supports the handful of operations the quaternion Julia set
// distance estimator needs: non-commutative multiplication, squaring, and
// the linear interpolation used to animate the set's constant between
// frames. This is not a general rotation-quaternion library; Mat4's axis
// rotations cover that need instead.

import "math"

// Quat is a quaternion x*i + y*j + z*k + w, stored as a pure value.
type Quat struct {
	X float64
	Y float64
	Z float64
	W float64
}

// Q4 is shorthand for constructing a Quat.
func Q4(x, y, z, w float64) Quat { return Quat{X: x, Y: y, Z: z, W: w} }

// Add (+) returns q+a.
func (q Quat) Add(a Quat) Quat { return Quat{q.X + a.X, q.Y + a.Y, q.Z + a.Z, q.W + a.W} }

// Sub (-) returns q-a.
func (q Quat) Sub(a Quat) Quat { return Quat{q.X - a.X, q.Y - a.Y, q.Z - a.Z, q.W - a.W} }

// Scale (*) returns q scaled by s.
func (q Quat) Scale(s float64) Quat { return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s} }

// Mul returns the Hamilton product q*a. Quaternion multiplication is not
// commutative: q.Mul(a) != a.Mul(q) in general.
func (q Quat) Mul(a Quat) Quat {
	return Quat{
		X: q.W*a.X + q.X*a.W + q.Y*a.Z - q.Z*a.Y,
		Y: q.W*a.Y - q.X*a.Z + q.Y*a.W + q.Z*a.X,
		Z: q.W*a.Z + q.X*a.Y - q.Y*a.X + q.Z*a.W,
		W: q.W*a.W - q.X*a.X - q.Y*a.Y - q.Z*a.Z,
	}
}

// Square returns q*q computed directly from q's scalar and vector parts:
// given q = (w, v), q^2 has scalar part w^2-|v|^2 and vector part 2*w*v.
func (q Quat) Square() Quat {
	v := Vec3{q.X, q.Y, q.Z}
	r2 := q.W*q.W - v.LenSqr()
	v2 := v.Scale(2 * q.W)
	return Quat{v2.X, v2.Y, v2.Z, r2}
}

// LenSqr returns the squared length of q.
func (q Quat) LenSqr() float64 { return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W }

// Len returns the length of q.
func (q Quat) Len() float64 { return math.Sqrt(q.LenSqr()) }

// Lerp returns the linear (non-spherical) interpolation of q to a by ratio.
// The Julia set's animated constant is lerped, not slerped.
func (q Quat) Lerp(a Quat, ratio float64) Quat {
	return Quat{
		Lerp(q.X, a.X, ratio),
		Lerp(q.Y, a.Y, ratio),
		Lerp(q.Z, a.Z, ratio),
		Lerp(q.W, a.W, ratio),
	}
}
