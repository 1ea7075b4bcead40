// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"

	"github.com/gazed/raytrace/math/lin"
)

// bias offsets shadow, reflection, and refraction ray origins away from the
// surface they were spawned from to avoid self-intersection ("surface acne").
const bias = 1e-4

// Ray is a parameterized line: point(t) = Origin + t*Dir, valid for
// t in [0, MaxT]. Dir is not required to be unit length; in particular a
// ray transformed into object space is intentionally left unnormalized so
// that the t it yields remains usable, unscaled, back in world space.
type Ray struct {
	Origin lin.Vec3
	Dir    lin.Vec3
	MaxT   float64
}

// NewRay returns a ray from origin in direction dir with no upper bound.
func NewRay(origin, dir lin.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir, MaxT: math.Inf(1)}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) lin.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Transform returns r with its origin transformed as a point (w=1) and its
// direction transformed as a vector (w=0). The result is NOT renormalized.
func (r Ray) Transform(m lin.Mat4) Ray {
	return Ray{Origin: m.MulPoint(r.Origin), Dir: m.MulVector(r.Dir), MaxT: r.MaxT}
}

// Offset returns a copy of r with its origin nudged by bias along dir,
// used to start shadow, reflection, and refraction rays just clear of the
// surface they were spawned from.
func offsetRay(origin, dir lin.Vec3, maxT float64) Ray {
	return Ray{Origin: origin.Add(dir.Scale(bias)), Dir: dir, MaxT: maxT}
}

// validT reports whether t lies within the ray's valid hit range [0, maxT].
func validT(t, maxT float64) bool {
	return t >= 0 && t <= maxT
}
