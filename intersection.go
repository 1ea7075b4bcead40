// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import "github.com/gazed/raytrace/math/lin"

// Texel is a 2D texture coordinate. Values outside [0,1] are permitted;
// a texture lookup wraps via the fractional part.
type Texel struct {
	U float64
	V float64
}

// hit is the raw result of a kernel intersection test, expressed in the
// object space the kernel was evaluated in.
type hit struct {
	T      float64
	Normal lin.Vec3
	UV     Texel
}

// Intersection is the result of testing a ray against a Surface, expressed
// in world space. Material is borrowed from the surface and must not be
// retained past the shading of this one hit.
type Intersection struct {
	Point    lin.Vec3
	T        float64
	Normal   lin.Vec3
	UV       Texel
	Material *Material
}

// Primitive is a ray-traceable geometric kernel, evaluated in its own
// object space. The closed set of primitives (Sphere, Mesh, JuliaSet) is
// part of the contract; this interface exists to let Surface treat them
// uniformly, not to invite new implementations.
type Primitive interface {
	Intersect(r Ray) (hit, bool)
}

// animator is implemented by primitives whose parameters are interpolated
// between a start and end value across an animation's frames.
type animator interface {
	setFrame(w float64)
}
