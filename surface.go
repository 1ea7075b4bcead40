// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import "github.com/gazed/raytrace/math/lin"

// Surface wraps a Primitive with an optional affine transform and a
// Material. It is the only type the Scene holds a list of; the renderer
// never touches a Primitive directly.
type Surface struct {
	Primitive Primitive
	Material  Material

	hasTransform bool
	inverse      lin.Mat4
	normal       lin.Mat4
}

// NewSurface returns an untransformed surface.
func NewSurface(p Primitive, m Material) *Surface {
	return &Surface{Primitive: p, Material: m}
}

// NewTransformedSurface returns a surface placed in the world by the
// given affine transform. The transform's inverse and inverse-transpose
// are precomputed once, at construction, since every ray tested against
// this surface needs them.
func NewTransformedSurface(p Primitive, m Material, transform lin.Mat4) *Surface {
	inv := transform.Inverse()
	return &Surface{
		Primitive: p, Material: m,
		hasTransform: true,
		inverse:      inv,
		normal:       inv.Transpose(),
	}
}

// toObjectSpace transforms r into the primitive's local space, or returns
// r unchanged if the surface has no transform.
func (s *Surface) toObjectSpace(r Ray) Ray {
	if !s.hasTransform {
		return r
	}
	return r.Transform(s.inverse)
}

// HasIntersection reports whether r hits this surface, without computing
// shading-relevant details. Used for shadow ray (any-hit) tests.
func (s *Surface) HasIntersection(r Ray) bool {
	_, ok := s.Primitive.Intersect(s.toObjectSpace(r))
	return ok
}

// Intersect tests r (in world space) against the surface, returning the
// closest-hit details transformed back into world space. The returned
// point is computed on the original world-space ray so that it is exact
// regardless of how the object-space t was derived.
func (s *Surface) Intersect(r Ray) (Intersection, bool) {
	h, ok := s.Primitive.Intersect(s.toObjectSpace(r))
	if !ok {
		return Intersection{}, false
	}
	n := h.Normal
	if s.hasTransform {
		n = s.normal.MulVector(n)
	}
	return Intersection{
		Point:    r.At(h.T),
		T:        h.T,
		Normal:   n.Unit(),
		UV:       h.UV,
		Material: &s.Material,
	}, true
}

// setFrame advances the surface's primitive to the interpolated state for
// animation progress w in [0,1], if the primitive is animated.
func (s *Surface) setFrame(w float64) {
	if a, ok := s.Primitive.(animator); ok {
		a.setFrame(w)
	}
}
