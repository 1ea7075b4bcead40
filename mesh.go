// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"

	"github.com/gazed/raytrace/math/lin"
)

// Triangle is a single triangle with per-vertex normals and texture
// coordinates, enabling smooth (Phong-interpolated) shading across a mesh.
type Triangle struct {
	P  [3]lin.Vec3
	N  [3]lin.Vec3
	UV [3]Texel
}

const triangleEpsilon = 1e-8

// intersect tests the ray against the triangle using the Möller–Trumbore
// algorithm. Normals and texture coordinates are the barycentric blend of
// the triangle's per-vertex values.
func (tri Triangle) intersect(r Ray) (hit, bool) {
	e1 := tri.P[1].Sub(tri.P[0])
	e2 := tri.P[2].Sub(tri.P[0])
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < triangleEpsilon {
		return hit{}, false
	}
	invDet := 1 / det

	s := r.Origin.Sub(tri.P[0])
	a := s.Dot(p) * invDet
	if a < 0 || a > 1 {
		return hit{}, false
	}

	q := s.Cross(e1)
	b := r.Dir.Dot(q) * invDet
	if b < 0 || a+b > 1 {
		return hit{}, false
	}

	t := e2.Dot(q) * invDet
	if !validT(t, r.MaxT) {
		return hit{}, false
	}

	bary0 := 1 - a - b
	n := tri.N[0].Scale(bary0).Add(tri.N[1].Scale(a)).Add(tri.N[2].Scale(b))
	uv := Texel{
		U: math.Mod(bary0*tri.UV[0].U+a*tri.UV[1].U+b*tri.UV[2].U, 1),
		V: math.Mod(bary0*tri.UV[0].V+a*tri.UV[1].V+b*tri.UV[2].V, 1),
	}
	return hit{T: t, Normal: n, UV: uv}, true
}

// Mesh is an unaccelerated triangle soup gated by a precomputed AABB: a
// ray that misses the box is rejected in O(1) without visiting a single
// triangle.
type Mesh struct {
	Triangles []Triangle
	bounds    aabb
}

// NewMesh builds a Mesh from triangles, computing its AABB once from the
// union of all triangle vertices.
func NewMesh(triangles []Triangle) *Mesh {
	box := emptyAABB()
	for _, tri := range triangles {
		for _, p := range tri.P {
			box = box.extend(p)
		}
	}
	return &Mesh{Triangles: triangles, bounds: box}
}

// Intersect implements Primitive.
func (m *Mesh) Intersect(r Ray) (hit, bool) {
	if !m.bounds.hit(r) {
		return hit{}, false
	}
	best := hit{}
	found := false
	closest := r
	for _, tri := range m.Triangles {
		if h, ok := tri.intersect(closest); ok {
			best = h
			found = true
			closest.MaxT = h.T
		}
	}
	return best, found
}
