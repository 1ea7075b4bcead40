// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"

	"github.com/gazed/raytrace/math/lin"
)

// aabb is an axis-aligned bounding box, used to cheaply reject meshes
// before testing their triangles one by one.
type aabb struct {
	Min lin.Vec3
	Max lin.Vec3
}

// emptyAABB returns a degenerate box that grows to fit the first point
// given to extend.
func emptyAABB() aabb {
	inf := 1e300
	return aabb{Min: lin.V3(inf, inf, inf), Max: lin.V3(-inf, -inf, -inf)}
}

func (b aabb) extend(p lin.Vec3) aabb {
	return aabb{
		Min: lin.V3(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: lin.V3(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// hit reports whether r intersects b, using Smits' slab method: per axis
// compute the (near,far) parameter interval the ray spends inside the
// slab, then intersect those intervals across all three axes.
func (b aabb) hit(r Ray) bool {
	tMin, tMax := 0.0, r.MaxT

	for axis := 0; axis < 3; axis++ {
		d := axisOf(r.Dir, axis)
		o := axisOf(r.Origin, axis)
		lo := axisOf(b.Min, axis)
		hi := axisOf(b.Max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		invD := 1 / d
		t0 := (lo - o) * invD
		t1 := (hi - o) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}

func axisOf(v lin.Vec3, axis int) float64 { return v.Index(axis) }
