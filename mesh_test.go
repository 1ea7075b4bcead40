// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"testing"

	"github.com/gazed/raytrace/math/lin"
)

// wedgeBetween builds a triangle spanning the x range [lo,hi] so the mesh's
// AABB has a non-degenerate thickness along x.
func wedgeBetween(lo, hi float64) Triangle {
	return Triangle{
		P: [3]lin.Vec3{
			lin.V3(lo, -1, -1),
			lin.V3(hi, 1, -1),
			lin.V3(lo, 0, 1),
		},
		N: [3]lin.Vec3{lin.V3(1, 0, 0), lin.V3(1, 0, 0), lin.V3(1, 0, 0)},
	}
}

func TestMeshAABBGateShortCircuits(t *testing.T) {
	m := NewMesh([]Triangle{wedgeBetween(1, 1.5)}) // AABB lies entirely at x>1

	miss := NewRay(lin.V3(2, 0, 0), lin.V3(1, 0, 0)) // moves away from the box
	if _, ok := m.Intersect(miss); ok {
		t.Error("expected the AABB gate to reject this ray")
	}

	hit := NewRay(lin.V3(2, 0, 0), lin.V3(-1, 0, 0)) // moves through the box
	if _, ok := m.Intersect(hit); !ok {
		t.Error("expected a hit through the AABB")
	}
}

func TestTriangleBarycentricNormalBlend(t *testing.T) {
	tri := Triangle{
		P:  [3]lin.Vec3{lin.V3(-1, -1, 0), lin.V3(1, -1, 0), lin.V3(0, 1, 0)},
		N:  [3]lin.Vec3{lin.V3(0, 0, 1), lin.V3(0, 0, 1), lin.V3(0, 0, 1)},
		UV: [3]Texel{{0, 0}, {1, 0}, {0.5, 1}},
	}
	r := NewRay(lin.V3(0, -0.5, 5), lin.V3(0, 0, -1))
	h, ok := tri.intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !h.Normal.Aeq(lin.V3(0, 0, 1)) {
		t.Errorf("normal = %v, want (0,0,1)", h.Normal)
	}
}
