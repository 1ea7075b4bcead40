// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"testing"

	"github.com/gazed/raytrace/math/lin"
)

func TestJuliaSetMissesOutsideBoundingSphere(t *testing.T) {
	j := NewJuliaSet(lin.V3(0, 0, 0), lin.Q4(-0.2, 0.6, 0.2, 0), 20, 0.001)
	r := NewRay(lin.V3(0, 10, 0), lin.V3(0, 0, -1)) // passes well above the bounding sphere
	if _, ok := j.Intersect(r); ok {
		t.Error("expected a miss outside the bounding sphere")
	}
}

func TestJuliaSetAnimationLerpsConstant(t *testing.T) {
	start := lin.Q4(-0.2, 0.6, 0.2, 0)
	end := lin.Q4(0.1, -0.3, 0.5, 0)
	j := NewAnimatedJuliaSet(lin.V3(0, 0, 0), start, 10, 0.001, end)
	j.setFrame(0.5)
	want := start.Lerp(end, 0.5)
	if j.C != want {
		t.Errorf("C at w=0.5 = %v, want %v", j.C, want)
	}
}

func TestJuliaSphereIntersectFrontFace(t *testing.T) {
	r := NewRay(lin.V3(0, 0, 10), lin.V3(0, 0, -1))
	dist, ok := juliaSphereIntersect(r)
	if !ok {
		t.Fatal("expected the ray to hit the bounding sphere")
	}
	if dist <= 0 {
		t.Errorf("expected a positive entry distance, got %v", dist)
	}
}
