// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"testing"

	"github.com/gazed/raytrace/math/lin"
)

func TestTransformedSurfaceMatchesEquivalentUntransformedHit(t *testing.T) {
	base := NewSphere(lin.V3(0, 0, 0), 1)
	mat := Material{Texture: ColorTexture(lin.V3(1, 1, 1)), Shading: Phong{Ka: 1}}

	plain := NewSurface(NewSphere(lin.V3(5, 0, 0), 1), mat)
	transform := lin.Translate(5, 0, 0)
	moved := NewTransformedSurface(base, mat, transform)

	r := NewRay(lin.V3(-10, 0, 0), lin.V3(1, 0, 0))

	hPlain, okPlain := plain.Intersect(r)
	hMoved, okMoved := moved.Intersect(r)
	if !okPlain || !okMoved {
		t.Fatalf("expected both surfaces to be hit, got plain=%v moved=%v", okPlain, okMoved)
	}
	if !hPlain.Point.Aeq(hMoved.Point) {
		t.Errorf("hit points differ: plain=%v moved=%v", hPlain.Point, hMoved.Point)
	}
	if !hPlain.Normal.Aeq(hMoved.Normal) {
		t.Errorf("normals differ: plain=%v moved=%v", hPlain.Normal, hMoved.Normal)
	}
}

func TestTransformedSurfaceNormalUnderNonUniformScale(t *testing.T) {
	// A sphere stretched along x (scale 2,1,1) becomes an ellipsoid; the normal
	// at an off-axis hit, mapped through the inverse-transpose, must still be
	// unit length.
	sphere := NewSphere(lin.V3(0, 0, 0), 1)
	mat := Material{Texture: ColorTexture(lin.V3(1, 1, 1)), Shading: Phong{Ka: 1}}
	transform := lin.Scale(2, 1, 1)
	surf := NewTransformedSurface(sphere, mat, transform)

	r := NewRay(lin.V3(-10, 0.5, 0), lin.V3(1, 0, 0))
	h, ok := surf.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if len := h.Normal.Len(); len < 0.999 || len > 1.001 {
		t.Errorf("normal not unit length: %v (len=%v)", h.Normal, len)
	}
}

func TestUntransformedSurfaceHasIntersection(t *testing.T) {
	sphere := NewSphere(lin.V3(0, 0, -5), 1)
	mat := Material{Texture: ColorTexture(lin.V3(1, 1, 1)), Shading: Phong{Ka: 1}}
	surf := NewSurface(sphere, mat)
	r := NewRay(lin.V3(0, 0, 0), lin.V3(0, 0, -1))
	if !surf.HasIntersection(r) {
		t.Error("expected a hit on an untransformed sphere")
	}
}
