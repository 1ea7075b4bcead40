// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package lin

import "testing"

func TestVec3AddSub(t *testing.T) {
	a, b := V3(1, 2, 3), V3(4, 5, 6)
	if got := a.Add(b); !got.Eq(V3(5, 7, 9)) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); !got.Eq(V3(3, 3, 3)) {
		t.Errorf("Sub: got %v", got)
	}
}

func TestVec3DotCross(t *testing.T) {
	x, y := V3(1, 0, 0), V3(0, 1, 0)
	if got := x.Dot(y); got != 0 {
		t.Errorf("Dot: got %v want 0", got)
	}
	if got := x.Cross(y); !got.Eq(V3(0, 0, 1)) {
		t.Errorf("Cross: got %v want (0,0,1)", got)
	}
}

func TestVec3Unit(t *testing.T) {
	v := V3(3, 4, 0).Unit()
	if !Aeq(v.Len(), 1) {
		t.Errorf("Unit length: got %v want 1", v.Len())
	}
	if zero := (Vec3{}).Unit(); zero != (Vec3{}) {
		t.Errorf("Unit of zero vector should stay zero, got %v", zero)
	}
}

func TestReflectIsSelfInverse(t *testing.T) {
	d := V3(1, -1, 0).Unit()
	n := V3(0, 1, 0)
	r := Reflect(d, n)
	back := Reflect(r, n)
	if !back.Aeq(d) {
		t.Errorf("Reflect twice: got %v want %v", back, d)
	}
}

func TestVec3Lerp(t *testing.T) {
	a, b := V3(0, 0, 0), V3(10, 10, 10)
	if got := a.Lerp(b, 0.5); !got.Aeq(V3(5, 5, 5)) {
		t.Errorf("Lerp: got %v", got)
	}
}
