// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package lin

import "testing"

func TestMat4TranslatePoint(t *testing.T) {
	m := Translate(1, 2, 3)
	p := m.MulPoint(V3(0, 0, 0))
	if !p.Eq(V3(1, 2, 3)) {
		t.Errorf("MulPoint: got %v want (1,2,3)", p)
	}
	d := m.MulVector(V3(1, 1, 1))
	if !d.Eq(V3(1, 1, 1)) {
		t.Errorf("MulVector should ignore translation, got %v", d)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Translate(1, -2, 3).Mul(Scale(2, 3, 4)).Mul(RotateY(0.7))
	inv := m.Inverse()
	p := V3(5, -1, 2)
	got := inv.MulPoint(m.MulPoint(p))
	if !got.Aeq(p) {
		t.Errorf("round trip through inverse: got %v want %v", got, p)
	}
}

func TestMat4NormalMatrixNonUniformScale(t *testing.T) {
	m := Scale(2, 1, 1)
	nm := m.NormalMatrix()
	// A normal perpendicular to a surface scaled by 2 along X must stay
	// perpendicular to the transformed surface: (1,0,0) plane normal (0,1,0)
	// transformed by m's normal matrix remains (0,1,0) in this axis-aligned case.
	n := nm.MulVector(V3(0, 1, 0)).Unit()
	if !n.Aeq(V3(0, 1, 0)) {
		t.Errorf("NormalMatrix: got %v want (0,1,0)", n)
	}
}

func TestLookAtForward(t *testing.T) {
	m := LookAt(V3(0, 0, 0), V3(0, 0, -1), V3(0, 1, 0))
	// camera space forward (0,0,-1) should map to world forward (0,0,-1)
	d := m.MulVector(V3(0, 0, -1))
	if !d.Aeq(V3(0, 0, -1)) {
		t.Errorf("LookAt forward: got %v", d)
	}
}
