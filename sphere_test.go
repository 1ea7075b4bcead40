// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"
	"testing"

	"github.com/gazed/raytrace/math/lin"
)

func TestSphereHitPointOnRadius(t *testing.T) {
	s := NewSphere(lin.V3(0, 0, -3), 1)
	r := NewRay(lin.V3(0, 0, 0), lin.V3(0, 0, -1))
	h, ok := s.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	p := r.At(h.T)
	dist := p.Sub(s.Center).Len()
	if math.Abs(dist-s.Radius) > 1e-4 {
		t.Errorf("hit point distance from center = %v, want %v", dist, s.Radius)
	}
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(lin.V3(0, 0, -3), 1)
	r := NewRay(lin.V3(0, 5, 0), lin.V3(0, 0, -1))
	if _, ok := s.Intersect(r); ok {
		t.Error("expected a miss")
	}
}

func TestSphereOriginInsideReturnsFarRoot(t *testing.T) {
	s := NewSphere(lin.V3(0, 0, 0), 2)
	r := NewRay(lin.V3(0, 0, 0), lin.V3(0, 0, -1))
	h, ok := s.Intersect(r)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(h.T-2) > 1e-9 {
		t.Errorf("expected far root t=2, got %v", h.T)
	}
}

func TestSphereAnimationLinearity(t *testing.T) {
	start := lin.V3(0, 0, -3)
	end := lin.V3(0, 0, -5)
	s := NewAnimatedSphere(start, 1, end, 1)
	const total = 3
	s.setFrame(2.0 / total)
	want := start.Lerp(end, 2.0/3)
	if !s.Center.Aeq(want) {
		t.Errorf("frame 2/3 center = %v, want %v", s.Center, want)
	}
}
