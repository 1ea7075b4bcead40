// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"

	"github.com/gazed/raytrace/math/lin"
)

// Sphere is a ray-traceable sphere, optionally animated by linearly
// interpolating its center and radius between a start and end value.
type Sphere struct {
	Center lin.Vec3
	Radius float64

	startCenter lin.Vec3
	startRadius float64
	endCenter   *lin.Vec3
	endRadius   *float64
}

// NewSphere returns a static (non-animated) sphere.
func NewSphere(center lin.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius, startCenter: center, startRadius: radius}
}

// NewAnimatedSphere returns a sphere that linearly interpolates between
// (center,radius) at frame 0 and (endCenter,endRadius) at the final frame.
func NewAnimatedSphere(center lin.Vec3, radius float64, endCenter lin.Vec3, endRadius float64) *Sphere {
	return &Sphere{
		Center: center, Radius: radius,
		startCenter: center, startRadius: radius,
		endCenter: &endCenter, endRadius: &endRadius,
	}
}

func (s *Sphere) setFrame(w float64) {
	if s.endCenter != nil {
		s.Center = s.startCenter.Lerp(*s.endCenter, w)
	}
	if s.endRadius != nil {
		s.Radius = lin.Lerp(s.startRadius, *s.endRadius, w)
	}
}

// Intersect implements Primitive. The smaller non-negative root is
// preferred; if it is negative (the ray origin is inside the sphere) the
// larger root is returned instead, producing a back-face hit. This is
// intentional: it is relied on by refraction rays exiting a sphere.
func (s *Sphere) Intersect(r Ray) (hit, bool) {
	oc := s.Center.Sub(r.Origin)
	a := r.Dir.Dot(r.Dir)
	h := r.Dir.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := h*h - a*c
	if disc < 0 {
		return hit{}, false
	}
	sq := math.Sqrt(disc)
	t := (h - sq) / a
	if t < 0 || !validT(t, r.MaxT) {
		t = (h + sq) / a
	}
	if !validT(t, r.MaxT) {
		return hit{}, false
	}
	p := r.At(t)
	n := p.Sub(s.Center)
	return hit{T: t, Normal: n, UV: sphereTexel(s.Center, p)}, true
}

// sphereTexel computes the equirectangular (u,v) of point p on the sphere
// centered at c, via the direction from p back to the center.
func sphereTexel(center, p lin.Vec3) Texel {
	d := center.Sub(p).Unit()
	u := 0.5 + math.Atan2(d.X, d.Z)/(2*math.Pi)
	v := 0.5 - math.Asin(d.Y)/math.Pi
	return Texel{U: u, V: v}
}
