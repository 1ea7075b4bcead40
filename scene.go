// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"
	"math/rand"

	"github.com/gazed/raytrace/math/lin"
)

// Animation holds the frame count and playback rate for an animated
// scene. TotalFrames == 1 means the scene is not animated.
type Animation struct {
	TotalFrames int
	FPS         int
}

// IsAnimated reports whether the scene renders more than one frame.
func (a Animation) IsAnimated() bool { return a.TotalFrames > 1 }

// Scene owns every object needed to render a frame: the camera, the
// lights, and the surfaces. It is read-only once constructed, other than
// the per-frame animation tick applied between frames by SetFrame.
type Scene struct {
	Background   lin.Vec3
	Camera       *Camera
	Lights       []Light
	Surfaces     []*Surface
	Supersamples int
	Animation    Animation
}

// ClosestHit returns the nearest intersection of r with any surface in
// the scene, or false if r hits nothing.
func (s *Scene) ClosestHit(r Ray) (Intersection, bool) {
	var best Intersection
	found := false
	closest := r
	for _, surf := range s.Surfaces {
		if hit, ok := surf.Intersect(closest); ok {
			best = hit
			found = true
			closest.MaxT = hit.T
		}
	}
	return best, found
}

// AnyHit reports whether r intersects any surface in the scene. Used for
// shadow ray visibility tests, where only occlusion matters.
func (s *Scene) AnyHit(r Ray) bool {
	for _, surf := range s.Surfaces {
		if surf.HasIntersection(r) {
			return true
		}
	}
	return false
}

// visible reports whether hit is lit by light: true for ambient light,
// and for every other light kind, true iff the shadow ray toward it does
// not intersect any surface.
func (s *Scene) visible(light Light, point lin.Vec3) bool {
	shadowRay, canShadow := light.ShadowRay(point)
	if !canShadow {
		return true
	}
	return !s.AnyHit(shadowRay)
}

// Trace recursively evaluates the color seen along r, combining direct
// lighting at the closest hit with reflected and refracted contributions
// up to depth additional bounces.
func (s *Scene) Trace(r Ray, depth int) lin.Vec3 {
	hit, ok := s.ClosestHit(r)
	if !ok {
		return s.Background
	}

	local := lin.Vec3{}
	eyeDir := r.Dir.Neg().Unit()
	for _, light := range s.Lights {
		if !s.visible(light, hit.Point) {
			continue
		}
		local = local.Add(light.Contribution(hit, eyeDir))
	}

	if depth == 0 {
		return local
	}

	mat := hit.Material
	refl, refr := lin.Vec3{}, lin.Vec3{}
	if mat.Reflectance > 0 {
		refl = s.Trace(reflectRay(hit, r), depth-1)
	}
	if mat.Transmittance > 0 {
		if rr, ok := refractRay(hit, r); ok {
			refr = s.Trace(rr, depth-1)
		}
	}

	localWeight := lin.Clamp(1-mat.Reflectance-mat.Transmittance, 0, 1)
	return local.Scale(localWeight).
		Add(refl.Scale(mat.Reflectance)).
		Add(refr.Scale(mat.Transmittance))
}

// reflectRay builds the mirror-reflection ray spawned by hit for incident
// ray r, offset along the reflected direction to avoid self-intersection.
func reflectRay(hit Intersection, r Ray) Ray {
	d := lin.Reflect(r.Dir, hit.Normal)
	return offsetRay(hit.Point, d, r.MaxT)
}

// refractRay builds the refracted ray spawned by hit for incident ray r,
// per Snell's law. The second return value is false on total internal
// reflection, in which case no refracted ray is spawned at all.
func refractRay(hit Intersection, r Ray) (Ray, bool) {
	v := r.Dir.Unit()
	n := hit.Normal
	c1 := n.Dot(v)

	eta := 1 / hit.Material.IOR
	if c1 < 0 {
		c1 = -c1
	} else {
		n = n.Neg()
		eta = hit.Material.IOR
	}

	k := 1 - eta*eta*(1-c1*c1)
	if k < 0 {
		return Ray{}, false // total internal reflection
	}

	t := v.Add(n.Scale(c1)).Scale(eta).Sub(n.Scale(math.Sqrt(k)))
	return offsetRay(hit.Point, t, r.MaxT), true
}

// TracePixel renders one output pixel at image coordinates (px,py), with
// py already flipped so that world-space up is image-space up. When
// Supersamples > 0, the result is the average of that many independently
// jittered primary rays; with Supersamples == 0, a single centered ray is
// used. rng must be non-nil whenever Supersamples > 0 or the camera has
// depth-of-field enabled.
func (s *Scene) TracePixel(px, py int, rng *rand.Rand) lin.Vec3 {
	if s.Supersamples <= 0 {
		r := s.Camera.Ray(float64(px), float64(py), rng)
		return s.Trace(r, s.Camera.MaxBounces).Clamp01()
	}

	sum := lin.Vec3{}
	for i := 0; i < s.Supersamples; i++ {
		jx := rng.Float64() - 0.5
		jy := rng.Float64() - 0.5
		r := s.Camera.Ray(float64(px)+jx, float64(py)+jy, rng)
		sum = sum.Add(s.Trace(r, s.Camera.MaxBounces))
	}
	return sum.Scale(1 / float64(s.Supersamples)).Clamp01()
}

// SetFrame advances every animated surface to the interpolated state for
// animation progress w = frame/totalFrames.
func (s *Scene) SetFrame(frame int) {
	w := float64(frame) / float64(s.Animation.TotalFrames)
	for _, surf := range s.Surfaces {
		surf.setFrame(w)
	}
}
