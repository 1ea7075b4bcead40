// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"
	"math/rand"

	"github.com/gazed/raytrace/math/lin"
)

// Camera is a pinhole camera with an optional thin-lens depth-of-field
// approximation. Ray() produces primary rays in world space, already
// transformed by the camera's look-at matrix.
type Camera struct {
	Width, Height int
	MaxBounces    int
	Supersamples  int

	tanHalfFov float64
	aspect     float64 // height/width
	toWorld    lin.Mat4

	// depth of field; Aperture == 0 disables it.
	FocalLength float64
	Aperture    float64
}

// NewCamera builds a camera looking from eye toward center with the given
// up hint, horizontal field of view in degrees, and output resolution.
func NewCamera(eye, center, up lin.Vec3, fovDegrees float64, width, height, maxBounces int) *Camera {
	return &Camera{
		Width: width, Height: height, MaxBounces: maxBounces,
		tanHalfFov: math.Tan(lin.Rad(fovDegrees) / 2),
		aspect:     float64(height) / float64(width),
		toWorld:    lin.LookAt(eye, center, up),
	}
}

// cameraSpaceDir returns the camera-space primary ray direction through
// continuous pixel coordinates (px,py), which may already include a
// jitter offset for supersampling.
func (c *Camera) cameraSpaceDir(px, py float64) lin.Vec3 {
	x := (((2*px + 1) / float64(c.Width)) - 1) * c.tanHalfFov
	y := (((2*py + 1) / float64(c.Height)) - 1) * c.tanHalfFov * c.aspect
	return lin.V3(x, y, -1)
}

// Ray returns the primary ray through continuous pixel coordinates
// (px,py), in world space. rng supplies the jitter needed for
// depth-of-field; it may be nil when depth-of-field is disabled.
func (c *Camera) Ray(px, py float64, rng *rand.Rand) Ray {
	dir := c.cameraSpaceDir(px, py)

	var origin lin.Vec3
	if c.Aperture > 0 && rng != nil {
		jx := (rng.Float64()*2 - 1) * c.Aperture
		jy := (rng.Float64()*2 - 1) * c.Aperture
		origin = lin.V3(jx, jy, 0)
		focalPoint := dir.Scale(c.FocalLength)
		dir = focalPoint.Sub(origin)
	}

	r := Ray{Origin: origin, Dir: dir, MaxT: math.Inf(1)}
	r = r.Transform(c.toWorld)
	r.Dir = r.Dir.Unit()
	return r
}
