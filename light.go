// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"

	"github.com/gazed/raytrace/math/lin"
)

// Light is one of the four light kinds the scene document can declare:
// Ambient, Parallel, Point, Spot. The closed set is part of the contract.
type Light interface {
	// Contribution returns this light's shaded contribution at a hit,
	// given the unit direction from the surface toward the eye. Spot
	// lights outside their cone return the zero vector without
	// evaluating the shading model at all.
	Contribution(hit Intersection, eyeDir lin.Vec3) lin.Vec3

	// ShadowRay returns the ray used to test visibility of this light
	// from point, and false when no shadow test is made: always for
	// Ambient, and for Spot at points outside its outer cone.
	ShadowRay(point lin.Vec3) (Ray, bool)
}

// AmbientLight contributes a flat, view- and shadow-independent term.
type AmbientLight struct {
	Color lin.Vec3
}

// Contribution implements Light.
func (l AmbientLight) Contribution(h Intersection, _ lin.Vec3) lin.Vec3 {
	tex := h.Material.Texture.Sample(h.UV)
	return l.Color.Mul(tex).Scale(h.Material.Shading.Ambient())
}

// ShadowRay implements Light: ambient light is never shadowed.
func (l AmbientLight) ShadowRay(lin.Vec3) (Ray, bool) { return Ray{}, false }

// ParallelLight is a directional light with no position, like sunlight.
type ParallelLight struct {
	Color     lin.Vec3
	Direction lin.Vec3 // direction the light travels
}

// Contribution implements Light.
func (l ParallelLight) Contribution(h Intersection, eyeDir lin.Vec3) lin.Vec3 {
	dir := l.Direction.Unit()
	tex := h.Material.Texture.Sample(h.UV)
	return h.Material.Shading.Direct(h.Normal, dir, eyeDir, tex, l.Color)
}

// ShadowRay implements Light.
func (l ParallelLight) ShadowRay(point lin.Vec3) (Ray, bool) {
	dir := l.Direction.Unit().Neg()
	return offsetRay(point, dir, math.Inf(1)), true
}

// PointLight radiates from a single position in all directions.
type PointLight struct {
	Color    lin.Vec3
	Position lin.Vec3
}

// Contribution implements Light.
func (l PointLight) Contribution(h Intersection, eyeDir lin.Vec3) lin.Vec3 {
	dir := h.Point.Sub(l.Position).Unit()
	tex := h.Material.Texture.Sample(h.UV)
	return h.Material.Shading.Direct(h.Normal, dir, eyeDir, tex, l.Color)
}

// ShadowRay implements Light.
func (l PointLight) ShadowRay(point lin.Vec3) (Ray, bool) {
	toLight := l.Position.Sub(point)
	dist := toLight.Len()
	dir := toLight.Unit()
	return offsetRay(point, dir, dist), true
}

// SpotLight is a point light restricted to a cone, with a smoothstep
// falloff between the inner and outer angles.
type SpotLight struct {
	Color     lin.Vec3
	Position  lin.Vec3
	Direction lin.Vec3 // direction the spot points
	CosAlpha1 float64  // cos of the inner (full intensity) angle
	CosAlpha2 float64  // cos of the outer (zero intensity) angle
}

func (l SpotLight) weight(point lin.Vec3) float64 {
	toPoint := point.Sub(l.Position).Unit()
	cosAngle := toPoint.Dot(l.Direction.Unit())
	return smoothstep(l.CosAlpha2, l.CosAlpha1, cosAngle)
}

// Contribution implements Light.
func (l SpotLight) Contribution(h Intersection, eyeDir lin.Vec3) lin.Vec3 {
	w := l.weight(h.Point)
	if w <= 0 {
		return lin.Vec3{}
	}
	dir := h.Point.Sub(l.Position).Unit()
	tex := h.Material.Texture.Sample(h.UV)
	direct := h.Material.Shading.Direct(h.Normal, dir, eyeDir, tex, l.Color)
	return direct.Scale(w)
}

// ShadowRay implements Light. Points strictly outside the outer cone are
// reported as never shadowed by this light (there is nothing to occlude).
func (l SpotLight) ShadowRay(point lin.Vec3) (Ray, bool) {
	toPoint := point.Sub(l.Position).Unit()
	if toPoint.Dot(l.Direction.Unit()) < l.CosAlpha2 {
		return Ray{}, false
	}
	toLight := l.Position.Sub(point)
	dist := toLight.Len()
	dir := toLight.Unit()
	return offsetRay(point, dir, dist), true
}

// smoothstep interpolates smoothly from 0 at edge0 to 1 at edge1.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := lin.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
