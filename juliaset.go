// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"

	"github.com/gazed/raytrace/math/lin"
)

// Constants for the quaternion Julia set distance estimator, taken from
// Hart, Sandin & Kauffman's quaternion Julia set ray tracing technique.
const (
	juliaBoundingRadius2 = 2.5
	juliaEscapeThreshold = 10.0
	juliaNormalDelta     = 1e-4
)

// JuliaSet is a ray-traceable quaternion Julia set, rendered via distance
// estimation and ray marching rather than a closed-form intersection.
// Its constant c may be animated by linearly interpolating toward an end
// value across an animation's frames.
type JuliaSet struct {
	Position      lin.Vec3
	C             lin.Quat
	MaxIterations int
	Epsilon       float64

	startC lin.Quat
	endC   *lin.Quat
}

// NewJuliaSet returns a static (non-animated) Julia set.
func NewJuliaSet(pos lin.Vec3, c lin.Quat, maxIterations int, epsilon float64) *JuliaSet {
	return &JuliaSet{Position: pos, C: c, MaxIterations: maxIterations, Epsilon: epsilon, startC: c}
}

// NewAnimatedJuliaSet returns a Julia set whose constant lerps from c at
// frame 0 to endC at the final frame.
func NewAnimatedJuliaSet(pos lin.Vec3, c lin.Quat, maxIterations int, epsilon float64, endC lin.Quat) *JuliaSet {
	return &JuliaSet{Position: pos, C: c, MaxIterations: maxIterations, Epsilon: epsilon, startC: c, endC: &endC}
}

func (j *JuliaSet) setFrame(w float64) {
	if j.endC != nil {
		j.C = j.startC.Lerp(*j.endC, w)
	}
}

// iterateIntersect advances q through the Julia iteration, accumulating
// the running derivative qp needed by the distance estimate.
func (j *JuliaSet) iterateIntersect(q lin.Quat) (lin.Quat, lin.Quat) {
	qp := lin.Q4(1, 0, 0, 0)
	for i := 0; i < j.MaxIterations; i++ {
		qp = q.Mul(qp).Scale(2)
		q = q.Square().Add(j.C)
		if q.LenSqr() > juliaEscapeThreshold {
			break
		}
	}
	return q, qp
}

// intersectionDist ray-marches from the ray's origin using the distance
// estimator until it converges on the surface (dist < epsilon) or the
// point leaves the bounding sphere (miss).
func (j *JuliaSet) intersectionDist(r Ray) (float64, lin.Vec3) {
	orig := r.Origin
	dist := 0.0
	for {
		q := lin.Q4(orig.X, orig.Y, orig.Z, 0)
		z, zp := j.iterateIntersect(q)

		normZ := z.Len()
		dist = 0.5 * normZ * math.Log2(normZ) / zp.Len()

		orig = orig.Add(r.Dir.Scale(dist))

		if dist < j.Epsilon || orig.LenSqr() > juliaBoundingRadius2 {
			break
		}
	}
	return dist, orig
}

// juliaSphereIntersect finds the entry point on the bounding sphere of squared
// radius juliaBoundingRadius2, centered at the origin of object space.
func juliaSphereIntersect(r Ray) (float64, bool) {
	a := r.Dir.LenSqr()
	h := r.Dir.Dot(r.Origin)
	c := r.Origin.LenSqr() - juliaBoundingRadius2
	disc := h*h - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	return math.Min(-h+sq, -h-sq) / a, true
}

// estimateNormal approximates the surface normal at p via central
// differences of the iterated quaternion's length along each axis.
func (j *JuliaSet) estimateNormal(p lin.Vec3) lin.Vec3 {
	qp := lin.Q4(p.X, p.Y, p.Z, 0)
	del := juliaNormalDelta

	gx1, gx2 := qp.Sub(lin.Q4(del, 0, 0, 0)), qp.Add(lin.Q4(del, 0, 0, 0))
	gy1, gy2 := qp.Sub(lin.Q4(0, del, 0, 0)), qp.Add(lin.Q4(0, del, 0, 0))
	gz1, gz2 := qp.Sub(lin.Q4(0, 0, del, 0)), qp.Add(lin.Q4(0, 0, del, 0))

	for i := 0; i < j.MaxIterations; i++ {
		gx1, gx2 = gx1.Square().Add(j.C), gx2.Square().Add(j.C)
		gy1, gy2 = gy1.Square().Add(j.C), gy2.Square().Add(j.C)
		gz1, gz2 = gz1.Square().Add(j.C), gz2.Square().Add(j.C)
	}

	return lin.V3(gx2.Len()-gx1.Len(), gy2.Len()-gy1.Len(), gz2.Len()-gz1.Len()).Unit()
}

// Intersect implements Primitive.
func (j *JuliaSet) Intersect(r Ray) (hit, bool) {
	local := Ray{Origin: r.Origin.Sub(j.Position), Dir: r.Dir, MaxT: r.MaxT}
	t, ok := juliaSphereIntersect(local)
	if !ok {
		return hit{}, false
	}
	entry := Ray{Origin: local.At(t), Dir: local.Dir, MaxT: local.MaxT}
	dist, p := j.intersectionDist(entry)
	if dist >= j.Epsilon {
		return hit{}, false
	}
	t += p.Sub(entry.Origin).Len() / local.Dir.Len()
	if !validT(t, r.MaxT) {
		return hit{}, false
	}
	return hit{T: t, Normal: j.estimateNormal(p), UV: Texel{}}, true
}
