// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"image"
	"math"

	"github.com/gazed/raytrace/math/lin"
)

// Texture produces a color for a given texture coordinate.
type Texture interface {
	Sample(uv Texel) lin.Vec3
}

// ColorTexture is a constant-color texture, used by <material_solid>.
type ColorTexture lin.Vec3

// Sample implements Texture.
func (c ColorTexture) Sample(Texel) lin.Vec3 { return lin.Vec3(c) }

// ImageTexture samples an decoded image, used by <material_textured>.
// Coordinates outside [0,1] wrap via their fractional part.
type ImageTexture struct {
	Img image.Image
}

// Sample implements Texture.
func (t ImageTexture) Sample(uv Texel) lin.Vec3 {
	b := t.Img.Bounds()
	u := wrap01(uv.U)
	v := wrap01(uv.V)
	x := b.Min.X + int(u*float64(b.Dx()))
	y := b.Min.Y + int((1-v)*float64(b.Dy()))
	x = clampInt(x, b.Min.X, b.Max.X-1)
	y = clampInt(y, b.Min.Y, b.Max.Y-1)
	r, g, bl, _ := t.Img.At(x, y).RGBA()
	return lin.V3(float64(r)/0xffff, float64(g)/0xffff, float64(bl)/0xffff)
}

func wrap01(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ShadingModel computes the local (direct) contribution of a single light
// at a hit point. Ka is exposed separately since ambient light bypasses
// the rest of the BRDF entirely (see AmbientLight.Contribution in light.go).
type ShadingModel interface {
	Ambient() float64
	Direct(n, lightDir, eyeDir, texColor, lightColor lin.Vec3) lin.Vec3
}

// Phong is the classic ambient/diffuse/specular shading model.
type Phong struct {
	Ka, Kd, Ks float64
	Exponent   float64
}

// Ambient implements ShadingModel.
func (p Phong) Ambient() float64 { return p.Ka }

// Direct implements ShadingModel. n is the surface normal, lightDir is the
// unit vector from the light toward the surface (the direction the light
// travels), eyeDir is the unit vector from the surface toward the eye.
func (p Phong) Direct(n, lightDir, eyeDir, texColor, lightColor lin.Vec3) lin.Vec3 {
	nf := n.Neg()
	diffuseTerm := math.Max(lightDir.Dot(nf), 0)
	diffuse := lightColor.Mul(texColor).Scale(p.Kd * diffuseTerm)

	reflected := lin.Reflect(lightDir, nf)
	specularTerm := math.Pow(math.Max(eyeDir.Dot(reflected), 0), p.Exponent)
	specular := lightColor.Scale(p.Ks * specularTerm)

	return diffuse.Add(specular)
}

// CookTorrance is the microfacet GGX shading model.
type CookTorrance struct {
	Ka, Ks    float64
	Roughness float64
}

var cookTorranceF0 = lin.V3(0.56, 0.57, 0.58)

// Ambient implements ShadingModel.
func (c CookTorrance) Ambient() float64 { return c.Ka }

// Direct implements ShadingModel.
func (c CookTorrance) Direct(n, lightDir, eyeDir, texColor, lightColor lin.Vec3) lin.Vec3 {
	alpha2 := c.Roughness * c.Roughness
	nHat := n.Unit()
	lHat := lightDir.Neg().Unit()
	eHat := eyeDir.Unit()
	hHat := eHat.Add(lHat).Unit()

	hDotN := hHat.Dot(nHat)
	d := 0.0
	if hDotN > 0 {
		denom := hDotN*hDotN*(alpha2-1) + 1
		d = alpha2 / (math.Pi * denom * denom)
	}

	g := g1(eHat, hHat, nHat, alpha2) * g1(lHat, hHat, nHat, alpha2)

	eDotH := math.Max(eHat.Dot(hHat), 0)
	f := cookTorranceF0.Add(lin.V3(1, 1, 1).Sub(cookTorranceF0).Scale(math.Pow(1-eDotH, 5)))

	nDotL := nHat.Dot(lHat)
	nDotE := nHat.Dot(eHat)
	denom := math.Max(4*nDotL*nDotE, 1e-5)
	rs := f.Scale(d * g / denom)

	s := c.Ks
	dCoef := 1 - s
	return lightColor.Scale(math.Max(nDotL, 0)).Mul(texColor.Scale(dCoef).Add(rs.Scale(s)))
}

// g1 is the Smith shadowing-masking term for a single direction x.
func g1(x, h, n lin.Vec3, alpha2 float64) float64 {
	xDotH := x.Dot(h)
	xDotN := x.Dot(n)
	if xDotN == 0 || xDotH/xDotN <= 0 {
		return 0
	}
	tan2 := (1 - xDotN*xDotN) / (xDotN * xDotN)
	return 2 / (1 + math.Sqrt(1+alpha2*tan2))
}

// Material is the full description of a surface's appearance: its
// texture, shading model, and the reflectance/transmittance/refraction
// parameters the recursive trace loop weighs local, reflected, and
// refracted contributions with.
type Material struct {
	Texture       Texture
	Shading       ShadingModel
	Reflectance   float64
	Transmittance float64
	IOR           float64
}
