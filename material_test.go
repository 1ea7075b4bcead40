// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math"
	"testing"

	"github.com/gazed/raytrace/math/lin"
)

func TestPhongZeroLightBehindSurfaceContributesNothing(t *testing.T) {
	p := Phong{Ka: 0.1, Kd: 0.9, Ks: 0.5, Exponent: 32}
	n := lin.V3(0, 0, 1)
	lightDir := lin.V3(0, 0, 1) // light travels +z: it comes from behind the surface relative to n
	eyeDir := lin.V3(0, 0, 1)
	tex := lin.V3(1, 1, 1)
	color := lin.V3(1, 1, 1)
	got := p.Direct(n, lightDir, eyeDir, tex, color)
	if !got.Eq(lin.Vec3{}) {
		t.Errorf("expected zero contribution for light behind surface, got %v", got)
	}
}

func TestPhongDiffuseScalesWithTexColor(t *testing.T) {
	p := Phong{Ka: 0, Kd: 1, Ks: 0, Exponent: 1}
	n := lin.V3(0, 0, 1)
	lightDir := lin.V3(0, 0, -1) // travels -z onto the front face; lit after the n.Neg() flip
	eyeDir := lin.V3(0, 0, 1)
	tex := lin.V3(0.5, 0.25, 0)
	color := lin.V3(1, 1, 1)
	got := p.Direct(n, lightDir, eyeDir, tex, color)
	if !got.Aeq(tex) {
		t.Errorf("pure-diffuse direct term = %v, want %v", got, tex)
	}
}

func TestCookTorranceDenominatorFloorAvoidsDivideByZero(t *testing.T) {
	c := CookTorrance{Ka: 0.1, Ks: 0.5, Roughness: 0.5}
	n := lin.V3(0, 0, 1)
	grazing := lin.V3(1, 0, 1e-9).Unit()
	got := c.Direct(n, grazing.Neg(), grazing, lin.V3(1, 1, 1), lin.V3(1, 1, 1))
	for _, v := range []float64{got.X, got.Y, got.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("cook-torrance produced non-finite component: %v", got)
		}
	}
}

func TestColorTextureIgnoresUV(t *testing.T) {
	c := ColorTexture(lin.V3(0.2, 0.4, 0.6))
	a := c.Sample(Texel{U: 0, V: 0})
	b := c.Sample(Texel{U: 10, V: -3})
	if !a.Eq(b) {
		t.Errorf("color texture must be UV-independent: %v vs %v", a, b)
	}
}

func TestWrap01(t *testing.T) {
	cases := map[float64]float64{0.25: 0.25, 1.25: 0.25, -0.25: 0.75, 2.0: 0}
	for in, want := range cases {
		if got := wrap01(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("wrap01(%v) = %v, want %v", in, got, want)
		}
	}
}
