// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package load

import (
	"strings"
	"testing"

	"github.com/gazed/raytrace"
)

const triangleObj = `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func TestObjParsesSingleTriangle(t *testing.T) {
	tris, err := Obj(strings.NewReader(triangleObj), "triangle.obj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	if tris[0].UV[0] != (raytrace.Texel{}) {
		t.Errorf("expected default UV (0,0) when vt is omitted, got %v", tris[0].UV[0])
	}
}

const texturedObj = `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestObjParsesTextureCoordinates(t *testing.T) {
	tris, err := Obj(strings.NewReader(texturedObj), "textured.obj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tris[0].UV[1].U != 1 {
		t.Errorf("UV[1].U = %v, want 1", tris[0].UV[1].U)
	}
}

func TestObjMalformedFaceReportsLineNumber(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf 1 2 3\n"
	_, err := Obj(strings.NewReader(src), "bad.obj")
	if err == nil {
		t.Fatal("expected an error for a malformed face line")
	}
	ierr, ok := err.(*raytrace.InputError)
	if !ok {
		t.Fatalf("expected *raytrace.InputError, got %T", err)
	}
	if ierr.Line != 5 {
		t.Errorf("error line = %d, want 5", ierr.Line)
	}
}

func TestObjNoFacesIsAnError(t *testing.T) {
	_, err := Obj(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\n"), "empty.obj")
	if err == nil {
		t.Fatal("expected an error for a mesh with no faces")
	}
}
