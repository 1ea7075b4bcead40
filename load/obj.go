// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

// Package load reads the external file formats a scene document can
// reference: Wavefront OBJ meshes and PNG textures.
package load

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gazed/raytrace"
	"github.com/gazed/raytrace/math/lin"
)

// Obj parses a Wavefront OBJ mesh from r, returning one triangle per face
// line. Only v, vn, vt, and f lines are recognized; every other line
// (comments, groups, material directives) is ignored. Faces are read as
// v/vt/vn triples with 1-based indices; vt may be omitted, in which case
// the corresponding texture coordinate defaults to (0,0). path is used
// only to annotate errors with a line number.
//
// Grounded on the teacher's load/obj.go, which reads the same grammar
// line by line with fmt.Sscanf into deduplicated vertex/normal/texcoord
// arrays; this version skips the GPU-buffer deduplication step and
// instead emits a flat Triangle per face, since the ray tracer does not
// need indexed draw buffers.
func Obj(r io.Reader, path string) ([]raytrace.Triangle, error) {
	var verts []lin.Vec3
	var norms []lin.Vec3
	var texcoords []raytrace.Texel
	var tris []raytrace.Triangle

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, raytrace.NewLineInputError(path, lineNo, "bad vertex: %s", err)
			}
			verts = append(verts, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, raytrace.NewLineInputError(path, lineNo, "bad normal: %s", err)
			}
			norms = append(norms, n)
		case "vt":
			uv, err := parseTexel(fields[1:])
			if err != nil {
				return nil, raytrace.NewLineInputError(path, lineNo, "bad texture coordinate: %s", err)
			}
			texcoords = append(texcoords, uv)
		case "f":
			tri, err := parseFace(fields[1:], verts, norms, texcoords)
			if err != nil {
				return nil, raytrace.NewLineInputError(path, lineNo, "bad face: %s", err)
			}
			tris = append(tris, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, raytrace.NewIOError("read", path, err)
	}
	if len(tris) == 0 {
		return nil, raytrace.NewFileInputError(path, "no faces found")
	}
	return tris, nil
}

func parseVec3(fields []string) (lin.Vec3, error) {
	if len(fields) < 3 {
		return lin.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var x, y, z float64
	if _, err := fmt.Sscanf(strings.Join(fields[:3], " "), "%g %g %g", &x, &y, &z); err != nil {
		return lin.Vec3{}, err
	}
	return lin.V3(x, y, z), nil
}

func parseTexel(fields []string) (raytrace.Texel, error) {
	if len(fields) < 2 {
		return raytrace.Texel{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	var u, v float64
	if _, err := fmt.Sscanf(strings.Join(fields[:2], " "), "%g %g", &u, &v); err != nil {
		return raytrace.Texel{}, err
	}
	return raytrace.Texel{U: u, V: v}, nil
}

// parseFace expects exactly three v/vt/vn (or v//vn) tokens, since the
// renderer's Triangle kernel carries no polygon-fan logic.
func parseFace(fields []string, verts, norms []lin.Vec3, texcoords []raytrace.Texel) (raytrace.Triangle, error) {
	if len(fields) != 3 {
		return raytrace.Triangle{}, fmt.Errorf("expected a triangle (3 vertices), got %d", len(fields))
	}
	var tri raytrace.Triangle
	for i, token := range fields {
		v, t, n, err := parseFaceIndex(token)
		if err != nil {
			return raytrace.Triangle{}, err
		}
		if v < 0 || v >= len(verts) {
			return raytrace.Triangle{}, fmt.Errorf("vertex index %d out of range", v+1)
		}
		if n < 0 || n >= len(norms) {
			return raytrace.Triangle{}, fmt.Errorf("normal index %d out of range", n+1)
		}
		tri.P[i] = verts[v]
		tri.N[i] = norms[n]
		if t >= 0 {
			if t >= len(texcoords) {
				return raytrace.Triangle{}, fmt.Errorf("texture coordinate index %d out of range", t+1)
			}
			tri.UV[i] = texcoords[t]
		}
	}
	return tri, nil
}

// parseFaceIndex turns a "v/vt/vn" or "v//vn" token into 0-based indices.
// t is returned as -1 when the texture coordinate is omitted.
func parseFaceIndex(token string) (v, t, n int, err error) {
	v, t, n = -1, -1, -1
	if _, err = fmt.Sscanf(token, "%d//%d", &v, &n); err == nil {
		return v - 1, -1, n - 1, nil
	}
	if _, err = fmt.Sscanf(token, "%d/%d/%d", &v, &t, &n); err == nil {
		return v - 1, t - 1, n - 1, nil
	}
	return -1, -1, -1, fmt.Errorf("malformed face index %q", token)
}
