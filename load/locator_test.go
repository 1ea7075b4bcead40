// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package load

import (
	"path/filepath"
	"testing"
)

func TestLocatorResolvesRelativeToDocument(t *testing.T) {
	l := NewLocator("/scenes/demo/scene.xml")
	got := l.Resolve("bunny.obj")
	want := filepath.Join("/scenes/demo", "bunny.obj")
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestLocatorPassesThroughAbsolutePaths(t *testing.T) {
	l := NewLocator("/scenes/demo/scene.xml")
	got := l.Resolve("/textures/brick.png")
	if got != "/textures/brick.png" {
		t.Errorf("Resolve = %q, want unchanged absolute path", got)
	}
}
