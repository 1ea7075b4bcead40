// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package load

import (
	"os"
	"path/filepath"

	"github.com/gazed/raytrace"
)

// Locator resolves the relative file names a scene document references
// (mesh and texture files) against the directory the document itself
// lives in, so a scene can be invoked from any working directory.
//
// Grounded on the teacher's load/locator.go, which maps file extensions
// to asset directories and falls back to a zip-packaged resource bundle;
// this renderer has no installed-application bundle to search, so the
// only convention kept is "relative names resolve next to the document".
type Locator struct {
	baseDir string
}

// NewLocator returns a Locator resolving relative paths against the
// directory containing the scene document at documentPath.
func NewLocator(documentPath string) Locator {
	return Locator{baseDir: filepath.Dir(documentPath)}
}

// Resolve returns the absolute path name should be opened at: unchanged
// if already absolute, otherwise joined to the document's directory.
func (l Locator) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.baseDir, name)
}

// Open resolves name and opens it for reading, wrapping any failure as
// an IOError.
func (l Locator) Open(name string) (*os.File, error) {
	path := l.Resolve(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, raytrace.NewIOError("read", path, err)
	}
	return f, nil
}
