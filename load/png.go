// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package load

import (
	"image"
	"image/png"
	"io"

	"github.com/gazed/raytrace"
)

// Png decodes a PNG texture image from r. path annotates any error raised.
func Png(r io.Reader, path string) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, raytrace.NewFileInputError(path, "not a valid PNG: %s", err)
	}
	return img, nil
}
