// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

// Package encode writes a rendered raytrace.Image to disk as PNG (with
// APNG for animations) or binary PPM.
package encode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gazed/raytrace"
)

// PPM writes frame f of img as a binary (P6) Portable Pixmap to w.
func PPM(w io.Writer, img *raytrace.Image, frame int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(frame, x, y)
			rgb := [3]byte{to8(c.X), to8(c.Y), to8(c.Z)}
			if _, err := bw.Write(rgb[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func to8(c float64) byte {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return byte(c*255 + 0.5)
}
