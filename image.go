// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import "github.com/gazed/raytrace/math/lin"

// Image is a 2D or animated (multi-frame) buffer of 8-bit RGB pixels.
// Pixel (0,0) of a frame is the top-left of the emitted file; the trace
// loop is responsible for flipping world-space y into this convention.
type Image struct {
	Width, Height int
	Frames        [][]uint8 // Frames[f] is row-major RGB, len == Width*Height*3
}

// NewImage allocates an image with the given number of frames, all
// pixels initialized to zero (black).
func NewImage(width, height, frames int) *Image {
	img := &Image{Width: width, Height: height, Frames: make([][]uint8, frames)}
	for f := range img.Frames {
		img.Frames[f] = make([]uint8, width*height*3)
	}
	return img
}

// Set stores color c, already clamped to [0,1], at (x,y) of frame f.
func (img *Image) Set(f, x, y int, c lin.Vec3) {
	i := (y*img.Width + x) * 3
	row := img.Frames[f]
	row[i+0] = to8(c.X)
	row[i+1] = to8(c.Y)
	row[i+2] = to8(c.Z)
}

// At returns the color at (x,y) of frame f as [0,1] floats.
func (img *Image) At(f, x, y int) lin.Vec3 {
	i := (y*img.Width + x) * 3
	row := img.Frames[f]
	return lin.V3(float64(row[i+0])/255, float64(row[i+1])/255, float64(row[i+2])/255)
}

func to8(c float64) uint8 {
	return uint8(lin.Clamp(c, 0, 1)*255 + 0.5)
}

// Blur averages every frame into a single still image, used by the CLI's
// --blur option for animated scenes.
func (img *Image) Blur() *Image {
	out := NewImage(img.Width, img.Height, 1)
	n := float64(len(img.Frames))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			sum := lin.Vec3{}
			for f := range img.Frames {
				sum = sum.Add(img.At(f, x, y))
			}
			out.Set(0, x, y, sum.Scale(1/n))
		}
	}
	return out
}
