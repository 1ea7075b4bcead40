// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"math/rand"
	"runtime"
	"sync"
)

// RowDone reports that one image row of one frame has finished rendering,
// the unit of progress the renderer reports upstream.
type RowDone struct {
	Frame int
	Row   int
}

// Render produces the complete image for scene, processing each frame's
// rows in parallel across a pool of runtime.NumCPU() worker goroutines
// and frames sequentially, since an animated scene's surfaces mutate
// between frames. Each worker owns its own *rand.Rand so supersampling
// and depth-of-field jitter do not contend on a shared generator.
//
// progress, if non-nil, receives one RowDone per completed row; the
// caller is responsible for draining it so renderers never block on a
// reader that stopped listening. Render closes progress when done.
func Render(scene *Scene, progress chan<- RowDone) *Image {
	frames := scene.Animation.TotalFrames
	if frames < 1 {
		frames = 1
	}
	img := NewImage(scene.Camera.Width, scene.Camera.Height, frames)

	for frame := 0; frame < frames; frame++ {
		scene.SetFrame(frame)
		renderFrame(scene, img, frame, progress)
	}

	if progress != nil {
		close(progress)
	}
	return img
}

func renderFrame(scene *Scene, img *Image, frame int, progress chan<- RowDone) {
	height := scene.Camera.Height
	rows := make(chan int, height)
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go renderWorker(scene, img, frame, rows, progress, &wg)
	}

	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}

func renderWorker(scene *Scene, img *Image, frame int, rows <-chan int, progress chan<- RowDone, wg *sync.WaitGroup) {
	defer wg.Done()
	rng := rand.New(rand.NewSource(rand.Int63()))
	width, height := scene.Camera.Width, scene.Camera.Height

	for y := range rows {
		worldY := height - y
		for x := 0; x < width; x++ {
			color := scene.TracePixel(x, worldY, rng)
			img.Set(frame, x, y, color)
		}
		if progress != nil {
			progress <- RowDone{Frame: frame, Row: y}
		}
	}
}
