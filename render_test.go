// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package raytrace

import (
	"testing"

	"github.com/gazed/raytrace/math/lin"
)

func flatScene(width, height int) *Scene {
	mat := Material{Texture: ColorTexture(lin.V3(0.5, 0.5, 0.5)), Shading: Phong{Ka: 1}}
	surf := NewSurface(NewSphere(lin.V3(0, 0, -5), 3), mat)
	cam := NewCamera(lin.V3(0, 0, 0), lin.V3(0, 0, -1), lin.V3(0, 1, 0), 60, width, height, 2)
	return &Scene{
		Lights:    []Light{AmbientLight{Color: lin.V3(1, 1, 1)}},
		Surfaces:  []*Surface{surf},
		Camera:    cam,
		Animation: Animation{TotalFrames: 1, FPS: 1},
	}
}

func TestRenderProducesRequestedResolution(t *testing.T) {
	s := flatScene(8, 6)
	img := Render(s, nil)
	if img.Width != 8 || img.Height != 6 {
		t.Fatalf("image dims = %dx%d, want 8x6", img.Width, img.Height)
	}
	if len(img.Frames) != 1 {
		t.Fatalf("frame count = %d, want 1", len(img.Frames))
	}
}

func TestRenderReportsOneRowDonePerRow(t *testing.T) {
	s := flatScene(4, 4)
	progress := make(chan RowDone, 64)
	Render(s, progress)

	rows := make(map[int]bool)
	for rd := range progress {
		if rd.Frame != 0 {
			t.Errorf("unexpected frame %d in single-frame render", rd.Frame)
		}
		rows[rd.Row] = true
	}
	if len(rows) != 4 {
		t.Errorf("got %d distinct rows reported, want 4", len(rows))
	}
}

func TestRenderClosesProgressChannel(t *testing.T) {
	s := flatScene(2, 2)
	progress := make(chan RowDone, 8)
	Render(s, progress)
	for i := 0; i < 2; i++ { // one RowDone per row
		<-progress
	}
	if _, open := <-progress; open {
		t.Error("progress channel drained one more time than expected, should be closed and empty")
	}
}

func TestRenderMultiFrameAnimation(t *testing.T) {
	s := flatScene(4, 4)
	s.Animation = Animation{TotalFrames: 3, FPS: 24}
	img := Render(s, nil)
	if len(img.Frames) != 3 {
		t.Fatalf("frame count = %d, want 3", len(img.Frames))
	}
}

func TestBlurAveragesFrames(t *testing.T) {
	img := NewImage(1, 1, 2)
	img.Set(0, 0, 0, lin.V3(0, 0, 0))
	img.Set(1, 0, 0, lin.V3(1, 1, 1))
	blurred := img.Blur()
	if len(blurred.Frames) != 1 {
		t.Fatalf("blurred frame count = %d, want 1", len(blurred.Frames))
	}
	got := blurred.At(0, 0, 0)
	want := lin.V3(128.0/255, 128.0/255, 128.0/255) // 0.5 stored as byte 128 (127.5 rounded)
	if !got.Aeq(want) {
		t.Errorf("blurred pixel = %v, want %v", got, want)
	}
}
