// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package load

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestPngRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	img, err := Png(&buf, "fixture.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("decoded pixel = (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}
}

func TestPngInvalidDataIsAnInputError(t *testing.T) {
	if _, err := Png(strings.NewReader("not a png"), "bad.png"); err == nil {
		t.Fatal("expected an error for non-PNG data")
	}
}
