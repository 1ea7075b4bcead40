// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package encode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/gazed/raytrace"
)

// frameImage adapts one frame of a raytrace.Image to the standard
// image.Image interface so it can be fed to image/png and
// golang.org/x/image/draw.
type frameImage struct {
	img   *raytrace.Image
	frame int
}

func (f frameImage) ColorModel() color.Model { return color.NRGBAModel }
func (f frameImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.img.Width, f.img.Height) }
func (f frameImage) At(x, y int) color.Color {
	c := f.img.At(f.frame, x, y)
	return color.NRGBA{R: to8(c.X), G: to8(c.Y), B: to8(c.Z), A: 255}
}

// toNRGBA copies frame of img into a standalone *image.NRGBA via
// golang.org/x/image/draw's Porter-Duff compositing, the same primitive
// the pack uses for format conversion, so the encoders below always work
// against a concrete, directly encodable buffer rather than the custom
// Image type.
func toNRGBA(img *raytrace.Image, frame int) *image.NRGBA {
	src := frameImage{img: img, frame: frame}
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	return dst
}

// gammaValue is 1/2.2 scaled by 1e5, the value original_source's image
// writer sets via set_source_gamma(ScaledFloat::from_scaled(45455)).
const gammaValue = 45455

// srgbIntent is the rendering intent stored in the sRGB chunk: 0 selects
// the perceptual intent, the PNG spec's default for general images.
const srgbIntent = 0

func gamaChunkData() []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, gammaValue)
	return buf
}

func srgbChunkData() []byte {
	return []byte{srgbIntent}
}

// PNG writes one frame of img as a standalone PNG to w, carrying the
// gAMA (1/2.2) and sRGB chunks the spec requires alongside the pixel
// data stdlib's image/png alone emits.
func PNG(w io.Writer, img *raytrace.Image, frame int) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, toNRGBA(img, frame)); err != nil {
		return err
	}
	chunks, err := readChunks(buf.Bytes())
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", frame, err)
	}

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	for _, c := range chunks {
		if err := writeChunk(w, c.typ, c.data); err != nil {
			return err
		}
		if c.typ == "IHDR" {
			if err := writeChunk(w, "gAMA", gamaChunkData()); err != nil {
				return err
			}
			if err := writeChunk(w, "sRGB", srgbChunkData()); err != nil {
				return err
			}
		}
	}
	return nil
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type chunk struct {
	typ  string
	data []byte
}

func readChunks(data []byte) ([]chunk, error) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return nil, errors.New("not a PNG stream")
	}
	buf := data[len(pngSignature):]
	var chunks []chunk
	for len(buf) > 0 {
		if len(buf) < 12 {
			return nil, errors.New("truncated PNG chunk")
		}
		length := binary.BigEndian.Uint32(buf[0:4])
		typ := string(buf[4:8])
		body := buf[8 : 8+length]
		chunks = append(chunks, chunk{typ: typ, data: body})
		buf = buf[8+length+4:] // skip the trailing CRC
	}
	return chunks, nil
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	body := append([]byte(typ), data...)
	if _, err := w.Write(body); err != nil {
		return err
	}
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc32.ChecksumIEEE(body))
	_, err := w.Write(crcBuf[:])
	return err
}

// APNG writes every frame of img to w as an animated PNG played back at
// fps frames per second, looping forever. A single-frame image is
// written as a plain PNG instead, since one-frame animations carry
// framing overhead (acTL/fcTL) for no benefit.
//
// No APNG-writing library exists anywhere in the example corpus, so this
// reuses the standard image/png encoder to compress each frame's pixel
// data and hand-assembles only the animation-specific container chunks
// (acTL, fcTL, fdAT) the APNG extension adds on top of plain PNG.
func APNG(w io.Writer, img *raytrace.Image, fps int) error {
	if len(img.Frames) <= 1 {
		return PNG(w, img, 0)
	}
	if fps <= 0 {
		fps = 24
	}

	type framePNG struct {
		ihdr []byte
		idat [][]byte
	}
	frames := make([]framePNG, len(img.Frames))
	for i := range img.Frames {
		var buf bytes.Buffer
		if err := png.Encode(&buf, toNRGBA(img, i)); err != nil {
			return err
		}
		chunks, err := readChunks(buf.Bytes())
		if err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
		var fp framePNG
		for _, c := range chunks {
			switch c.typ {
			case "IHDR":
				fp.ihdr = c.data
			case "IDAT":
				fp.idat = append(fp.idat, c.data)
			}
		}
		frames[i] = fp
	}

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	if err := writeChunk(w, "IHDR", frames[0].ihdr); err != nil {
		return err
	}
	if err := writeChunk(w, "gAMA", gamaChunkData()); err != nil {
		return err
	}
	if err := writeChunk(w, "sRGB", srgbChunkData()); err != nil {
		return err
	}

	actl := make([]byte, 8)
	binary.BigEndian.PutUint32(actl[0:4], uint32(len(frames)))
	binary.BigEndian.PutUint32(actl[4:8], 0) // play forever
	if err := writeChunk(w, "acTL", actl); err != nil {
		return err
	}

	seq := uint32(0)
	for i, fp := range frames {
		fctl := make([]byte, 26)
		binary.BigEndian.PutUint32(fctl[0:4], seq)
		seq++
		binary.BigEndian.PutUint32(fctl[4:8], uint32(img.Width))
		binary.BigEndian.PutUint32(fctl[8:12], uint32(img.Height))
		binary.BigEndian.PutUint32(fctl[12:16], 0) // x_offset
		binary.BigEndian.PutUint32(fctl[16:20], 0) // y_offset
		binary.BigEndian.PutUint16(fctl[20:22], 1) // delay_num
		binary.BigEndian.PutUint16(fctl[22:24], uint16(fps)) // delay_den
		fctl[24] = 0 // dispose_op: none
		fctl[25] = 0 // blend_op: source
		if err := writeChunk(w, "fcTL", fctl); err != nil {
			return err
		}

		if i == 0 {
			for _, d := range fp.idat {
				if err := writeChunk(w, "IDAT", d); err != nil {
					return err
				}
			}
			continue
		}
		for _, d := range fp.idat {
			fdat := make([]byte, 4+len(d))
			binary.BigEndian.PutUint32(fdat[0:4], seq)
			seq++
			copy(fdat[4:], d)
			if err := writeChunk(w, "fdAT", fdat); err != nil {
				return err
			}
		}
	}
	return writeChunk(w, "IEND", nil)
}
