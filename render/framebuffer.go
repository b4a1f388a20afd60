package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
)

// Framebuffer wraps a caller-owned pixel buffer of height rows, each pitch
// bytes wide, holding one 32-bit ARGB word per pixel. Words are stored
// little-endian, so the in-memory byte order is B,G,R,A — the ARGB8888
// layout display surfaces expect on little-endian hosts.
//
// The renderer's workers write into disjoint rows of the same Framebuffer
// without locking; the buffer itself is never allocated or freed here.
type Framebuffer struct {
	pix           []byte
	width, height int
	pitch         int
}

// NewFramebuffer validates the framebuffer contract and wraps pix. The
// pitch may exceed the packed row size width*4; the slack bytes are never
// touched.
func NewFramebuffer(pix []byte, width, height, pitch int) (*Framebuffer, error) {
	switch {
	case pix == nil:
		return nil, errors.New("render: nil pixel buffer")
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("render: non-positive dimensions %dx%d", width, height)
	case pitch < width*4:
		return nil, fmt.Errorf("render: pitch %d smaller than packed row size %d", pitch, width*4)
	case len(pix) < pitch*height:
		return nil, fmt.Errorf("render: buffer holds %d bytes, need %d", len(pix), pitch*height)
	}
	return &Framebuffer{pix: pix, width: width, height: height, pitch: pitch}, nil
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }
func (fb *Framebuffer) Pitch() int  { return fb.pitch }

// SetARGB stores a packed ARGB word at the given pixel. The offset is
// row*pitch + col*4; coordinates outside the framebuffer panic rather than
// landing in another row's bytes.
func (fb *Framebuffer) SetARGB(row, col int, argb uint32) {
	if row < 0 || row >= fb.height || col < 0 || col >= fb.width {
		panic(fmt.Sprintf("render: pixel (%d,%d) outside %dx%d framebuffer", col, row, fb.width, fb.height))
	}
	binary.LittleEndian.PutUint32(fb.pix[row*fb.pitch+col*4:], argb)
}

// ARGBAt reads back the packed word at the given pixel.
func (fb *Framebuffer) ARGBAt(row, col int) uint32 {
	if row < 0 || row >= fb.height || col < 0 || col >= fb.width {
		panic(fmt.Sprintf("render: pixel (%d,%d) outside %dx%d framebuffer", col, row, fb.width, fb.height))
	}
	return binary.LittleEndian.Uint32(fb.pix[row*fb.pitch+col*4:])
}

// RGBA copies the framebuffer into a tightly packed image.RGBA, reordering
// each ARGB word into the R,G,B,A byte order image and canvas APIs use.
func (fb *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		row := fb.pix[y*fb.pitch:]
		for x := 0; x < fb.width; x++ {
			word := binary.LittleEndian.Uint32(row[x*4:])
			o := img.PixOffset(x, y)
			img.Pix[o+0] = uint8(word >> 16)
			img.Pix[o+1] = uint8(word >> 8)
			img.Pix[o+2] = uint8(word)
			img.Pix[o+3] = uint8(word >> 24)
		}
	}
	return img
}
