// Package raster is a 1-bit framebuffer that the face engine draws on. A Canvas keeps
// the whole frame in memory and streams it to a display driver on Flush.
package raster

import (
	"image/color"

	"tinygo.org/x/drivers"

	"nifri2/proto-face/face"
)

// On and Off are the default lit and unlit colours.
var (
	On  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Off = color.RGBA{A: 0xFF}
)

// Canvas implements face.Surface.
type Canvas struct {
	w, h   int16
	stride int
	buf    []byte
	sent   []byte
	dirty  bool

	dev     drivers.Displayer
	on, off color.RGBA
	err     error
}

// New sizes a canvas to the display and flushes to it.
func New(dev drivers.Displayer) *Canvas {
	w, h := dev.Size()
	c := NewSize(w, h)
	c.dev = dev
	return c
}

// NewSize builds a canvas that is not attached to a display.
func NewSize(w, h int16) *Canvas {
	w = max(w, 1)
	h = max(h, 1)
	stride := (int(w) + 7) / 8
	return &Canvas{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*int(h)),
		sent:   make([]byte, stride*int(h)),
		dirty:  true,
		on:     On,
		off:    Off,
	}
}

// SetColors sets the colours sent to the display for lit and unlit pixels.
func (c *Canvas) SetColors(on, off color.RGBA) {
	c.on, c.off = on, off
	c.dirty = true
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int16, int16) { return c.w, c.h }

// Pixel reports whether a pixel is lit. Out of range pixels are unlit.
func (c *Canvas) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return false
	}
	return c.buf[int(y)*c.stride+int(x)/8]&(0x80>>(uint(x)&7)) != 0
}

// Lit counts the lit pixels.
func (c *Canvas) Lit() int {
	n := 0
	for y := int16(0); y < c.h; y++ {
		for x := int16(0); x < c.w; x++ {
			if c.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

// Err returns the error of the last Display call, if any.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) Clear() {
	clear(c.buf)
}

// Flush streams the pixels that changed since the previous flush to the display and
// shows them.
func (c *Canvas) Flush() {
	if c.dev == nil {
		return
	}
	for y := int16(0); y < c.h; y++ {
		row := int(y) * c.stride
		for bx := 0; bx < c.stride; bx++ {
			b := c.buf[row+bx]
			if !c.dirty && b == c.sent[row+bx] {
				continue
			}
			for bit := 0; bit < 8; bit++ {
				x := int16(bx*8 + bit)
				if x >= c.w {
					break
				}
				if b&(0x80>>uint(bit)) != 0 {
					c.dev.SetPixel(x, y, c.on)
				} else {
					c.dev.SetPixel(x, y, c.off)
				}
			}
		}
	}
	copy(c.sent, c.buf)
	c.dirty = false
	c.err = c.dev.Display()
}

// SetPixel sets one pixel; anything outside the canvas is dropped.
func (c *Canvas) SetPixel(x, y int16, col face.Color) {
	c.plot(int(x), int(y), col)
}

func (c *Canvas) plot(x, y int, col face.Color) {
	if x < 0 || y < 0 || x >= int(c.w) || y >= int(c.h) {
		return
	}
	i := y*c.stride + x/8
	mask := byte(0x80 >> uint(x&7))
	if col != face.Black {
		c.buf[i] |= mask
	} else {
		c.buf[i] &^= mask
	}
}

var _ face.Surface = (*Canvas)(nil)
