package wlur

import (
	"bytes"
	"math"
)

// Common channel layouts.
const (
	// Gray is a single intensity channel.
	Gray = 1

	// GrayAlpha is intensity followed by alpha.
	GrayAlpha = 2

	// RGB is red, green, blue.
	RGB = 3

	// RGBA is red, green, blue, alpha.
	RGBA = 4
)

// PixelBuffer is a rectangular grid of 8-bit multi-channel pixels.
//
// Pix holds Width*Height pixels of Channels bytes each, row by row, with
// channels interleaved: the value of channel c at (x, y) is
// Pix[(y*Width+x)*Channels+c].
//
// A PixelBuffer is owned by the caller. The engine reads it during a call
// and never keeps a reference afterwards.
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewPixelBuffer allocates a zeroed buffer of the given shape.
func NewPixelBuffer(width, height, channels int) (*PixelBuffer, error) {
	b := &PixelBuffer{Width: width, Height: height, Channels: channels}
	if err := b.validateShape(); err != nil {
		return nil, err
	}
	b.Pix = make([]uint8, width*height*channels)
	return b, nil
}

// Validate reports ErrInvalidArgument if the dimensions are negative, the
// channel count is below one, or len(Pix) != Width*Height*Channels.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return invalidArgf("nil pixel buffer")
	}
	if err := b.validateShape(); err != nil {
		return err
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return invalidArgf("buffer length %d does not match %dx%dx%d = %d",
			len(b.Pix), b.Width, b.Height, b.Channels, want)
	}
	return nil
}

func (b *PixelBuffer) validateShape() error {
	if b.Width < 0 || b.Height < 0 {
		return invalidArgf("negative dimensions %dx%d", b.Width, b.Height)
	}
	if b.Channels < 1 {
		return invalidArgf("channel count %d, need at least 1", b.Channels)
	}
	if b.Width != 0 && b.Height > math.MaxInt/b.Width ||
		b.Width*b.Height > math.MaxInt/b.Channels {
		return invalidArgf("shape %dx%dx%d overflows int", b.Width, b.Height, b.Channels)
	}
	return nil
}

// Empty reports whether the buffer has no pixels.
func (b *PixelBuffer) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	c := *b
	c.Pix = append([]uint8(nil), b.Pix...)
	if c.Pix == nil {
		c.Pix = []uint8{}
	}
	return &c
}

// At returns channel c of the pixel at (x, y).
// It returns 0 for coordinates outside the buffer.
func (b *PixelBuffer) At(x, y, c int) uint8 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height || c < 0 || c >= b.Channels {
		return 0
	}
	return b.Pix[(y*b.Width+x)*b.Channels+c]
}

// Set writes channel c of the pixel at (x, y).
// Coordinates outside the buffer are ignored.
func (b *PixelBuffer) Set(x, y, c int, v uint8) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height || c < 0 || c >= b.Channels {
		return
	}
	b.Pix[(y*b.Width+x)*b.Channels+c] = v
}

// Equal reports whether two buffers have the same shape and pixel values.
func (b *PixelBuffer) Equal(o *PixelBuffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.Width == o.Width && b.Height == o.Height &&
		b.Channels == o.Channels && bytes.Equal(b.Pix, o.Pix)
}
