package wlur

import (
	"errors"
	"testing"
)

func TestNewPixelBuffer(t *testing.T) {
	b, err := NewPixelBuffer(3, 2, RGBA)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Pix) != 3*2*4 {
		t.Errorf("len(Pix) = %d, want 24", len(b.Pix))
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNewPixelBufferInvalid(t *testing.T) {
	tests := []struct {
		name    string
		w, h, c int
	}{
		{"negative width", -1, 2, 4},
		{"negative height", 2, -1, 4},
		{"zero channels", 2, 2, 0},
		{"pixel count overflows", 1 << 62, 4, 1},
		{"byte count overflows", 1 << 40, 1 << 20, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPixelBuffer(tt.w, tt.h, tt.c)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestPixelBufferValidateLength(t *testing.T) {
	b := &PixelBuffer{Width: 2, Height: 2, Channels: 4, Pix: make([]uint8, 15)}
	if err := b.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
	}

	var nilBuf *PixelBuffer
	if err := nilBuf.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil Validate() = %v, want ErrInvalidArgument", err)
	}
}

func TestPixelBufferAtSet(t *testing.T) {
	b := mustBuffer(t, 3, 3, RGB)
	b.Set(1, 2, 2, 99)

	if got := b.At(1, 2, 2); got != 99 {
		t.Errorf("At(1,2,2) = %d, want 99", got)
	}
	if got := b.Pix[(2*3+1)*3+2]; got != 99 {
		t.Errorf("Pix layout mismatch: got %d", got)
	}

	// Out of range is ignored / zero.
	b.Set(5, 0, 0, 1)
	b.Set(0, 0, 3, 1)
	if got := b.At(-1, 0, 0); got != 0 {
		t.Errorf("At(-1,0,0) = %d, want 0", got)
	}
}

func TestPixelBufferCloneIsDeep(t *testing.T) {
	b := mustBuffer(t, 2, 2, Gray)
	b.Pix[0] = 7

	c := b.Clone()
	c.Pix[0] = 8

	if b.Pix[0] != 7 {
		t.Error("modifying the clone changed the original")
	}
	if !b.Equal(b.Clone()) {
		t.Error("clone should equal original")
	}
}

func TestPixelBufferEqual(t *testing.T) {
	a := mustBuffer(t, 2, 1, Gray)
	b := mustBuffer(t, 1, 2, Gray)
	if a.Equal(b) {
		t.Error("buffers with different shapes should not be equal")
	}

	var n *PixelBuffer
	if a.Equal(n) || !n.Equal(nil) {
		t.Error("nil handling in Equal is wrong")
	}
}

func TestPixelBufferEmpty(t *testing.T) {
	if !mustBuffer(t, 0, 5, RGBA).Empty() {
		t.Error("0x5 buffer should be empty")
	}
	if mustBuffer(t, 1, 1, RGBA).Empty() {
		t.Error("1x1 buffer should not be empty")
	}
}
