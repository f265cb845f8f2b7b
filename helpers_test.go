package wlur

import "testing"

// Test helper functions shared across wlur tests.

// mustBuffer allocates a zeroed buffer or fails the test.
func mustBuffer(t testing.TB, w, h, ch int) *PixelBuffer {
	t.Helper()
	b, err := NewPixelBuffer(w, h, ch)
	if err != nil {
		t.Fatalf("NewPixelBuffer(%d, %d, %d): %v", w, h, ch, err)
	}
	return b
}

// patternBuffer fills a buffer with a deterministic pseudo-random pattern.
func patternBuffer(t testing.TB, w, h, ch int) *PixelBuffer {
	t.Helper()
	b := mustBuffer(t, w, h, ch)
	state := uint32(2463534242)
	for i := range b.Pix {
		// xorshift32
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		b.Pix[i] = uint8(state)
	}
	return b
}

// spotBuffer returns a black single-channel buffer with one bright pixel.
func spotBuffer(t testing.TB, w, h, x, y int) *PixelBuffer {
	t.Helper()
	b := mustBuffer(t, w, h, Gray)
	b.Set(x, y, 0, 255)
	return b
}

// nonZero counts the non-zero values in a buffer.
func nonZero(b *PixelBuffer) int {
	n := 0
	for _, v := range b.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
