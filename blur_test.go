package wlur

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestApplyBlurZeroRadiusIsIdentity(t *testing.T) {
	for _, ch := range []int{Gray, GrayAlpha, RGB, RGBA} {
		src := patternBuffer(t, 17, 11, ch)

		out, err := ApplyBlur(src, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !out.Equal(src) {
			t.Errorf("channels=%d: ApplyBlur(B, 0) != B", ch)
		}
		if len(out.Pix) > 0 && &out.Pix[0] == &src.Pix[0] {
			t.Errorf("channels=%d: output aliases the source buffer", ch)
		}
	}
}

func TestApplyBlurPreservesShape(t *testing.T) {
	tests := []struct {
		name    string
		w, h, c int
		radius  float64
	}{
		{"rgba small radius", 20, 10, RGBA, 0.5},
		{"rgb", 7, 13, RGB, 3},
		{"gray wide kernel", 3, 2, Gray, 25},
		{"single pixel", 1, 1, RGBA, 10},
		{"five channels", 4, 4, 5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := patternBuffer(t, tt.w, tt.h, tt.c)
			out, err := ApplyBlur(src, tt.radius)
			if err != nil {
				t.Fatal(err)
			}
			if out.Width != tt.w || out.Height != tt.h || out.Channels != tt.c {
				t.Errorf("shape = %dx%dx%d, want %dx%dx%d",
					out.Width, out.Height, out.Channels, tt.w, tt.h, tt.c)
			}
			if err := out.Validate(); err != nil {
				t.Errorf("output invalid: %v", err)
			}
		})
	}
}

func TestApplyBlurDoesNotMutateSource(t *testing.T) {
	src := patternBuffer(t, 12, 9, RGBA)
	orig := src.Clone()

	if _, err := ApplyBlur(src, 4); err != nil {
		t.Fatal(err)
	}
	if !src.Equal(orig) {
		t.Error("ApplyBlur modified its source buffer")
	}
}

func TestApplyBlurSaturatedStaysInRange(t *testing.T) {
	src := mustBuffer(t, 8, 8, RGBA)
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	out, err := ApplyBlur(src, 7.5)
	if err != nil {
		t.Fatal(err)
	}
	// A float sum slightly above 255 must clamp, not wrap to 0.
	for i, v := range out.Pix {
		if v != 255 {
			t.Fatalf("Pix[%d] = %d, want 255", i, v)
		}
	}
}

func TestApplyBlurSpotSmoothing(t *testing.T) {
	src := spotBuffer(t, 9, 9, 4, 4)

	out, err := ApplyBlur(src, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	if c := out.At(4, 4, 0); c >= 255 {
		t.Errorf("center = %d, want < 255", c)
	}
	if v := out.At(4, 6, 0); v == 0 {
		t.Error("pixel at distance 2 from center should be > 0")
	}
	if v := out.At(2, 4, 0); v == 0 {
		t.Error("pixel at distance 2 from center should be > 0")
	}
}

func TestApplyBlurIncreasingRadiusSpreads(t *testing.T) {
	src := spotBuffer(t, 9, 9, 4, 4)

	prevPeak, prevSpread := 256, 0
	for _, r := range []float64{1, 2, 3, 5} {
		out, err := ApplyBlur(src, r)
		if err != nil {
			t.Fatal(err)
		}
		peak := int(out.At(4, 4, 0))
		spread := nonZero(out)

		if peak >= prevPeak {
			t.Errorf("radius %v: peak %d not below previous %d", r, peak, prevPeak)
		}
		if spread <= prevSpread {
			t.Errorf("radius %v: %d non-zero pixels, previous %d", r, spread, prevSpread)
		}
		prevPeak, prevSpread = peak, spread
	}
}

func TestApplyBlurEdgeClamp(t *testing.T) {
	src := &PixelBuffer{Width: 5, Height: 1, Channels: Gray, Pix: []uint8{0, 0, 0, 255, 0}}
	k, err := BuildKernel(3) // taps -3..3 reach past both edges
	if err != nil {
		t.Fatal(err)
	}

	out, err := ApplyBlur(src, 3)
	if err != nil {
		t.Fatal(err)
	}

	// Column 0 samples -3..3 clamped to 0,0,0,0,1,2,3: only the +3 tap sees
	// the bright pixel. A wrapping policy would also pick it up at offset -2.
	if want := uint8(math.Round(255 * k[6])); out.Pix[0] != want {
		t.Errorf("Pix[0] = %d, want %d", out.Pix[0], want)
	}
	// Column 4 samples 1,2,3,4,4,4,4: the bright pixel only at offset -1.
	if want := uint8(math.Round(255 * k[2])); out.Pix[4] != want {
		t.Errorf("Pix[4] = %d, want %d", out.Pix[4], want)
	}
	// The right edge pixel itself is dark; clamping repeats it, so column 4
	// must stay well below the bright neighbor.
	if out.Pix[4] >= out.Pix[3] {
		t.Errorf("Pix[4] = %d should be below Pix[3] = %d", out.Pix[4], out.Pix[3])
	}
}

func TestApplyBlurEmptyBuffer(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}} {
		src := mustBuffer(t, dims[0], dims[1], RGBA)
		out, err := ApplyBlur(src, 5)
		if err != nil {
			t.Fatalf("%dx%d: %v", dims[0], dims[1], err)
		}
		if out.Width != dims[0] || out.Height != dims[1] || out.Channels != RGBA || len(out.Pix) != 0 {
			t.Errorf("%dx%d: got %dx%dx%d with %d bytes",
				dims[0], dims[1], out.Width, out.Height, out.Channels, len(out.Pix))
		}
	}
}

func TestApplyBlurInvalidArgument(t *testing.T) {
	good := mustBuffer(t, 4, 4, RGBA)
	short := &PixelBuffer{Width: 4, Height: 4, Channels: RGBA, Pix: make([]uint8, 63)}
	long := &PixelBuffer{Width: 4, Height: 4, Channels: RGBA, Pix: make([]uint8, 65)}
	noChannels := &PixelBuffer{Width: 4, Height: 4, Channels: 0}

	tests := []struct {
		name   string
		src    *PixelBuffer
		radius float64
	}{
		{"negative radius", good, -1.0},
		{"NaN radius", good, math.NaN()},
		{"infinite radius", good, math.Inf(1)},
		{"short buffer", short, 2},
		{"long buffer", long, 2},
		{"short buffer zero radius", short, 0},
		{"no channels", noChannels, 1},
		{"nil buffer", nil, 1},
		{"radius above maximum", good, MaxRadius + 0.5},
		{"huge radius", good, 1e17},
		{"shape overflows int", &PixelBuffer{Width: 1 << 62, Height: 4, Channels: 1, Pix: []uint8{}}, 1},
		{"shape overflows int with channels", &PixelBuffer{Width: 1 << 31, Height: 1 << 31, Channels: 4}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ApplyBlur(tt.src, tt.radius)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
			if out != nil {
				t.Error("no partial result expected on error")
			}
		})
	}
}

func TestApplyBlurMaxRadius(t *testing.T) {
	src := &PixelBuffer{Width: 3, Height: 1, Channels: Gray, Pix: []uint8{0, 0, 255}}
	out, err := ApplyBlur(src, MaxRadius)
	if err != nil {
		t.Fatalf("ApplyBlur(MaxRadius): %v", err)
	}
	// The right half of the kernel clamps onto the last pixel, so every
	// output is close to half of it.
	for x, v := range out.Pix {
		if v < 120 || v > 135 {
			t.Errorf("out[%d] = %d, want about 127", x, v)
		}
	}
}

func TestApplyBlurXYSingleAxis(t *testing.T) {
	// Vertical stripe: every column is constant, so a vertical-only blur is a no-op.
	stripe := mustBuffer(t, 9, 6, Gray)
	for y := range 6 {
		stripe.Set(4, y, 0, 200)
	}

	out, err := ApplyBlurXY(stripe, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(stripe) {
		t.Error("vertical blur of a vertical stripe should not change it")
	}

	out, err = ApplyBlurXY(stripe, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out.At(4, 0, 0) >= 200 || out.At(3, 0, 0) == 0 {
		t.Errorf("horizontal blur should spread the stripe: center %d, neighbor %d",
			out.At(4, 0, 0), out.At(3, 0, 0))
	}
	// Rows stay identical to each other.
	for y := 1; y < 6; y++ {
		for x := range 9 {
			if out.At(x, y, 0) != out.At(x, 0, 0) {
				t.Fatalf("row %d differs from row 0 at x=%d", y, x)
			}
		}
	}
}

func TestApplyBlurXYInvalid(t *testing.T) {
	src := mustBuffer(t, 2, 2, Gray)
	if _, err := ApplyBlurXY(src, 1, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func BenchmarkApplyBlur(b *testing.B) {
	src := patternBuffer(b, 1920, 1080, RGBA)
	for _, r := range []float64{2, 10, 25} {
		b.Run("r="+strconv.FormatFloat(r, 'g', -1, 64), func(b *testing.B) {
			b.SetBytes(int64(len(src.Pix)))
			for i := 0; i < b.N; i++ {
				if _, err := ApplyBlur(src, r); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
