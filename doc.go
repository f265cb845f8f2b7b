// Package wlur is a portable Gaussian blur engine for raw pixel buffers.
//
// # Overview
//
// The engine takes a caller-owned [PixelBuffer] and a blur radius and returns
// a new, blurred buffer of the same shape. It never mutates or retains the
// source. The blur is a separable convolution: a normalized 1D Gaussian
// kernel is applied along rows into a floating-point scratch buffer, then
// along columns into the output.
//
// # Quick Start
//
//	src, _ := wlur.NewPixelBuffer(640, 480, wlur.RGBA)
//	// ... fill src.Pix ...
//	out, err := wlur.ApplyBlur(src, 5)
//	if errors.Is(err, wlur.ErrInvalidArgument) {
//		// negative radius or inconsistent buffer shape
//	}
//
// For repeated blurs, a [Blurrer] caches kernels by radius and splits each
// pass across a worker pool:
//
//	b := wlur.NewBlurrer(wlur.WithWorkers(4))
//	defer b.Close()
//	out, err := b.Apply(src, 12.5)
//
// # Numeric Semantics
//
// Channels are 8-bit values in [0, 255], interleaved row by row. Every
// channel, alpha included, is convolved identically. Sums are accumulated
// in float64 and rounded to the nearest integer, clamped to [0, 255], only
// when the vertical pass writes the output.
//
// The Gaussian standard deviation is derived from the radius as
// sigma = max(radius/3, 0.0001) and the kernel has 2*ceil(radius)+1 taps,
// so a radius covers three standard deviations. A radius of 0 is the
// identity: the output is a bit-exact copy of the input.
//
// Samples outside the image are clamped to the nearest edge pixel. There is
// no wrap-around and no zero padding, so borders do not darken or become
// transparent, even when the kernel is wider than the image.
//
// # Concurrency
//
// [ApplyBlur] holds no shared state and may be called from any number of
// goroutines on independent buffers. A [Blurrer] is also safe for
// concurrent use, and produces output bit-identical to [ApplyBlur].
package wlur

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
