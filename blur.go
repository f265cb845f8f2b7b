package wlur

import "github.com/wlur/wlur/internal/filter"

// ApplyBlur returns a Gaussian-blurred copy of src.
//
// The source buffer is validated first: a negative, non-finite or too large
// (see MaxRadius) radius, or a Pix length that does not match Width*Height*Channels, fails with
// ErrInvalidArgument. A buffer with zero width or height yields an empty
// buffer of the same shape. Radius 0 yields an exact copy.
//
// ApplyBlur allocates the output and one scratch buffer per call and keeps
// no state between calls.
func ApplyBlur(src *PixelBuffer, radius float64) (*PixelBuffer, error) {
	return ApplyBlurXY(src, radius, radius)
}

// ApplyBlurXY is like ApplyBlur with independent radii for the horizontal
// and vertical passes. A zero radius turns that pass into a copy.
func ApplyBlurXY(src *PixelBuffer, radiusX, radiusY float64) (*PixelBuffer, error) {
	dst, done, err := prepare(src, radiusX, radiusY)
	if err != nil || done {
		return dst, err
	}

	filter.Blur(asImage(src), asImage(dst),
		filter.GaussianKernel(radiusX), filter.GaussianKernel(radiusY))
	return dst, nil
}

// prepare validates a blur request and allocates its output. done is true
// when the result is already complete (empty buffer or identity blur).
func prepare(src *PixelBuffer, radiusX, radiusY float64) (dst *PixelBuffer, done bool, err error) {
	if err := checkRadius(radiusX); err != nil {
		return nil, false, err
	}
	if err := checkRadius(radiusY); err != nil {
		return nil, false, err
	}
	if err := src.Validate(); err != nil {
		return nil, false, err
	}

	if src.Empty() || (radiusX == 0 && radiusY == 0) {
		return src.Clone(), true, nil
	}

	return &PixelBuffer{
		Width:    src.Width,
		Height:   src.Height,
		Channels: src.Channels,
		Pix:      make([]uint8, len(src.Pix)),
	}, false, nil
}

func asImage(b *PixelBuffer) filter.Image {
	return filter.Image{Pix: b.Pix, Width: b.Width, Height: b.Height, Channels: b.Channels}
}
