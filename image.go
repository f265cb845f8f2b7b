package wlur

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage copies img into a new PixelBuffer.
//
// *image.Gray sources become single-channel buffers. Every other image is
// converted to 4-channel premultiplied RGBA, the layout of *image.RGBA, so
// that blurring translucent regions does not bleed color from fully
// transparent pixels.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		buf := &PixelBuffer{Width: w, Height: h, Channels: Gray, Pix: make([]uint8, w*h)}
		for y := range h {
			off := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pix[y*w:(y+1)*w], gray.Pix[off:off+w])
		}
		return buf
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != w*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	buf := &PixelBuffer{Width: w, Height: h, Channels: RGBA, Pix: make([]uint8, w*h*4)}
	copy(buf.Pix, rgba.Pix)
	return buf
}

// ToImage converts the buffer into a standard library image.
//
// Gray buffers become *image.Gray, RGB buffers opaque *image.RGBA, RGBA
// buffers *image.RGBA (premultiplied, as produced by FromImage) and
// GrayAlpha buffers *image.NRGBA. Other channel counts fail with
// ErrInvalidArgument.
func (b *PixelBuffer) ToImage() (image.Image, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, b.Width, b.Height)
	n := b.Width * b.Height

	switch b.Channels {
	case Gray:
		img := image.NewGray(rect)
		copy(img.Pix, b.Pix)
		return img, nil

	case GrayAlpha:
		img := image.NewNRGBA(rect)
		for i := range n {
			g, a := b.Pix[i*2], b.Pix[i*2+1]
			img.Pix[i*4+0] = g
			img.Pix[i*4+1] = g
			img.Pix[i*4+2] = g
			img.Pix[i*4+3] = a
		}
		return img, nil

	case RGB:
		img := image.NewRGBA(rect)
		for i := range n {
			img.Pix[i*4+0] = b.Pix[i*3+0]
			img.Pix[i*4+1] = b.Pix[i*3+1]
			img.Pix[i*4+2] = b.Pix[i*3+2]
			img.Pix[i*4+3] = 255
		}
		return img, nil

	case RGBA:
		img := image.NewRGBA(rect)
		copy(img.Pix, b.Pix)
		return img, nil

	default:
		return nil, invalidArgf("cannot convert %d-channel buffer to an image", b.Channels)
	}
}
