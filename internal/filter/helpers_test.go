package filter

// Test helper functions shared across filter tests.

// newImage creates a zeroed image with the given shape.
func newImage(w, h, ch int) Image {
	return Image{Pix: make([]uint8, w*h*ch), Width: w, Height: h, Channels: ch}
}

// filledImage creates an image where every channel of every pixel is v.
func filledImage(w, h, ch int, v uint8) Image {
	im := newImage(w, h, ch)
	for i := range im.Pix {
		im.Pix[i] = v
	}
	return im
}

// at returns channel c of pixel (x, y).
func at(im Image, x, y, c int) uint8 {
	return im.Pix[(y*im.Width+x)*im.Channels+c]
}

// set writes channel c of pixel (x, y).
func set(im Image, x, y, c int, v uint8) {
	im.Pix[(y*im.Width+x)*im.Channels+c] = v
}

// naiveBlur is a direct 2D reference: every output pixel sums the full
// kernel product over clamped coordinates, then rounds once.
func naiveBlur(src Image, kx, ky []float64) Image {
	dst := newImage(src.Width, src.Height, src.Channels)
	hx, hy := len(kx)/2, len(ky)/2
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			for c := 0; c < src.Channels; c++ {
				sum := 0.0
				for j, wy := range ky {
					sy := clampIndex(y+j-hy, src.Height)
					for i, wx := range kx {
						sx := clampIndex(x+i-hx, src.Width)
						sum += float64(at(src, sx, sy, c)) * wx * wy
					}
				}
				set(dst, x, y, c, clampUint8(sum))
			}
		}
	}
	return dst
}

// formatFloat formats a float for benchmark names.
func formatFloat(f float64) string {
	if f == float64(int(f)) {
		return formatInt(int(f))
	}
	intPart := int(f)
	fracPart := int((f - float64(intPart)) * 100)
	if fracPart < 0 {
		fracPart = -fracPart
	}
	return formatInt(intPart) + "." + formatInt(fracPart)
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
