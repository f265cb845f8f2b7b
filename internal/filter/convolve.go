package filter

import "sync"

// Image is an interleaved 8-bit pixel grid: Width*Height pixels of
// Channels bytes each, stored row by row.
type Image struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// RowLen returns the number of bytes (and scratch values) in one row.
func (im Image) RowLen() int {
	return im.Width * im.Channels
}

// Blur runs both passes sequentially: src is convolved horizontally with
// kernelX into a scratch buffer, which is then convolved vertically with
// kernelY into dst. dst must have the same shape as src.
func Blur(src, dst Image, kernelX, kernelY []float64) {
	if src.Width == 0 || src.Height == 0 {
		return
	}
	tmp := GetScratch(len(src.Pix))
	defer PutScratch(tmp)

	Horizontal(src, tmp, kernelX, 0, src.Height)
	Vertical(tmp, dst, kernelY, 0, dst.Height)
}

// Horizontal convolves rows [y0, y1) of src with kernel and stores the
// unrounded sums in the matching rows of tmp. Columns outside the image
// are clamped to the first or last column.
func Horizontal(src Image, tmp []float64, kernel []float64, y0, y1 int) {
	w, ch := src.Width, src.Channels
	rowLen := src.RowLen()
	half := len(kernel) / 2

	for y := y0; y < y1; y++ {
		row := src.Pix[y*rowLen : (y+1)*rowLen]
		out := tmp[y*rowLen : (y+1)*rowLen]

		if half == 0 {
			for i, v := range row {
				out[i] = float64(v)
			}
			continue
		}

		for x := 0; x < w; x++ {
			acc := out[x*ch : x*ch+ch]
			for c := range acc {
				acc[c] = 0
			}
			for k, weight := range kernel {
				sx := clampIndex(x+k-half, w)
				for c, v := range row[sx*ch : sx*ch+ch] {
					acc[c] += float64(v) * weight
				}
			}
		}
	}
}

// Vertical convolves tmp along columns with kernel and writes rows
// [y0, y1) of dst, rounding to the nearest integer and clamping to
// [0, 255]. Rows outside the image are clamped to the first or last row.
// All rows of tmp must already be filled.
func Vertical(tmp []float64, dst Image, kernel []float64, y0, y1 int) {
	h := dst.Height
	rowLen := dst.RowLen()
	half := len(kernel) / 2

	var acc []float64
	if half > 0 {
		acc = make([]float64, rowLen)
	}

	for y := y0; y < y1; y++ {
		out := dst.Pix[y*rowLen : (y+1)*rowLen]

		if half == 0 {
			for i, v := range tmp[y*rowLen : (y+1)*rowLen] {
				out[i] = clampUint8(v)
			}
			continue
		}

		for i := range acc {
			acc[i] = 0
		}
		for k, weight := range kernel {
			sy := clampIndex(y+k-half, h)
			for i, v := range tmp[sy*rowLen : (sy+1)*rowLen] {
				acc[i] += v * weight
			}
		}
		for i, v := range acc {
			out[i] = clampUint8(v)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float64
}

// maxPooledScratch bounds the scratch buffers kept for reuse (32 MiB of float64).
const maxPooledScratch = 4 * 1024 * 1024

var scratchPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

// GetScratch returns a scratch buffer of length n. Its contents are
// undefined; both passes overwrite every value they later read.
func GetScratch(n int) []float64 {
	buf := scratchPool.Get().(*floatBuffer)
	if cap(buf.data) < n {
		scratchPool.Put(buf)
		return make([]float64, n)
	}
	data := buf.data[:n]
	buf.data = nil
	scratchPool.Put(buf)
	return data
}

// PutScratch hands a buffer obtained from GetScratch back for reuse.
func PutScratch(data []float64) {
	if cap(data) == 0 || cap(data) > maxPooledScratch {
		return
	}
	scratchPool.Put(&floatBuffer{data: data[:cap(data)]})
}

// clampIndex clamps i to [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// clampUint8 rounds v to the nearest integer in [0, 255].
func clampUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
