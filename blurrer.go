package wlur

import (
	"log/slog"

	"github.com/wlur/wlur/internal/filter"
	"github.com/wlur/wlur/internal/parallel"
)

// Blurrer is a reusable blur engine. It caches kernels by radius and
// splits each pass into row bands executed on a worker pool.
//
// Results are bit-identical to ApplyBlur / ApplyBlurXY for the same input.
//
// Thread safety: Blurrer is safe for concurrent use. Call Close to stop its
// workers; a closed Blurrer keeps working on the calling goroutine.
type Blurrer struct {
	pool      *parallel.WorkerPool // nil when workers == 1
	kernels   *filter.KernelCache
	workers   int
	threshold int
}

// NewBlurrer creates a Blurrer configured by opts.
func NewBlurrer(opts ...Option) *Blurrer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Blurrer{
		kernels:   filter.NewKernelCache(o.kernelCacheSize),
		workers:   o.workers,
		threshold: o.parallelThreshold,
	}
	if o.workers > 1 {
		b.pool = parallel.NewWorkerPool(o.workers)
	}

	Logger().Info("wlur: blurrer started",
		slog.Int("workers", o.workers),
		slog.Int("kernel_cache", o.kernelCacheSize))
	return b
}

// Apply returns a Gaussian-blurred copy of src. See ApplyBlur.
func (b *Blurrer) Apply(src *PixelBuffer, radius float64) (*PixelBuffer, error) {
	return b.ApplyXY(src, radius, radius)
}

// ApplyXY returns a copy of src blurred with independent horizontal and
// vertical radii. See ApplyBlurXY.
func (b *Blurrer) ApplyXY(src *PixelBuffer, radiusX, radiusY float64) (*PixelBuffer, error) {
	dst, done, err := prepare(src, radiusX, radiusY)
	if err != nil || done {
		return dst, err
	}

	kx := b.kernels.Get(radiusX)
	ky := b.kernels.Get(radiusY)
	in, out := asImage(src), asImage(dst)

	if b.pool == nil || src.Width*src.Height < b.threshold {
		Logger().Debug("wlur: blur sequential",
			slog.Int("width", src.Width), slog.Int("height", src.Height),
			slog.Int("kernel_x", len(kx)), slog.Int("kernel_y", len(ky)))
		filter.Blur(in, out, kx, ky)
		return dst, nil
	}

	bands := parallel.SplitRows(src.Height, b.workers)
	Logger().Debug("wlur: blur parallel",
		slog.Int("width", src.Width), slog.Int("height", src.Height),
		slog.Int("kernel_x", len(kx)), slog.Int("kernel_y", len(ky)),
		slog.Int("bands", len(bands)))

	tmp := filter.GetScratch(len(src.Pix))
	defer filter.PutScratch(tmp)

	// The vertical pass reads rows produced by other bands, so the
	// horizontal pass must finish everywhere first.
	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() { filter.Horizontal(in, tmp, kx, band.Start, band.End) }
	}
	b.pool.ExecuteAll(work)

	for i, band := range bands {
		work[i] = func() { filter.Vertical(tmp, out, ky, band.Start, band.End) }
	}
	b.pool.ExecuteAll(work)

	return dst, nil
}

// Workers returns the number of goroutines a pass is split across.
func (b *Blurrer) Workers() int {
	return b.workers
}

// KernelCacheStats describes the kernel cache of a Blurrer.
type KernelCacheStats struct {
	// Len is the number of cached kernels.
	Len int
	// Capacity is the maximum number of cached kernels.
	Capacity int
	// Hits is the number of blurs that reused a cached kernel.
	Hits uint64
	// Misses is the number of kernels built.
	Misses uint64
	// Evictions is the number of kernels dropped to respect Capacity.
	Evictions uint64
	// HitRate is Hits / (Hits + Misses).
	HitRate float64
}

// KernelStats returns a snapshot of the kernel cache counters.
func (b *Blurrer) KernelStats() KernelCacheStats {
	s := b.kernels.Stats()
	return KernelCacheStats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		HitRate:   s.HitRate,
	}
}

// Close stops the worker pool. It is safe to call more than once.
func (b *Blurrer) Close() {
	if b.pool != nil && b.pool.IsRunning() {
		b.pool.Close()
		Logger().Info("wlur: blurrer closed")
	}
}
