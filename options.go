package wlur

import "runtime"

// Option configures a Blurrer during creation.
//
// Example:
//
//	// Defaults: GOMAXPROCS workers, 64 cached kernels
//	b := wlur.NewBlurrer()
//
//	// Sequential, with a larger kernel cache
//	b := wlur.NewBlurrer(wlur.WithWorkers(1), wlur.WithKernelCacheSize(256))
type Option func(*blurrerOptions)

// DefaultParallelThreshold is the pixel count below which a Blurrer runs
// both passes on the calling goroutine.
const DefaultParallelThreshold = 128 * 128

// DefaultKernelCacheSize is the default number of kernels a Blurrer keeps.
const DefaultKernelCacheSize = 64

// blurrerOptions holds optional configuration for Blurrer creation.
type blurrerOptions struct {
	workers           int
	kernelCacheSize   int
	parallelThreshold int
}

// defaultOptions returns the default Blurrer options.
func defaultOptions() blurrerOptions {
	return blurrerOptions{
		workers:           runtime.GOMAXPROCS(0),
		kernelCacheSize:   DefaultKernelCacheSize,
		parallelThreshold: DefaultParallelThreshold,
	}
}

// WithWorkers sets how many goroutines split each blur pass.
// Zero or a negative value selects GOMAXPROCS; 1 disables the worker pool.
func WithWorkers(n int) Option {
	return func(o *blurrerOptions) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithKernelCacheSize sets how many kernels are kept, keyed by radius.
// Non-positive values keep the default.
func WithKernelCacheSize(n int) Option {
	return func(o *blurrerOptions) {
		if n > 0 {
			o.kernelCacheSize = n
		}
	}
}

// WithParallelThreshold sets the minimum Width*Height at which a blur is
// split across workers. Smaller images are blurred sequentially.
func WithParallelThreshold(pixels int) Option {
	return func(o *blurrerOptions) {
		if pixels < 0 {
			pixels = 0
		}
		o.parallelThreshold = pixels
	}
}
