package filter

import (
	"math"

	"github.com/wlur/wlur/internal/cache"
)

// SigmaRatio maps a blur radius to the Gaussian standard deviation:
// sigma = radius / SigmaRatio. With a half-width of ceil(radius), the kernel
// always reaches three standard deviations on either side of its center.
const SigmaRatio = 3.0

// MinSigma is the lower bound for sigma, keeping the exponent finite for
// radii close to zero.
const MinSigma = 0.0001

// MaxRadius is the largest radius a kernel is built for. It keeps the
// kernel at 2*MaxRadius+1 taps. Callers reject larger radii before
// calling HalfWidth or GaussianKernel.
const MaxRadius = 1 << 16

// Sigma returns the standard deviation used for radius.
func Sigma(radius float64) float64 {
	return math.Max(radius/SigmaRatio, MinSigma)
}

// HalfWidth returns k = ceil(radius), the number of taps on each side of
// the kernel center. Non-positive radii have no side taps.
func HalfWidth(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius))
}

// GaussianKernel builds a normalized 1D Gaussian kernel of length
// 2*HalfWidth(radius)+1.
//
// Weight i (offset -k..k) is exp(-i²/(2σ²)); the kernel is then scaled so
// the weights sum to 1. For radius <= 0 it returns the identity kernel [1]
// without evaluating any exponentials.
func GaussianKernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1}
	}

	half := HalfWidth(radius)
	sigma := Sigma(radius)
	twoSigmaSq := 2 * sigma * sigma

	kernel := make([]float64, 2*half+1)
	sum := 0.0
	for i := -half; i <= half; i++ {
		x := float64(i)
		w := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i+half] = w
		sum += w
	}

	// The center weight is exp(0) = 1, so sum is never zero.
	inv := 1 / sum
	for i := range kernel {
		kernel[i] *= inv
	}

	// Scaling in place can leave the two halves a few ulps apart; mirror the
	// left half so the kernel is exactly symmetric.
	for i := 0; i < half; i++ {
		kernel[2*half-i] = kernel[i]
	}

	return kernel
}

// DefaultKernelCacheSize is the number of kernels kept by NewKernelCache
// when given a non-positive capacity.
const DefaultKernelCacheSize = 64

// KernelCache memoizes Gaussian kernels by radius.
//
// Keys are the exact bit pattern of the radius, so two radii share a kernel
// only if they are the same float64. Returned slices are shared between
// callers and must not be modified.
type KernelCache struct {
	kernels *cache.Cache[uint64, []float64]
}

// NewKernelCache creates a cache holding up to capacity kernels.
func NewKernelCache(capacity int) *KernelCache {
	if capacity <= 0 {
		capacity = DefaultKernelCacheSize
	}
	return &KernelCache{kernels: cache.New[uint64, []float64](capacity)}
}

// Get returns the kernel for radius, building it on first use.
func (kc *KernelCache) Get(radius float64) []float64 {
	if radius <= 0 {
		return identityKernel
	}
	return kc.kernels.GetOrCreate(math.Float64bits(radius), func() []float64 {
		return GaussianKernel(radius)
	})
}

// Stats returns the cache counters.
func (kc *KernelCache) Stats() cache.Stats {
	return kc.kernels.Stats()
}

var identityKernel = []float64{1}
