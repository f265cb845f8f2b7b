package wlur

import (
	"math"

	"github.com/wlur/wlur/internal/filter"
)

// MaxRadius is the largest radius accepted by BuildKernel and the blur
// functions. Kernels are at most 2*MaxRadius+1 taps long.
const MaxRadius = filter.MaxRadius

// Kernel is a normalized, symmetric 1D convolution kernel of odd length
// 2k+1. Weight i corresponds to the sample offset i-k.
type Kernel []float64

// HalfWidth returns k, the number of taps on each side of the center.
func (k Kernel) HalfWidth() int {
	return len(k) / 2
}

// Sum returns the total weight, 1 within floating-point tolerance.
func (k Kernel) Sum() float64 {
	s := 0.0
	for _, w := range k {
		s += w
	}
	return s
}

// BuildKernel derives the Gaussian kernel for radius.
//
// The standard deviation is max(radius/3, 0.0001) and the half-width is
// ceil(radius). Radius 0 yields the identity kernel [1]. A negative, NaN
// or infinite radius, or one above MaxRadius, fails with ErrInvalidArgument.
//
// The returned kernel is freshly allocated and may be modified.
func BuildKernel(radius float64) (Kernel, error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return Kernel(filter.GaussianKernel(radius)), nil
}

// Sigma returns the Gaussian standard deviation used for radius.
func Sigma(radius float64) float64 {
	return filter.Sigma(radius)
}

// checkRadius rejects radii the kernel builder cannot represent.
func checkRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return invalidArgf("radius %v is not finite", radius)
	}
	if radius < 0 {
		return invalidArgf("radius %v is negative", radius)
	}
	if radius > MaxRadius {
		return invalidArgf("radius %v exceeds maximum %d", radius, MaxRadius)
	}
	return nil
}
