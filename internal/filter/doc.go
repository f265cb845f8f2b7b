// Package filter implements the numeric core of the blur engine.
//
// It contains two pieces:
//   - Gaussian kernel construction ([GaussianKernel], [KernelCache])
//   - Separable convolution over interleaved 8-bit pixel grids
//     ([Horizontal], [Vertical], [Blur])
//
// Pixel data is row-major with channels interleaved. Every channel,
// alpha included, is convolved the same way. Samples outside the grid are
// clamped to the nearest edge row or column.
//
// The functions here do not validate their inputs; the root package
// checks radii and buffer shapes before calling in.
package filter
