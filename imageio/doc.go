// Package imageio moves pixel buffers in and out of encoded image files.
//
// It is the image source and sink around the blur engine: [Decode] and
// [Load] turn PNG, JPEG, BMP, TIFF or WebP data into a [wlur.PixelBuffer];
// [Encode] and [Save] write a buffer back as PNG, JPEG, BMP or TIFF.
// WebP is decode-only.
//
// Decoded images follow [wlur.FromImage]: grayscale images become
// single-channel buffers, everything else premultiplied RGBA.
package imageio
