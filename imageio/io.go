package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the WebP decoder

	"github.com/wlur/wlur"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when a format cannot be decoded or encoded.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// DefaultFileName is the file name used when saving without an explicit path.
const DefaultFileName = "blurred_image.png"

// DefaultJPEGQuality is the JPEG quality used when none is given.
const DefaultJPEGQuality = 95

// EncodeOptions controls encoding. The zero value is valid.
type EncodeOptions struct {
	// Quality is the JPEG quality, 1-100. Zero selects DefaultJPEGQuality.
	// Other formats are lossless and ignore it.
	Quality int
}

// Decode reads an image from r, detecting its format from the content.
func Decode(r io.Reader) (*wlur.PixelBuffer, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	f, err := ParseFormat(name)
	if err != nil {
		return nil, "", err
	}
	return wlur.FromImage(img), f, nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (*wlur.PixelBuffer, Format, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load decodes the image file at path.
func Load(path string) (*wlur.PixelBuffer, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *wlur.PixelBuffer, format Format, opts *EncodeOptions) error {
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}
	img, err := buf.ToImage()
	if err != nil {
		return err
	}

	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		q := DefaultJPEGQuality
		if opts != nil && opts.Quality > 0 {
			q = min(opts.Quality, 100)
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// Save encodes buf into the file at path. An empty format is inferred from
// the path's extension. The file is written to a temporary name in the same
// directory and renamed into place, so a failed save never leaves a
// truncated image behind.
func Save(path string, buf *wlur.PixelBuffer, format Format, opts *EncodeOptions) (err error) {
	if format == "" {
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, format)
	}

	path = filepath.Clean(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, buf, format, opts); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("imageio: rename file: %w", err)
	}
	return nil
}
