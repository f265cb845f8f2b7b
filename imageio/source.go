package imageio

import "github.com/wlur/wlur"

// Source produces pixel buffers for the blur engine.
type Source interface {
	Read() (*wlur.PixelBuffer, error)
}

// Sink persists blurred pixel buffers.
type Sink interface {
	Write(buf *wlur.PixelBuffer) error
}

// FileSource reads an image file from disk.
type FileSource struct {
	Path string

	// Format is set by Read to the detected format.
	Format Format
}

// Read decodes the file at s.Path.
func (s *FileSource) Read() (*wlur.PixelBuffer, error) {
	buf, f, err := Load(s.Path)
	if err != nil {
		return nil, err
	}
	s.Format = f
	return buf, nil
}

// FileSink writes an image file to disk.
type FileSink struct {
	// Path is the destination. Empty means DefaultFileName.
	Path string

	// Format is the output format. Empty means infer from Path.
	Format Format

	// Quality is the JPEG quality; see EncodeOptions.
	Quality int
}

// Write encodes buf to s.Path.
func (s *FileSink) Write(buf *wlur.PixelBuffer) error {
	path := s.Path
	if path == "" {
		path = DefaultFileName
	}
	return Save(path, buf, s.Format, &EncodeOptions{Quality: s.Quality})
}

var (
	_ Source = (*FileSource)(nil)
	_ Sink   = (*FileSink)(nil)
)
