package wlur

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a radius is negative or not finite,
// or when a buffer's length does not match its declared shape. It is always
// reported before any work is done; no partial result is produced.
var ErrInvalidArgument = errors.New("wlur: invalid argument")

// invalidArgf wraps ErrInvalidArgument with a formatted detail message.
func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
