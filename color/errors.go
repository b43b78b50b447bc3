package color

import (
	"errors"
	"fmt"
)

// Parse failure kinds. Every error returned by Parse wraps exactly one of them.
var (
	ErrUnsupportedFormat = errors.New("unsupported color format")
	ErrInvalidHex        = errors.New("invalid hex color")
	ErrInvalidRGB        = errors.New("invalid RGB color")
	ErrInvalidHSL        = errors.New("invalid HSL color")
)

// ErrOutOfRange is wrapped alongside ErrInvalidRGB when a literal matched its
// pattern but a channel fell outside [0, 255].
var ErrOutOfRange = errors.New("channel out of range")

// ParseError reports the input that failed and why.
type ParseError struct {
	Input string
	Err   error
	// Channels is set for range violations.
	Channels []int
}

func (e *ParseError) Error() string {
	if e.Channels != nil {
		return fmt.Sprintf("%s: %d,%d,%d", e.Err, e.Channels[0], e.Channels[1], e.Channels[2])
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Channels != nil {
		return []error{e.Err, ErrOutOfRange}
	}
	return []error{e.Err}
}
