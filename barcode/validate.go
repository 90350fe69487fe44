package barcode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCode is returned for an empty code.
	ErrEmptyCode = errors.New("empty code")
	// ErrNonDigit is returned when a code contains anything but 0-9.
	ErrNonDigit = errors.New("code contains non-digit characters")
	// ErrLength is returned when a code is not 6 or 8 digits long.
	ErrLength = errors.New("code must be 6 or 8 digits long")
	// ErrUnsafeName is returned when an image basename would escape the
	// image directory.
	ErrUnsafeName = errors.New("unsafe file name")
)

// Validate checks that code is exactly six or eight ASCII digits.
func Validate(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("%w: %q", ErrNonDigit, code)
		}
	}
	if n := len(code); n != 6 && n != 8 {
		return fmt.Errorf("%w: got %d", ErrLength, n)
	}
	return nil
}

// IsValid reports whether Validate accepts code.
func IsValid(code string) bool {
	return Validate(code) == nil
}

// isSkippable reports whether err rejects a single image rather than the run.
func isSkippable(err error) bool {
	return errors.Is(err, ErrEmptyCode) ||
		errors.Is(err, ErrNonDigit) ||
		errors.Is(err, ErrLength) ||
		errors.Is(err, ErrUnsafeName)
}
