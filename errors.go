package cardsheet

import (
	"errors"
	"fmt"

	"github.com/tsawler/cardsheet/assemble"
	"github.com/tsawler/cardsheet/barcode"
	"github.com/tsawler/cardsheet/input"
	"github.com/tsawler/cardsheet/writer"
)

// Errors returned by Generate. They alias the types of the stage that
// produces them so callers only need this package for errors.As.
type (
	// InputError reports an input file that is missing, unreadable or
	// lacks the required columns.
	InputError = input.Error
	// MissingAssetError reports a row whose barcode images are not on disk.
	MissingAssetError = assemble.MissingAssetError
	// RenderError reports a document that could not be written.
	RenderError = writer.RenderError
	// SkipReason describes a code that was not rendered.
	SkipReason = barcode.SkipReason
)

// ErrNoRecords is returned when the input holds a header but no data rows.
var ErrNoRecords = errors.New("input has no data rows")

// ConfigError reports settings that prevent a run from starting.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
