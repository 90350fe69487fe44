package input

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader is returned when the input has no header record.
	ErrNoHeader = errors.New("input has no header row")
	// ErrTooFewColumns is returned when the header has fewer than two columns.
	ErrTooFewColumns = errors.New("input needs at least two code columns")
	// ErrMissingNameColumn is returned when no header matches the name column.
	ErrMissingNameColumn = errors.New("name column not found")
)

// Error describes a fatal problem with the input table.
type Error struct {
	Path string
	Op   string // "open", "read", "parse" or "columns"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("input: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
