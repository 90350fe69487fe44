package writer

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when a document has no pages.
var ErrEmptyDocument = errors.New("document has no pages")

// RenderError is returned when the PDF cannot be produced or written.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
