// Package cardsheet generates printable barcode card sheets.
//
// A run reads a table of codes and names, renders a Code-128 image for both
// code columns of every row, and lays the rows out as a PDF with a fixed
// number of rows per page.
//
// Basic usage:
//
//	res, warnings, err := cardsheet.Open("codes.csv").Generate()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println(cardsheet.FormatWarnings(warnings))
//	}
//	fmt.Println("wrote", res.Output)
//
// With options:
//
//	res, _, err := cardsheet.Open("codes.xlsx").
//	    ImageDir("build/images").
//	    Output("build/sheet.pdf").
//	    RowsPerPage(8).
//	    Generate()
package cardsheet

import (
	"time"

	"go.uber.org/zap"
)

// Open returns a Generator reading input with the default configuration.
// An empty input keeps the configured default.
//
// Example:
//
//	res, warnings, err := cardsheet.Open("codes.csv").Generate()
func Open(input string) *Generator {
	cfg := DefaultConfig()
	if input != "" {
		cfg.Input = input
	}
	return &Generator{
		cfg:    cfg,
		logger: zap.NewNop(),
		clock:  time.Now,
	}
}

// FromConfig returns a Generator for a loaded configuration.
func FromConfig(cfg *Config) *Generator {
	return Open("").Config(cfg)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
