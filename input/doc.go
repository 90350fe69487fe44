// Package input loads card sheet rows from tabular files.
//
// The first record of every input is a header. The first two columns are the
// primary and secondary codes and are read by position; the display name is
// read from the column whose header matches [Options.NameColumn]:
//
//	rows, err := input.Load("codes.csv", input.DefaultOptions())
//	if err != nil {
//	    var ie *input.Error
//	    if errors.As(err, &ie) {
//	        log.Fatalf("cannot load %s: %v", ie.Path, ie.Err)
//	    }
//	}
//
// Supported formats are comma or tab separated text (UTF-8, Shift_JIS or
// EUC-JP), XLSX workbooks and HTML tables. The format is detected from the
// file extension and, failing that, from the file content.
package input
