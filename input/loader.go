package input

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/cardsheet/format"
	"github.com/tsawler/cardsheet/htmldoc"
	"github.com/tsawler/cardsheet/model"
	"github.com/tsawler/cardsheet/xlsx"
)

// DefaultNameColumn is the header of the display name column.
const DefaultNameColumn = "C列"

// Options controls how an input table is read.
type Options struct {
	Format     format.Format // Unknown means detect
	Delimiter  rune          // 0 means comma for CSV, tab for TSV
	Encoding   string        // see the Encoding constants
	NameColumn string
	Sheet      string // XLSX sheet name; empty selects the first sheet
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Encoding:   EncodingAuto,
		NameColumn: DefaultNameColumn,
	}
}

// Load reads every data row of the table at path.
func Load(path string, opts Options) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &Error{Path: path, Op: "open", Err: err}
	}
	if fi.IsDir() {
		return nil, &Error{Path: path, Op: "open", Err: fmt.Errorf("is a directory")}
	}

	ft, err := resolveFormat(path, f, fi.Size(), opts.Format)
	if err != nil {
		return nil, &Error{Path: path, Op: "read", Err: err}
	}

	var values [][]string
	switch {
	case ft == format.XLSX:
		values, err = readXLSX(f, fi.Size(), opts.Sheet)
	case ft == format.HTML:
		values, err = readHTML(f)
	case ft.Delimited():
		values, err = readDelimited(f, ft, opts)
	default:
		err = fmt.Errorf("unsupported format %s", ft)
	}
	if err != nil {
		return nil, &Error{Path: path, Op: "parse", Err: err}
	}

	rows, err := FromValues(values, opts.NameColumn)
	if err != nil {
		return nil, &Error{Path: path, Op: "columns", Err: err}
	}
	return rows, nil
}

// resolveFormat honours an explicit format, then the extension, then the
// file content. Unrecognised content is read as CSV.
func resolveFormat(path string, r io.ReaderAt, size int64, explicit format.Format) (format.Format, error) {
	if explicit != format.Unknown {
		return explicit, nil
	}
	if ft := format.Detect(path); ft != format.Unknown {
		return ft, nil
	}
	ft, err := format.DetectFromReader(r, size)
	if err != nil {
		return format.Unknown, err
	}
	if ft == format.Unknown {
		return format.CSV, nil
	}
	return ft, nil
}

// Parse reads delimited text from r.
func Parse(r io.Reader, opts Options) ([]model.Row, error) {
	ft := opts.Format
	if ft == format.Unknown {
		ft = format.CSV
	}
	if !ft.Delimited() {
		return nil, fmt.Errorf("parse reads delimited text, not %s", ft)
	}
	values, err := readDelimited(r, ft, opts)
	if err != nil {
		return nil, err
	}
	return FromValues(values, opts.NameColumn)
}

func readDelimited(r io.Reader, ft format.Format, opts Options) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, err := decode(raw, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(text))
	cr.FieldsPerRecord = -1
	switch {
	case opts.Delimiter != 0:
		cr.Comma = opts.Delimiter
	case ft == format.TSV:
		cr.Comma = '\t'
	}

	return cr.ReadAll()
}

func readXLSX(r io.ReaderAt, size int64, sheetName string) ([][]string, error) {
	xr, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, err
	}

	var sheet *xlsx.Sheet
	if sheetName != "" {
		sheet, err = xr.SheetByName(sheetName)
	} else {
		sheet, err = xr.Sheet(0)
	}
	if err != nil {
		return nil, err
	}
	return sheet.Values(), nil
}

func readHTML(r io.Reader) ([][]string, error) {
	hr, err := htmldoc.OpenReader(r)
	if err != nil {
		return nil, err
	}

	table, err := hr.Table(0)
	if err != nil {
		return nil, err
	}
	return table.Values(), nil
}

// FromValues converts a header-first grid of cell values into rows. Records
// in which every cell is blank are skipped and do not consume an index.
func FromValues(values [][]string, nameColumn string) ([]model.Row, error) {
	if len(values) == 0 {
		return nil, ErrNoHeader
	}

	header := values[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header has %d", ErrTooFewColumns, len(header))
	}

	nameIdx := columnIndex(header, nameColumn)
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingNameColumn, nameColumn)
	}

	rows := make([]model.Row, 0, len(values)-1)
	for _, rec := range values[1:] {
		if blankRecord(rec) {
			continue
		}
		rows = append(rows, model.Row{
			Index: len(rows),
			Name:  norm.NFC.String(strings.TrimSpace(field(rec, nameIdx))),
			CodeA: strings.TrimSpace(field(rec, 0)),
			CodeB: strings.TrimSpace(field(rec, 1)),
		})
	}
	return rows, nil
}

func columnIndex(header []string, name string) int {
	want := norm.NFC.String(strings.TrimSpace(name))
	for i, h := range header {
		if norm.NFC.String(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
