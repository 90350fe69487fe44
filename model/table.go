package model

import (
	"fmt"
	"strings"
)

// ColumnCount is the number of columns in every card sheet table.
const ColumnCount = 5

// DefaultHeader holds the captions of the header row.
var DefaultHeader = []string{"Name", "Record1", "Record2", "Barcode1", "Barcode2"}

// Table is a header row followed by body rows of cells.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// NewTable creates an empty table with the given header captions.
func NewTable(header []string) *Table {
	h := make([]string, len(header))
	copy(h, header)
	return &Table{Header: h}
}

// AddRecord appends the cells of a record as a new body row.
func (t *Table) AddRecord(r Record) {
	t.Rows = append(t.Rows, r.Cells())
}

// RowCount returns the number of rows including the header row.
func (t *Table) RowCount() int {
	return len(t.Rows) + 1
}

// ColCount returns the number of columns in the header.
func (t *Table) ColCount() int {
	return len(t.Header)
}

// Validate checks that every body row has as many cells as the header.
func (t *Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != t.ColCount() {
			return fmt.Errorf("row %d has %d cells, header has %d", i, len(row), t.ColCount())
		}
	}
	return nil
}

// GetText returns the table as tab-separated text, one line per row.
// Image cells are written as the base name of their file.
func (t *Table) GetText() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Header, "\t"))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		for j, cell := range row {
			switch cell.Kind {
			case CellImage:
				sb.WriteString(baseName(cell.Image.Path))
			default:
				sb.WriteString(strings.TrimSpace(cell.Text))
			}
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
