package xlsx

import (
	"fmt"
	"strconv"
	"strings"
)

// CellType is the kind of value stored in a cell.
type CellType int

const (
	// CellTypeEmpty marks a cell with no stored value.
	CellTypeEmpty CellType = iota
	// CellTypeString marks shared, inline and formula string results.
	CellTypeString
	// CellTypeNumber marks a numeric value.
	CellTypeNumber
	// CellTypeBoolean marks TRUE or FALSE.
	CellTypeBoolean
	// CellTypeFormula marks a formula without a cached value.
	CellTypeFormula
	// CellTypeError marks an error value such as #N/A.
	CellTypeError
)

// Cell is one worksheet cell as it would be displayed.
type Cell struct {
	Value string
	Type  CellType
}

// IsEmpty reports whether the cell shows nothing.
func (c Cell) IsEmpty() bool {
	return c.Type == CellTypeEmpty || c.Value == ""
}

// Sheet is a worksheet laid out as a dense grid. Cells missing from the file
// are empty.
type Sheet struct {
	Name  string
	Index int
	Rows  [][]Cell
}

// Values returns the display values of the sheet as a rectangular grid.
// Trailing rows in which every cell is empty are dropped.
func (s *Sheet) Values() [][]string {
	last := len(s.Rows) - 1
	for last >= 0 && rowEmpty(s.Rows[last]) {
		last--
	}

	out := make([][]string, 0, last+1)
	for i := 0; i <= last; i++ {
		vals := make([]string, len(s.Rows[i]))
		for j, c := range s.Rows[i] {
			vals[j] = c.Value
		}
		out = append(out, vals)
	}
	return out
}

func rowEmpty(row []Cell) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// column returns the 0-indexed column of a reference such as "C7" or "AA10".
func column(ref string) (int, error) {
	i := 0
	col := 0
	for ; i < len(ref); i++ {
		c := ref[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			break
		}
		col = col*26 + int(c-'A') + 1
	}
	if i == 0 {
		return 0, fmt.Errorf("cell reference %q has no column", ref)
	}
	if n, err := strconv.Atoi(ref[i:]); err != nil || n < 1 {
		return 0, fmt.Errorf("cell reference %q has no row", ref)
	}
	return col - 1, nil
}

// formatNumber renders a numeric cell value. Integral values lose any
// fractional or exponent notation so codes read back as plain digits.
func formatNumber(value string) string {
	if strings.ContainsAny(value, ".eE") {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil && f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return value
}
