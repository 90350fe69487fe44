package htmldoc

// ParsedTable represents a table extracted from HTML.
type ParsedTable struct {
	Rows      [][]TableCell
	HasHeader bool
}

// TableCell represents a cell in an HTML table.
type TableCell struct {
	Text     string
	IsHeader bool
	RowSpan  int
	ColSpan  int
}

// Values returns the cell texts of the table. A cell spanning several
// columns is followed by empty strings so column positions stay aligned.
func (t *ParsedTable) Values() [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		vals := make([]string, 0, len(row))
		for _, cell := range row {
			vals = append(vals, cell.Text)
			for i := 1; i < cell.ColSpan; i++ {
				vals = append(vals, "")
			}
		}
		out = append(out, vals)
	}
	return out
}
