package model

// Page is one fixed-size chunk of records. The final page of a document is
// padded with blank records so every page holds the same number of rows.
type Page struct {
	Number  int      // 1-indexed page number
	Records []Record // real records first, then padding
	Filled  int      // number of real records
}

// Size returns the number of rows on the page, padding included.
func (p Page) Size() int {
	return len(p.Records)
}

// Padding returns the number of blank rows.
func (p Page) Padding() int {
	return len(p.Records) - p.Filled
}

// Table builds the table block for the page under the given header.
func (p Page) Table(header []string) *Table {
	t := NewTable(header)
	for _, r := range p.Records {
		t.AddRecord(r)
	}
	return t
}
