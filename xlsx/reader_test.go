package xlsx

import (
	"archive/zip"
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/cardsheet/internal/testutil"
)

func openFixture(t *testing.T, sheets ...testutil.Sheet) *Reader {
	t.Helper()
	data, err := testutil.BuildXLSX(sheets...)
	if err != nil {
		t.Fatalf("BuildXLSX() error: %v", err)
	}
	r, err := OpenReaderAt(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReaderAt() error: %v", err)
	}
	return r
}

func codesSheet() testutil.Sheet {
	return testutil.Sheet{
		Name: "codes",
		Rows: [][]string{
			{"A列", "B列", "C列"},
			{"123456", "654321", "Alice"},
			{"12345678", "87654321", "Bob"},
		},
		Numeric: map[string]bool{"A2": true, "B2": true},
	}
}

func TestOpenReaderAt_InvalidZip(t *testing.T) {
	data := []byte("not a zip")
	if _, err := OpenReaderAt(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Error("OpenReaderAt() expected error for invalid ZIP")
	}
}

func TestOpenReaderAt_NotWorkbook(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("word/document.xml"); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenReaderAt(bytes.NewReader(buf.Bytes()), int64(buf.Len())); err == nil {
		t.Error("OpenReaderAt() expected error for a ZIP without a workbook")
	}
}

func TestReader_Sheets(t *testing.T) {
	second := testutil.Sheet{Name: "other", Rows: [][]string{{"x"}}}
	r := openFixture(t, codesSheet(), second)

	if got := r.SheetNames(); !reflect.DeepEqual(got, []string{"codes", "other"}) {
		t.Errorf("SheetNames() = %v", got)
	}

	s, err := r.SheetByName("other")
	if err != nil {
		t.Fatalf("SheetByName() error: %v", err)
	}
	if s.Index != 1 {
		t.Errorf("Index = %d, want 1", s.Index)
	}

	_, err = r.SheetByName("missing")
	if err == nil || !strings.Contains(err.Error(), "codes, other") {
		t.Errorf("SheetByName() error = %v, want the available sheet names", err)
	}
	if _, err := r.Sheet(5); err == nil {
		t.Error("Sheet(5) expected error")
	}
}

func TestSheet_Values(t *testing.T) {
	r := openFixture(t, codesSheet())
	s, err := r.Sheet(0)
	if err != nil {
		t.Fatalf("Sheet(0) error: %v", err)
	}

	want := [][]string{
		{"A列", "B列", "C列"},
		{"123456", "654321", "Alice"},
		{"12345678", "87654321", "Bob"},
	}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	if c := s.Rows[1][0]; c.Type != CellTypeNumber {
		t.Errorf("A2 = %+v, want number cell", c)
	}
	if c := s.Rows[2][2]; c.Type != CellTypeString || c.Value != "Bob" {
		t.Errorf("C3 = %+v, want string Bob", c)
	}
}

func TestSheet_ValuesDropsTrailingEmptyRows(t *testing.T) {
	sheet := testutil.Sheet{
		Name: "s",
		Rows: [][]string{
			{"A", "B", "C"},
			{"1", "2", "3"},
			{"", "", ""},
		},
	}
	r := openFixture(t, sheet)
	s, _ := r.Sheet(0)

	if got := len(s.Values()); got != 2 {
		t.Errorf("len(Values()) = %d, want 2", got)
	}
}

func TestCell_IsEmpty(t *testing.T) {
	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{Type: CellTypeEmpty}, true},
		{Cell{Type: CellTypeString, Value: ""}, true},
		{Cell{Type: CellTypeString, Value: "x"}, false},
		{Cell{Type: CellTypeNumber, Value: "0"}, false},
	}

	for _, tt := range tests {
		if got := tt.cell.IsEmpty(); got != tt.want {
			t.Errorf("IsEmpty(%+v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}
