package xlsx

import (
	"reflect"
	"testing"

	"github.com/tsawler/cardsheet/internal/testutil"
)

func TestSheet_CodeColumns(t *testing.T) {
	sheet := testutil.Sheet{
		Name: "codes",
		Rows: [][]string{
			{"A列", "B列", "C列"},
			{"12345678.0", "1.23456E5", "Alice"},
			{"012345", "00123456", "Bob"},
			{"123456", "", "Carol"},
			{"654321", "12.5", "Dave"},
		},
		Numeric: map[string]bool{"A2": true, "B2": true, "A4": true, "A5": true, "B5": true},
	}
	r := openFixture(t, sheet)
	s, err := r.Sheet(0)
	if err != nil {
		t.Fatalf("Sheet(0) error: %v", err)
	}

	want := [][]string{
		{"A列", "B列", "C列"},
		{"12345678", "123456", "Alice"},
		{"012345", "00123456", "Bob"},
		{"123456", "", "Carol"},
		{"654321", "12.5", "Dave"},
	}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	tests := []struct {
		row, col int
		want     CellType
	}{
		{1, 0, CellTypeNumber},
		{2, 0, CellTypeString}, // leading zeros survive only as text
		{3, 1, CellTypeEmpty},
		{4, 1, CellTypeNumber},
	}
	for _, tt := range tests {
		if got := s.Rows[tt.row][tt.col].Type; got != tt.want {
			t.Errorf("Rows[%d][%d].Type = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestSheet_WideRows(t *testing.T) {
	row := make([]string, 28)
	row[0], row[27] = "123456", "far"
	r := openFixture(t, testutil.Sheet{Name: "wide", Rows: [][]string{row}})
	s, _ := r.Sheet(0)

	got := s.Values()
	if len(got) != 1 || len(got[0]) != 28 {
		t.Fatalf("Values() shape = %d rows, want 1 row of 28", len(got))
	}
	if got[0][27] != "far" {
		t.Errorf("AB1 = %q, want far", got[0][27])
	}
}

func TestColumn(t *testing.T) {
	tests := []struct {
		ref     string
		want    int
		wantErr bool
	}{
		{"A1", 0, false},
		{"c7", 2, false},
		{"AA10", 26, false},
		{"XFD1048576", 16383, false},
		{"", 0, true},
		{"7", 0, true},
		{"B", 0, true},
		{"B0", 0, true},
	}

	for _, tt := range tests {
		got, err := column(tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("column(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("column(%q) = %d, want %d", tt.ref, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123456", "123456"},
		{"12345678.0", "12345678"},
		{"1.23456E5", "123456"},
		{"12.5", "12.5"},
		{"abc", "abc"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
