package model

import (
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Row / Slot Tests
// ============================================================================

func TestSlotColumn(t *testing.T) {
	tests := []struct {
		slot Slot
		want string
	}{
		{SlotPrimary, "A"},
		{SlotSecondary, "B"},
		{Slot(3), "?"},
	}

	for _, tt := range tests {
		if got := tt.slot.Column(); got != tt.want {
			t.Errorf("%v.Column() = %q, want %q", tt.slot, got, tt.want)
		}
	}
}

func TestRowCode(t *testing.T) {
	row := Row{Name: "Alice", CodeA: "123456", CodeB: "654321"}

	if got := row.Code(SlotPrimary); got != "123456" {
		t.Errorf("Code(SlotPrimary) = %q, want 123456", got)
	}
	if got := row.Code(SlotSecondary); got != "654321" {
		t.Errorf("Code(SlotSecondary) = %q, want 654321", got)
	}
	if got := row.Code(Slot(0)); got != "" {
		t.Errorf("Code(0) = %q, want empty", got)
	}
}

// ============================================================================
// Record / Cell Tests
// ============================================================================

func TestRecordCells(t *testing.T) {
	style := TextStyle{FontSize: 18, Align: AlignCenter}
	r := Record{
		Name:  "Alice",
		CodeA: "123456",
		CodeB: "654321",
		Images: [2]ImageRef{
			{Path: "out/123456_1.png", Width: 120, Height: 60},
			{Path: "out/123456_2.png", Width: 120, Height: 60},
		},
		Style: style,
	}

	cells := r.Cells()
	if len(cells) != ColumnCount {
		t.Fatalf("len(Cells()) = %d, want %d", len(cells), ColumnCount)
	}

	wantText := []string{"Alice", "123456", "654321"}
	for i, want := range wantText {
		if cells[i].Kind != CellText || cells[i].Text != want {
			t.Errorf("cell %d = %+v, want text %q", i, cells[i], want)
		}
		if cells[i].Style != style {
			t.Errorf("cell %d style = %+v, want shared style", i, cells[i].Style)
		}
	}
	for i := 3; i < 5; i++ {
		if cells[i].Kind != CellImage {
			t.Errorf("cell %d kind = %v, want image", i, cells[i].Kind)
		}
	}
	if cells[4].Image.Path != "out/123456_2.png" {
		t.Errorf("Barcode2 path = %q", cells[4].Image.Path)
	}
	if r.Image(SlotSecondary).Path != "out/123456_2.png" {
		t.Errorf("Image(SlotSecondary) = %+v", r.Image(SlotSecondary))
	}
}

func TestBlankRecordCells(t *testing.T) {
	cells := BlankRecord().Cells()
	if len(cells) != ColumnCount {
		t.Fatalf("len(Cells()) = %d, want %d", len(cells), ColumnCount)
	}
	for i, c := range cells {
		if !c.IsBlank() {
			t.Errorf("blank cell %d = %+v, want whitespace text", i, c)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", White, false},
		{"000000", Black, false},
		{"lightgrey", LightGrey, false},
		{"#D3D3D3", LightGrey, false},
		{"#abc", Color{}, true},
		{"zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	if LightGrey.Hex() != "#d3d3d3" {
		t.Errorf("Hex() = %q", LightGrey.Hex())
	}
}

// ============================================================================
// Table / Page / Document Tests
// ============================================================================

func TestPageTable(t *testing.T) {
	page := Page{
		Records: []Record{
			{Name: "Alice", CodeA: "123456", CodeB: "654321"},
			BlankRecord(),
		},
		Filled: 1,
	}

	table := page.Table(DefaultHeader)
	if table.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", table.RowCount())
	}
	if table.ColCount() != 5 {
		t.Errorf("ColCount() = %d, want 5", table.ColCount())
	}
	if err := table.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if c := table.Rows[0][0]; c.Text != "Alice" {
		t.Errorf("Rows[0][0] = %+v", c)
	}
	if page.Padding() != 1 {
		t.Errorf("Padding() = %d, want 1", page.Padding())
	}

	text := table.GetText()
	if !strings.HasPrefix(text, "Name\tRecord1\tRecord2\tBarcode1\tBarcode2\n") {
		t.Errorf("GetText() header = %q", text)
	}
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument(DefaultHeader)
	doc.Metadata.GeneratedAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	doc.AddPage(Page{Records: make([]Record, 10), Filled: 10})
	doc.AddPage(Page{Records: make([]Record, 10), Filled: 3})

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	if doc.Pages[1].Number != 2 {
		t.Errorf("page 2 number = %d", doc.Pages[1].Number)
	}
	if doc.RecordCount() != 13 {
		t.Errorf("RecordCount() = %d, want 13", doc.RecordCount())
	}
	if len(doc.Tables()) != 2 {
		t.Errorf("len(Tables()) = %d, want 2", len(doc.Tables()))
	}

	// The header is copied, so later edits to the caller's slice do not leak.
	header := []string{"a", "b", "c", "d", "e"}
	doc2 := NewDocument(header)
	header[0] = "z"
	if doc2.Header[0] != "a" {
		t.Error("NewDocument should copy the header")
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestBBoxEdges(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)

	if bbox.Left() != 10 || bbox.Right() != 110 {
		t.Errorf("Left/Right = %v/%v, want 10/110", bbox.Left(), bbox.Right())
	}
	if bbox.Top() != 20 || bbox.Bottom() != 70 {
		t.Errorf("Top/Bottom = %v/%v, want 20/70", bbox.Top(), bbox.Bottom())
	}
	if c := bbox.Center(); c != (Point{60, 45}) {
		t.Errorf("Center() = %+v, want {60 45}", c)
	}
}

func TestBBoxInsetAndCenterBox(t *testing.T) {
	cell := NewBBox(0, 0, 130, 72)

	inner := cell.Inset(6)
	if inner != NewBBox(6, 6, 118, 60) {
		t.Errorf("Inset(6) = %+v", inner)
	}

	img := cell.CenterBox(120, 60)
	if img != NewBBox(5, 6, 120, 60) {
		t.Errorf("CenterBox() = %+v", img)
	}
}
