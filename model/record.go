package model

// blankText is the placeholder written into every cell of a padding row.
const blankText = " "

// ImageRef points at a rendered barcode image and the box it is drawn into.
// The box is fixed for every image; the source aspect ratio is not kept.
type ImageRef struct {
	Path   string
	Width  float64 // points
	Height float64 // points
}

// Record is a display-ready row: text cells plus both barcode images.
type Record struct {
	Name   string
	CodeA  string
	CodeB  string
	Images [2]ImageRef
	Style  TextStyle
	Blank  bool // padding row
}

// BlankRecord returns a padding record whose cells are all whitespace.
func BlankRecord() Record {
	return Record{Blank: true}
}

// Image returns the image reference for a slot.
func (r Record) Image(s Slot) ImageRef {
	if !s.Valid() {
		return ImageRef{}
	}
	return r.Images[int(s)-1]
}

// Cells returns the five table cells of the record in column order:
// Name, Record1, Record2, Barcode1, Barcode2.
func (r Record) Cells() []Cell {
	if r.Blank {
		cells := make([]Cell, ColumnCount)
		for i := range cells {
			cells[i] = Cell{Kind: CellText, Text: blankText, Style: r.Style}
		}
		return cells
	}

	return []Cell{
		{Kind: CellText, Text: r.Name, Style: r.Style},
		{Kind: CellText, Text: r.CodeA, Style: r.Style},
		{Kind: CellText, Text: r.CodeB, Style: r.Style},
		{Kind: CellImage, Image: r.Images[0]},
		{Kind: CellImage, Image: r.Images[1]},
	}
}
