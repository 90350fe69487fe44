// Package model provides the data types that flow through the card sheet
// pipeline.
//
// A run starts with [Row] values produced by the input loader. Once both
// barcode images of a row exist on disk the row becomes a display-ready
// [Record]. Records are chunked into fixed-size [Page] values, and the pages
// together with a header row and a generation timestamp form a [Document].
//
// # Rows and Slots
//
// Every [Row] carries two codes. A [Slot] identifies which of them a barcode
// image was rendered from:
//
//	code := row.Code(model.SlotSecondary)
//
// # Tables
//
// Each page renders as one [Table]: a header of captions followed by rows of
// [Cell] values. Cells are either styled text or a fixed-size image:
//
//	table := page.Table(doc.Header)
//	for _, row := range table.Rows {
//	    for _, cell := range row {
//	        fmt.Println(cell.Kind, cell.Text)
//	    }
//	}
//
// # Geometry
//
// [BBox] describes rectangles in page space with the origin at the top-left
// corner, which is how the document writer positions cells.
package model
