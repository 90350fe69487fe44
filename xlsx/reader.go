// Package xlsx reads worksheet values from Office Open XML workbooks.
package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader provides access to XLSX worksheet content.
type Reader struct {
	files         []*zip.File
	workbook      *workbookXML
	sharedStrings []string
	sheets        []*Sheet
	sheetRels     map[string]string // RID -> target path
}

// OpenReaderAt reads an XLSX workbook from r. The caller keeps ownership of r.
func OpenReaderAt(r io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr.File)
}

func newReader(files []*zip.File) (*Reader, error) {
	r := &Reader{
		files:     files,
		sheetRels: make(map[string]string),
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}
	if err := r.parseWorkbook(); err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}

	// Shared strings are optional
	_ = r.parseSharedStrings()

	if err := r.parseWorksheets(); err != nil {
		return nil, fmt.Errorf("parsing worksheets: %w", err)
	}

	return r, nil
}

// validate checks that required XLSX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"xl/workbook.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.files {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.files {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseRelationships parses the workbook relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil // Relationships are optional
	}

	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return err
	}
	for _, rel := range rels.Relationship {
		r.sheetRels[rel.ID] = rel.Target
	}
	return nil
}

// parseWorkbook parses the main workbook file.
func (r *Reader) parseWorkbook() error {
	data, err := r.getFileContent("xl/workbook.xml")
	if err != nil {
		return err
	}

	r.workbook = &workbookXML{}
	return xml.Unmarshal(data, r.workbook)
}

// parseSharedStrings parses the shared strings table.
func (r *Reader) parseSharedStrings() error {
	data, err := r.getFileContent("xl/sharedStrings.xml")
	if err != nil {
		return err
	}

	var sst sharedStringsXML
	if err := xml.Unmarshal(data, &sst); err != nil {
		return err
	}

	r.sharedStrings = make([]string, len(sst.SI))
	for i, si := range sst.SI {
		r.sharedStrings[i] = joinRuns(si.T, si.R)
	}
	return nil
}

// joinRuns returns plain text, or the concatenated rich text runs.
func joinRuns(plain string, runs []rXML) string {
	if plain != "" || len(runs) == 0 {
		return plain
	}
	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(run.T)
	}
	return sb.String()
}

// parseWorksheets parses all worksheet files.
func (r *Reader) parseWorksheets() error {
	r.sheets = make([]*Sheet, 0, len(r.workbook.Sheets.Sheet))

	for i, sheetRef := range r.workbook.Sheets.Sheet {
		target := r.sheetRels[sheetRef.RID]
		if target == "" {
			target = fmt.Sprintf("worksheets/sheet%d.xml", i+1)
		}

		// Normalize path
		target = strings.TrimPrefix(target, "/")
		if !strings.HasPrefix(target, "xl/") {
			target = "xl/" + target
		}

		data, err := r.getFileContent(target)
		if err != nil {
			continue // Skip sheets we can't read
		}

		sheet, err := r.parseWorksheet(data, sheetRef.Name, len(r.sheets))
		if err != nil {
			continue
		}
		r.sheets = append(r.sheets, sheet)
	}

	if len(r.sheets) == 0 {
		return fmt.Errorf("no worksheets found")
	}
	return nil
}

// parseWorksheet parses a single worksheet.
func (r *Reader) parseWorksheet(data []byte, name string, index int) (*Sheet, error) {
	var ws worksheetXML
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}

	sheet := &Sheet{Name: name, Index: index}

	// First pass: find dimensions
	maxRow, maxCol := 0, -1
	for _, row := range ws.SheetData.Rows {
		if row.R > maxRow {
			maxRow = row.R
		}
		for _, cell := range row.Cells {
			col, err := column(cell.R)
			if err != nil {
				continue
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}

	sheet.Rows = make([][]Cell, maxRow)
	for i := range sheet.Rows {
		sheet.Rows[i] = make([]Cell, maxCol+1)
	}

	// Second pass: populate cells
	for _, row := range ws.SheetData.Rows {
		rowIdx := row.R - 1
		if rowIdx < 0 || rowIdx >= len(sheet.Rows) {
			continue
		}

		for _, cx := range row.Cells {
			col, err := column(cx.R)
			if err != nil || col >= len(sheet.Rows[rowIdx]) {
				continue
			}
			r.fillCell(&sheet.Rows[rowIdx][col], cx)
		}
	}

	return sheet, nil
}

// fillCell sets the type and display value of a cell from its XML form.
func (r *Reader) fillCell(cell *Cell, cx cellXML) {
	switch cx.T {
	case "s": // Shared string
		cell.Type = CellTypeString
		idx, err := strconv.Atoi(cx.V)
		if err == nil && idx >= 0 && idx < len(r.sharedStrings) {
			cell.Value = r.sharedStrings[idx]
		}
	case "b":
		cell.Type = CellTypeBoolean
		if cx.V == "1" {
			cell.Value = "TRUE"
		} else {
			cell.Value = "FALSE"
		}
	case "e":
		cell.Type = CellTypeError
		cell.Value = cx.V
	case "str": // Formula string result
		cell.Type = CellTypeString
		cell.Value = cx.V
	case "inlineStr":
		cell.Type = CellTypeString
		if cx.Is != nil {
			cell.Value = joinRuns(cx.Is.T, cx.Is.R)
		}
	default: // Number or empty
		if cx.V != "" {
			cell.Type = CellTypeNumber
			cell.Value = formatNumber(cx.V)
		} else if cx.F != "" {
			cell.Type = CellTypeFormula
		}
	}
}

// SheetCount returns the number of sheets in the workbook.
func (r *Reader) SheetCount() int {
	return len(r.sheets)
}

// SheetNames returns the names of all sheets.
func (r *Reader) SheetNames() []string {
	names := make([]string, len(r.sheets))
	for i, s := range r.sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet returns the sheet at the given index (0-indexed).
func (r *Reader) Sheet(index int) (*Sheet, error) {
	if index < 0 || index >= len(r.sheets) {
		return nil, fmt.Errorf("sheet index %d out of range (%d sheets)", index, r.SheetCount())
	}
	return r.sheets[index], nil
}

// SheetByName returns the sheet with the given name.
func (r *Reader) SheetByName(name string) (*Sheet, error) {
	for _, s := range r.sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("sheet %q not found (sheets: %s)", name, strings.Join(r.SheetNames(), ", "))
}
