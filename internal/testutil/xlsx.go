// Package testutil builds input fixtures for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"strings"
)

// Sheet describes one worksheet of a generated workbook. Every cell is
// written as an inline string unless it is listed in Numeric.
type Sheet struct {
	Name    string
	Rows    [][]string
	Numeric map[string]bool // cell refs such as "A2" written as number cells
}

// BuildXLSX returns the bytes of a minimal XLSX workbook containing sheets.
func BuildXLSX(sheets ...Sheet) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`,
	}

	var rels, wb strings.Builder
	rels.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	wb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets>`)

	for i, s := range sheets {
		n := i + 1
		fmt.Fprintf(&rels, `
  <Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet%d.xml"/>`, n, n)
		fmt.Fprintf(&wb, `
  <sheet name="%s" sheetId="%d" r:id="rId%d"/>`, html.EscapeString(s.Name), n, n)
		files[fmt.Sprintf("xl/worksheets/sheet%d.xml", n)] = worksheet(s)
	}

	rels.WriteString("\n</Relationships>")
	wb.WriteString("\n</sheets>\n</workbook>")
	files["xl/_rels/workbook.xml.rels"] = rels.String()
	files["xl/workbook.xml"] = wb.String()

	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func worksheet(s Sheet) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<sheetData>`)
	for r, row := range s.Rows {
		fmt.Fprintf(&sb, "\n  <row r=\"%d\">", r+1)
		for c, v := range row {
			if v == "" {
				continue
			}
			ref := fmt.Sprintf("%s%d", columnName(c), r+1)
			if s.Numeric[ref] {
				fmt.Fprintf(&sb, `<c r="%s"><v>%s</v></c>`, ref, v)
				continue
			}
			fmt.Fprintf(&sb, `<c r="%s" t="inlineStr"><is><t>%s</t></is></c>`, ref, html.EscapeString(v))
		}
		sb.WriteString("</row>")
	}
	sb.WriteString("\n</sheetData>\n</worksheet>")
	return sb.String()
}

// columnName returns the letters of a 0-indexed column: A..Z, AA, AB...
func columnName(c int) string {
	name := ""
	for c++; c > 0; c = (c - 1) / 26 {
		name = string(rune('A'+(c-1)%26)) + name
	}
	return name
}
