// Package htmldoc reads tables out of HTML documents.
package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to the tables of an HTML document.
type Reader struct {
	tables []*ParsedTable
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{}
	reader.collectTables(doc)

	return reader, nil
}

// TableCount returns the number of top-level tables in the document.
func (r *Reader) TableCount() int {
	return len(r.tables)
}

// Table returns the table at the given index (0-indexed, document order).
func (r *Reader) Table(index int) (*ParsedTable, error) {
	if index < 0 || index >= len(r.tables) {
		return nil, fmt.Errorf("table index %d out of range (%d tables)", index, r.TableCount())
	}
	return r.tables[index], nil
}

// collectTables walks the tree and parses every table that is not nested
// inside another table.
func (r *Reader) collectTables(n *html.Node) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "table" {
			r.tables = append(r.tables, parseTable(n))
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectTables(c)
	}
}

// parseTable extracts a table from an HTML table element.
func parseTable(tableNode *html.Node) *ParsedTable {
	table := &ParsedTable{
		Rows: make([][]TableCell, 0),
	}

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead":
			table.HasHeader = true
			parseTableRows(c, table, true)
		case "tbody", "tfoot":
			parseTableRows(c, table, false)
		case "tr":
			if row := parseTableRow(c, false); len(row) > 0 {
				table.Rows = append(table.Rows, row)
			}
		}
	}

	// If no explicit header but first row has th elements, mark as header
	if !table.HasHeader && len(table.Rows) > 0 {
		for _, cell := range table.Rows[0] {
			if cell.IsHeader {
				table.HasHeader = true
				break
			}
		}
	}

	return table
}

// parseTableRows parses rows within thead, tbody or tfoot.
func parseTableRows(section *html.Node, table *ParsedTable, isHeader bool) {
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			if row := parseTableRow(c, isHeader); len(row) > 0 {
				table.Rows = append(table.Rows, row)
			}
		}
	}
}

// parseTableRow parses a single table row.
func parseTableRow(tr *html.Node, isHeader bool) []TableCell {
	row := make([]TableCell, 0)

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		cell := TableCell{
			Text:     getTextContent(c),
			IsHeader: isHeader || c.Data == "th",
			RowSpan:  1,
			ColSpan:  1,
		}
		for _, attr := range c.Attr {
			switch attr.Key {
			case "rowspan":
				fmt.Sscanf(attr.Val, "%d", &cell.RowSpan)
			case "colspan":
				fmt.Sscanf(attr.Val, "%d", &cell.ColSpan)
			}
		}
		row = append(row, cell)
	}

	return row
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}
