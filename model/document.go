package model

import "time"

// Document is the complete card sheet: pages, header captions and metadata.
type Document struct {
	Metadata Metadata
	Header   []string
	Pages    []Page
}

// Metadata contains document-level information
type Metadata struct {
	Title       string
	Author      string
	Subject     string
	Keywords    []string
	Creator     string
	GeneratedAt time.Time // captured once at the start of a run
	// Custom metadata
	Custom map[string]string
}

// NewDocument creates a new empty document with the given header captions.
func NewDocument(header []string) *Document {
	h := make([]string, len(header))
	copy(h, header)
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Header: h,
		Pages:  make([]Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// RecordCount returns the number of real (non-padding) records.
func (d *Document) RecordCount() int {
	n := 0
	for _, p := range d.Pages {
		n += p.Filled
	}
	return n
}

// Tables returns one table block per page.
func (d *Document) Tables() []*Table {
	tables := make([]*Table, 0, len(d.Pages))
	for _, p := range d.Pages {
		tables = append(tables, p.Table(d.Header))
	}
	return tables
}
