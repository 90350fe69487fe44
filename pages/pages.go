package pages

import (
	"errors"
	"fmt"

	"github.com/tsawler/cardsheet/model"
)

// DefaultSize is the number of rows per page.
const DefaultSize = 10

// ErrInvalidPageSize is returned for a page size below one.
var ErrInvalidPageSize = errors.New("page size must be positive")

// Paginate chunks records into pages of size rows. Zero records yield zero
// pages.
func Paginate(records []model.Record, size int) ([]model.Page, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}
	if len(records) == 0 {
		return nil, nil
	}

	count := (len(records) + size - 1) / size
	result := make([]model.Page, 0, count)
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))

		rows := make([]model.Record, size)
		n := copy(rows, records[start:end])
		for i := n; i < size; i++ {
			rows[i] = model.BlankRecord()
		}

		result = append(result, model.Page{
			Number:  len(result) + 1,
			Records: rows,
			Filled:  n,
		})
	}
	return result, nil
}

// Document collects pages into a document under header.
func Document(header []string, pp []model.Page) *model.Document {
	doc := model.NewDocument(header)
	for _, p := range pp {
		doc.AddPage(p)
	}
	return doc
}
