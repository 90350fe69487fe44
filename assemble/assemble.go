// Package assemble turns input rows and their rendered barcode images into
// display records.
package assemble

import (
	"fmt"
	"os"

	"github.com/tsawler/cardsheet/barcode"
	"github.com/tsawler/cardsheet/model"
)

// Default image box, points.
const (
	DefaultImageWidth  = 120
	DefaultImageHeight = 60
)

// MissingAssetError is returned when a row's barcode images are not on disk.
// Paths always holds both expected paths, slot 1 first.
type MissingAssetError struct {
	Row   int
	Name  string
	Paths [2]string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("missing barcode image for row %d (%s): expected %s and %s",
		e.Row, e.Name, e.Paths[0], e.Paths[1])
}

// Assembler builds records. The zero value is not usable; set Dir at least.
type Assembler struct {
	Dir         string
	Naming      barcode.Naming
	ImageWidth  float64 // points; 0 selects DefaultImageWidth
	ImageHeight float64 // points; 0 selects DefaultImageHeight
	TextStyle   model.TextStyle
}

// Assemble returns one record per row, in order. The first row whose images
// are not both present aborts assembly and no records are returned.
func (a Assembler) Assemble(rows []model.Row) ([]model.Record, error) {
	w, h := a.ImageWidth, a.ImageHeight
	if w <= 0 {
		w = DefaultImageWidth
	}
	if h <= 0 {
		h = DefaultImageHeight
	}

	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		var paths [2]string
		missing := false
		for i, slot := range model.Slots {
			paths[i] = a.Naming.Path(a.Dir, row, slot)
			if !isFile(paths[i]) {
				missing = true
			}
		}
		if missing {
			return nil, &MissingAssetError{Row: row.Index, Name: row.Name, Paths: paths}
		}

		records = append(records, model.Record{
			Name:  row.Name,
			CodeA: row.CodeA,
			CodeB: row.CodeB,
			Images: [2]model.ImageRef{
				{Path: paths[0], Width: w, Height: h},
				{Path: paths[1], Width: w, Height: h},
			},
			Style: a.TextStyle,
		})
	}
	return records, nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
