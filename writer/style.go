package writer

import (
	"errors"
	"fmt"

	"github.com/tsawler/cardsheet/model"
)

// A4 page size in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// FallbackTimestampLabel replaces a timestamp label the font cannot draw.
const FallbackTimestampLabel = "Date: "

// Style holds every layout constant of the document. Lengths are points.
type Style struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64

	ColumnWidths []float64

	HeaderFontSize float64
	HeaderLeading  float64
	HeaderFill     model.Color

	GridWidth float64
	GridColor model.Color
	Padding   float64

	// BlankRowHeight is the content height of padding rows, so blank rows
	// line up with record rows.
	BlankRowHeight float64

	TimestampFormat   string // time.Format layout
	TimestampLabel    string
	TimestampFontSize float64
	TimestampOffsetX  float64 // text start, measured from the right page edge
	TimestampOffsetY  float64 // baseline, measured from the top page edge

	CenterTables bool
	Compress     bool // deflate page content streams
}

// DefaultStyle returns the card sheet layout: A4, 36pt margins, five columns.
func DefaultStyle() Style {
	return Style{
		PageWidth:         A4Width,
		PageHeight:        A4Height,
		MarginLeft:        36,
		MarginTop:         36,
		MarginRight:       36,
		MarginBottom:      36,
		ColumnWidths:      []float64{130, 80, 90, 130, 130},
		HeaderFontSize:    10,
		HeaderLeading:     12,
		HeaderFill:        model.LightGrey,
		GridWidth:         0.5,
		GridColor:         model.Black,
		Padding:           6,
		BlankRowHeight:    60,
		TimestampFormat:   "2006/01/02 15:04",
		TimestampLabel:    "出力日: ",
		TimestampFontSize: 16,
		TimestampOffsetX:  200,
		TimestampOffsetY:  30,
		CenterTables:      true,
		Compress:          true,
	}
}

// Validate reports layouts that cannot be drawn.
func (s Style) Validate() error {
	if s.PageWidth <= 0 || s.PageHeight <= 0 {
		return errors.New("writer: page size must be positive")
	}
	if len(s.ColumnWidths) != model.ColumnCount {
		return fmt.Errorf("writer: need %d column widths, got %d", model.ColumnCount, len(s.ColumnWidths))
	}
	for i, w := range s.ColumnWidths {
		if w <= 0 {
			return fmt.Errorf("writer: column %d width must be positive", i+1)
		}
	}
	if s.MarginTop+s.MarginBottom >= s.PageHeight {
		return errors.New("writer: vertical margins leave no room")
	}
	if s.HeaderFontSize <= 0 || s.TimestampFontSize <= 0 {
		return errors.New("writer: font sizes must be positive")
	}
	if s.Padding < 0 || s.GridWidth < 0 {
		return errors.New("writer: padding and grid width must not be negative")
	}
	if s.TimestampFormat == "" {
		return errors.New("writer: timestamp format is empty")
	}
	return nil
}

// TableWidth returns the sum of the column widths.
func (s Style) TableWidth() float64 {
	var w float64
	for _, c := range s.ColumnWidths {
		w += c
	}
	return w
}

// tableX returns the left edge of every table.
func (s Style) tableX() float64 {
	if s.CenterTables {
		return (s.PageWidth - s.TableWidth()) / 2
	}
	return s.MarginLeft
}
