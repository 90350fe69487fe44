package barcode

import (
	"errors"
	"math"

	"github.com/tsawler/cardsheet/font"
	"github.com/tsawler/cardsheet/model"
)

const mmPerInch = 25.4

// Options controls barcode geometry. Lengths are millimetres, FontSize is
// points.
type Options struct {
	ModuleWidth  float64
	ModuleHeight float64
	QuietZone    float64 // each side
	FontSize     float64
	TextDistance float64 // bar bottom to caption bottom
	Margin       float64 // above the bars and below the caption
	DPI          float64
	Background   model.Color
	Foreground   model.Color
	WriteText    bool
	Font         *font.Font // nil selects font.Mono
}

// DefaultOptions returns the geometry used for every card sheet image.
func DefaultOptions() Options {
	return Options{
		ModuleWidth:  0.3,
		ModuleHeight: 15,
		QuietZone:    6.5,
		FontSize:     10,
		TextDistance: 5,
		Margin:       1,
		DPI:          300,
		Background:   model.White,
		Foreground:   model.Black,
		WriteText:    true,
	}
}

// Validate reports options that cannot produce an image.
func (o Options) Validate() error {
	switch {
	case o.DPI <= 0:
		return errors.New("barcode: DPI must be positive")
	case o.ModuleWidth <= 0:
		return errors.New("barcode: module width must be positive")
	case o.ModuleHeight <= 0:
		return errors.New("barcode: module height must be positive")
	case o.QuietZone < 0 || o.TextDistance < 0 || o.Margin < 0:
		return errors.New("barcode: quiet zone, text distance and margin must not be negative")
	case o.WriteText && o.FontSize <= 0:
		return errors.New("barcode: font size must be positive")
	}
	return nil
}

// px converts millimetres to whole pixels.
func (o Options) px(mm float64) int {
	return int(math.Round(mm * o.DPI / mmPerInch))
}

type geometry struct {
	module       int
	barHeight    int
	quiet        int
	textDistance int
	margin       int
}

func (o Options) geometry() geometry {
	g := geometry{
		module:       o.px(o.ModuleWidth),
		barHeight:    o.px(o.ModuleHeight),
		quiet:        o.px(o.QuietZone),
		textDistance: o.px(o.TextDistance),
		margin:       o.px(o.Margin),
	}
	if g.module < 1 {
		g.module = 1
	}
	if g.barHeight < 1 {
		g.barHeight = 1
	}
	return g
}
