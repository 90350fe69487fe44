package model

import (
	"fmt"
	"strconv"
	"strings"
)

// CellKind distinguishes text cells from picture cells.
type CellKind int

const (
	CellText CellKind = iota
	CellImage
)

// String returns the string representation of the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellImage:
		return "image"
	default:
		return "unknown"
	}
}

// TextAlignment represents horizontal text alignment
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// String returns the one-letter code used by PDF cell writers ("L", "C", "R").
func (a TextAlignment) String() string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}

// TextStyle is the reusable style applied to every text cell.
type TextStyle struct {
	FontSize float64 // points
	Leading  float64 // distance between baselines, points
	Align    TextAlignment
	Color    Color
}

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	LightGrey = Color{211, 211, 211}
)

// ParseColor parses "#rrggbb", "rrggbb" or one of the names "black", "white",
// "lightgrey".
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	case "lightgrey", "lightgray":
		return LightGrey, nil
	}

	v = strings.TrimPrefix(v, "#")
	if len(v) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Cell is a single table cell.
type Cell struct {
	Kind  CellKind
	Text  string
	Style TextStyle
	Image ImageRef
}

// IsBlank returns true if the cell is a text cell with only whitespace.
func (c Cell) IsBlank() bool {
	return c.Kind == CellText && strings.TrimSpace(c.Text) == ""
}
