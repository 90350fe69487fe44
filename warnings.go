package cardsheet

import (
	"fmt"
	"strings"
)

// WarningKind classifies non-fatal problems.
type WarningKind int

const (
	// WarnInvalidCode means a code was skipped and has no image.
	WarnInvalidCode WarningKind = iota
	// WarnMissingGlyphs means the font cannot draw some characters.
	WarnMissingGlyphs
	// WarnCaptionMismatch means OCR read a different code from an image.
	WarnCaptionMismatch
	// WarnVerifyUnavailable means caption verification could not run.
	WarnVerifyUnavailable
)

func (k WarningKind) String() string {
	switch k {
	case WarnInvalidCode:
		return "invalid code"
	case WarnMissingGlyphs:
		return "missing glyphs"
	case WarnCaptionMismatch:
		return "caption mismatch"
	case WarnVerifyUnavailable:
		return "verification unavailable"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found during a run.
type Warning struct {
	Kind    WarningKind
	Row     int // 0-indexed data row, -1 when not tied to a row
	Message string
}

func (w Warning) String() string {
	if w.Row >= 0 {
		return fmt.Sprintf("%s: row %d: %s", w.Kind, w.Row, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = "  - " + w.String()
	}
	return fmt.Sprintf("%d warning(s):\n%s", len(warnings), strings.Join(lines, "\n"))
}
