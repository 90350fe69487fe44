// Package font loads the TrueType font shared by barcode captions and the
// PDF table.
//
// A [Font] is created from a file or from bytes; [Default] returns the
// embedded Go Regular face used when no font is configured:
//
//	f, err := font.Load("NotoSansCJKjp-Regular.ttf")
//	face, err := f.Face(10, 300) // 10pt at 300 DPI
//
// # Glyph Coverage
//
// [Font.Missing] lists the runes of a string the font has no glyph for, so
// callers can warn before a name is drawn as empty boxes:
//
//	if missing := f.Missing(name); len(missing) > 0 {
//	    log.Printf("font cannot render %q", string(missing))
//	}
package font
