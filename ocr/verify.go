package ocr

import (
	"errors"
	"strings"
)

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Recognizer extracts text from an image file.
type Recognizer interface {
	RecognizeFile(path string) (string, error)
}

// Result is the outcome of verifying one image.
type Result struct {
	Path string
	Code string // expected
	Read string // digits recognised in the image
}

// Match reports whether the recognised digits equal the expected code.
func (r Result) Match() bool {
	return r.Read == r.Code
}

// Verify reads the caption of the image at path and compares its digits
// with code.
func Verify(rec Recognizer, path, code string) (Result, error) {
	text, err := rec.RecognizeFile(path)
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, Code: code, Read: Digits(text)}, nil
}

// Digits returns the ASCII digits of s in order.
func Digits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
