package input

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported values for Options.Encoding.
const (
	EncodingAuto     = "auto"
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
	EncodingEUCJP    = "euc-jp"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NormalizeEncoding maps accepted spellings to one of the Encoding constants.
func NormalizeEncoding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return EncodingShiftJIS, nil
	case "euc-jp", "eucjp":
		return EncodingEUCJP, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", name)
	}
}

// decode converts raw bytes to UTF-8 text. In auto mode a BOM or valid UTF-8
// selects UTF-8; anything else is treated as Shift_JIS, which is what
// spreadsheet software in Japanese locales writes by default.
func decode(data []byte, encoding string) ([]byte, error) {
	enc, err := NormalizeEncoding(encoding)
	if err != nil {
		return nil, err
	}

	if enc == EncodingAuto {
		if bytes.HasPrefix(data, utf8BOM) || utf8.Valid(data) {
			enc = EncodingUTF8
		} else {
			enc = EncodingShiftJIS
		}
	}

	var t transform.Transformer
	switch enc {
	case EncodingShiftJIS:
		t = japanese.ShiftJIS.NewDecoder()
	case EncodingEUCJP:
		t = japanese.EUCJP.NewDecoder()
	default:
		t = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}

	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", enc, err)
	}
	return out, nil
}
