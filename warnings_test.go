package cardsheet

import (
	"strings"
	"testing"
)

func TestWarningString(t *testing.T) {
	tests := []struct {
		name string
		w    Warning
		want string
	}{
		{
			name: "row warning",
			w:    Warning{Kind: WarnInvalidCode, Row: 3, Message: `column B: "12": code must be 6 or 8 digits long`},
			want: `invalid code: row 3: column B: "12": code must be 6 or 8 digits long`,
		},
		{
			name: "document warning",
			w:    Warning{Kind: WarnVerifyUnavailable, Row: -1, Message: "no tesseract"},
			want: "verification unavailable: no tesseract",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}

	got := FormatWarnings([]Warning{
		{Kind: WarnInvalidCode, Row: 0, Message: "a"},
		{Kind: WarnMissingGlyphs, Row: -1, Message: "b"},
	})
	if !strings.HasPrefix(got, "2 warning(s):\n") {
		t.Errorf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "  - missing glyphs: b") {
		t.Errorf("missing line: %q", got)
	}
}
