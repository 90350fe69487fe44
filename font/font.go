package font

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Names of the embedded fonts.
const (
	DefaultName = "Go"
	MonoName    = "Go Mono"
)

// Font is a parsed TrueType or OpenType font.
type Font struct {
	name string
	data []byte
	sf   *sfnt.Font
}

var (
	defaultFont = embedded(DefaultName, goregular.TTF)
	monoFont    = embedded(MonoName, gomono.TTF)
)

// embedded parses a font compiled into the binary on first use.
func embedded(name string, data []byte) func() *Font {
	return sync.OnceValue(func() *Font {
		f, err := Parse(name, data)
		if err != nil {
			panic(fmt.Sprintf("parsing embedded font %s: %v", name, err))
		}
		return f
	})
}

// Default returns the embedded Go Regular font.
func Default() *Font {
	return defaultFont()
}

// Mono returns the embedded Go Mono font used for barcode captions.
func Mono() *Font {
	return monoFont()
}

// Load reads and parses the font file at path. The file's base name without
// extension is used as the font name.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, data)
}

// Parse parses font data. Collections (.ttc) are not supported.
func Parse(name string, data []byte) (*Font, error) {
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}
	return &Font{name: name, data: data, sf: sf}, nil
}

// Name returns the name the font was loaded under.
func (f *Font) Name() string {
	return f.name
}

// Bytes returns the raw font program.
func (f *Font) Bytes() []byte {
	return f.data
}

// Face returns a face for drawing at size points and the given resolution.
func (f *Font) Face(size, dpi float64) (xfont.Face, error) {
	face, err := opentype.NewFace(f.sf, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return face, nil
}

// Covers reports whether the font has a glyph for r.
func (f *Font) Covers(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.sf.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Missing returns the distinct runes of text that the font cannot draw, in
// order of first appearance. Whitespace and control characters are ignored.
func (f *Font) Missing(text string) []rune {
	var (
		missing []rune
		seen    map[rune]bool
	)
	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsControl(r) || f.Covers(r) {
			continue
		}
		if seen == nil {
			seen = make(map[rune]bool)
		}
		if !seen[r] {
			seen[r] = true
			missing = append(missing, r)
		}
	}
	return missing
}
