package writer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/cardsheet/font"
	"github.com/tsawler/cardsheet/internal/atomicfile"
	"github.com/tsawler/cardsheet/model"
)

// fontFamily is the name the configured font is registered under.
const fontFamily = "sheet"

// Builder renders documents with one style and font.
type Builder struct {
	style Style
	font  *font.Font
}

// NewBuilder returns a builder. A nil font selects font.Default.
func NewBuilder(style Style, f *font.Font) *Builder {
	if f == nil {
		f = font.Default()
	}
	return &Builder{style: style, font: f}
}

// Style returns the builder's style.
func (b *Builder) Style() Style {
	return b.style
}

// TimestampLabel returns the label drawn before the timestamp. When the font
// lacks glyphs for the configured label, FallbackTimestampLabel is used.
func (b *Builder) TimestampLabel() string {
	if len(b.font.Missing(b.style.TimestampLabel)) > 0 {
		return FallbackTimestampLabel
	}
	return b.style.TimestampLabel
}

// Stamp returns the full text drawn on every page for timestamp t.
func (b *Builder) Stamp(t time.Time) string {
	return b.TimestampLabel() + t.Format(b.style.TimestampFormat)
}

// Build writes doc to path. Any failure is returned as a *RenderError and
// leaves path untouched.
func (b *Builder) Build(doc *model.Document, path string) error {
	if doc == nil || len(doc.Pages) == 0 {
		return ErrEmptyDocument
	}
	if err := b.style.Validate(); err != nil {
		return &RenderError{Path: path, Err: err}
	}

	err := atomicfile.Write(path, 0o644, func(w io.Writer) error {
		return b.Write(doc, w)
	})
	if err != nil {
		return &RenderError{Path: path, Err: err}
	}
	return nil
}

// Write renders doc to w.
func (b *Builder) Write(doc *model.Document, w io.Writer) error {
	if doc == nil || len(doc.Pages) == 0 {
		return ErrEmptyDocument
	}

	pdf := b.newPDF(doc.Metadata)
	l := &layout{pdf: pdf, style: b.style, x0: b.style.tableX()}

	pdf.AddPage()
	l.y = b.style.MarginTop
	for i, t := range doc.Tables() {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		l.table(t)
		if err := pdf.Error(); err != nil {
			return err
		}
	}
	return pdf.Output(w)
}

func (b *Builder) newPDF(meta model.Metadata) *fpdf.Fpdf {
	s := b.style
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: s.PageWidth, Ht: s.PageHeight},
	})
	pdf.SetMargins(s.MarginLeft, s.MarginTop, s.MarginRight)
	pdf.SetAutoPageBreak(false, s.MarginBottom)
	pdf.SetCellMargin(0)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(s.Compress)
	pdf.AddUTF8FontFromBytes(fontFamily, "", b.font.Bytes())

	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetCreator(meta.Creator, true)
	pdf.SetKeywords(strings.Join(meta.Keywords, " "), true)

	generated := meta.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	pdf.SetCreationDate(generated)
	pdf.SetModificationDate(generated)

	stamp := bmp(b.Stamp(generated))
	pdf.SetHeaderFuncMode(func() {
		pdf.SetFont(fontFamily, "", s.TimestampFontSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(s.PageWidth-s.TimestampOffsetX, s.TimestampOffsetY, stamp)
	}, false)

	pdf.SetFont(fontFamily, "", s.HeaderFontSize)
	return pdf
}

// bmp replaces runes outside the Basic Multilingual Plane, which the PDF
// font tables cannot address.
func bmp(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return '�'
		}
		return r
	}, s)
}
