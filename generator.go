package cardsheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/cardsheet/assemble"
	"github.com/tsawler/cardsheet/barcode"
	"github.com/tsawler/cardsheet/font"
	"github.com/tsawler/cardsheet/input"
	"github.com/tsawler/cardsheet/model"
	"github.com/tsawler/cardsheet/ocr"
	"github.com/tsawler/cardsheet/pages"
	"github.com/tsawler/cardsheet/writer"
)

// Generator provides a fluent interface for configuring a run.
// Each configuration method returns a new Generator instance, so a base
// Generator can be shared and specialised.
type Generator struct {
	cfg    *Config
	logger *zap.Logger
	clock  func() time.Time
	verify bool
}

// Result describes a completed run.
type Result struct {
	Output      string
	Images      []string // written image paths, in render order
	Records     int
	Pages       int
	GeneratedAt time.Time
	RunID       string
}

// clone copies the Generator with a deep copy of its configuration.
func (g *Generator) clone() *Generator {
	cfg := *g.cfg
	cfg.Table.Header = append([]string(nil), g.cfg.Table.Header...)
	cfg.Table.ColumnWidths = append([]float64(nil), g.cfg.Table.ColumnWidths...)
	return &Generator{
		cfg:    &cfg,
		logger: g.logger,
		clock:  g.clock,
		verify: g.verify,
	}
}

// ============================================================================
// Configuration Methods (return new Generator instance)
// ============================================================================

// Config replaces the whole configuration. The input given to Open is
// replaced too.
func (g *Generator) Config(cfg *Config) *Generator {
	n := g.clone()
	if cfg != nil {
		c := *cfg
		n.cfg = &c
		n = n.clone()
	}
	return n
}

// ImageDir sets the directory barcode images are written to.
func (g *Generator) ImageDir(dir string) *Generator {
	n := g.clone()
	n.cfg.ImageDir = dir
	return n
}

// Output sets the PDF path.
func (g *Generator) Output(path string) *Generator {
	n := g.clone()
	n.cfg.Output = path
	return n
}

// RowsPerPage sets the number of table rows per page.
func (g *Generator) RowsPerPage(rows int) *Generator {
	n := g.clone()
	n.cfg.RowsPerPage = rows
	return n
}

// SlotNaming sets how image files are named.
func (g *Generator) SlotNaming(naming barcode.Naming) *Generator {
	n := g.clone()
	n.cfg.SlotNaming = naming.String()
	return n
}

// Font sets the TrueType file used for the table and timestamp.
func (g *Generator) Font(path string) *Generator {
	n := g.clone()
	n.cfg.Font = path
	return n
}

// Logger sets the logger. A nil logger discards output.
func (g *Generator) Logger(logger *zap.Logger) *Generator {
	n := g.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	n.logger = logger
	return n
}

// Clock sets the source of the run timestamp.
func (g *Generator) Clock(now func() time.Time) *Generator {
	n := g.clone()
	if now == nil {
		now = time.Now
	}
	n.clock = now
	return n
}

// VerifyCaptions reads every written image back with OCR and warns when the
// caption differs from the code. It needs a build with the "ocr" tag;
// otherwise a single warning says verification was unavailable.
func (g *Generator) VerifyCaptions() *Generator {
	n := g.clone()
	n.verify = true
	return n
}

// Settings returns a copy of the effective configuration.
func (g *Generator) Settings() *Config {
	return g.clone().cfg
}

// ============================================================================
// Run
// ============================================================================

// Generate runs the whole pipeline: load, render, assemble, paginate and
// build. Invalid codes are skipped and returned as warnings. Any fatal
// error leaves no document behind.
func (g *Generator) Generate() (*Result, []Warning, error) {
	cfg := g.cfg
	if err := cfg.Validate(); err != nil {
		return nil, nil, &ConfigError{Err: err}
	}

	runID := uuid.NewString()
	generatedAt := g.clock()
	log := g.logger.With(zap.String("run_id", runID))
	log.Debug("starting run", zap.String("input", cfg.Input), zap.Time("generated_at", generatedAt))

	fnt, err := loadFont(cfg.Font)
	if err != nil {
		return nil, nil, &ConfigError{Err: err}
	}

	inOpts, _ := cfg.inputOptions()
	rows, err := input.Load(cfg.Input, inOpts)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, ErrNoRecords
	}
	log.Debug("loaded rows", zap.Int("rows", len(rows)))

	var warnings []Warning

	bcOpts, _ := cfg.barcodeOptions()
	renderer, err := barcode.NewRenderer(cfg.ImageDir, bcOpts)
	if err != nil {
		return nil, nil, &ConfigError{Err: err}
	}
	defer renderer.Close()

	naming := cfg.naming()
	images, skipped, err := renderer.RenderRows(rows, naming, log)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering barcodes: %w", err)
	}
	for _, s := range skipped {
		warnings = append(warnings, Warning{
			Kind:    WarnInvalidCode,
			Row:     s.Row,
			Message: fmt.Sprintf("column %s: %q: %s", s.Slot.Column(), s.Code, s.Reason),
		})
	}

	style, _ := cfg.style()
	builder := writer.NewBuilder(style, fnt)
	warnings = append(warnings, coverageWarnings(fnt, rows, cfg, builder)...)

	if g.verify {
		warnings = append(warnings, verifyImages(images, log)...)
	}

	asm := assemble.Assembler{
		Dir:         cfg.ImageDir,
		Naming:      naming,
		ImageWidth:  cfg.Table.ImageWidth,
		ImageHeight: cfg.Table.ImageHeight,
		TextStyle:   cfg.textStyle(),
	}
	records, err := asm.Assemble(rows)
	if err != nil {
		return nil, warnings, err
	}

	pp, err := pages.Paginate(records, cfg.RowsPerPage)
	if err != nil {
		return nil, warnings, &ConfigError{Err: err}
	}

	doc := pages.Document(cfg.Table.Header, pp)
	doc.Metadata = model.Metadata{
		Title:       cfg.Document.Title,
		Author:      cfg.Document.Author,
		Subject:     cfg.Document.Subject,
		Creator:     cfg.Document.Creator,
		Keywords:    []string{runID},
		GeneratedAt: generatedAt,
		Custom:      map[string]string{"run_id": runID},
	}

	if log.Core().Enabled(zap.DebugLevel) {
		for i, t := range doc.Tables() {
			log.Debug("page layout", zap.Int("page", i+1), zap.String("table", t.GetText()))
		}
	}

	if err := builder.Build(doc, cfg.Output); err != nil {
		return nil, warnings, err
	}
	log.Info("document generated",
		zap.String("output", cfg.Output),
		zap.Int("records", len(records)),
		zap.Int("pages", len(pp)))

	res := &Result{
		Output:      cfg.Output,
		Images:      make([]string, 0, len(images)),
		Records:     len(records),
		Pages:       len(pp),
		GeneratedAt: generatedAt,
		RunID:       runID,
	}
	for _, img := range images {
		res.Images = append(res.Images, img.Path)
	}
	return res, warnings, nil
}

func loadFont(path string) (*font.Font, error) {
	if path == "" {
		return font.Default(), nil
	}
	return font.Load(path)
}

// coverageWarnings reports text the document font cannot draw.
func coverageWarnings(fnt *font.Font, rows []model.Row, cfg *Config, b *writer.Builder) []Warning {
	var out []Warning
	for _, r := range rows {
		if missing := fnt.Missing(r.Name); len(missing) > 0 {
			out = append(out, Warning{
				Kind:    WarnMissingGlyphs,
				Row:     r.Index,
				Message: fmt.Sprintf("font %s cannot draw %q in name %q", fnt.Name(), string(missing), r.Name),
			})
		}
	}
	for _, h := range cfg.Table.Header {
		if missing := fnt.Missing(h); len(missing) > 0 {
			out = append(out, Warning{
				Kind:    WarnMissingGlyphs,
				Row:     -1,
				Message: fmt.Sprintf("font %s cannot draw %q in header %q", fnt.Name(), string(missing), h),
			})
		}
	}
	if label := b.TimestampLabel(); label != cfg.Timestamp.Label {
		out = append(out, Warning{
			Kind:    WarnMissingGlyphs,
			Row:     -1,
			Message: fmt.Sprintf("font %s cannot draw timestamp label %q; using %q", fnt.Name(), cfg.Timestamp.Label, label),
		})
	}
	return out
}

// verifyImages reads each image's caption back and reports mismatches.
func verifyImages(images []barcode.Image, log *zap.Logger) []Warning {
	client, err := ocr.New()
	if err != nil {
		return []Warning{{Kind: WarnVerifyUnavailable, Row: -1, Message: err.Error()}}
	}
	defer client.Close()
	return verifyWith(client, images, log)
}

func verifyWith(rec ocr.Recognizer, images []barcode.Image, log *zap.Logger) []Warning {
	var out []Warning
	for _, img := range images {
		res, err := ocr.Verify(rec, img.Path, img.Code)
		switch {
		case err != nil:
			out = append(out, Warning{
				Kind:    WarnVerifyUnavailable,
				Row:     img.Row,
				Message: fmt.Sprintf("%s: %v", img.Path, err),
			})
			if errors.Is(err, ocr.ErrOCRNotEnabled) {
				return out
			}
		case !res.Match():
			log.Warn("caption mismatch", zap.String("path", img.Path), zap.String("want", img.Code), zap.String("read", res.Read))
			out = append(out, Warning{
				Kind:    WarnCaptionMismatch,
				Row:     img.Row,
				Message: fmt.Sprintf("%s: read %q, want %q", img.Path, res.Read, img.Code),
			})
		}
	}
	return out
}
