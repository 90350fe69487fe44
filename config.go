package cardsheet

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/cardsheet/assemble"
	"github.com/tsawler/cardsheet/barcode"
	"github.com/tsawler/cardsheet/format"
	"github.com/tsawler/cardsheet/input"
	"github.com/tsawler/cardsheet/internal/atomicfile"
	"github.com/tsawler/cardsheet/internal/logging"
	"github.com/tsawler/cardsheet/model"
	"github.com/tsawler/cardsheet/pages"
	"github.com/tsawler/cardsheet/writer"
)

// DefaultConfigFile is the configuration file name looked up in the working
// directory.
const DefaultConfigFile = "cardsheet.yaml"

// ErrConfigExists is returned by WriteDefaultConfig when the file exists.
var ErrConfigExists = errors.New("config file already exists")

// Config holds every setting of a run.
type Config struct {
	Input       string `yaml:"input"`
	ImageDir    string `yaml:"image_dir"`
	Output      string `yaml:"output"`
	RowsPerPage int    `yaml:"rows_per_page"`
	SlotNaming  string `yaml:"slot_naming"` // primary or own-code
	Font        string `yaml:"font"`        // TrueType file; empty uses the embedded font

	Source    SourceConfig    `yaml:"source"`
	Barcode   BarcodeConfig   `yaml:"barcode"`
	Table     TableConfig     `yaml:"table"`
	Page      PageConfig      `yaml:"page"`
	Timestamp TimestampConfig `yaml:"timestamp"`
	Document  DocumentConfig  `yaml:"document"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SourceConfig configures how the input table is read.
type SourceConfig struct {
	Format     string `yaml:"format"`    // auto, csv, tsv, xlsx, html
	Delimiter  string `yaml:"delimiter"` // single character; empty uses the format default
	Encoding   string `yaml:"encoding"`  // auto, utf-8, shift_jis, euc-jp
	NameColumn string `yaml:"name_column"`
	Sheet      string `yaml:"sheet"`
}

// BarcodeConfig configures image geometry. Lengths are millimetres.
type BarcodeConfig struct {
	ModuleWidth  float64 `yaml:"module_width"`
	ModuleHeight float64 `yaml:"module_height"`
	QuietZone    float64 `yaml:"quiet_zone"`
	FontSize     float64 `yaml:"font_size"` // points
	TextDistance float64 `yaml:"text_distance"`
	Margin       float64 `yaml:"margin"`
	DPI          float64 `yaml:"dpi"`
	Background   string  `yaml:"background"`
	Foreground   string  `yaml:"foreground"`
	WriteText    bool    `yaml:"write_text"`
}

// TableConfig configures the table on each page. Lengths are points.
type TableConfig struct {
	Header         []string  `yaml:"header"`
	ColumnWidths   []float64 `yaml:"column_widths"`
	FontSize       float64   `yaml:"font_size"`
	Leading        float64   `yaml:"leading"`
	HeaderFontSize float64   `yaml:"header_font_size"`
	HeaderFill     string    `yaml:"header_fill"`
	ImageWidth     float64   `yaml:"image_width"`
	ImageHeight    float64   `yaml:"image_height"`
	Padding        float64   `yaml:"padding"`
	GridWidth      float64   `yaml:"grid_width"`
	Center         bool      `yaml:"center"`
}

// PageConfig configures the physical page. Lengths are points.
type PageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// TimestampConfig configures the run timestamp drawn on every page.
type TimestampConfig struct {
	Format   string  `yaml:"format"` // Go time layout
	Label    string  `yaml:"label"`
	FontSize float64 `yaml:"font_size"`
	OffsetX  float64 `yaml:"offset_x"` // from the right edge
	OffsetY  float64 `yaml:"offset_y"` // baseline from the top edge
}

// DocumentConfig sets PDF metadata.
type DocumentConfig struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Creator  string `yaml:"creator"`
	Compress bool   `yaml:"compress"`
}

// LoggingConfig configures the command line logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the settings of a run without configuration.
func DefaultConfig() *Config {
	bc := barcode.DefaultOptions()
	style := writer.DefaultStyle()

	return &Config{
		Input:       "codes.csv",
		ImageDir:    "output_images",
		Output:      "output.pdf",
		RowsPerPage: pages.DefaultSize,
		SlotNaming:  barcode.NamePrimary.String(),
		Source: SourceConfig{
			Format:     "auto",
			Encoding:   input.EncodingAuto,
			NameColumn: input.DefaultNameColumn,
		},
		Barcode: BarcodeConfig{
			ModuleWidth:  bc.ModuleWidth,
			ModuleHeight: bc.ModuleHeight,
			QuietZone:    bc.QuietZone,
			FontSize:     bc.FontSize,
			TextDistance: bc.TextDistance,
			Margin:       bc.Margin,
			DPI:          bc.DPI,
			Background:   bc.Background.Hex(),
			Foreground:   bc.Foreground.Hex(),
			WriteText:    bc.WriteText,
		},
		Table: TableConfig{
			Header:         append([]string(nil), model.DefaultHeader...),
			ColumnWidths:   append([]float64(nil), style.ColumnWidths...),
			FontSize:       18,
			Leading:        12,
			HeaderFontSize: style.HeaderFontSize,
			HeaderFill:     "lightgrey",
			ImageWidth:     assemble.DefaultImageWidth,
			ImageHeight:    assemble.DefaultImageHeight,
			Padding:        style.Padding,
			GridWidth:      style.GridWidth,
			Center:         style.CenterTables,
		},
		Page: PageConfig{
			Width:  style.PageWidth,
			Height: style.PageHeight,
			Margin: style.MarginTop,
		},
		Timestamp: TimestampConfig{
			Format:   style.TimestampFormat,
			Label:    style.TimestampLabel,
			FontSize: style.TimestampFontSize,
			OffsetX:  style.TimestampOffsetX,
			OffsetY:  style.TimestampOffsetY,
		},
		Document: DocumentConfig{
			Title:    "Barcode card sheet",
			Creator:  "cardsheet",
			Compress: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// WriteDefaultConfig writes the defaults to path unless the file exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	return DefaultConfig().Save(path)
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(c.Input) == "" {
		add("input is empty")
	}
	if strings.TrimSpace(c.ImageDir) == "" {
		add("image_dir is empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		add("output is empty")
	}
	if c.RowsPerPage <= 0 {
		add("rows_per_page must be positive, got %d", c.RowsPerPage)
	}
	if _, err := barcode.ParseNaming(c.SlotNaming); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.inputOptions(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.barcodeOptions(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Table.Header) != model.ColumnCount {
		add("table.header needs %d captions, got %d", model.ColumnCount, len(c.Table.Header))
	}
	if c.Table.FontSize <= 0 {
		add("table.font_size must be positive")
	}
	if c.Table.ImageWidth <= 0 || c.Table.ImageHeight <= 0 {
		add("table image box must be positive")
	}
	if style, err := c.style(); err != nil {
		errs = append(errs, err)
	} else if err := style.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		add("unknown logging.level %q", c.Logging.Level)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		add("unknown logging.format %q", c.Logging.Format)
	}

	return errors.Join(errs...)
}

func (c *Config) naming() barcode.Naming {
	n, _ := barcode.ParseNaming(c.SlotNaming)
	return n
}

func (c *Config) inputOptions() (input.Options, error) {
	opts := input.DefaultOptions()

	ft, err := format.Parse(c.Source.Format)
	if err != nil {
		return opts, fmt.Errorf("source.format: %w", err)
	}
	opts.Format = ft

	if d := c.Source.Delimiter; d != "" {
		if d == `\t` {
			d = "\t"
		}
		r, size := utf8.DecodeRuneInString(d)
		if size != len(d) || r == utf8.RuneError {
			return opts, fmt.Errorf("source.delimiter must be one character, got %q", c.Source.Delimiter)
		}
		opts.Delimiter = r
	}

	enc, err := input.NormalizeEncoding(c.Source.Encoding)
	if err != nil {
		return opts, fmt.Errorf("source.encoding: %w", err)
	}
	opts.Encoding = enc

	if c.Source.NameColumn != "" {
		opts.NameColumn = c.Source.NameColumn
	}
	opts.Sheet = c.Source.Sheet
	return opts, nil
}

// barcodeOptions converts the barcode section. The caption font is left
// for the caller to set.
func (c *Config) barcodeOptions() (barcode.Options, error) {
	b := c.Barcode
	bg, err := model.ParseColor(b.Background)
	if err != nil {
		return barcode.Options{}, fmt.Errorf("barcode.background: %w", err)
	}
	fg, err := model.ParseColor(b.Foreground)
	if err != nil {
		return barcode.Options{}, fmt.Errorf("barcode.foreground: %w", err)
	}

	opts := barcode.Options{
		ModuleWidth:  b.ModuleWidth,
		ModuleHeight: b.ModuleHeight,
		QuietZone:    b.QuietZone,
		FontSize:     b.FontSize,
		TextDistance: b.TextDistance,
		Margin:       b.Margin,
		DPI:          b.DPI,
		Background:   bg,
		Foreground:   fg,
		WriteText:    b.WriteText,
	}
	return opts, opts.Validate()
}

func (c *Config) textStyle() model.TextStyle {
	return model.TextStyle{
		FontSize: c.Table.FontSize,
		Leading:  c.Table.Leading,
		Align:    model.AlignCenter,
		Color:    model.Black,
	}
}

func (c *Config) style() (writer.Style, error) {
	fill, err := model.ParseColor(c.Table.HeaderFill)
	if err != nil {
		return writer.Style{}, fmt.Errorf("table.header_fill: %w", err)
	}

	s := writer.DefaultStyle()
	s.PageWidth = c.Page.Width
	s.PageHeight = c.Page.Height
	s.MarginLeft = c.Page.Margin
	s.MarginTop = c.Page.Margin
	s.MarginRight = c.Page.Margin
	s.MarginBottom = c.Page.Margin
	s.ColumnWidths = append([]float64(nil), c.Table.ColumnWidths...)
	s.HeaderFontSize = c.Table.HeaderFontSize
	s.HeaderFill = fill
	s.GridWidth = c.Table.GridWidth
	s.Padding = c.Table.Padding
	s.BlankRowHeight = c.Table.ImageHeight
	s.CenterTables = c.Table.Center
	s.Compress = c.Document.Compress
	s.TimestampFormat = c.Timestamp.Format
	s.TimestampLabel = c.Timestamp.Label
	s.TimestampFontSize = c.Timestamp.FontSize
	s.TimestampOffsetX = c.Timestamp.OffsetX
	s.TimestampOffsetY = c.Timestamp.OffsetY
	return s, nil
}
