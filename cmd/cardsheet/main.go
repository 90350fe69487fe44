// Command cardsheet turns a table of codes into a PDF sheet of Code-128
// barcodes.
//
// Usage:
//
//	cardsheet [input] [flags]
//	cardsheet init-config [dir]
//
// Without flags it reads codes.csv, writes images to output_images and the
// document to output.pdf. A cardsheet.yaml in the working directory is
// applied when present.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/cardsheet"
	"github.com/tsawler/cardsheet/barcode"
	"github.com/tsawler/cardsheet/internal/logging"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

type options struct {
	configPath  string
	imageDir    string
	output      string
	rowsPerPage int
	slotNaming  string
	fontPath    string
	verbose     bool
	logFormat   string
	verify      bool
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitOK)
}

// usageError marks command line mistakes.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var cfgErr *cardsheet.ConfigError
	var usage usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &cfgErr), errors.As(err, &usage):
		return exitConfig
	default:
		return exitFailed
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	var logger *zap.Logger

	root := &cobra.Command{
		Use:   "cardsheet [input]",
		Short: "Generate a PDF sheet of Code-128 barcodes from a table of codes",
		Long: `cardsheet reads a CSV, TSV, XLSX or HTML table whose first two columns
hold codes and whose name column (default "C列") holds a display name.
Every 6 or 8 digit code is rendered as a Code-128 PNG; rows are laid out
ten per page in a PDF with the run timestamp on every page.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}

			level := cfg.Logging.Level
			if opts.verbose {
				level = "debug"
			}
			logger = logging.NewWriter(stderr, level, cfg.Logging.Format)

			g := cardsheet.FromConfig(cfg).Logger(logger)
			if opts.verify {
				g = g.VerifyCaptions()
			}

			res, warnings, err := g.Generate()
			if len(warnings) > 0 {
				fmt.Fprintln(stderr, cardsheet.FormatWarnings(warnings))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "PDF generated: %s (%d records, %d pages)\n", res.Output, res.Records, res.Pages)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := root.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file (default ./"+cardsheet.DefaultConfigFile+" when present)")
	f.StringVar(&opts.imageDir, "images", "", "directory for barcode images")
	f.StringVarP(&opts.output, "output", "o", "", "PDF output path")
	f.IntVar(&opts.rowsPerPage, "rows-per-page", 0, "table rows per page")
	f.StringVar(&opts.slotNaming, "slot-naming", "", "image naming: primary or own-code")
	f.StringVar(&opts.fontPath, "font", "", "TrueType font for the table")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&opts.logFormat, "log-format", "", "log format: console or json")
	f.BoolVar(&opts.verify, "verify", false, "read captions back with OCR (needs an ocr build)")

	root.AddCommand(newInitConfigCmd(stdout))
	return root
}

// loadConfig resolves the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options, args []string) (*cardsheet.Config, error) {
	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(cardsheet.DefaultConfigFile); err == nil {
			path = cardsheet.DefaultConfigFile
		}
	}

	cfg := cardsheet.DefaultConfig()
	if path != "" {
		loaded, err := cardsheet.LoadConfig(path)
		if err != nil {
			return nil, &cardsheet.ConfigError{Err: err}
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Input = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("images") {
		cfg.ImageDir = opts.imageDir
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("rows-per-page") {
		cfg.RowsPerPage = opts.rowsPerPage
	}
	if flags.Changed("slot-naming") {
		if _, err := barcode.ParseNaming(opts.slotNaming); err != nil {
			return nil, usageError{err}
		}
		cfg.SlotNaming = opts.slotNaming
	}
	if flags.Changed("font") {
		cfg.Font = opts.fontPath
	}
	if flags.Changed("log-format") {
		if !logging.ValidFormat(opts.logFormat) {
			return nil, usageError{fmt.Errorf("unknown log format %q", opts.logFormat)}
		}
		cfg.Logging.Format = opts.logFormat
	}
	return cfg, nil
}

func newInitConfigCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [dir]",
		Short: "Write " + cardsheet.DefaultConfigFile + " with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, cardsheet.DefaultConfigFile)
			if err := cardsheet.WriteDefaultConfig(path); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "wrote %s\n", path)
			return nil
		},
	}
}
