package cardsheet

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/cardsheet/barcode"
	"github.com/tsawler/cardsheet/input"
	"github.com/tsawler/cardsheet/model"
)

var fixedTime = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

const aliceBob = "A列,B列,C列\n123456,87654321,Alice\n111111,222222,Bob\n"

type workspace struct {
	dir    string
	input  string
	images string
	output string
}

func newWorkspace(t *testing.T, csv string) workspace {
	t.Helper()
	dir := t.TempDir()
	ws := workspace{
		dir:    dir,
		input:  filepath.Join(dir, "codes.csv"),
		images: filepath.Join(dir, "output_images"),
		output: filepath.Join(dir, "output.pdf"),
	}
	require.NoError(t, os.WriteFile(ws.input, []byte(csv), 0o644))
	return ws
}

func (ws workspace) generator() *Generator {
	return Open(ws.input).
		ImageDir(ws.images).
		Output(ws.output).
		Clock(func() time.Time { return fixedTime })
}

func csvRows(n int) string {
	var b strings.Builder
	b.WriteString("A列,B列,C列\n")
	for i := 0; i < n; i++ {
		b.WriteString(strings.Repeat("1", 5))
		b.WriteByte(byte('0' + i%10))
		b.WriteString(",87654321,Person\n")
	}
	return b.String()
}

// ============================================================================
// End to end
// ============================================================================

func TestGenerate_AliceBob(t *testing.T) {
	ws := newWorkspace(t, aliceBob)

	res, warnings, err := ws.generator().Generate()
	require.NoError(t, err)

	assert.Equal(t, ws.output, res.Output)
	assert.Equal(t, 2, res.Records)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, fixedTime, res.GeneratedAt)
	assert.NotEmpty(t, res.RunID)

	want := []string{"123456_1.png", "123456_2.png", "111111_1.png", "111111_2.png"}
	require.Len(t, res.Images, len(want))
	for i, name := range want {
		assert.Equal(t, filepath.Join(ws.images, name), res.Images[i])
		assert.FileExists(t, res.Images[i])
	}

	data, err := os.ReadFile(ws.output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	// the embedded font has no glyphs for the default timestamp label
	for _, w := range warnings {
		assert.Equal(t, WarnMissingGlyphs, w.Kind, w.String())
	}
}

func TestGenerate_InvalidCodeAbortsAtAssembly(t *testing.T) {
	ws := newWorkspace(t, "A列,B列,C列\n123456,654321,Alice\n12345,111111,Bob\n")

	res, warnings, err := ws.generator().Generate()
	assert.Nil(t, res)

	var missing *MissingAssetError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 1, missing.Row)
	assert.Equal(t, filepath.Join(ws.images, "12345_1.png"), missing.Paths[0])

	var invalid []Warning
	for _, w := range warnings {
		if w.Kind == WarnInvalidCode {
			invalid = append(invalid, w)
		}
	}
	require.Len(t, invalid, 1)
	assert.Equal(t, 1, invalid[0].Row)
	assert.Contains(t, invalid[0].Message, "column A")

	assert.NoFileExists(t, ws.output)
	// the valid secondary code of the bad row was still rendered
	assert.FileExists(t, filepath.Join(ws.images, "12345_2.png"))
}

func TestGenerate_OwnCodeNaming(t *testing.T) {
	ws := newWorkspace(t, aliceBob)

	res, _, err := ws.generator().SlotNaming(barcode.NameOwnCode).Generate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ws.images, "87654321_2.png"), res.Images[1])
}

func TestGenerate_Paginates(t *testing.T) {
	ws := newWorkspace(t, csvRows(25))

	res, _, err := ws.generator().Generate()
	require.NoError(t, err)
	assert.Equal(t, 25, res.Records)
	assert.Equal(t, 3, res.Pages)

	res, _, err = ws.generator().RowsPerPage(5).Generate()
	require.NoError(t, err)
	assert.Equal(t, 5, res.Pages)
}

func TestGenerate_NoRecords(t *testing.T) {
	ws := newWorkspace(t, "A列,B列,C列\n")

	_, _, err := ws.generator().Generate()
	assert.ErrorIs(t, err, ErrNoRecords)
	assert.NoFileExists(t, ws.output)
}

func TestGenerate_MissingInput(t *testing.T) {
	ws := newWorkspace(t, aliceBob)

	_, _, err := ws.generator().Config(nil).Config(&Config{}).Generate()
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr, "an empty config is invalid")

	_, _, err = Open(filepath.Join(ws.dir, "nope.csv")).ImageDir(ws.images).Output(ws.output).Generate()
	var inErr *InputError
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, "open", inErr.Op)
}

func TestGenerate_MissingNameColumn(t *testing.T) {
	ws := newWorkspace(t, "A列,B列,name\n123456,654321,Alice\n")

	_, _, err := ws.generator().Generate()
	assert.ErrorIs(t, err, input.ErrMissingNameColumn)
	assert.NoDirExists(t, ws.images)
}

func TestGenerate_RenderError(t *testing.T) {
	ws := newWorkspace(t, aliceBob)

	_, _, err := ws.generator().Output(filepath.Join(ws.dir, "missing", "out.pdf")).Generate()
	var re *RenderError
	assert.ErrorAs(t, err, &re)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	ws := newWorkspace(t, aliceBob)

	_, _, err := ws.generator().RowsPerPage(0).Generate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "rows_per_page")

	_, _, err = ws.generator().Font(filepath.Join(ws.dir, "missing.ttf")).Generate()
	assert.ErrorAs(t, err, &cfgErr)
}

func TestGenerate_TimestampDiffers(t *testing.T) {
	ws := newWorkspace(t, aliceBob)

	_, _, err := ws.generator().Generate()
	require.NoError(t, err)
	first, err := os.ReadFile(ws.output)
	require.NoError(t, err)

	later := fixedTime.Add(time.Minute)
	_, _, err = ws.generator().Clock(func() time.Time { return later }).Generate()
	require.NoError(t, err)
	second, err := os.ReadFile(ws.output)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerate_Logging(t *testing.T) {
	ws := newWorkspace(t, "A列,B列,C列\n123456,87654321,Alice\n111111,2222,Bob\n")
	core, logs := observer.New(zapcore.InfoLevel)

	_, _, err := ws.generator().Logger(zap.New(core)).Generate()
	require.Error(t, err) // Bob's second image is missing

	assert.Equal(t, 3, logs.FilterMessage("saved barcode image").Len())
	warns := logs.FilterMessage("invalid code").All()
	require.Len(t, warns, 1)
	assert.Equal(t, "B", warns[0].ContextMap()["column"])
	assert.NotEmpty(t, warns[0].ContextMap()["run_id"])
}

func TestGenerate_LogsOutput(t *testing.T) {
	ws := newWorkspace(t, aliceBob)
	core, logs := observer.New(zapcore.InfoLevel)

	res, _, err := ws.generator().Logger(zap.New(core)).Generate()
	require.NoError(t, err)

	done := logs.FilterMessage("document generated").All()
	require.Len(t, done, 1)
	assert.Equal(t, ws.output, done[0].ContextMap()["output"])
	assert.Equal(t, res.RunID, done[0].ContextMap()["run_id"])
}

func TestGenerate_GlyphWarnings(t *testing.T) {
	ws := newWorkspace(t, "A列,B列,C列\n123456,654321,山田\n")

	_, warnings, err := ws.generator().Generate()
	require.NoError(t, err)

	var rowWarnings []Warning
	for _, w := range warnings {
		if w.Kind == WarnMissingGlyphs && w.Row == 0 {
			rowWarnings = append(rowWarnings, w)
		}
	}
	require.Len(t, rowWarnings, 1)
	assert.Contains(t, rowWarnings[0].Message, "山田")
}

// ============================================================================
// Fluent configuration
// ============================================================================

func TestGenerator_Immutable(t *testing.T) {
	base := Open("codes.csv")
	derived := base.RowsPerPage(5).Output("x.pdf").SlotNaming(barcode.NameOwnCode)

	assert.Equal(t, 10, base.Settings().RowsPerPage)
	assert.Equal(t, "output.pdf", base.Settings().Output)
	assert.Equal(t, "primary", base.Settings().SlotNaming)

	assert.Equal(t, 5, derived.Settings().RowsPerPage)
	assert.Equal(t, "x.pdf", derived.Settings().Output)
	assert.Equal(t, "own-code", derived.Settings().SlotNaming)
}

func TestGenerator_SettingsAreCopies(t *testing.T) {
	g := Open("")
	s := g.Settings()
	s.Table.Header[0] = "changed"
	s.RowsPerPage = 99

	assert.Equal(t, "codes.csv", g.Settings().Input)
	assert.Equal(t, model.DefaultHeader[0], g.Settings().Table.Header[0])
	assert.Equal(t, 10, g.Settings().RowsPerPage)
}

func TestFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = "other.csv"
	cfg.RowsPerPage = 4

	g := FromConfig(cfg)
	cfg.RowsPerPage = 7

	assert.Equal(t, "other.csv", g.Settings().Input)
	assert.Equal(t, 4, g.Settings().RowsPerPage)
}

// ============================================================================
// Caption verification
// ============================================================================

type fakeRecognizer map[string]string

func (f fakeRecognizer) RecognizeFile(path string) (string, error) {
	text, ok := f[path]
	if !ok {
		return "", errors.New("unreadable")
	}
	return text, nil
}

func TestVerifyWith(t *testing.T) {
	images := []barcode.Image{
		{Row: 0, Slot: model.SlotPrimary, Code: "123456", Path: "a.png"},
		{Row: 0, Slot: model.SlotSecondary, Code: "654321", Path: "b.png"},
		{Row: 1, Slot: model.SlotPrimary, Code: "111111", Path: "c.png"},
	}
	rec := fakeRecognizer{"a.png": "123456", "b.png": "654327"}

	warnings := verifyWith(rec, images, zap.NewNop())
	require.Len(t, warnings, 2)
	assert.Equal(t, WarnCaptionMismatch, warnings[0].Kind)
	assert.Contains(t, warnings[0].Message, `read "654327"`)
	assert.Equal(t, WarnVerifyUnavailable, warnings[1].Kind)
	assert.Equal(t, 1, warnings[1].Row)
}

func TestMust(t *testing.T) {
	assert.Equal(t, 3, Must(3, nil))
	assert.Panics(t, func() { Must(0, errors.New("boom")) })
}
