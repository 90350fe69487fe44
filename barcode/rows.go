package barcode

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/cardsheet/model"
)

// SkipReason records an image that was not rendered.
type SkipReason struct {
	Row    int        // 0-indexed data row
	Slot   model.Slot // which code column
	Code   string
	Reason string
}

func (s SkipReason) Error() string {
	return fmt.Sprintf("row %d column %s: invalid code %q: %s", s.Row, s.Slot.Column(), s.Code, s.Reason)
}

// Image is a rendered barcode file.
type Image struct {
	Row  int
	Slot model.Slot
	Code string
	Path string
}

// RenderRows renders both codes of every row, in row order, naming files by
// naming. Invalid codes are skipped and reported; the error is non-nil only
// when an image could not be written.
func (r *Renderer) RenderRows(rows []model.Row, naming Naming, logger *zap.Logger) ([]Image, []SkipReason, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		images  []Image
		skipped []SkipReason
	)
	for _, row := range rows {
		for _, slot := range model.Slots {
			code := row.Code(slot)
			path, err := r.Render(code, naming.Basename(row, slot))
			if err != nil {
				if !isSkippable(err) {
					return images, skipped, err
				}
				skip := SkipReason{Row: row.Index, Slot: slot, Code: code, Reason: reason(err)}
				skipped = append(skipped, skip)
				logger.Warn("invalid code",
					zap.Int("row", row.Index),
					zap.String("column", slot.Column()),
					zap.String("code", code),
					zap.String("reason", skip.Reason))
				continue
			}

			images = append(images, Image{Row: row.Index, Slot: slot, Code: code, Path: path})
			logger.Info("saved barcode image", zap.String("path", path))
		}
	}
	return images, skipped, nil
}

// reason returns the sentinel message without the wrapped detail.
func reason(err error) string {
	for _, sentinel := range []error{ErrEmptyCode, ErrNonDigit, ErrLength, ErrUnsafeName} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
