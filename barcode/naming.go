package barcode

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/cardsheet/model"
)

// Naming selects how image files are named.
type Naming int

const (
	// NamePrimary names both images after the row's primary code:
	// "<codeA>_1" and "<codeA>_2". The secondary image still encodes the
	// secondary code.
	NamePrimary Naming = iota
	// NameOwnCode names each image after the code it encodes:
	// "<codeA>_1" and "<codeB>_2".
	NameOwnCode
)

// String returns the configuration name of the policy.
func (n Naming) String() string {
	switch n {
	case NamePrimary:
		return "primary"
	case NameOwnCode:
		return "own-code"
	default:
		return "unknown"
	}
}

// ParseNaming parses a configuration name. The empty string selects
// NamePrimary.
func ParseNaming(s string) (Naming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "primary":
		return NamePrimary, nil
	case "own-code", "own_code", "own":
		return NameOwnCode, nil
	default:
		return 0, fmt.Errorf("unknown slot naming %q (want primary or own-code)", s)
	}
}

// Basename returns the file name, without extension, of a slot's image.
func (n Naming) Basename(row model.Row, slot model.Slot) string {
	code := row.CodeA
	if n == NameOwnCode {
		code = row.Code(slot)
	}
	return fmt.Sprintf("%s_%d", code, int(slot))
}

// Path returns the full path of a slot's PNG image inside dir.
func (n Naming) Path(dir string, row model.Row, slot model.Slot) string {
	return filepath.Join(dir, n.Basename(row, slot)+".png")
}

// safeBasename rejects names that are not a single path element.
func safeBasename(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return nil
}
