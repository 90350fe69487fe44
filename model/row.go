package model

import "fmt"

// Slot identifies which of a row's two codes produced a barcode image.
type Slot int

const (
	// SlotPrimary is the first code column (Record1 / Barcode1).
	SlotPrimary Slot = 1
	// SlotSecondary is the second code column (Record2 / Barcode2).
	SlotSecondary Slot = 2
)

// Slots lists both slots in rendering order.
var Slots = [2]Slot{SlotPrimary, SlotSecondary}

// Valid reports whether s is one of the two known slots.
func (s Slot) Valid() bool {
	return s == SlotPrimary || s == SlotSecondary
}

// Column returns the spreadsheet-style letter of the column the slot reads.
func (s Slot) Column() string {
	switch s {
	case SlotPrimary:
		return "A"
	case SlotSecondary:
		return "B"
	default:
		return "?"
	}
}

// String returns the string representation of the slot.
func (s Slot) String() string {
	return fmt.Sprintf("slot %d", int(s))
}

// Row is one input record.
type Row struct {
	Index int // 0-indexed position among the data rows
	Name  string
	CodeA string
	CodeB string
}

// Code returns the code read by the given slot, or "" for an unknown slot.
func (r Row) Code(s Slot) string {
	switch s {
	case SlotPrimary:
		return r.CodeA
	case SlotSecondary:
		return r.CodeB
	default:
		return ""
	}
}
