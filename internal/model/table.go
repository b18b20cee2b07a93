package model

import "strings"

// Slot identifies one of the two upload positions.
type Slot string

const (
	SlotParceiro Slot = "parceiro"
	SlotBase     Slot = "base"
)

// Slots in processing order.
var Slots = []Slot{SlotParceiro, SlotBase}

// ParseSlot maps a URL parameter to a known slot.
func ParseSlot(s string) (Slot, bool) {
	switch Slot(strings.ToLower(s)) {
	case SlotParceiro:
		return SlotParceiro, true
	case SlotBase:
		return SlotBase, true
	}
	return "", false
}

// Label is the user-facing name of the slot.
func (s Slot) Label() string {
	switch s {
	case SlotParceiro:
		return "PARCEIRO"
	case SlotBase:
		return "BASE"
	}
	return string(s)
}

// AllowedExtensions lists the file extensions accepted for the slot.
// PARCEIRO is plain workbooks only; BASE may be macro-enabled.
func (s Slot) AllowedExtensions() []string {
	if s == SlotBase {
		return []string{".xlsx", ".xlsm"}
	}
	return []string{".xlsx"}
}

// Accepts reports whether ext (lower-case, with dot) is valid for the slot.
func (s Slot) Accepts(ext string) bool {
	for _, allowed := range s.AllowedExtensions() {
		if ext == allowed {
			return true
		}
	}
	return false
}

// UploadedFile holds one uploaded workbook until it is parsed or replaced.
type UploadedFile struct {
	Filename string
	Size     int64
	Data     []byte
}

// SizeKB is the upload size in kilobytes, as shown in the UI.
func (f *UploadedFile) SizeKB() float64 {
	return float64(f.Size) / 1024
}

// Table is the parsed form of one uploaded workbook's first sheet.
// Column order follows the source header order; rows are padded to the
// header width. A Table only exists after a fully successful parse.
type Table struct {
	Columns    []string   `json:"columns"`
	Rows       [][]string `json:"rows"`
	SheetNames []string   `json:"sheetNames"`
}

// RowCount is the number of data rows (header excluded).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount is the header width.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}
