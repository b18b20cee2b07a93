package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/victorhprada/excel-automation/internal/model"
)

// Loader reads one uploaded workbook into a model.Table.
//
// With formula resolution enabled (the BASE slot, which may arrive as a
// macro-enabled workbook) cells whose stored value is empty but that carry
// a formula are resolved through the calc engine, so formula-derived
// values never collapse to blank placeholders in the preview.
type Loader struct {
	file            *excelize.File
	resolveFormulas bool
}

// NewLoader creates a loader. resolveFormulas should be true for the BASE
// slot and false for PARCEIRO.
func NewLoader(resolveFormulas bool) *Loader {
	return &Loader{resolveFormulas: resolveFormulas}
}

// Open parses the workbook bytes. A failure means the content is not a
// valid spreadsheet document and wraps ErrUnreadable.
func (l *Loader) Open(r io.Reader) error {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	l.file = file
	return nil
}

// Workbook returns the loaded workbook object (read-only use). The BASE
// workbook is retained in the session so its formulas stay available.
func (l *Loader) Workbook() *excelize.File {
	return l.file
}

// Close releases the underlying workbook. Not used for the retained BASE
// workbook, which lives as long as the session.
func (l *Loader) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Table converts the first sheet into a Table: first row is the header,
// the rest are data rows padded to the header width. Parsing is all or
// nothing; on error no Table is produced.
func (l *Loader) Table() (*model.Table, error) {
	if l.file == nil {
		return nil, fmt.Errorf("%w: no file loaded", ErrMissingFile)
	}

	sheets := l.file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadable)
	}
	first := sheets[0]

	rows, err := l.file.GetRows(first)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	table := &model.Table{
		Columns:    []string{},
		Rows:       [][]string{},
		SheetNames: sheets,
	}
	if len(rows) == 0 {
		return table, nil
	}

	table.Columns = rows[0]
	width := len(table.Columns)

	for i, row := range rows[1:] {
		// GetRows trims trailing empty cells; pad back to header width.
		padded := make([]string, width)
		copy(padded, row)

		if l.resolveFormulas {
			// Row index 2 in sheet coordinates is the first data row.
			if err := l.resolveRow(first, i+2, padded); err != nil {
				return nil, err
			}
		}
		table.Rows = append(table.Rows, padded)
	}

	return table, nil
}

// resolveRow fills empty cells that carry a formula with the calculated
// value. rowNum is the 1-based sheet row.
func (l *Loader) resolveRow(sheet string, rowNum int, cells []string) error {
	for col := range cells {
		if cells[col] != "" {
			continue
		}
		cellName, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		formula, err := l.file.GetCellFormula(sheet, cellName)
		if err != nil || formula == "" {
			continue
		}
		value, err := l.file.CalcCellValue(sheet, cellName)
		if err != nil {
			// Leave the cell blank when the formula cannot be evaluated
			// (external references, unsupported functions).
			continue
		}
		cells[col] = value
	}
	return nil
}
