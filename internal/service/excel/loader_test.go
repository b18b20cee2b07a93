package excel_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/victorhprada/excel-automation/internal/service/excel"
)

func buildWorkbook(t *testing.T, header []string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	hdr := make([]interface{}, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow("Sheet1", "A1", &hdr); err != nil {
		t.Fatalf("SetSheetRow header: %v", err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &rows[i]); err != nil {
			t.Fatalf("SetSheetRow row %d: %v", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func TestTable_RowsAndHeaderOrder(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"CLIENTE", "VALOR", "STATUS"},
		[][]interface{}{
			{"Empresa A", 1500.50, "PAGO"},
			{"Empresa B", 320, "ABERTO"},
			{"Empresa C", 78.9, "PAGO"},
		},
	)

	loader := excel.NewLoader(false)
	if err := loader.Open(bytes.NewReader(data)); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = loader.Close() })

	table, err := loader.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}

	if table.RowCount() != 3 {
		t.Fatalf("RowCount = %d, want 3", table.RowCount())
	}
	wantColumns := []string{"CLIENTE", "VALOR", "STATUS"}
	if len(table.Columns) != len(wantColumns) {
		t.Fatalf("Columns = %v, want %v", table.Columns, wantColumns)
	}
	for i, col := range wantColumns {
		if table.Columns[i] != col {
			t.Fatalf("column %d = %q, want %q", i, table.Columns[i], col)
		}
	}
	if table.Rows[0][0] != "Empresa A" {
		t.Fatalf("first cell = %q", table.Rows[0][0])
	}
	if len(table.SheetNames) != 1 || table.SheetNames[0] != "Sheet1" {
		t.Fatalf("SheetNames = %v", table.SheetNames)
	}
}

func TestTable_PadsShortRows(t *testing.T) {
	data := buildWorkbook(t,
		[]string{"CLIENTE", "VALOR", "STATUS"},
		[][]interface{}{
			{"Empresa A"},
		},
	)

	loader := excel.NewLoader(false)
	if err := loader.Open(bytes.NewReader(data)); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = loader.Close() })

	table, err := loader.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if len(table.Rows[0]) != 3 {
		t.Fatalf("row width = %d, want 3", len(table.Rows[0]))
	}
	if table.Rows[0][1] != "" || table.Rows[0][2] != "" {
		t.Fatalf("padding cells not empty: %v", table.Rows[0])
	}
}

func TestTable_ResolvesFormulaValues(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"CLIENTE", "VALOR", "DOBRO"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("SetSheetRow header: %v", err)
	}
	if err := f.SetCellValue("Sheet1", "A2", "Empresa A"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := f.SetCellValue("Sheet1", "B2", 10); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := f.SetCellFormula("Sheet1", "C2", "B2*2"); err != nil {
		t.Fatalf("SetCellFormula: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	loader := excel.NewLoader(true)
	if err := loader.Open(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = loader.Close() })

	table, err := loader.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if got := table.Rows[0][2]; got != "20" {
		t.Fatalf("formula cell = %q, want 20", got)
	}
}

func TestTable_FormulaCellsBlankWithoutResolution(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"VALOR", "DOBRO"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("SetSheetRow header: %v", err)
	}
	if err := f.SetCellValue("Sheet1", "A2", 10); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}
	if err := f.SetCellFormula("Sheet1", "B2", "A2*2"); err != nil {
		t.Fatalf("SetCellFormula: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	loader := excel.NewLoader(false)
	if err := loader.Open(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = loader.Close() })

	table, err := loader.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if got := table.Rows[0][1]; got != "" {
		t.Fatalf("formula cell without resolution = %q, want empty", got)
	}
}

func TestOpen_RejectsNonSpreadsheetBytes(t *testing.T) {
	loader := excel.NewLoader(false)
	err := loader.Open(bytes.NewReader([]byte("isto não é uma planilha")))
	if err == nil {
		t.Fatalf("Open should fail for non-spreadsheet bytes")
	}
	if !errors.Is(err, excel.ErrUnreadable) {
		t.Fatalf("error = %v, want ErrUnreadable", err)
	}
}

func TestTable_WithoutOpenReportsMissingFile(t *testing.T) {
	loader := excel.NewLoader(false)
	if _, err := loader.Table(); !errors.Is(err, excel.ErrMissingFile) {
		t.Fatalf("error = %v, want ErrMissingFile", err)
	}
}
