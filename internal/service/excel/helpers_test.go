package excel_test

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a single-sheet workbook under t.TempDir and returns its path
func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()

	defaultSheet := wb.GetSheetName(wb.GetActiveSheetIndex())
	if defaultSheet != sheet {
		if err := wb.SetSheetName(defaultSheet, sheet); err != nil {
			t.Fatalf("SetSheetName failed: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		r := row
		if err := wb.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("SetSheetRow %s failed: %v", cell, err)
		}
	}

	path := filepath.Join(t.TempDir(), sheet+".xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}
