package excel_test

import (
	"testing"
	"time"

	"sitetwin/internal/model"
	"sitetwin/internal/service/calculator"
	"sitetwin/internal/service/excel"
)

func TestExportEVA(t *testing.T) {
	t.Parallel()

	planned := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	actual := time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC)
	cost, pct, spi := 1000.0, 0.4, 0.95
	summary := calculator.AnalyzeEVA([]model.EVARow{
		{Activity: "Excavation", PlannedDate: &planned, ActualDate: &actual, PlannedCost: &cost, ActualPercentage: &pct, SPI: &spi},
		{Activity: "Unscheduled"},
	})

	f, err := excel.ExportEVA(summary)
	if err != nil {
		t.Fatalf("ExportEVA failed: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 2 || got[0] != "EVA" || got[1] != "Summary" {
		t.Fatalf("sheets=%v", got)
	}

	rows, err := f.GetRows("EVA")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows)=%d, want header + 2", len(rows))
	}
	if rows[1][1] != "Excavation" || rows[1][3] != "3" {
		t.Fatalf("row 1=%v", rows[1])
	}
	if rows[2][1] != "Unscheduled" {
		t.Fatalf("undated activity should sort last, got %v", rows[2])
	}

	pctCell, err := f.GetCellValue("Summary", "B4")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if pctCell != "40" {
		t.Fatalf("percent complete=%q, want 40", pctCell)
	}
}
