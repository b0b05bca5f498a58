package excel_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"sitetwin/internal/service/excel"
)

var evaHeaders = []interface{}{
	"Activities",
	"Planned Date",
	"Actual Date",
	"Planned Cost",
	"Actual Cost",
	"Cummulative Planned Cost",
	"Cummulative Actual Cost",
	"Actual Percentage",
	"SPI = BCWP / BCWS",
	"CPI = BCWP / ACWP",
	"SV = BCWP - BCWS",
	"CV = BCWP - ACWP",
}

func TestParseEVAFile(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "EVA", [][]interface{}{
		evaHeaders,
		{"Excavation", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC), 1000, 1100, 1000, 1100, 0.1, 0.95, 0.9, -50, -100},
		{"Footing", "2025-02-10", "not yet", 2000, "", 3000, 1100, 0.25, 1.05, 1.2, 100, 200},
	})

	rows, err := excel.ParseEVAFile(path)
	if err != nil {
		t.Fatalf("ParseEVAFile failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows)=%d, want 2", len(rows))
	}

	r := rows[0]
	if r.Activity != "Excavation" {
		t.Fatalf("Activity=%q", r.Activity)
	}
	if r.PlannedDate == nil || !r.PlannedDate.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("PlannedDate=%v", r.PlannedDate)
	}
	if r.ActualDate == nil || r.ActualDate.Day() != 4 {
		t.Fatalf("ActualDate=%v", r.ActualDate)
	}
	if r.CumulativeActualCost == nil || *r.CumulativeActualCost != 1100 {
		t.Fatalf("CumulativeActualCost=%v", r.CumulativeActualCost)
	}
	if r.CostVariance == nil || *r.CostVariance != -100 {
		t.Fatalf("CostVariance=%v", r.CostVariance)
	}

	// text date parses, junk date and blank cost coerce to nil
	r = rows[1]
	if r.PlannedDate == nil || r.PlannedDate.Day() != 10 {
		t.Fatalf("PlannedDate=%v", r.PlannedDate)
	}
	if r.ActualDate != nil {
		t.Fatalf("ActualDate=%v, want nil", r.ActualDate)
	}
	if r.ActualCost != nil {
		t.Fatalf("ActualCost=%v, want nil", *r.ActualCost)
	}
	if r.SPI == nil || *r.SPI != 1.05 {
		t.Fatalf("SPI=%v", r.SPI)
	}
}

func TestParseEVAFile_MissingColumn(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "EVA", [][]interface{}{
		{"Activities", "Planned Date", "Actual Date", "Planned Cost"},
		{"Excavation", "2025-02-01", "", 1000},
	})

	_, err := excel.ParseEVAFile(path)
	if !errors.Is(err, excel.ErrColumnMissing) {
		t.Fatalf("err=%v, want ErrColumnMissing", err)
	}
}

func TestParseEVAReader(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, "Upload", [][]interface{}{
		{"Activity", "Planned Date", "Actual Date", "Planned Cost", "Actual Cost", "Cumulative Planned Cost", "Actual Percentage", "SPI", "CPI"},
		{"Erection", "2025-03-01", "2025-03-03", 500, 450, 500, 0.5, 1, 1.1},
	})
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := excel.ParseEVAReader(f)
	if err != nil {
		t.Fatalf("ParseEVAReader failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows)=%d, want 1", len(rows))
	}
	if rows[0].CumulativePlannedCost == nil || *rows[0].CumulativePlannedCost != 500 {
		t.Fatalf("CumulativePlannedCost=%v", rows[0].CumulativePlannedCost)
	}
	// optional columns absent from the sheet stay nil
	if rows[0].CumulativeActualCost != nil || rows[0].ScheduleVariance != nil {
		t.Fatalf("absent columns should be nil: %+v", rows[0])
	}
}
