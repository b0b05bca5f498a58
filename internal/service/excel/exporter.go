package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"sitetwin/internal/model"
)

const (
	evaSheet     = "EVA"
	summarySheet = "Summary"
)

// ExportEVA writes the analysed EVA table (planned date order) and its headline
// metrics to a new workbook
func ExportEVA(summary *model.EVASummary) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", evaSheet); err != nil {
		f.Close()
		return nil, err
	}

	headers := []interface{}{
		"Planned Date", "Activities", "Actual Date", "Delay Days",
		"Planned Cost", "Actual Cost", "Cummulative Planned Cost", "Cummulative Actual Cost",
		"Actual Percentage", "SPI", "CPI", "SV", "CV",
	}
	if err := f.SetSheetRow(evaSheet, "A1", &headers); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E9C46A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetRowStyle(evaSheet, 1, 1, headerStyle)

	for i, r := range summary.Rows {
		row := []interface{}{
			timeCell(r.PlannedDate), r.Activity, timeCell(r.ActualDate), intCell(summary.Delays[i].Days),
			floatCell(r.PlannedCost), floatCell(r.ActualCost),
			floatCell(r.CumulativePlannedCost), floatCell(r.CumulativeActualCost),
			floatCell(r.ActualPercentage), floatCell(r.SPI), floatCell(r.CPI),
			floatCell(r.ScheduleVariance), floatCell(r.CostVariance),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(evaSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	if n := len(summary.Rows); n > 0 {
		f.SetCellStyle(evaSheet, "A2", fmt.Sprintf("A%d", n+1), dateStyle)
		f.SetCellStyle(evaSheet, "C2", fmt.Sprintf("C%d", n+1), dateStyle)
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, err
	}
	metrics := [][]interface{}{
		{"Metric", "Value"},
		{"Total Planned Cost", summary.TotalPlannedCost},
		{"Total Actual Cost", summary.TotalActualCost},
	}
	if summary.HasPercent {
		metrics = append(metrics, []interface{}{"Project % Complete", summary.PercentComplete})
	}
	for i, row := range metrics {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetRowStyle(summarySheet, 1, 1, headerStyle)

	f.SetColWidth(evaSheet, "A", "A", 14)
	f.SetColWidth(evaSheet, "B", "B", 30)
	f.SetColWidth(evaSheet, "C", "M", 15)
	f.SetColWidth(summarySheet, "A", "A", 24)
	f.SetColWidth(summarySheet, "B", "B", 18)

	f.SetActiveSheet(0)
	return f, nil
}

func timeCell(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func intCell(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
