package dashboard

import (
	"fmt"
	"html/template"
	"time"

	"sitetwin/internal/chart"
	"sitetwin/internal/model"
	"sitetwin/internal/service/assets"
	"sitetwin/internal/service/calculator"
	"sitetwin/internal/service/excel"
	"sitetwin/internal/util"
)

const (
	noDefaultEVA  = "No default EVA file found. Please upload."
	uploadExpired = "Uploaded EVA file has expired. Showing the default file."
	dateLayout    = "2006-01-02"
)

var evaColumns = []string{
	"Planned Date",
	"Activities",
	"Actual Date",
	"Planned Cost",
	"Actual Cost",
	"Cummulative Planned Cost",
	"Cummulative Actual Cost",
	"Actual Percentage",
	"SPI",
	"CPI",
	"SV",
	"CV",
}

// EVASource where the rows of an EVA render came from
type EVASource struct {
	Name     string
	Uploaded bool
	Warning  string
}

// LoadEVA rows of the upload when uploadID is cached, else of the default workbook.
// A missing default workbook halts.
func (d *Dashboard) LoadEVA(uploadID string) ([]model.EVARow, EVASource, error) {
	var src EVASource
	if uploadID != "" {
		if up, ok := d.uploads.get(uploadID); ok {
			return up.rows, EVASource{Name: up.filename, Uploaded: true}, nil
		}
		src.Warning = uploadExpired
	}

	path := d.cfg.DataPath(evaFile)
	if err := assets.Require(path, noDefaultEVA); err != nil {
		return nil, src, err
	}
	rows, err := excel.ParseEVAFile(path)
	if err != nil {
		return nil, src, model.Halt(fmt.Sprintf("Could not read EVA file %s", path), err)
	}
	src.Name = evaFile
	return rows, src, nil
}

// AnalyzeEVA LoadEVA followed by the earned value analysis
func (d *Dashboard) AnalyzeEVA(uploadID string) (*model.EVASummary, EVASource, error) {
	rows, src, err := d.LoadEVA(uploadID)
	if err != nil {
		return nil, src, err
	}
	return calculator.AnalyzeEVA(rows), src, nil
}

func (d *Dashboard) buildEVA(view *View, params Params) error {
	summary, src, err := d.AnalyzeEVA(params.Upload)
	if src.Warning != "" {
		view.Warnings = append(view.Warnings, src.Warning)
	}
	if err != nil {
		return err
	}

	ev := &EVAView{
		Source:   src.Name,
		Uploaded: src.Uploaded,
		Columns:  evaColumns,
		Rows:     make([][]string, 0, len(summary.Rows)),
		Indices:  make([]IndexRow, 0, len(summary.Indices)),
	}
	if src.Uploaded {
		ev.UploadID = params.Upload
	}
	for _, r := range summary.Rows {
		ev.Rows = append(ev.Rows, evaRowCells(r))
	}

	pct := "n/a"
	if summary.HasPercent {
		pct = util.FormatPercent(summary.PercentComplete)
	}
	ev.Metrics = []Metric{
		{Label: "Total Planned Cost", Value: util.FormatCurrency(summary.TotalPlannedCost)},
		{Label: "Total Actual Cost", Value: util.FormatCurrency(summary.TotalActualCost)},
		{Label: "Project % Complete", Value: pct},
	}

	for _, p := range summary.Indices {
		ev.Indices = append(ev.Indices, IndexRow{
			Date:     formatDate(p.Date),
			Activity: p.Activity,
			SPI:      util.FormatOptional(p.SPI),
			CPI:      util.FormatOptional(p.CPI),
			SPIGood:  p.SPIGood,
			CPIGood:  p.CPIGood,
		})
	}

	charts := []struct {
		spec *chart.Spec
		dst  *template.JS
	}{
		{chart.SCurve(summary.SCurve), &ev.SCurve},
		{chart.Delays(summary.Delays), &ev.Delays},
		{chart.Variances(summary.Variances), &ev.Variances},
		{chart.IndexScatter(summary.Indices), &ev.Scatter},
	}
	for _, c := range charts {
		js, err := c.spec.JSON()
		if err != nil {
			return fmt.Errorf("encode eva chart: %w", err)
		}
		*c.dst = js
	}

	view.EVA = ev
	return nil
}

func evaRowCells(r model.EVARow) []string {
	return []string{
		formatDate(r.PlannedDate),
		r.Activity,
		formatDate(r.ActualDate),
		util.FormatOptional(r.PlannedCost),
		util.FormatOptional(r.ActualCost),
		util.FormatOptional(r.CumulativePlannedCost),
		util.FormatOptional(r.CumulativeActualCost),
		util.FormatOptional(r.ActualPercentage),
		util.FormatOptional(r.SPI),
		util.FormatOptional(r.CPI),
		util.FormatOptional(r.ScheduleVariance),
		util.FormatOptional(r.CostVariance),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
