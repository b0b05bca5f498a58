package excel

import (
	"io"

	"sitetwin/internal/model"
)

// EVA workbook headers. The first name is the one the site workbook uses.
var (
	colActivities       = []string{"Activities", "Activity"}
	colPlannedDate      = []string{"Planned Date"}
	colActualDate       = []string{"Actual Date"}
	colPlannedCost      = []string{"Planned Cost"}
	colActualCost       = []string{"Actual Cost"}
	colCumPlannedCost   = []string{"Cummulative Planned Cost", "Cumulative Planned Cost"}
	colCumActualCost    = []string{"Cummulative Actual Cost", "Cumulative Actual Cost"}
	colActualPercentage = []string{"Actual Percentage"}
	colSPI              = []string{"SPI = BCWP / BCWS", "SPI"}
	colCPI              = []string{"CPI = BCWP / ACWP", "CPI"}
	colSV               = []string{"SV = BCWP - BCWS", "SV"}
	colCV               = []string{"CV = BCWP - ACWP", "CV"}
)

// ParseEVA reads the earned value sheet ("" = first sheet).
// Rows come back in sheet order; blank rows are skipped.
func (p *Parser) ParseEVA(sheet string) ([]model.EVARow, error) {
	name, rows, err := p.rawRows(sheet)
	if err != nil {
		return nil, err
	}

	ci := newColumnIndex(rows[0])
	required := [][]string{colActivities, colPlannedDate, colActualDate, colPlannedCost, colActualCost, colActualPercentage}
	idx := make([]int, len(required))
	for i, names := range required {
		if idx[i], err = ci.require(name, names...); err != nil {
			return nil, err
		}
	}
	activity, planned, actual, plannedCost, actualCost, pct := idx[0], idx[1], idx[2], idx[3], idx[4], idx[5]
	cumPlanned := ci.find(colCumPlannedCost...)
	cumActual := ci.find(colCumActualCost...)
	spi := ci.find(colSPI...)
	cpi := ci.find(colCPI...)
	sv := ci.find(colSV...)
	cv := ci.find(colCV...)

	out := make([]model.EVARow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		out = append(out, model.EVARow{
			Activity:              getCell(row, activity),
			PlannedDate:           ParseDate(getCell(row, planned)),
			ActualDate:            ParseDate(getCell(row, actual)),
			PlannedCost:           ParseNumber(getCell(row, plannedCost)),
			ActualCost:            ParseNumber(getCell(row, actualCost)),
			CumulativePlannedCost: ParseNumber(getCell(row, cumPlanned)),
			CumulativeActualCost:  ParseNumber(getCell(row, cumActual)),
			ActualPercentage:      ParseNumber(getCell(row, pct)),
			SPI:                   ParseNumber(getCell(row, spi)),
			CPI:                   ParseNumber(getCell(row, cpi)),
			ScheduleVariance:      ParseNumber(getCell(row, sv)),
			CostVariance:          ParseNumber(getCell(row, cv)),
		})
	}
	return out, nil
}

// ParseEVAFile reads the first sheet of an EVA workbook on disk
func ParseEVAFile(path string) ([]model.EVARow, error) {
	p := NewParser()
	if err := p.OpenPath(path); err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ParseEVA("")
}

// ParseEVAReader reads the first sheet of an uploaded EVA workbook
func ParseEVAReader(r io.Reader) ([]model.EVARow, error) {
	p := NewParser()
	if err := p.LoadFile(r); err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ParseEVA("")
}
