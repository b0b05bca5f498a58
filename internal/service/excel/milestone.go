package excel

import "sitetwin/internal/model"

var (
	colMilestone       = []string{"Activities", "Activity", "Milestone"}
	colMilestonePlan   = []string{"Planned Date", "Target Date"}
	colMilestoneActual = []string{"Actual Date"}
	colMilestoneStatus = []string{"Status"}
)

// ParseMilestones reads the milestone sheet ("" = first sheet) in sheet order.
// Actual Date and Status are optional columns.
func (p *Parser) ParseMilestones(sheet string) ([]model.Milestone, error) {
	name, rows, err := p.rawRows(sheet)
	if err != nil {
		return nil, err
	}

	ci := newColumnIndex(rows[0])
	activity, err := ci.require(name, colMilestone...)
	if err != nil {
		return nil, err
	}
	planned, err := ci.require(name, colMilestonePlan...)
	if err != nil {
		return nil, err
	}
	actual := ci.find(colMilestoneActual...)
	status := ci.find(colMilestoneStatus...)

	out := make([]model.Milestone, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		out = append(out, model.Milestone{
			Activity:    getCell(row, activity),
			PlannedDate: ParseDate(getCell(row, planned)),
			ActualDate:  ParseDate(getCell(row, actual)),
			Status:      getCell(row, status),
		})
	}
	return out, nil
}

// ParseMilestonesFile reads the first sheet of a milestone workbook on disk
func ParseMilestonesFile(path string) ([]model.Milestone, error) {
	p := NewParser()
	if err := p.OpenPath(path); err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ParseMilestones("")
}
