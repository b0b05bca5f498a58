package dashboard

import (
	"fmt"

	"sitetwin/internal/chart"
	"sitetwin/internal/model"
	"sitetwin/internal/service/assets"
	"sitetwin/internal/service/calculator"
	"sitetwin/internal/service/excel"
)

// LoadMilestones raw milestone table plus parsed rows. A missing workbook halts.
func (d *Dashboard) LoadMilestones() (*model.Table, []model.Milestone, error) {
	path := d.cfg.DataPath(milestoneFile)
	if err := assets.Require(path, fmt.Sprintf("Milestone file not found at %s", path)); err != nil {
		return nil, nil, err
	}

	p := excel.NewParser()
	if err := p.OpenPath(path); err != nil {
		return nil, nil, model.Halt(fmt.Sprintf("Could not read milestone file %s", path), err)
	}
	defer p.Close()

	table, err := p.ReadTable("")
	if err != nil {
		return nil, nil, model.Halt(fmt.Sprintf("Could not read milestone file %s", path), err)
	}
	rows, err := p.ParseMilestones("")
	if err != nil {
		return nil, nil, model.Halt(fmt.Sprintf("Could not read milestone file %s", path), err)
	}
	return table, rows, nil
}

// Timeline Gantt bars as of now
func (d *Dashboard) Timeline() ([]model.GanttBar, error) {
	_, rows, err := d.LoadMilestones()
	if err != nil {
		return nil, err
	}
	return calculator.BuildTimeline(rows, d.now().In(d.location)), nil
}

func (d *Dashboard) buildMilestones(view *View) error {
	table, rows, err := d.LoadMilestones()
	if err != nil {
		return err
	}

	bars := calculator.BuildTimeline(rows, d.now().In(d.location))
	gantt, err := chart.Gantt(bars).JSON()
	if err != nil {
		return fmt.Errorf("encode gantt chart: %w", err)
	}

	view.Milestones = &MilestoneView{
		Columns: table.Columns,
		Rows:    table.Rows,
		Gantt:   gantt,
	}
	return nil
}
