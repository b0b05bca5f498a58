package model

import "time"

// Milestone one row of the milestone workbook
type Milestone struct {
	Activity    string     `json:"activity"`
	PlannedDate *time.Time `json:"plannedDate"`
	ActualDate  *time.Time `json:"actualDate"` // nil while pending
	Status      string     `json:"status"`     // optional column
}

// Completed reports whether an actual date was recorded
func (m Milestone) Completed() bool {
	return m.ActualDate != nil
}

// GanttBar one bar of the milestone timeline
type GanttBar struct {
	Activity  string     `json:"activity"`
	Start     *time.Time `json:"start"`
	End       time.Time  `json:"end"` // actual date, or today for pending rows
	Actual    *time.Time `json:"actual"`
	Completed bool       `json:"completed"`
	Color     string     `json:"color"`
}
