package calculator

import (
	"time"

	"sitetwin/internal/model"
)

const (
	ColorCompleted = "#264653" // dark teal
	ColorPending   = "#E76F51" // reddish orange
)

// BuildTimeline Gantt bars in sheet order. Pending rows run until today.
func BuildTimeline(rows []model.Milestone, now time.Time) []model.GanttBar {
	today := Today(now)

	bars := make([]model.GanttBar, 0, len(rows))
	for _, r := range rows {
		bar := model.GanttBar{
			Activity:  r.Activity,
			Start:     r.PlannedDate,
			End:       today,
			Actual:    r.ActualDate,
			Completed: r.Completed(),
			Color:     ColorPending,
		}
		if r.ActualDate != nil {
			bar.End = *r.ActualDate
			bar.Color = ColorCompleted
		}
		bars = append(bars, bar)
	}
	return bars
}
