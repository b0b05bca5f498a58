package calculator

import (
	"math"
	"time"
)

// DelayDays whole days from planned to actual (floored), nil if either date is missing
func DelayDays(planned, actual *time.Time) *int {
	if planned == nil || actual == nil {
		return nil
	}
	days := int(math.Floor(actual.Sub(*planned).Hours() / 24))
	return &days
}

// Today midnight of now in now's location
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
