package calculator

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"sitetwin/internal/model"
)

// AnalyzeEVA derives every earned value metric from the full table.
// Nothing is cached: the dashboard recomputes on each render.
func AnalyzeEVA(rows []model.EVARow) *model.EVASummary {
	sorted := SortByPlannedDate(rows)

	summary := &model.EVASummary{
		Rows:      sorted,
		SCurve:    make([]model.SCurvePoint, 0, len(sorted)),
		Delays:    make([]model.ActivityDelay, 0, len(sorted)),
		Indices:   make([]model.IndexPoint, 0, len(sorted)),
		Variances: make([]model.VariancePoint, 0, len(sorted)),
	}

	totalPlanned := decimal.Zero
	totalActual := decimal.Zero
	maxPct := math.Inf(-1)

	for _, r := range sorted {
		if r.PlannedCost != nil {
			totalPlanned = totalPlanned.Add(decimal.NewFromFloat(*r.PlannedCost))
		}
		if r.ActualCost != nil {
			totalActual = totalActual.Add(decimal.NewFromFloat(*r.ActualCost))
		}
		if r.ActualPercentage != nil && *r.ActualPercentage > maxPct {
			maxPct = *r.ActualPercentage
		}

		summary.SCurve = append(summary.SCurve, model.SCurvePoint{
			Date:    r.PlannedDate,
			Planned: r.CumulativePlannedCost,
			Actual:  r.CumulativeActualCost,
		})
		summary.Delays = append(summary.Delays, model.ActivityDelay{
			Activity: r.Activity,
			Days:     DelayDays(r.PlannedDate, r.ActualDate),
		})
		summary.Indices = append(summary.Indices, model.IndexPoint{
			Activity: r.Activity,
			Date:     r.PlannedDate,
			SPI:      r.SPI,
			CPI:      r.CPI,
			SPIGood:  IndexOnTrack(r.SPI),
			CPIGood:  IndexOnTrack(r.CPI),
		})
		summary.Variances = append(summary.Variances, model.VariancePoint{
			Activity: r.Activity,
			Date:     r.PlannedDate,
			SV:       r.ScheduleVariance,
			CV:       r.CostVariance,
		})
	}

	summary.TotalPlannedCost = totalPlanned.InexactFloat64()
	summary.TotalActualCost = totalActual.InexactFloat64()
	if !math.IsInf(maxPct, -1) {
		summary.HasPercent = true
		summary.PercentComplete = decimal.NewFromFloat(maxPct).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return summary
}

// SortByPlannedDate stable copy ordered by planned date, undated rows last
func SortByPlannedDate(rows []model.EVARow) []model.EVARow {
	out := make([]model.EVARow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PlannedDate, out[j].PlannedDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
	return out
}

// IndexOnTrack SPI/CPI of at least 1 is on track; a missing index is not
func IndexOnTrack(v *float64) bool {
	return v != nil && *v >= 1
}
