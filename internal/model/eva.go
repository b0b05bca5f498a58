package model

import "time"

// EVARow one activity row of the earned value workbook.
// ActualPercentage is a fraction (0.42 = 42%).
type EVARow struct {
	Activity              string     `json:"activity"`
	PlannedDate           *time.Time `json:"plannedDate"`
	ActualDate            *time.Time `json:"actualDate"`
	PlannedCost           *float64   `json:"plannedCost"`
	ActualCost            *float64   `json:"actualCost"`
	CumulativePlannedCost *float64   `json:"cumulativePlannedCost"`
	CumulativeActualCost  *float64   `json:"cumulativeActualCost"`
	ActualPercentage      *float64   `json:"actualPercentage"`
	SPI                   *float64   `json:"spi"`
	CPI                   *float64   `json:"cpi"`
	ScheduleVariance      *float64   `json:"sv"`
	CostVariance          *float64   `json:"cv"`
}

// EVASummary metrics derived from the full EVA table on every render
type EVASummary struct {
	Rows             []EVARow        `json:"rows"` // ordered by planned date
	TotalPlannedCost float64         `json:"totalPlannedCost"`
	TotalActualCost  float64         `json:"totalActualCost"`
	PercentComplete  float64         `json:"percentComplete"`
	HasPercent       bool            `json:"hasPercent"`
	SCurve           []SCurvePoint   `json:"sCurve"`
	Delays           []ActivityDelay `json:"delays"`
	Indices          []IndexPoint    `json:"indices"`
	Variances        []VariancePoint `json:"variances"`
}

// SCurvePoint cumulative planned vs actual cost at a planned date
type SCurvePoint struct {
	Date    *time.Time `json:"date"`
	Planned *float64   `json:"planned"`
	Actual  *float64   `json:"actual"`
}

// ActivityDelay actual minus planned, in days
type ActivityDelay struct {
	Activity string `json:"activity"`
	Days     *int   `json:"days"`
}

// IndexPoint SPI/CPI of one activity
type IndexPoint struct {
	Activity string     `json:"activity"`
	Date     *time.Time `json:"date"`
	SPI      *float64   `json:"spi"`
	CPI      *float64   `json:"cpi"`
	SPIGood  bool       `json:"spiGood"`
	CPIGood  bool       `json:"cpiGood"`
}

// VariancePoint SV/CV of one activity
type VariancePoint struct {
	Activity string     `json:"activity"`
	Date     *time.Time `json:"date"`
	SV       *float64   `json:"sv"`
	CV       *float64   `json:"cv"`
}
