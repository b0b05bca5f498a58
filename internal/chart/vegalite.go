// Package chart builds Vega-Lite specifications rendered in the browser by vega-embed.
package chart

import (
	"encoding/json"
	"html/template"
	"time"

	"sitetwin/internal/model"
	"sitetwin/internal/service/calculator"
)

const schemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

const dateLayout = "2006-01-02"

// Spec a Vega-Lite top-level specification
type Spec struct {
	Schema   string         `json:"$schema"`
	Title    string         `json:"title,omitempty"`
	Width    any            `json:"width,omitempty"`
	Height   int            `json:"height,omitempty"`
	Data     Data           `json:"data"`
	Mark     Mark           `json:"mark"`
	Encoding Encoding       `json:"encoding"`
	Config   map[string]any `json:"config,omitempty"`
}

// Data inline rows
type Data struct {
	Values []map[string]any `json:"values"`
}

// Mark mark definition
type Mark struct {
	Type                   string `json:"type"`
	Point                  bool   `json:"point,omitempty"`
	Tooltip                bool   `json:"tooltip,omitempty"`
	CornerRadiusTopLeft    int    `json:"cornerRadiusTopLeft,omitempty"`
	CornerRadiusBottomLeft int    `json:"cornerRadiusBottomLeft,omitempty"`
	Size                   int    `json:"size,omitempty"`
}

// Encoding channel encodings
type Encoding struct {
	X       *Channel  `json:"x,omitempty"`
	X2      *Channel  `json:"x2,omitempty"`
	Y       *Channel  `json:"y,omitempty"`
	Color   *Channel  `json:"color,omitempty"`
	XOffset *Channel  `json:"xOffset,omitempty"`
	Tooltip []Channel `json:"tooltip,omitempty"`
}

// Channel one encoding channel
type Channel struct {
	Field     string         `json:"field,omitempty"`
	Type      string         `json:"type,omitempty"`
	Title     *string        `json:"title,omitempty"`
	Sort      any            `json:"sort,omitempty"`
	Axis      map[string]any `json:"axis,omitempty"`
	Scale     map[string]any `json:"scale,omitempty"`
	Condition map[string]any `json:"condition,omitempty"`
	Value     any            `json:"value,omitempty"`
}

func title(s string) *string { return &s }

func newSpec(mark Mark, values []map[string]any, enc Encoding) *Spec {
	if values == nil {
		values = []map[string]any{}
	}
	return &Spec{
		Schema:   schemaURL,
		Width:    "container",
		Height:   320,
		Data:     Data{Values: values},
		Mark:     mark,
		Encoding: enc,
	}
}

// JSON spec as a JS literal safe to place inside a <script> block
func (s *Spec) JSON() (template.JS, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func numValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// SCurve cumulative planned vs actual cost over planned date
func SCurve(points []model.SCurvePoint) *Spec {
	values := make([]map[string]any, 0, len(points)*2)
	for _, p := range points {
		if p.Date == nil {
			continue
		}
		values = append(values,
			map[string]any{"date": dateValue(p.Date), "series": "Planned (Cum.)", "cost": numValue(p.Planned)},
			map[string]any{"date": dateValue(p.Date), "series": "Actual (Cum.)", "cost": numValue(p.Actual)},
		)
	}
	return newSpec(Mark{Type: "line", Point: true, Tooltip: true}, values, Encoding{
		X:     &Channel{Field: "date", Type: "temporal", Title: title("Planned Date")},
		Y:     &Channel{Field: "cost", Type: "quantitative", Title: title("Cost (₹)")},
		Color: &Channel{Field: "series", Type: "nominal", Title: title("")},
	})
}

// Delays delay days per activity
func Delays(delays []model.ActivityDelay) *Spec {
	values := make([]map[string]any, 0, len(delays))
	order := make([]string, 0, len(delays))
	for _, d := range delays {
		var days any
		if d.Days != nil {
			days = *d.Days
		}
		values = append(values, map[string]any{"activity": d.Activity, "days": days})
		order = append(order, d.Activity)
	}
	return newSpec(Mark{Type: "bar", Tooltip: true}, values, Encoding{
		X: &Channel{Field: "activity", Type: "nominal", Title: title("Activities"), Sort: order},
		Y: &Channel{Field: "days", Type: "quantitative", Title: title("Delay Days")},
		Color: &Channel{
			Condition: map[string]any{"test": "datum.days > 0", "value": calculator.ColorPending},
			Value:     "#2A9D8F",
		},
	})
}

// Variances SV and CV side by side per activity
func Variances(points []model.VariancePoint) *Spec {
	values := make([]map[string]any, 0, len(points)*2)
	order := make([]string, 0, len(points))
	for _, p := range points {
		values = append(values,
			map[string]any{"activity": p.Activity, "metric": "SV", "value": numValue(p.SV)},
			map[string]any{"activity": p.Activity, "metric": "CV", "value": numValue(p.CV)},
		)
		order = append(order, p.Activity)
	}
	return newSpec(Mark{Type: "bar", Tooltip: true}, values, Encoding{
		X:       &Channel{Field: "activity", Type: "nominal", Title: title("Activities"), Sort: order},
		XOffset: &Channel{Field: "metric", Type: "nominal"},
		Y:       &Channel{Field: "value", Type: "quantitative", Title: title("Variance (₹)")},
		Color:   &Channel{Field: "metric", Type: "nominal", Title: title("")},
	})
}

// IndexScatter SPI against CPI, one point per activity
func IndexScatter(points []model.IndexPoint) *Spec {
	values := make([]map[string]any, 0, len(points))
	for _, p := range points {
		if p.SPI == nil || p.CPI == nil {
			continue
		}
		values = append(values, map[string]any{"activity": p.Activity, "SPI": *p.SPI, "CPI": *p.CPI})
	}
	return newSpec(Mark{Type: "point", Tooltip: true, Size: 80}, values, Encoding{
		X: &Channel{Field: "SPI", Type: "quantitative", Scale: map[string]any{"zero": false}},
		Y: &Channel{Field: "CPI", Type: "quantitative", Scale: map[string]any{"zero": false}},
		Tooltip: []Channel{
			{Field: "activity", Type: "nominal"},
			{Field: "SPI", Type: "quantitative"},
			{Field: "CPI", Type: "quantitative"},
		},
	})
}

// Financial planned vs spent per category
func Financial(rows []model.FinancialRow) *Spec {
	values := make([]map[string]any, 0, len(rows)*2)
	for _, r := range rows {
		values = append(values,
			map[string]any{"category": r.Category, "series": "Planned (₹L)", "amount": r.Planned},
			map[string]any{"category": r.Category, "series": "Spent (₹L)", "amount": r.Spent},
		)
	}
	return newSpec(Mark{Type: "bar", Tooltip: true}, values, Encoding{
		X:       &Channel{Field: "category", Type: "nominal", Title: title("Category")},
		XOffset: &Channel{Field: "series", Type: "nominal"},
		Y:       &Channel{Field: "amount", Type: "quantitative", Title: title("₹ Lakh")},
		Color:   &Channel{Field: "series", Type: "nominal", Title: title("")},
	})
}

// Gantt milestone timeline; completed bars teal, pending orange
func Gantt(bars []model.GanttBar) *Spec {
	values := make([]map[string]any, 0, len(bars))
	order := make([]string, 0, len(bars))
	for _, b := range bars {
		values = append(values, map[string]any{
			"Activities":   b.Activity,
			"Planned Date": dateValue(b.Start),
			"End":          b.End.Format(dateLayout),
			"Actual Date":  dateValue(b.Actual),
		})
		order = append(order, b.Activity)
	}
	spec := newSpec(Mark{Type: "bar", CornerRadiusTopLeft: 3, CornerRadiusBottomLeft: 3}, values, Encoding{
		Y:  &Channel{Field: "Activities", Type: "nominal", Sort: order, Axis: map[string]any{"labelFontSize": 12, "title": nil}},
		X:  &Channel{Field: "Planned Date", Type: "temporal", Title: title("Date")},
		X2: &Channel{Field: "End"},
		Color: &Channel{
			Condition: map[string]any{"test": "datum['Actual Date'] != null", "value": calculator.ColorCompleted},
			Value:     calculator.ColorPending,
		},
		Tooltip: []Channel{
			{Field: "Activities", Type: "nominal"},
			{Field: "Planned Date", Type: "temporal", Title: title("Planned")},
			{Field: "Actual Date", Type: "temporal", Title: title("Actual")},
		},
	})
	spec.Height = 350
	spec.Config = map[string]any{"axis": map[string]any{"grid": false}}
	return spec
}
