// Package catalog holds the fixed tables the dashboard shows until live sources exist.
package catalog

import (
	"github.com/shopspring/decimal"

	"sitetwin/internal/model"
)

// Financials planned vs spent per category (lakh rupees)
func Financials() []model.FinancialRow {
	return []model.FinancialRow{
		{Category: "Manufacturing", Planned: 120, Spent: 95},
		{Category: "Transport", Planned: 30, Spent: 20},
		{Category: "Installation", Planned: 100, Spent: 60},
	}
}

// FinancialTotals sums of planned and spent
func FinancialTotals(rows []model.FinancialRow) (planned, spent float64) {
	p, s := decimal.Zero, decimal.Zero
	for _, r := range rows {
		p = p.Add(decimal.NewFromFloat(r.Planned))
		s = s.Add(decimal.NewFromFloat(r.Spent))
	}
	return p.InexactFloat64(), s.InexactFloat64()
}

// PrecastElements current element statuses
func PrecastElements() []model.PrecastElement {
	return []model.PrecastElement{
		{ID: "PC-101", Type: "Wall", Status: "Manufactured", LastUpdated: "2025-04-20"},
		{ID: "PC-102", Type: "Beam", Status: "QA Passed", LastUpdated: "2025-04-22"},
		{ID: "PC-103", Type: "Slab", Status: "Installed on Site", LastUpdated: "2025-04-23"},
		{ID: "PC-104", Type: "Column", Status: "QA Pending", LastUpdated: "2025-04-24"},
	}
}

// PrecastTypes filter options: "All" then each type in first-seen order
func PrecastTypes(elements []model.PrecastElement) []string {
	seen := make(map[string]bool, len(elements))
	out := []string{model.PrecastFilterAll}
	for _, e := range elements {
		if seen[e.Type] {
			continue
		}
		seen[e.Type] = true
		out = append(out, e.Type)
	}
	return out
}

// FilterPrecast elements of the given type. "All" and "" keep everything;
// a type nobody has yields an empty slice.
func FilterPrecast(elements []model.PrecastElement, filterType string) []model.PrecastElement {
	if filterType == "" || filterType == model.PrecastFilterAll {
		return elements
	}
	out := make([]model.PrecastElement, 0, len(elements))
	for _, e := range elements {
		if e.Type == filterType {
			out = append(out, e)
		}
	}
	return out
}
