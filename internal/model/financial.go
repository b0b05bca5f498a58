package model

// FinancialRow planned vs spent amount for one cost category, in lakh rupees
type FinancialRow struct {
	Category string  `json:"category"`
	Planned  float64 `json:"planned"`
	Spent    float64 `json:"spent"`
}
