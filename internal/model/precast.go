package model

// PrecastElement status of a precast component
type PrecastElement struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	LastUpdated string `json:"lastUpdated"`
}

// PrecastFilterAll filter value matching every type
const PrecastFilterAll = "All"
