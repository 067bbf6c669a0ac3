package dto

import "github.com/ecodesk/greenroi/internal/domain"

// ScenarioDto is a scenario before the store assigns its id and creation
// time. The store owns the persisted record from that point on.
type ScenarioDto struct {
	OwnerID         int64
	Label           string
	LineItems       []domain.LineItem
	EcoWeight       float64
	FinancialWeight float64
	FinancialScore  float64
	EcologicalScore float64
	GlobalScore     float64
}

type DraftDto struct {
	OwnerID    int64
	Label      string
	Selections []domain.Selection
}
