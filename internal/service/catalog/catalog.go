// Package catalog is the static equipment reference data: unit price,
// eco-score and expected lifespan per category. The table is fixed at
// process start and read-only afterwards.
package catalog

import (
	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
)

var entries = []domain.CatalogEntry{
	{Category: "iPhone 15 Pro", UnitPrice: 1200, EcoScore: 65, LifespanYears: 3},
	{Category: "iPhone 14", UnitPrice: 900, EcoScore: 70, LifespanYears: 3},
	{Category: "MacBook Pro M3", UnitPrice: 2500, EcoScore: 75, LifespanYears: 5},
	{Category: "MacBook Air M2", UnitPrice: 1500, EcoScore: 80, LifespanYears: 5},
	{Category: "Dell XPS 15", UnitPrice: 2000, EcoScore: 70, LifespanYears: 4},
	{Category: "Dell Latitude", UnitPrice: 1200, EcoScore: 72, LifespanYears: 4},
	{Category: "iPad Pro", UnitPrice: 1100, EcoScore: 68, LifespanYears: 4},
	{Category: "Samsung Galaxy Tab", UnitPrice: 600, EcoScore: 65, LifespanYears: 3},
	{Category: "HP EliteBook", UnitPrice: 1400, EcoScore: 71, LifespanYears: 4},
	{Category: "Lenovo ThinkPad", UnitPrice: 1300, EcoScore: 73, LifespanYears: 4},
}

type Service struct {
	byCategory map[string]domain.CatalogEntry
	ordered    []domain.CatalogEntry
}

func NewService() *Service {
	svc := &Service{
		byCategory: make(map[string]domain.CatalogEntry, len(entries)),
		ordered:    entries,
	}
	for _, entry := range entries {
		svc.byCategory[entry.Category] = entry
	}
	return svc
}

// Get fails with ErrUnknownCategory for absent categories; callers must
// not fall back to defaults.
func (s *Service) Get(category string) (domain.CatalogEntry, error) {
	entry, ok := s.byCategory[category]
	if !ok {
		return domain.CatalogEntry{}, constants.ErrUnknownCategory
	}
	return entry, nil
}

func (s *Service) List() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(s.ordered))
	copy(out, s.ordered)
	return out
}
