// Package scoring holds the deterministic core: building priced line items
// out of raw selections and blending them into financial, ecological and
// global scores.
package scoring

import (
	"strconv"
	"strings"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

// Catalog resolves an equipment category to its reference entry.
type Catalog interface {
	Get(category string) (domain.CatalogEntry, error)
}

type Result struct {
	FinancialScore  float64 `json:"financial_score"`
	EcologicalScore float64 `json:"ecological_score"`
	GlobalScore     float64 `json:"global_score"`
}

// BuildLineItems turns raw selection rows into priced line items. Rows with
// an empty category or quantity are skipped, mirroring permissive form
// input. Order is preserved and duplicate categories stay distinct rows.
func BuildLineItems(catalog Catalog, selections []domain.Selection) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(selections))
	for _, sel := range selections {
		category := strings.TrimSpace(sel.Category)
		quantityText := strings.TrimSpace(sel.Quantity)
		if category == "" || quantityText == "" {
			continue
		}

		entry, err := catalog.Get(category)
		if err != nil {
			return nil, err
		}

		quantity, err := strconv.Atoi(quantityText)
		if err != nil || quantity <= 0 {
			return nil, constants.ErrInvalidQuantity
		}

		items = append(items, domain.LineItem{
			Category:      entry.Category,
			Quantity:      quantity,
			UnitPrice:     entry.UnitPrice,
			EcoScore:      entry.EcoScore,
			LifespanYears: entry.LifespanYears,
		})
	}

	return items, nil
}

// Score is a pure function of its inputs. The financial score penalizes
// total cost amortized over the set's average lifespan, floored at 0 and
// deliberately uncapped above 100; the ecological score is the
// quantity-weighted average eco-score; the global score blends the two by
// ecoWeight. An empty set counts as one unit of quantity so the averages
// stay defined.
func Score(lineItems []domain.LineItem, ecoWeight float64) (Result, error) {
	if ecoWeight < 0 || ecoWeight > 100 {
		return Result{}, constants.ErrInvalidWeight
	}

	totalCost := decimal.Zero
	totalQuantity := 0
	ecoSum := 0.0
	lifespanSum := 0.0
	for _, item := range lineItems {
		qty := decimal.NewFromInt(int64(item.Quantity))
		totalCost = totalCost.Add(decimal.NewFromFloat(item.UnitPrice).Mul(qty))
		totalQuantity += item.Quantity
		ecoSum += item.EcoScore * float64(item.Quantity)
		lifespanSum += float64(item.LifespanYears * item.Quantity)
	}

	avgEcoScore := 0.0
	avgLifespan := 1.0
	if totalQuantity > 0 {
		avgEcoScore = ecoSum / float64(totalQuantity)
		avgLifespan = lifespanSum / float64(totalQuantity)
	}

	financialScore := 100 - totalCost.InexactFloat64()/(avgLifespan*1000)
	if financialScore < 0 {
		financialScore = 0
	}

	financialWeight := 100 - ecoWeight
	globalScore := financialScore*financialWeight/100 + avgEcoScore*ecoWeight/100

	return Result{
		FinancialScore:  financialScore,
		EcologicalScore: avgEcoScore,
		GlobalScore:     globalScore,
	}, nil
}
