package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"
	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/domain/dto"
)

var scenarioColumns = []string{
	"id", "owner_id", "label", "line_items",
	"eco_weight", "financial_weight",
	"financial_score", "ecological_score", "global_score",
	"created_at",
}

// scenarioRow keeps line_items as the raw JSONB blob; toDomain decodes it.
type scenarioRow struct {
	ID              int64     `db:"id"`
	OwnerID         int64     `db:"owner_id"`
	Label           string    `db:"label"`
	LineItems       []byte    `db:"line_items"`
	EcoWeight       float64   `db:"eco_weight"`
	FinancialWeight float64   `db:"financial_weight"`
	FinancialScore  float64   `db:"financial_score"`
	EcologicalScore float64   `db:"ecological_score"`
	GlobalScore     float64   `db:"global_score"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r *scenarioRow) toDomain() (*domain.Scenario, error) {
	items := make([]domain.LineItem, 0)
	if len(r.LineItems) > 0 {
		if err := sonic.Unmarshal(r.LineItems, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal line items: %w", err)
		}
	}

	return &domain.Scenario{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		Label:           r.Label,
		LineItems:       items,
		EcoWeight:       r.EcoWeight,
		FinancialWeight: r.FinancialWeight,
		FinancialScore:  r.FinancialScore,
		EcologicalScore: r.EcologicalScore,
		GlobalScore:     r.GlobalScore,
		CreatedAt:       r.CreatedAt,
	}, nil
}

func (s *store) SaveScenario(ctx context.Context, scenario *dto.ScenarioDto) (*domain.Scenario, error) {
	blob, err := sonic.Marshal(scenario.LineItems)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal line items: %w", err)
	}

	query := builder().Insert(tableScenarios).
		Columns(scenarioColumns[1 : len(scenarioColumns)-1]...).
		Values(
			scenario.OwnerID, scenario.Label, blob,
			scenario.EcoWeight, scenario.FinancialWeight,
			scenario.FinancialScore, scenario.EcologicalScore, scenario.GlobalScore,
		).
		Suffix("RETURNING id, created_at")

	var returned struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err = s.pool.Getx(ctx, &returned, query); err != nil {
		return nil, wrapErr(err)
	}

	return &domain.Scenario{
		ID:              returned.ID,
		OwnerID:         scenario.OwnerID,
		Label:           scenario.Label,
		LineItems:       scenario.LineItems,
		EcoWeight:       scenario.EcoWeight,
		FinancialWeight: scenario.FinancialWeight,
		FinancialScore:  scenario.FinancialScore,
		EcologicalScore: scenario.EcologicalScore,
		GlobalScore:     scenario.GlobalScore,
		CreatedAt:       returned.CreatedAt,
	}, nil
}

func (s *store) ListScenariosByOwner(ctx context.Context, ownerID int64) ([]*domain.Scenario, error) {
	query := builder().Select(scenarioColumns...).
		From(tableScenarios).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at desc, id desc")

	var rows []*scenarioRow
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, wrapErr(err)
	}

	return rowsToDomain(rows)
}

func (s *store) GetScenario(ctx context.Context, id, ownerID int64) (*domain.Scenario, error) {
	query := builder().Select(scenarioColumns...).
		From(tableScenarios).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"owner_id": ownerID},
		})

	var row scenarioRow
	if err := s.pool.Getx(ctx, &row, query); err != nil {
		return nil, wrapErr(err)
	}

	return row.toDomain()
}

func (s *store) GetScenarios(ctx context.Context, ids []int64, ownerID int64) ([]*domain.Scenario, error) {
	query := builder().Select(scenarioColumns...).
		From(tableScenarios).
		Where(sq.And{
			sq.Eq{"id": ids},
			sq.Eq{"owner_id": ownerID},
		}).
		OrderBy("created_at asc, id asc")

	var rows []*scenarioRow
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, wrapErr(err)
	}

	return rowsToDomain(rows)
}

func rowsToDomain(rows []*scenarioRow) ([]*domain.Scenario, error) {
	scenarios := make([]*domain.Scenario, 0, len(rows))
	for _, row := range rows {
		scenario, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", row.ID, err)
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}
