package scenario

import (
	"context"
	"fmt"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/domain/dto"
	"github.com/ecodesk/greenroi/internal/pkg/logger"
	"github.com/ecodesk/greenroi/internal/pkg/store"
	"github.com/ecodesk/greenroi/internal/service/scoring"
	"github.com/google/uuid"
)

type Service struct {
	store   store.Store
	catalog scoring.Catalog
}

func NewService(store store.Store, catalog scoring.Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// Evaluate builds and scores a scenario and appends it to the owner's
// history. Selections come either inline or from a stored draft; a consumed
// draft is removed afterwards.
func (s *Service) Evaluate(ctx context.Context, ownerID int64, req *domain.EvaluateScenarioRequest) (*domain.Scenario, error) {
	selections := req.Selections
	label := req.Label

	if req.DraftID != "" {
		draft, err := s.store.GetDraft(ctx, req.DraftID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("store.GetDraft: %w", err)
		}
		selections = draft.Selections
		if label == "" {
			label = draft.Label
		}
	}

	lineItems, err := scoring.BuildLineItems(s.catalog, selections)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Score(lineItems, req.EcoWeight)
	if err != nil {
		return nil, err
	}

	saved, err := s.store.SaveScenario(ctx, &dto.ScenarioDto{
		OwnerID:         ownerID,
		Label:           label,
		LineItems:       lineItems,
		EcoWeight:       req.EcoWeight,
		FinancialWeight: 100 - req.EcoWeight,
		FinancialScore:  result.FinancialScore,
		EcologicalScore: result.EcologicalScore,
		GlobalScore:     result.GlobalScore,
	})
	if err != nil {
		return nil, fmt.Errorf("store.SaveScenario: %w", err)
	}

	if req.DraftID != "" {
		if err := s.store.DeleteDraft(ctx, req.DraftID, ownerID); err != nil {
			logger.Warnf(ctx, "failed to delete consumed draft %s: %s", req.DraftID, err.Error())
		}
	}

	return saved, nil
}

func (s *Service) History(ctx context.Context, ownerID int64) ([]*domain.Scenario, error) {
	scenarios, err := s.store.ListScenariosByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store.ListScenariosByOwner: %w", err)
	}
	return scenarios, nil
}

func (s *Service) Get(ctx context.Context, id, ownerID int64) (*domain.Scenario, error) {
	scenario, err := s.store.GetScenario(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store.GetScenario: %w", err)
	}
	return scenario, nil
}

func (s *Service) CreateDraft(ctx context.Context, ownerID int64, label string) (*domain.PurchaseDraft, error) {
	draft, err := s.store.CreateDraft(ctx, uuid.NewString(), &dto.DraftDto{
		OwnerID: ownerID,
		Label:   label,
	})
	if err != nil {
		return nil, fmt.Errorf("store.CreateDraft: %w", err)
	}
	return draft, nil
}

func (s *Service) UpdateDraft(ctx context.Context, ownerID int64, id string, selections []domain.Selection) (*domain.PurchaseDraft, error) {
	// Selections are validated against the catalog before they are stored,
	// so a draft never accumulates rows that cannot be evaluated later.
	if _, err := scoring.BuildLineItems(s.catalog, selections); err != nil {
		return nil, err
	}

	draft, err := s.store.UpdateDraftSelections(ctx, id, ownerID, selections)
	if err != nil {
		return nil, fmt.Errorf("store.UpdateDraftSelections: %w", err)
	}
	return draft, nil
}

func (s *Service) GetDraft(ctx context.Context, ownerID int64, id string) (*domain.PurchaseDraft, error) {
	draft, err := s.store.GetDraft(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store.GetDraft: %w", err)
	}
	return draft, nil
}

// Recommendations derives rule-based tips from a scenario's scores.
func (s *Service) Recommendations(ctx context.Context, id, ownerID int64) ([]domain.Recommendation, error) {
	scenario, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	recommendations := make([]domain.Recommendation, 0, 2)
	if scenario.EcologicalScore < 75 {
		recommendations = append(recommendations, domain.Recommendation{
			Icon:        "leaf",
			Title:       "Ecological potential",
			Description: "Consider certified Green IT models to raise the ecological score of this selection.",
		})
	} else {
		recommendations = append(recommendations, domain.Recommendation{
			Icon:        "trophy",
			Title:       "Sustainable excellence",
			Description: "This selection is well aligned with a long-term sustainability strategy.",
		})
	}

	if scenario.FinancialScore < 60 {
		recommendations = append(recommendations, domain.Recommendation{
			Icon:        "coins",
			Title:       "Cost pressure",
			Description: "Total cost is high relative to the amortization period; longer-lived models would improve the financial score.",
		})
	}

	return recommendations, nil
}
