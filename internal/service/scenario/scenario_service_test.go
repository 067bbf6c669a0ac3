package scenario

import (
	"context"
	"testing"
	"time"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/domain/dto"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/ecodesk/greenroi/internal/pkg/store"
	"github.com/ecodesk/greenroi/internal/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore keeps scenarios and drafts in memory; unused Store methods
// panic through the embedded nil interface.
type fakeStore struct {
	store.Store

	scenarios []*domain.Scenario
	drafts    map[string]*domain.PurchaseDraft
	deleted   []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{drafts: make(map[string]*domain.PurchaseDraft)}
}

func (f *fakeStore) SaveScenario(ctx context.Context, scenario *dto.ScenarioDto) (*domain.Scenario, error) {
	saved := &domain.Scenario{
		ID:              int64(len(f.scenarios) + 1),
		OwnerID:         scenario.OwnerID,
		Label:           scenario.Label,
		LineItems:       scenario.LineItems,
		EcoWeight:       scenario.EcoWeight,
		FinancialWeight: scenario.FinancialWeight,
		FinancialScore:  scenario.FinancialScore,
		EcologicalScore: scenario.EcologicalScore,
		GlobalScore:     scenario.GlobalScore,
		CreatedAt:       time.Now(),
	}
	f.scenarios = append(f.scenarios, saved)
	return saved, nil
}

func (f *fakeStore) ListScenariosByOwner(ctx context.Context, ownerID int64) ([]*domain.Scenario, error) {
	out := make([]*domain.Scenario, 0, len(f.scenarios))
	for _, s := range f.scenarios {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) GetScenario(ctx context.Context, id, ownerID int64) (*domain.Scenario, error) {
	for _, s := range f.scenarios {
		if s.ID == id && s.OwnerID == ownerID {
			return s, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) CreateDraft(ctx context.Context, id string, draft *dto.DraftDto) (*domain.PurchaseDraft, error) {
	created := &domain.PurchaseDraft{
		ID:         id,
		OwnerID:    draft.OwnerID,
		Label:      draft.Label,
		Selections: draft.Selections,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	f.drafts[id] = created
	return created, nil
}

func (f *fakeStore) GetDraft(ctx context.Context, id string, ownerID int64) (*domain.PurchaseDraft, error) {
	draft, ok := f.drafts[id]
	if !ok || draft.OwnerID != ownerID {
		return nil, constants.ErrDBNotFound
	}
	return draft, nil
}

func (f *fakeStore) UpdateDraftSelections(ctx context.Context, id string, ownerID int64, selections []domain.Selection) (*domain.PurchaseDraft, error) {
	draft, err := f.GetDraft(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	draft.Selections = selections
	draft.UpdatedAt = time.Now()
	return draft, nil
}

func (f *fakeStore) DeleteDraft(ctx context.Context, id string, ownerID int64) error {
	if _, err := f.GetDraft(ctx, id, ownerID); err != nil {
		return err
	}
	delete(f.drafts, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestService() (*Service, *fakeStore) {
	fs := newFakeStore()
	return NewService(fs, catalog.NewService()), fs
}

func TestEvaluate_InlineSelections(t *testing.T) {
	svc, fs := newTestService()

	saved, err := svc.Evaluate(context.Background(), 7, &domain.EvaluateScenarioRequest{
		Label:     "Apple refresh",
		EcoWeight: 30,
		Selections: []domain.Selection{
			{Category: "MacBook Pro M3", Quantity: "2"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), saved.OwnerID)
	assert.Equal(t, "Apple refresh", saved.Label)
	assert.Equal(t, 30.0, saved.EcoWeight)
	assert.Equal(t, 70.0, saved.FinancialWeight)
	assert.InDelta(t, 99, saved.FinancialScore, 1e-9)
	assert.InDelta(t, 75, saved.EcologicalScore, 1e-9)
	assert.InDelta(t, 91.8, saved.GlobalScore, 1e-9)
	require.Len(t, saved.LineItems, 1)
	assert.Equal(t, 2500.0, saved.LineItems[0].UnitPrice)

	assert.Len(t, fs.scenarios, 1)
}

func TestEvaluate_InvalidInputBlocksPersistence(t *testing.T) {
	svc, fs := newTestService()

	_, err := svc.Evaluate(context.Background(), 7, &domain.EvaluateScenarioRequest{
		EcoWeight: 30,
		Selections: []domain.Selection{
			{Category: "MacBook Pro M3", Quantity: "zero"},
		},
	})
	assert.ErrorIs(t, err, constants.ErrInvalidQuantity)
	assert.Empty(t, fs.scenarios)

	_, err = svc.Evaluate(context.Background(), 7, &domain.EvaluateScenarioRequest{
		EcoWeight: 150,
		Selections: []domain.Selection{
			{Category: "MacBook Pro M3", Quantity: "2"},
		},
	})
	assert.ErrorIs(t, err, constants.ErrInvalidWeight)
	assert.Empty(t, fs.scenarios)
}

func TestEvaluate_ConsumesDraft(t *testing.T) {
	svc, fs := newTestService()

	draft, err := svc.CreateDraft(context.Background(), 7, "Q3 laptops")
	require.NoError(t, err)

	_, err = svc.UpdateDraft(context.Background(), 7, draft.ID, []domain.Selection{
		{Category: "Lenovo ThinkPad", Quantity: "4"},
	})
	require.NoError(t, err)

	saved, err := svc.Evaluate(context.Background(), 7, &domain.EvaluateScenarioRequest{
		DraftID:   draft.ID,
		EcoWeight: 50,
	})
	require.NoError(t, err)

	// Label and selections come from the draft, and the draft is gone.
	assert.Equal(t, "Q3 laptops", saved.Label)
	require.Len(t, saved.LineItems, 1)
	assert.Equal(t, "Lenovo ThinkPad", saved.LineItems[0].Category)
	assert.Equal(t, 4, saved.LineItems[0].Quantity)

	assert.Equal(t, []string{draft.ID}, fs.deleted)
	_, err = svc.GetDraft(context.Background(), 7, draft.ID)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestEvaluate_ExplicitLabelWinsOverDraft(t *testing.T) {
	svc, _ := newTestService()

	draft, err := svc.CreateDraft(context.Background(), 7, "draft label")
	require.NoError(t, err)
	_, err = svc.UpdateDraft(context.Background(), 7, draft.ID, []domain.Selection{
		{Category: "iPad Pro", Quantity: "1"},
	})
	require.NoError(t, err)

	saved, err := svc.Evaluate(context.Background(), 7, &domain.EvaluateScenarioRequest{
		Label:     "explicit label",
		DraftID:   draft.ID,
		EcoWeight: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "explicit label", saved.Label)
}

func TestEvaluate_UnknownDraft(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Evaluate(context.Background(), 7, &domain.EvaluateScenarioRequest{
		DraftID:   "missing",
		EcoWeight: 30,
	})
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestHistoryAndGet_ScopedByOwner(t *testing.T) {
	svc, _ := newTestService()

	mine, err := svc.Evaluate(context.Background(), 7, &domain.EvaluateScenarioRequest{
		Label:     "mine",
		EcoWeight: 30,
		Selections: []domain.Selection{
			{Category: "iPhone 14", Quantity: "1"},
		},
	})
	require.NoError(t, err)

	theirs, err := svc.Evaluate(context.Background(), 8, &domain.EvaluateScenarioRequest{
		Label:     "theirs",
		EcoWeight: 30,
		Selections: []domain.Selection{
			{Category: "iPhone 14", Quantity: "1"},
		},
	})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, mine.ID, history[0].ID)

	_, err = svc.Get(context.Background(), theirs.ID, 7)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestUpdateDraft_RejectsInvalidSelections(t *testing.T) {
	svc, _ := newTestService()

	draft, err := svc.CreateDraft(context.Background(), 7, "pending")
	require.NoError(t, err)

	_, err = svc.UpdateDraft(context.Background(), 7, draft.ID, []domain.Selection{
		{Category: "Nokia 3310", Quantity: "2"},
	})
	assert.ErrorIs(t, err, constants.ErrUnknownCategory)

	// The draft keeps its previous (empty) selections.
	got, err := svc.GetDraft(context.Background(), 7, draft.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Selections)
}

func TestRecommendations(t *testing.T) {
	svc, fs := newTestService()

	low, err := fs.SaveScenario(context.Background(), &dto.ScenarioDto{
		OwnerID: 7, EcologicalScore: 60, FinancialScore: 40,
	})
	require.NoError(t, err)
	high, err := fs.SaveScenario(context.Background(), &dto.ScenarioDto{
		OwnerID: 7, EcologicalScore: 80, FinancialScore: 95,
	})
	require.NoError(t, err)

	recs, err := svc.Recommendations(context.Background(), low.ID, 7)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "leaf", recs[0].Icon)
	assert.Equal(t, "coins", recs[1].Icon)

	recs, err = svc.Recommendations(context.Background(), high.ID, 7)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "trophy", recs[0].Icon)
}
