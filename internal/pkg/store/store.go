package store

import (
	"context"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/domain/dto"
	"github.com/ecodesk/greenroi/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// ScenarioStore is append-only: saved scenarios are never updated or
// deleted, and every query is scoped by owner.
type ScenarioStore interface {
	SaveScenario(ctx context.Context, scenario *dto.ScenarioDto) (*domain.Scenario, error)
	ListScenariosByOwner(ctx context.Context, ownerID int64) ([]*domain.Scenario, error)
	GetScenario(ctx context.Context, id, ownerID int64) (*domain.Scenario, error)
	// GetScenarios returns the scenarios matching both the id set and the
	// owner; ids that miss on either axis are silently omitted.
	GetScenarios(ctx context.Context, ids []int64, ownerID int64) ([]*domain.Scenario, error)
}

type DraftStore interface {
	CreateDraft(ctx context.Context, id string, draft *dto.DraftDto) (*domain.PurchaseDraft, error)
	GetDraft(ctx context.Context, id string, ownerID int64) (*domain.PurchaseDraft, error)
	UpdateDraftSelections(ctx context.Context, id string, ownerID int64, selections []domain.Selection) (*domain.PurchaseDraft, error)
	DeleteDraft(ctx context.Context, id string, ownerID int64) error
}

type Store interface {
	Migrate(ctx context.Context) error
	UserStore
	ScenarioStore
	DraftStore
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
