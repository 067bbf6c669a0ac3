package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"
	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/domain/dto"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
)

var draftColumns = []string{"id", "owner_id", "label", "selections", "created_at", "updated_at"}

type draftRow struct {
	ID         string    `db:"id"`
	OwnerID    int64     `db:"owner_id"`
	Label      string    `db:"label"`
	Selections []byte    `db:"selections"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r *draftRow) toDomain() (*domain.PurchaseDraft, error) {
	selections := make([]domain.Selection, 0)
	if len(r.Selections) > 0 {
		if err := sonic.Unmarshal(r.Selections, &selections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal selections: %w", err)
		}
	}

	return &domain.PurchaseDraft{
		ID:         r.ID,
		OwnerID:    r.OwnerID,
		Label:      r.Label,
		Selections: selections,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func (s *store) CreateDraft(ctx context.Context, id string, draft *dto.DraftDto) (*domain.PurchaseDraft, error) {
	blob, err := sonic.Marshal(draft.Selections)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selections: %w", err)
	}

	query := builder().Insert(tableDrafts).
		Columns("id", "owner_id", "label", "selections").
		Values(id, draft.OwnerID, draft.Label, blob).
		Suffix("RETURNING created_at, updated_at")

	var returned struct {
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	if err = s.pool.Getx(ctx, &returned, query); err != nil {
		return nil, wrapErr(err)
	}

	return &domain.PurchaseDraft{
		ID:         id,
		OwnerID:    draft.OwnerID,
		Label:      draft.Label,
		Selections: draft.Selections,
		CreatedAt:  returned.CreatedAt,
		UpdatedAt:  returned.UpdatedAt,
	}, nil
}

func (s *store) GetDraft(ctx context.Context, id string, ownerID int64) (*domain.PurchaseDraft, error) {
	query := builder().Select(draftColumns...).
		From(tableDrafts).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"owner_id": ownerID},
		})

	var row draftRow
	if err := s.pool.Getx(ctx, &row, query); err != nil {
		return nil, wrapErr(err)
	}

	return row.toDomain()
}

func (s *store) UpdateDraftSelections(ctx context.Context, id string, ownerID int64, selections []domain.Selection) (*domain.PurchaseDraft, error) {
	blob, err := sonic.Marshal(selections)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selections: %w", err)
	}

	query := builder().Update(tableDrafts).
		Set("selections", blob).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"owner_id": ownerID},
		})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, constants.ErrDBNotFound
	}

	return s.GetDraft(ctx, id, ownerID)
}

func (s *store) DeleteDraft(ctx context.Context, id string, ownerID int64) error {
	query := builder().Delete(tableDrafts).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"owner_id": ownerID},
		})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
