package session

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/ecodesk/greenroi/internal/pkg/store/xpgx"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const tableSessions = "sessions"

var sessionColumns = []string{"id", "user_id", "created_at"}

type pgStore struct {
	pool xpgx.Pool
}

func NewPGStore(pool xpgx.Pool) Store {
	return &pgStore{pool: pool}
}

func (s *pgStore) Create(ctx context.Context, userID int64) (*Session, error) {
	id := uuid.NewString()

	query := builder().Insert(tableSessions).
		Columns("id", "user_id").
		Values(id, userID).
		Suffix("RETURNING id, user_id, created_at")

	var created Session
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *pgStore) Get(ctx context.Context, id string) (*Session, error) {
	query := builder().Select(sessionColumns...).
		From(tableSessions).
		Where(sq.Eq{"id": id})

	var selected Session
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, constants.ErrUnauthorized
		}
		return nil, err
	}

	return &selected, nil
}

func (s *pgStore) Delete(ctx context.Context, id string) error {
	query := builder().Delete(tableSessions).
		Where(sq.Eq{"id": id})

	_, err := s.pool.Execx(ctx, query)
	return err
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
