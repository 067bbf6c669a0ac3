package store

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/ecodesk/greenroi/internal/domain"
)

var userColumns = []string{"id", "username", "password_hash", "password_salt", "created_at"}

func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns("username", "password_hash", "password_salt").
		Values(user.Username, user.UserPassword.Hash, user.UserPassword.Salt).
		Suffix("RETURNING id, created_at")

	var returned struct {
		ID        int64           `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := s.pool.Getx(ctx, &returned, query); err != nil {
		return wrapErr(err)
	}

	user.ID = returned.ID
	user.CreatedAt = returned.CreatedAt
	return nil
}

func (s *store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(squirrel.Eq{"username": username})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(squirrel.Eq{"id": id})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
