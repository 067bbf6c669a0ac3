// Package session holds the authenticated-session store. It replaces the
// usual ambient token map with an explicit dependency handed to request
// handling, so sessions can live in Postgres or in memory interchangeably.
package session

import (
	"context"
	"time"
)

type Session struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Store interface {
	// Create opens a session for the user and assigns it an opaque id.
	Create(ctx context.Context, userID int64) (*Session, error)
	// Get fails with constants.ErrUnauthorized for unknown ids.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
