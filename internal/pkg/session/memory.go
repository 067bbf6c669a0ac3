package session

import (
	"context"
	"sync"
	"time"

	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/google/uuid"
)

// memoryStore is a process-local Store for tests and single-node setups.
type memoryStore struct {
	mx       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]*Session)}
}

func (s *memoryStore) Create(_ context.Context, userID int64) (*Session, error) {
	created := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	s.mx.Lock()
	defer s.mx.Unlock()
	s.sessions[created.ID] = created

	return created, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	selected, ok := s.sessions[id]
	if !ok {
		return nil, constants.ErrUnauthorized
	}
	return selected, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	delete(s.sessions, id)
	return nil
}
