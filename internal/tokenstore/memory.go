package tokenstore

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Store(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	s.token, s.set = token, true
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Retrieve(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.token, s.set = "", false
	s.mu.Unlock()
	return nil
}
