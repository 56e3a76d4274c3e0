package tokenstore

import (
	"context"
	"fmt"
	"io"

	"authfront/internal/repositories"
)

type LocalStore struct {
	items  repositories.LocalItemRepository
	closer io.Closer
}

func NewLocalStore(items repositories.LocalItemRepository) *LocalStore {
	return &LocalStore{items: items}
}

func (s *LocalStore) Store(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.items.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("tokenstore: write local item: %w", err)
	}
	return nil
}

func (s *LocalStore) Retrieve(ctx context.Context) (string, bool, error) {
	item, err := s.items.Get(ctx, TokenKey)
	if err != nil {
		return "", false, fmt.Errorf("tokenstore: read local item: %w", err)
	}
	if item == nil {
		return "", false, nil
	}
	return item.Value, true, nil
}

func (s *LocalStore) Clear(ctx context.Context) error {
	if err := s.items.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("tokenstore: delete local item: %w", err)
	}
	return nil
}

func (s *LocalStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
