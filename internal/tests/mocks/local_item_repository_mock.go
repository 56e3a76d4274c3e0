package mocks

import (
	"context"

	"authfront/internal/models"
)

type LocalItemRepositoryMock struct {
	GetFunc    func(ctx context.Context, key string) (*models.LocalItem, error)
	SetFunc    func(ctx context.Context, key, value string) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *LocalItemRepositoryMock) Get(ctx context.Context, key string) (*models.LocalItem, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *LocalItemRepositoryMock) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	return nil
}

func (m *LocalItemRepositoryMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}
