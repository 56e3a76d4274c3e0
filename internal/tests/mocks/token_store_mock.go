package mocks

import (
	"context"
	"sync"
)

// TokenStoreMock keeps the token in memory unless a Func overrides it, and
// counts writes.
type TokenStoreMock struct {
	StoreFunc    func(ctx context.Context, token string) error
	RetrieveFunc func(ctx context.Context) (string, bool, error)
	ClearFunc    func(ctx context.Context) error

	mu         sync.Mutex
	token      string
	has        bool
	storeCalls int
	clearCalls int
}

func (m *TokenStoreMock) Store(ctx context.Context, token string) error {
	m.mu.Lock()
	m.storeCalls++
	m.mu.Unlock()

	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, token)
	}
	m.mu.Lock()
	m.token, m.has = token, true
	m.mu.Unlock()
	return nil
}

func (m *TokenStoreMock) Retrieve(ctx context.Context) (string, bool, error) {
	if m.RetrieveFunc != nil {
		return m.RetrieveFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.has, nil
}

func (m *TokenStoreMock) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.clearCalls++
	m.mu.Unlock()

	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	m.mu.Lock()
	m.token, m.has = "", false
	m.mu.Unlock()
	return nil
}

func (m *TokenStoreMock) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *TokenStoreMock) Stores() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeCalls
}

func (m *TokenStoreMock) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearCalls
}
