package mocks

import (
	"context"
	"sync/atomic"
)

type AuthServiceMock struct {
	LoginFunc         func(ctx context.Context, username, password string) (string, error)
	RegisterFunc      func(ctx context.Context, username, email, password string) error
	LogoutFunc        func(ctx context.Context) error
	AuthenticatedFunc func(ctx context.Context) (bool, error)

	LoginCalls    atomic.Int32
	RegisterCalls atomic.Int32
}

func (m *AuthServiceMock) Login(ctx context.Context, username, password string) (string, error) {
	m.LoginCalls.Add(1)
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return "token", nil
}

func (m *AuthServiceMock) Register(ctx context.Context, username, email, password string) error {
	m.RegisterCalls.Add(1)
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	return nil
}

func (m *AuthServiceMock) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *AuthServiceMock) Authenticated(ctx context.Context) (bool, error) {
	if m.AuthenticatedFunc != nil {
		return m.AuthenticatedFunc(ctx)
	}
	return false, nil
}
