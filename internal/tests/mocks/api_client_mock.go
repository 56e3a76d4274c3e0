package mocks

import (
	"context"
	"sync"

	"authfront/internal/apiclient"
)

type APIClientCall struct {
	Endpoint string
	Options  apiclient.Options
}

type APIClientMock struct {
	RequestFunc func(ctx context.Context, endpoint string, opts apiclient.Options) (*apiclient.Response, error)

	mu    sync.Mutex
	calls []APIClientCall
}

func (m *APIClientMock) Request(ctx context.Context, endpoint string, opts apiclient.Options) (*apiclient.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, APIClientCall{Endpoint: endpoint, Options: opts})
	m.mu.Unlock()

	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, endpoint, opts)
	}
	return &apiclient.Response{StatusCode: 200, ContentType: "application/json", Data: map[string]any{}}, nil
}

func (m *APIClientMock) Calls() []APIClientCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]APIClientCall(nil), m.calls...)
}
