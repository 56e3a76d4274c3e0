package mocks

import "sync"

type Notice struct {
	Title   string
	Message string
	Error   bool
}

// NavigatorMock records every route it was asked to show.
type NavigatorMock struct {
	mu     sync.Mutex
	routes []string
}

func (m *NavigatorMock) Navigate(route string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = append(m.routes, route)
}

func (m *NavigatorMock) Routes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.routes...)
}

// NotifierMock records every notice.
type NotifierMock struct {
	mu      sync.Mutex
	notices []Notice
}

func (m *NotifierMock) Notify(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, Notice{Title: title, Message: message})
}

func (m *NotifierMock) NotifyError(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, Notice{Title: title, Message: message, Error: true})
}

func (m *NotifierMock) Notices() []Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notice(nil), m.notices...)
}
