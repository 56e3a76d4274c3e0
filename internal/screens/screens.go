// Package screens holds the login and register form controllers. They own
// form state and talk to the rest of the app only through small interfaces,
// so the desktop shell, the CLI and tests can each supply their own.
package screens

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"authfront/internal/apiclient"
	"authfront/internal/logger"
	"authfront/internal/services"
)

const (
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteHome     = "/home"
)

// ErrValidation is returned by Submit when a required field is empty.
var ErrValidation = errors.New("screens: required fields are empty")

type Navigator interface {
	Navigate(route string)
}

// Notifier shows a message to the user. NotifyError is for failures.
type Notifier interface {
	Notify(title, message string)
	NotifyError(title, message string)
}

type Translator interface {
	T(key string, vars ...map[string]any) string
}

type TokenWriter interface {
	Store(ctx context.Context, token string) error
}

// Deps are shared by both screens.
type Deps struct {
	Auth     services.AuthService
	Tokens   TokenWriter
	Nav      Navigator
	Notifier Notifier
	T        Translator
}

// form carries the in-flight flag, the last error and the mounted state.
type form struct {
	deps Deps
	log  *zap.Logger

	mu        sync.Mutex
	loading   bool
	errMsg    string
	unmounted bool
}

func (f *form) setup(deps Deps, name string) {
	f.deps = deps
	f.log = logger.Named("screens").With(logger.Screen(name))
}

// Unmount marks the screen as gone. Requests already in flight still finish
// and persist their results, but no longer navigate or show notices.
func (f *form) Unmount() {
	f.mu.Lock()
	f.unmounted = true
	f.mu.Unlock()
}

func (f *form) begin() {
	f.mu.Lock()
	f.loading = true
	f.errMsg = ""
	f.mu.Unlock()
}

func (f *form) finish(errMsg string) (mounted bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	f.errMsg = errMsg
	return !f.unmounted
}

func (f *form) rejectEmpty() error {
	msg := f.deps.T.T("common.fillAllFields")
	f.mu.Lock()
	f.errMsg = msg
	mounted := !f.unmounted
	f.mu.Unlock()
	if mounted {
		f.deps.Notifier.NotifyError(f.deps.T.T("common.error"), msg)
	}
	return ErrValidation
}

func (f *form) fail(err error, fallbackKey string) error {
	msg := failureMessage(f.deps.T, err, fallbackKey)
	f.log.Info("submit failed", zap.String("message", msg), zap.Error(err))
	if f.finish(msg) {
		f.deps.Notifier.NotifyError(f.deps.T.T("common.error"), msg)
	}
	return err
}

// failureMessage prefers the server's own text for status failures and a
// generic network message when no response arrived.
func failureMessage(t Translator, err error, fallbackKey string) string {
	if reqErr, ok := apiclient.AsRequestError(err); ok {
		switch reqErr.Kind {
		case apiclient.KindStatus:
			msg := strings.TrimSpace(reqErr.Message)
			if msg != "" && msg != apiclient.DefaultFailureMessage {
				return msg
			}
		case apiclient.KindTransport:
			return t.T("common.networkError")
		}
	}
	return t.T(fallbackKey)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
