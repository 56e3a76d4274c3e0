package screens

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type LoginState struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Loading  bool   `json:"loading"`
	Error    string `json:"error"`
}

type LoginScreen struct {
	form
	username string
	password string
}

func NewLoginScreen(deps Deps) *LoginScreen {
	s := &LoginScreen{}
	s.setup(deps, "login")
	return s
}

func (s *LoginScreen) SetUsername(v string) {
	s.mu.Lock()
	s.username = v
	s.mu.Unlock()
}

func (s *LoginScreen) SetPassword(v string) {
	s.mu.Lock()
	s.password = v
	s.mu.Unlock()
}

func (s *LoginScreen) State() LoginState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LoginState{Username: s.username, Password: s.password, Loading: s.loading, Error: s.errMsg}
}

// Submit validates the form, exchanges the credentials for a token, stores it
// and moves to the home route.
func (s *LoginScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	username, password := s.username, s.password
	s.mu.Unlock()

	if blank(username) || password == "" {
		return s.rejectEmpty()
	}

	s.begin()
	token, err := s.deps.Auth.Login(ctx, username, password)
	if err != nil {
		return s.fail(err, "login.failed")
	}
	if err := s.deps.Tokens.Store(ctx, token); err != nil {
		return s.fail(fmt.Errorf("store token: %w", err), "login.failed")
	}

	s.log.Info("signed in", zap.String("username", username))
	if s.finish("") {
		s.deps.Nav.Navigate(RouteHome)
	}
	return nil
}
