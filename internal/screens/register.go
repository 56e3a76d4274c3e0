package screens

import (
	"context"

	"go.uber.org/zap"
)

type RegisterState struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Loading  bool   `json:"loading"`
	Error    string `json:"error"`
}

type RegisterScreen struct {
	form
	username string
	email    string
	password string
}

func NewRegisterScreen(deps Deps) *RegisterScreen {
	s := &RegisterScreen{}
	s.setup(deps, "register")
	return s
}

func (s *RegisterScreen) SetUsername(v string) {
	s.mu.Lock()
	s.username = v
	s.mu.Unlock()
}

func (s *RegisterScreen) SetEmail(v string) {
	s.mu.Lock()
	s.email = v
	s.mu.Unlock()
}

func (s *RegisterScreen) SetPassword(v string) {
	s.mu.Lock()
	s.password = v
	s.mu.Unlock()
}

func (s *RegisterScreen) State() RegisterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RegisterState{
		Username: s.username,
		Email:    s.email,
		Password: s.password,
		Loading:  s.loading,
		Error:    s.errMsg,
	}
}

// Submit validates the form and creates the account. On success the user is
// told so and sent to the login route; no token is issued here.
func (s *RegisterScreen) Submit(ctx context.Context) error {
	s.mu.Lock()
	username, email, password := s.username, s.email, s.password
	s.mu.Unlock()

	if blank(username) || blank(email) || password == "" {
		return s.rejectEmpty()
	}

	s.begin()
	if err := s.deps.Auth.Register(ctx, username, email, password); err != nil {
		return s.fail(err, "register.registrationFailed")
	}

	s.log.Info("registered", zap.String("username", username))
	if s.finish("") {
		t := s.deps.T
		s.deps.Notifier.Notify(t.T("common.success"), t.T("register.registrationSuccess"))
		s.deps.Nav.Navigate(RouteLogin)
	}
	return nil
}
