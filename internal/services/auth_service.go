package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"authfront/internal/apiclient"
	"authfront/internal/logger"
	"authfront/internal/tokenstore"
)

const (
	LoginEndpoint    = "/api/auth/login"
	RegisterEndpoint = "/api/auth/register"
)

// ErrNoToken is returned by Login when a successful response carries no token.
var ErrNoToken = errors.New("services: login response carried no token")

// APIClient is the part of apiclient.Client the auth flows need.
type APIClient interface {
	Request(ctx context.Context, endpoint string, opts apiclient.Options) (*apiclient.Response, error)
}

type AuthService interface {
	// Login exchanges credentials for a token. It does not persist it.
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	Authenticated(ctx context.Context) (bool, error)
}

type authService struct {
	api    APIClient
	tokens tokenstore.Store
	log    *zap.Logger
}

func NewAuthService(api APIClient, tokens tokenstore.Store) AuthService {
	return &authService{api: api, tokens: tokens, log: logger.Named("auth")}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := s.api.Request(ctx, LoginEndpoint, apiclient.Options{
		Method: http.MethodPost,
		Body:   loginRequest{Username: username, Password: password},
	})
	if err != nil {
		return "", err
	}

	token, err := extractToken(resp)
	if err != nil {
		s.log.Warn("login succeeded without a usable token", logger.Status(resp.StatusCode), zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *authService) Register(ctx context.Context, username, email, password string) error {
	_, err := s.api.Request(ctx, RegisterEndpoint, apiclient.Options{
		Method: http.MethodPost,
		Body:   registerRequest{Username: username, Email: email, Password: password},
	})
	return err
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *authService) Authenticated(ctx context.Context) (bool, error) {
	_, ok, err := s.tokens.Retrieve(ctx)
	if err != nil {
		return false, fmt.Errorf("read token: %w", err)
	}
	return ok, nil
}

// extractToken accepts a text body, a JSON string, or a JSON object with a
// "token" field.
func extractToken(resp *apiclient.Response) (string, error) {
	var token string
	if !resp.IsJSON() {
		token = resp.Text()
	} else if v, ok := resp.Field("token"); ok {
		token, _ = v.(string)
	} else if err := resp.Decode(&token); err != nil {
		token = ""
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
