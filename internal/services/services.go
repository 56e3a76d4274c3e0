package services

import (
	"authfront/internal/tokenstore"
)

// Services aggregates the domain services the shells bind or call.
type Services struct {
	Auth AuthService
}

// NewServices constructs the service container over one API client and the
// session token store.
func NewServices(api APIClient, tokens tokenstore.Store) *Services {
	return &Services{
		Auth: NewAuthService(api, tokens),
	}
}
