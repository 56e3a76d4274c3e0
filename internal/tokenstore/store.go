// Package tokenstore persists the single session token.
//
// Three backends share one interface and are chosen once at startup:
//   - keyring: OS credential storage (Keychain, Secret Service, wincred) or an
//     encrypted file, for installed desktop builds
//   - local: a row in the local sqlite database, the localStorage equivalent
//   - memory: process lifetime only, for tests and throwaway sessions
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm/logger"

	"authfront/internal/config"
	"authfront/internal/database"
	applog "authfront/internal/logger"
	"authfront/internal/repositories"
)

// TokenKey is the fixed name the token is stored under in every backend.
const TokenKey = "jwtToken"

var (
	// ErrEmptyToken is returned by Store for an empty token.
	ErrEmptyToken = errors.New("tokenstore: token is empty")

	// ErrUnknownBackend is a configuration error for an unsupported backend name.
	ErrUnknownBackend = errors.New("tokenstore: unknown backend")
)

// Store holds zero or one token. Retrieve reports an absent token with ok=false
// and a nil error.
type Store interface {
	Store(ctx context.Context, token string) error
	Retrieve(ctx context.Context) (token string, ok bool, err error)
	Clear(ctx context.Context) error
}

// New builds the backend named by cfg.TokenStore.
func New(cfg *config.Config) (Store, error) {
	log := applog.Named("tokenstore").With(applog.Backend(cfg.TokenStore))

	switch cfg.TokenStore {
	case config.TokenStoreKeyring:
		s, err := OpenKeyring(KeyringOptions{
			ServiceName:  cfg.AppName,
			Backend:      cfg.Keyring.Backend,
			FileDir:      cfg.Keyring.FileDir,
			FilePassword: cfg.Keyring.FilePassword,
		})
		if err != nil {
			return nil, err
		}
		log.Debug("token store ready")
		return s, nil
	case config.TokenStoreLocal:
		db, err := database.Init(database.Config{Path: cfg.DBPath, LogLevel: logger.Warn})
		if err != nil {
			return nil, fmt.Errorf("tokenstore: open local database: %w", err)
		}
		s := NewLocalStore(repositories.NewLocalItemRepository(db))
		if sqlDB, err := db.DB(); err == nil {
			s.closer = sqlDB
		}
		log.Debug("token store ready")
		return s, nil
	case config.TokenStoreMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.TokenStore)
	}
}

// Close releases resources held by s, if any.
func Close(s Store) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
