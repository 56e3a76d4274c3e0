package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/99designs/keyring"
)

// KeyringOptions selects and unlocks the OS keyring.
type KeyringOptions struct {
	ServiceName  string
	Backend      string
	FileDir      string
	FilePassword string
}

// ErrNoFilePassword is returned when the encrypted file backend would be used
// without a passphrase.
var ErrNoFilePassword = errors.New("tokenstore: file keyring needs a password")

type KeyringStore struct {
	ring keyring.Keyring
}

// OpenKeyring opens the platform keyring described by opts.
func OpenKeyring(opts KeyringOptions) (*KeyringStore, error) {
	if opts.ServiceName == "" {
		return nil, errors.New("tokenstore: keyring service name is required")
	}
	kc := keyring.Config{
		ServiceName:              opts.ServiceName,
		KeychainTrustApplication: true,
		FileDir:                  opts.FileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(opts.FilePassword),
	}
	switch opts.Backend {
	case string(keyring.FileBackend):
		if opts.FilePassword == "" {
			return nil, ErrNoFilePassword
		}
		kc.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	case "":
		kc.AllowedBackends = implicitBackends(keyring.AvailableBackends(), opts.FilePassword != "")
	default:
		kc.AllowedBackends = []keyring.BackendType{keyring.BackendType(opts.Backend)}
	}
	ring, err := keyring.Open(kc)
	if err != nil {
		return nil, fmt.Errorf("tokenstore: open keyring: %w", err)
	}
	return NewKeyringStore(ring), nil
}

// implicitBackends keeps the library's order but drops the file backend
// unless a password was configured for it.
func implicitBackends(available []keyring.BackendType, withFile bool) []keyring.BackendType {
	out := make([]keyring.BackendType, 0, len(available))
	for _, b := range available {
		if b == keyring.FileBackend && !withFile {
			continue
		}
		out = append(out, b)
	}
	return out
}

// NewKeyringStore wraps an already opened keyring.
func NewKeyringStore(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{ring: ring}
}

func (s *KeyringStore) Store(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return s.ring.Set(keyring.Item{
		Key:         TokenKey,
		Data:        []byte(token),
		Label:       "authfront session token",
		Description: "Session token issued by the authentication API",
	})
}

func (s *KeyringStore) Retrieve(_ context.Context) (string, bool, error) {
	item, err := s.ring.Get(TokenKey)
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("tokenstore: read keyring: %w", err)
	}
	return string(item.Data), true, nil
}

func (s *KeyringStore) Clear(_ context.Context) error {
	if err := s.ring.Remove(TokenKey); err != nil && !isNotFound(err) {
		return fmt.Errorf("tokenstore: remove from keyring: %w", err)
	}
	return nil
}

// the file backend surfaces a missing item as a filesystem error
func isNotFound(err error) bool {
	return errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, os.ErrNotExist)
}
