// Package config resolves runtime settings from an optional yaml file, a .env
// file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory and keyring service name.
	AppName = "authfront"

	// FileName is the default config file name inside the user config dir.
	FileName = "authfront.yaml"
)

// Token store backends.
const (
	TokenStoreKeyring = "keyring"
	TokenStoreLocal   = "local"
	TokenStoreMemory  = "memory"
)

var (
	// ErrMissingAPIURL is the configuration error raised when no backend base URL is set.
	ErrMissingAPIURL = errors.New("config: api_url is not set (API_URL)")

	// ErrMissingKeyringPassword is raised when the encrypted file keyring is
	// selected without a passphrase.
	ErrMissingKeyringPassword = errors.New("config: keyring backend \"file\" needs KEYRING_FILE_PASSWORD")
)

// KeyringFileBackend is the keyring backend that encrypts into FileDir.
const KeyringFileBackend = "file"

// Config aggregates all runtime settings.
type Config struct {
	AppName    string        `yaml:"app_name"`
	Env        string        `yaml:"env"`
	LogLevel   string        `yaml:"log_level"`
	APIURL     string        `yaml:"api_url"`
	APITimeout time.Duration `yaml:"api_timeout"`
	TokenStore string        `yaml:"token_store"`
	DBPath     string        `yaml:"db_path"`
	Keyring    KeyringConfig `yaml:"keyring"`
	Device     Device        `yaml:"device"`

	// Path is the config file that was read, empty when none was found.
	Path string `yaml:"-"`
}

// KeyringConfig tunes the secure token store.
type KeyringConfig struct {
	// Backend forces a single keyring backend ("keychain", "secret-service",
	// "wincred", "file", ...). Empty lets the library pick.
	Backend string `yaml:"backend"`

	// FileDir is used by the encrypted file backend.
	FileDir string `yaml:"file_dir"`

	// FilePassword unlocks the file backend. Only read from KEYRING_FILE_PASSWORD.
	FilePassword string `yaml:"-"`
}

// Device is what the host reports about the user's preferences.
type Device struct {
	// ColorScheme is "dark", "light" or empty when the host reports nothing.
	ColorScheme string `yaml:"color_scheme"`

	// Locale is the raw host locale, e.g. "tr_TR.UTF-8" or "en-US".
	Locale string `yaml:"locale"`
}

func defaults() *Config {
	return &Config{
		AppName:    AppName,
		Env:        "dev",
		LogLevel:   "info",
		TokenStore: TokenStoreKeyring,
	}
}

// Load reads configuration. path may be empty, in which case APP_CONFIG and then
// the default location are tried; a missing default file is not an error.
func Load(path string) (*Config, error) {
	if err := LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := defaults()

	explicit := path != ""
	if !explicit {
		if p := os.Getenv("APP_CONFIG"); p != "" {
			path = p
			explicit = true
		} else {
			path = DefaultPath()
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		} else {
			cfg.Path = path
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.AppName = getString("APP_NAME", c.AppName)
	c.Env = getString("APP_ENV", c.Env)
	c.LogLevel = getString("LOG_LEVEL", c.LogLevel)
	c.APIURL = getString("API_URL", c.APIURL)
	c.APITimeout = getDuration("API_TIMEOUT", c.APITimeout)
	c.TokenStore = getString("TOKEN_STORE", c.TokenStore)
	c.DBPath = getString("DB_PATH", c.DBPath)
	c.Keyring.Backend = getString("KEYRING_BACKEND", c.Keyring.Backend)
	c.Keyring.FileDir = getString("KEYRING_FILE_DIR", c.Keyring.FileDir)
	c.Keyring.FilePassword = os.Getenv("KEYRING_FILE_PASSWORD")

	if scheme := DetectColorScheme(); scheme != "" {
		c.Device.ColorScheme = scheme
	}
	if loc := DetectLocale(); loc != "" {
		c.Device.Locale = loc
	}
}

// Validate reports configuration errors. A missing API URL is fatal.
func (c *Config) Validate() error {
	c.APIURL = strings.TrimSpace(c.APIURL)
	if c.APIURL == "" {
		return ErrMissingAPIURL
	}
	switch c.TokenStore {
	case TokenStoreKeyring, TokenStoreLocal, TokenStoreMemory:
	default:
		return fmt.Errorf("config: unknown token_store %q (want keyring, local or memory)", c.TokenStore)
	}
	if c.APITimeout < 0 {
		return fmt.Errorf("config: api_timeout must not be negative")
	}
	if c.TokenStore == TokenStoreKeyring && c.Keyring.Backend == KeyringFileBackend && c.Keyring.FilePassword == "" {
		return ErrMissingKeyringPassword
	}
	return nil
}

// DefaultPath returns <user config dir>/authfront/authfront.yaml, or "" when
// the config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, FileName)
}

func getString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
