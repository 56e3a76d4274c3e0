package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears every variable Load looks at and points the user config dir
// at a temp dir.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_CONFIG", "APP_NAME", "APP_ENV", "LOG_LEVEL", "API_URL", "API_TIMEOUT",
		"TOKEN_STORE", "DB_PATH", "KEYRING_BACKEND", "KEYRING_FILE_DIR", "KEYRING_FILE_PASSWORD",
		"APP_COLOR_SCHEME", "GTK_THEME", "APP_LOCALE", "LC_ALL", "LC_MESSAGES", "LANG",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_MissingAPIURL(t *testing.T) {
	isolate(t)

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingAPIURL)
}

func TestLoad_FromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("API_URL", " http://localhost:8080 ")
	t.Setenv("TOKEN_STORE", "memory")
	t.Setenv("API_TIMEOUT", "15")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, TokenStoreMemory, cfg.TokenStore)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, "", cfg.Path)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "authfront.yaml")
	data := []byte(`api_url: http://file.example
token_store: local
db_path: /tmp/x.db
api_timeout: 2s
device:
  color_scheme: dark
  locale: tr_TR.UTF-8
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("API_URL", "http://env.example")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example", cfg.APIURL)
	assert.Equal(t, TokenStoreLocal, cfg.TokenStore)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 2*time.Second, cfg.APITimeout)
	assert.Equal(t, "dark", cfg.Device.ColorScheme)
	assert.Equal(t, "tr_TR.UTF-8", cfg.Device.Locale)
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("API_URL", "http://localhost")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_DefaultPathIsOptional(t *testing.T) {
	isolate(t)
	t.Setenv("API_URL", "http://localhost")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, TokenStoreKeyring, cfg.TokenStore)
}

func TestValidate_UnknownTokenStore(t *testing.T) {
	cfg := defaults()
	cfg.APIURL = "http://localhost"
	cfg.TokenStore = "cookie"

	assert.Error(t, cfg.Validate())
}

func TestDetectColorScheme(t *testing.T) {
	isolate(t)
	assert.Equal(t, "", DetectColorScheme())

	t.Setenv("GTK_THEME", "Adwaita:dark")
	assert.Equal(t, "dark", DetectColorScheme())

	t.Setenv("APP_COLOR_SCHEME", "Light")
	assert.Equal(t, "light", DetectColorScheme())
}

func TestDetectLocale(t *testing.T) {
	isolate(t)
	assert.Equal(t, "", DetectLocale())

	t.Setenv("LANG", "C")
	assert.Equal(t, "", DetectLocale())

	t.Setenv("LANG", "tr_TR.UTF-8")
	assert.Equal(t, "tr_TR.UTF-8", DetectLocale())

	t.Setenv("APP_LOCALE", "en-GB")
	assert.Equal(t, "en-GB", DetectLocale())
}

func TestLoad_FileKeyringNeedsPassword(t *testing.T) {
	isolate(t)
	t.Setenv("API_URL", "http://localhost:8080")
	t.Setenv("KEYRING_BACKEND", "file")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingKeyringPassword)

	t.Setenv("KEYRING_FILE_PASSWORD", "hunter2")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, KeyringFileBackend, cfg.Keyring.Backend)
}
