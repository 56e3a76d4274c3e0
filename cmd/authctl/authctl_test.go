package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"authfront/internal/database"
	"authfront/internal/repositories"
	"authfront/internal/tokenstore"
)

func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_PATH", "KEYRING_BACKEND", "API_URL", "APP_CONFIG", "APP_LOCALE", "LC_ALL", "LC_MESSAGES", "LANG", "APP_COLOR_SCHEME", "GTK_THEME", "API_TIMEOUT"} {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TOKEN_STORE", "memory")
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root, cleanup := newRootCmd()
	defer cleanup()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAuthctl_MissingAPIURL(t *testing.T) {
	isolate(t)

	_, err := run(t, "", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_url is not set")
}

func TestAuthctl_LoginReadsPasswordFromStdin(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"password":"s3cret"`) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid credentials"))
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("tok-1"))
	}))
	defer srv.Close()

	t.Setenv("TOKEN_STORE", "local")
	dbPath := filepath.Join(t.TempDir(), "authctl.db")
	t.Setenv("DB_PATH", dbPath)

	out, err := run(t, "s3cret\n", "--api-url", srv.URL, "login", "-u", "ada")
	require.NoError(t, err)
	assert.Contains(t, out, "-> /home")

	db, err := database.Init(database.Config{Path: dbPath, LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	if sqlDB, err := db.DB(); err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}
	item, err := repositories.NewLocalItemRepository(db).Get(context.Background(), tokenstore.TokenKey)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "tok-1", item.Value)

	out, err = run(t, "", "--api-url", srv.URL, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "You are signed in")
}

func TestAuthctl_LoginFailureShowsServerMessage(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Invalid credentials"))
	}))
	defer srv.Close()

	out, err := run(t, "", "--api-url", srv.URL, "--lang", "tr", "login", "-u", "ada", "-p", "bad")
	require.Error(t, err)
	assert.Contains(t, out, "Hata: Invalid credentials")
}

func TestAuthctl_CallPrintsJSON(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"method":"` + r.Method + `","accept":"` + r.Header.Get("Accept") + `"}`))
	}))
	defer srv.Close()

	out, err := run(t, "", "--api-url", srv.URL, "call", "put", "/api/things", `{"a":1}`, "-H", "Accept: text/plain")
	require.NoError(t, err)
	assert.Contains(t, out, `"method": "PUT"`)
	assert.Contains(t, out, `"accept": "text/plain"`)
}

func TestAuthctl_StringsAndPalette(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "--api-url", "http://api.test", "--lang", "tr_TR.UTF-8", "strings")
	require.NoError(t, err)
	assert.Contains(t, out, "login.button\tGiriş Yap\n")

	out, err = run(t, "", "--api-url", "http://api.test", "strings", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "login.button\tLogin\tGiriş Yap\n")

	out, err = run(t, "", "--api-url", "http://api.test", "palette", "--toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: dark")
	assert.Contains(t, out, "inputBackground:")
	assert.Contains(t, out, "buttonText:")
}
