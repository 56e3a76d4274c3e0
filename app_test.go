package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authfront/internal/config"
	"authfront/internal/events"
	"authfront/internal/i18n"
	"authfront/internal/screens"
	"authfront/internal/tests/mocks"
	"authfront/internal/theme"
)

func newTestApp(t *testing.T) (*App, *mocks.TokenStoreMock) {
	t.Helper()
	loc, err := i18n.NewDefault("en_US.UTF-8")
	require.NoError(t, err)
	tokens := &mocks.TokenStoreMock{}
	auth := &mocks.AuthServiceMock{
		LogoutFunc: func(ctx context.Context) error { return tokens.Clear(ctx) },
		AuthenticatedFunc: func(ctx context.Context) (bool, error) {
			_, ok, err := tokens.Retrieve(ctx)
			return ok, err
		},
	}
	cfg := &config.Config{APIURL: "http://api.test"}
	return NewApp(cfg, tokens, auth, theme.NewProvider("dark"), loc), tokens
}

func TestApp_GetAppSettings(t *testing.T) {
	app, _ := newTestApp(t)

	s := app.GetAppSettings()
	assert.Equal(t, theme.Dark, s.Theme)
	assert.Equal(t, theme.DarkPalette, s.Palette)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, []string{"en", "tr"}, s.Languages)
	assert.Equal(t, screens.RouteLogin, s.Route)
	assert.False(t, s.Authenticated)
	assert.Equal(t, "http://api.test", s.APIURL)
}

func TestApp_ToggleAndTranslate(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, theme.Light, app.ToggleTheme())
	assert.Equal(t, "tr", app.ToggleLanguage())
	assert.Equal(t, "Giriş Yap", app.Translate("login.button", nil))
	assert.Equal(t, "tr", app.ChangeLanguage("de"))
	assert.Equal(t, "en", app.ChangeLanguage("en"))
	assert.Equal(t, "Switch to Türkçe", app.Translate("settings.switchLanguage", map[string]any{"language": "Türkçe"}))
}

func TestApp_LoginValidationStaysOnScreen(t *testing.T) {
	app, tokens := newTestApp(t)
	var emitted []events.Event
	events.SetCustomEmitter(func(ctx context.Context, evt events.Event) { emitted = append(emitted, evt) })
	t.Cleanup(func() { events.SetCustomEmitter(nil) })

	// Unmounted so the notice does not reach the native dialog.
	app.login.Unmount()
	state := app.Login("", "")

	assert.Equal(t, "Please fill in all fields", state.Error)
	assert.Zero(t, tokens.Stores())
	assert.Empty(t, emitted)
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	app, tokens := newTestApp(t)
	var routes []string
	events.SetCustomEmitter(func(ctx context.Context, evt events.Event) {
		if nav, ok := evt.Data.(events.NavData); ok {
			routes = append(routes, nav.Route)
		}
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })

	require.NoError(t, tokens.Store(context.Background(), "tok"))
	app.Navigate(screens.RouteHome)
	assert.True(t, app.GetAppSettings().Authenticated)

	require.NoError(t, app.Logout())
	assert.False(t, app.GetAppSettings().Authenticated)
	assert.Equal(t, screens.RouteLogin, app.GetAppSettings().Route)
	assert.Equal(t, []string{screens.RouteHome, screens.RouteLogin}, routes)
}

func TestApp_NavigateIgnoresUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t)
	var routes []string
	events.SetCustomEmitter(func(ctx context.Context, evt events.Event) {
		if nav, ok := evt.Data.(events.NavData); ok {
			routes = append(routes, nav.Route)
		}
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })

	app.Navigate(screens.RouteRegister)
	app.Navigate("/admin")

	assert.Equal(t, screens.RouteRegister, app.GetAppSettings().Route)
	assert.Equal(t, []string{screens.RouteRegister}, routes)
}
