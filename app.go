package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"authfront/internal/config"
	"authfront/internal/events"
	"authfront/internal/i18n"
	"authfront/internal/logger"
	"authfront/internal/screens"
	"authfront/internal/services"
	"authfront/internal/theme"
	"authfront/internal/tokenstore"
)

// App struct
type App struct {
	ctx      context.Context
	cfg      *config.Config
	log      *zap.Logger
	tokens   tokenstore.Store
	auth     services.AuthService
	theme    *theme.Provider
	locale   *i18n.Localizer
	login    *screens.LoginScreen
	register *screens.RegisterScreen

	mu          sync.Mutex
	route       string
	unsubscribe []func()
}

// AppSettings is what the frontend needs to render its first frame.
type AppSettings struct {
	Theme         theme.Mode    `json:"theme"`
	Palette       theme.Palette `json:"palette"`
	Language      string        `json:"language"`
	Languages     []string      `json:"languages"`
	Route         string        `json:"route"`
	Authenticated bool          `json:"authenticated"`
	Username      string        `json:"username,omitempty"`
	APIURL        string        `json:"apiUrl"`
}

// NewApp creates a new App application struct
func NewApp(cfg *config.Config, tokens tokenstore.Store, auth services.AuthService, th *theme.Provider, loc *i18n.Localizer) *App {
	a := &App{
		ctx:    context.Background(),
		cfg:    cfg,
		log:    logger.Named("app"),
		tokens: tokens,
		auth:   auth,
		theme:  th,
		locale: loc,
		route:  screens.RouteLogin,
	}
	deps := screens.Deps{Auth: auth, Tokens: tokens, Nav: a, Notifier: a, T: loc}
	a.login = screens.NewLoginScreen(deps)
	a.register = screens.NewRegisterScreen(deps)
	return a
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = logger.ToContext(ctx, a.log)
	events.EnableRuntimeEmitter()

	a.mu.Lock()
	a.unsubscribe = append(a.unsubscribe,
		a.theme.Subscribe(func(mode theme.Mode, palette theme.Palette) {
			events.Emit(ctx, events.NewThemeChanged(mode, palette))
		}),
		a.locale.Subscribe(func(lang string) {
			events.Emit(ctx, events.NewLocaleChanged(lang))
		}),
	)
	a.mu.Unlock()

	if ok, err := a.auth.Authenticated(a.ctx); err != nil {
		a.log.Warn("could not read stored token", zap.Error(err))
	} else if ok {
		a.Navigate(screens.RouteHome)
	}
	a.log.Info("started",
		logger.Theme(string(a.theme.Mode())),
		logger.Locale(a.locale.Language()),
		zap.String("api_url", a.cfg.APIURL))
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	a.mu.Lock()
	unsubscribe := a.unsubscribe
	a.unsubscribe = nil
	a.mu.Unlock()
	for _, fn := range unsubscribe {
		fn()
	}

	a.login.Unmount()
	a.register.Unmount()

	if err := tokenstore.Close(a.tokens); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to close token store: %v", err))
	}
}

// Navigate switches the visible screen and tells the frontend. Unknown
// routes are ignored.
func (a *App) Navigate(route string) {
	switch route {
	case screens.RouteLogin, screens.RouteRegister, screens.RouteHome:
	default:
		a.log.Warn("ignoring unknown route", zap.String("route", route))
		return
	}
	a.mu.Lock()
	a.route = route
	a.mu.Unlock()
	events.Emit(a.ctx, events.NewNavChanged(route))
}

// Notify shows a native message box.
func (a *App) Notify(title, message string) {
	a.showNotice(runtime.InfoDialog, title, message)
}

// NotifyError shows a native error box.
func (a *App) NotifyError(title, message string) {
	a.showNotice(runtime.ErrorDialog, title, message)
}

func (a *App) showNotice(dialogType runtime.DialogType, title, message string) {
	events.Emit(a.ctx, events.NewNoticeShown(title, message))
	if _, err := runtime.MessageDialog(a.ctx, runtime.MessageDialogOptions{
		Type:    dialogType,
		Title:   title,
		Message: message,
	}); err != nil {
		a.log.Warn("message dialog failed", zap.Error(err))
	}
}

// Login submits the login form and returns its resulting state.
func (a *App) Login(username, password string) screens.LoginState {
	a.login.SetUsername(username)
	a.login.SetPassword(password)
	_ = a.login.Submit(a.ctx)
	return a.login.State()
}

// Register submits the registration form and returns its resulting state.
func (a *App) Register(username, email, password string) screens.RegisterState {
	a.register.SetUsername(username)
	a.register.SetEmail(email)
	a.register.SetPassword(password)
	_ = a.register.Submit(a.ctx)
	return a.register.State()
}

func (a *App) Logout() error {
	if err := a.auth.Logout(a.ctx); err != nil {
		a.log.Error("logout failed", zap.Error(err))
		return err
	}
	a.Navigate(screens.RouteLogin)
	return nil
}

func (a *App) ToggleTheme() theme.Mode {
	return a.theme.Toggle()
}

func (a *App) ToggleLanguage() string {
	return a.locale.Toggle()
}

func (a *App) ChangeLanguage(code string) string {
	return a.locale.ChangeLanguage(code)
}

func (a *App) Translate(key string, vars map[string]any) string {
	if len(vars) == 0 {
		return a.locale.T(key)
	}
	return a.locale.T(key, vars)
}

// GetAppSettings returns the current application settings
func (a *App) GetAppSettings() AppSettings {
	token, authenticated, err := a.tokens.Retrieve(a.ctx)
	if err != nil {
		a.log.Warn("could not read stored token", zap.Error(err))
	}
	var username string
	if authenticated {
		if info, err := services.DescribeToken(token); err == nil {
			username = info.Username
		}
	}

	a.mu.Lock()
	route := a.route
	a.mu.Unlock()

	return AppSettings{
		Theme:         a.theme.Mode(),
		Palette:       a.theme.Palette(),
		Language:      a.locale.Language(),
		Languages:     a.locale.Supported(),
		Route:         route,
		Authenticated: authenticated,
		Username:      username,
		APIURL:        a.cfg.APIURL,
	}
}
