package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"authfront/internal/apiclient"
	"authfront/internal/config"
	"authfront/internal/i18n"
	"authfront/internal/logger"
	"authfront/internal/screens"
	"authfront/internal/services"
	"authfront/internal/theme"
	"authfront/internal/tokenstore"
)

// session is everything a subcommand needs, built once per invocation.
type session struct {
	cfg    *config.Config
	tokens tokenstore.Store
	client *apiclient.Client
	auth   services.AuthService
	locale *i18n.Localizer
	theme  *theme.Provider
	out    io.Writer
}

func (s *session) close() {
	if s == nil || s.tokens == nil {
		return
	}
	if err := tokenstore.Close(s.tokens); err != nil {
		logger.Named("authctl").Warn("close token store", zap.Error(err))
	}
}

func (s *session) screenDeps() screens.Deps {
	return screens.Deps{
		Auth:     s.auth,
		Tokens:   s.tokens,
		Nav:      &cliNavigator{out: s.out},
		Notifier: &cliNotifier{out: s.out},
		T:        s.locale,
	}
}

type cliNavigator struct{ out io.Writer }

func (n *cliNavigator) Navigate(route string) {
	fmt.Fprintf(n.out, "-> %s\n", route)
}

type cliNotifier struct{ out io.Writer }

func (n *cliNotifier) Notify(title, message string) {
	fmt.Fprintf(n.out, "%s: %s\n", title, message)
}

func (n *cliNotifier) NotifyError(title, message string) {
	fmt.Fprintf(n.out, "! %s: %s\n", title, message)
}

// newRootCmd returns the command tree and a func releasing what a run opened.
func newRootCmd() (*cobra.Command, func()) {
	var (
		configPath string
		apiURL     string
		lang       string
		sess       *session
	)

	root := &cobra.Command{
		Use:           "authctl",
		Short:         "Sign in, register and call the API from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if apiURL != "" {
				if err := os.Setenv("API_URL", apiURL); err != nil {
					return err
				}
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if lang != "" {
				cfg.Device.Locale = lang
			}
			logger.Init(logger.Config{Env: cfg.Env, Level: cfg.LogLevel, AppName: "authctl"})

			s, err := openSession(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			sess = s
			cmd.SetContext(logger.ToContext(cmdContext(cmd), logger.Named("authctl")))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <user config dir>/authfront/authfront.yaml)")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (env API_URL)")
	root.PersistentFlags().StringVar(&lang, "lang", "", "UI language, e.g. en or tr (env APP_LOCALE)")

	get := func() *session { return sess }
	root.AddCommand(
		newLoginCmd(get),
		newRegisterCmd(get),
		newLogoutCmd(get),
		newStatusCmd(get),
		newCallCmd(get),
		newStringsCmd(get),
		newPaletteCmd(get),
	)
	return root, func() {
		sess.close()
		_ = logger.Sync()
	}
}

func openSession(cfg *config.Config, out io.Writer) (*session, error) {
	tokens, err := tokenstore.New(cfg)
	if err != nil {
		return nil, err
	}
	client, err := apiclient.New(cfg.APIURL, tokens,
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithLogger(logger.Named("authctl.api")),
		apiclient.WithHTTPClient(&fasthttp.Client{Name: "authctl"}),
	)
	if err != nil {
		_ = tokenstore.Close(tokens)
		return nil, err
	}
	loc, err := i18n.NewDefault(cfg.Device.Locale)
	if err != nil {
		_ = tokenstore.Close(tokens)
		return nil, err
	}
	return &session{
		cfg:    cfg,
		tokens: tokens,
		client: client,
		auth:   services.NewServices(client, tokens).Auth,
		locale: loc,
		theme:  theme.NewProvider(cfg.Device.ColorScheme),
		out:    out,
	}, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
