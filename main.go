package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/valyala/fasthttp"
	"github.com/wailsapp/wails/v2"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"go.uber.org/zap"

	"authfront/internal/apiclient"
	"authfront/internal/config"
	"authfront/internal/i18n"
	"authfront/internal/logger"
	"authfront/internal/services"
	"authfront/internal/theme"
	"authfront/internal/tokenstore"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Env: cfg.Env, Level: cfg.LogLevel, AppName: cfg.AppName})
	defer logger.Sync()
	log := logger.Named("main")

	tokens, err := tokenstore.New(cfg)
	if err != nil {
		log.Error("failed to open token store", zap.Error(err))
		os.Exit(1)
	}

	client, err := apiclient.New(cfg.APIURL, tokens,
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithLogger(logger.Named("api")),
		apiclient.WithHTTPClient(&fasthttp.Client{Name: cfg.AppName + "-desktop"}),
	)
	if err != nil {
		log.Error("failed to create API client", zap.Error(err))
		os.Exit(1)
	}

	locale, err := i18n.NewDefault(cfg.Device.Locale)
	if err != nil {
		log.Error("failed to load translations", zap.Error(err))
		os.Exit(1)
	}

	svc := services.NewServices(client, tokens)
	app := NewApp(cfg, tokens, svc.Auth, theme.NewProvider(cfg.Device.ColorScheme), locale)

	err = wails.Run(&options.App{
		Title:  "Authfront",
		Width:  480,
		Height: 720,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Authfront",
		},
		BackgroundColour:   &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		Logger:             logger.NewWailsLogger(logger.Named("wails")),
		LogLevel:           wailslogger.INFO,
		LogLevelProduction: wailslogger.WARNING,
		OnStartup:          app.startup,
		OnShutdown:         app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		log.Error("wails run failed", zap.Error(err))
	}
}
