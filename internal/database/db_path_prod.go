//go:build prod

package database

import (
	"os"
	"path/filepath"

	applog "authfront/internal/logger"

	"go.uber.org/zap"
)

// GetDefaultDBPath stores the database in the user's config directory.
func GetDefaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		applog.L().Warn("user config dir unavailable, using fallback db path", zap.Error(err))
		return "authfront.db"
	}

	appDir := filepath.Join(configDir, "authfront")
	if err := os.MkdirAll(appDir, 0o700); err != nil {
		applog.L().Warn("create app config dir failed, using fallback db path", zap.Error(err))
		return "authfront.db"
	}

	return filepath.Join(appDir, "authfront.db")
}
