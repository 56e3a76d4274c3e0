// Package logger provides the process-wide zap logger.
//
// Init is called once from main with the configured level and environment.
// Code that has a context should use From(ctx) so request scoped fields
// (request_id, screen) follow the call; everything else uses L or Named.
//
//	logger.Init(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})
//	defer logger.Sync()
//
//	log := logger.From(ctx)
//	log.Info("login submitted", logger.Screen("login"))
package logger
