package logger

import (
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"go.uber.org/zap"
)

// WailsLogger routes the desktop runtime's own log lines into zap.
type WailsLogger struct {
	log *zap.Logger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

func NewWailsLogger(l *zap.Logger) *WailsLogger {
	if l == nil {
		l = Named("wails")
	}
	return &WailsLogger{log: l.WithOptions(zap.AddCallerSkip(1))}
}

func (w *WailsLogger) Print(message string)   { w.log.Info(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error(message) }

// Fatal logs at error level; the runtime decides whether to exit.
func (w *WailsLogger) Fatal(message string) { w.log.Error(message) }
