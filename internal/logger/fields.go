package logger

import (
	"time"

	"go.uber.org/zap"
)

func RequestID(v string) zap.Field { return zap.String("request_id", v) }

func Method(v string) zap.Field { return zap.String("method", v) }

func Path(v string) zap.Field { return zap.String("path", v) }

func Status(v int) zap.Field { return zap.Int("status", v) }

func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

// Screen names the form that produced the entry.
func Screen(v string) zap.Field { return zap.String("screen", v) }

func Locale(v string) zap.Field { return zap.String("locale", v) }

func Theme(v string) zap.Field { return zap.String("theme", v) }

// Backend names the token store implementation.
func Backend(v string) zap.Field { return zap.String("backend", v) }
