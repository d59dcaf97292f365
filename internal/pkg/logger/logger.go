package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Production env logs JSON, anything else
// uses the colored console encoder.
func New(level, env string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("geçersiz log seviyesi %q: %w", level, err)
	}

	var cfg zap.Config
	if strings.EqualFold(env, "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// Must is New for mains; it falls back to a production logger on a bad level.
func Must(level, env string) *zap.Logger {
	l, err := New(level, env)
	if err == nil {
		return l
	}
	l = zap.Must(zap.NewProduction())
	l.Warn("invalid log config, using defaults", zap.Error(err))
	return l
}
