// Package logger builds the zap loggers used across the overlay engine.
//
// Debug builds write JSON lines to a size-capped rotating file; everything else
// gets a no-op logger so the host's terminal output is never disturbed.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// Options configures logger construction
type Options struct {
	Debug      bool   // false yields a no-op logger
	Path       string // log file path, required when Debug is set
	MaxSizeMB  int    // rotation threshold, defaults to 10
	MaxBackups int    // rotated files kept, defaults to 3
}

// New builds a logger writing to a rotating file
func New(opts Options) (*zap.Logger, error) {
	if !opts.Debug || opts.Path == "" {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, err
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	backups := opts.MaxBackups
	if backups <= 0 {
		backups = defaultMaxBackups
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSize,
		MaxBackups: backups,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zap.DebugLevel)
	return zap.New(core, zap.AddCaller()), nil
}

// Sampled wraps l so that identical messages are logged at most first times per
// interval, then every thereafter-th occurrence
func Sampled(l *zap.Logger, interval time.Duration, first, thereafter int) *zap.Logger {
	return l.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewSamplerWithOptions(c, interval, first, thereafter)
	}))
}
