package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Once suppresses repeated warnings for the same key
// Zero value is ready to use
type Once struct {
	seen sync.Map
}

// Warn logs msg the first time key is seen; returns true if it logged
func (o *Once) Warn(l *zap.Logger, key, msg string, fields ...zap.Field) bool {
	if _, loaded := o.seen.LoadOrStore(key, struct{}{}); loaded {
		return false
	}
	l.Warn(msg, fields...)
	return true
}
