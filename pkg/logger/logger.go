// Package logger provides the zap-based application logger.
package logger

import (
	"os"

	"go.uber.org/zap"
)

// Log is the global zap logger used across the project. It carries the
// service name on every entry.
var Log *zap.Logger

// Init configures the global logger in production mode. LOG_LEVEL
// overrides the default info level (accepts zap level names such as
// "debug" or "warn"; unknown values are ignored).
func Init() {
	cfg := zap.NewProductionConfig()
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := zap.ParseAtomicLevel(lvl); err == nil {
			cfg.Level = parsed
		}
	}
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	Log = l.Named("foodorders")
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
