// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostic logging
//
// Purpose:
//   - Tagged one-line diagnostics for the driver: script steps, rejected
//     resizes, configuration problems.
//   - Backed by a package-level zap logger so output stays structured.
//
// ⚠️ Never call from the ring package; the container itself does not log.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger atomic.Pointer[zap.Logger]
)

func init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// SetLogger replaces the sink.  A nil logger silences output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Logger returns the current sink.
func Logger() *zap.Logger { return logger.Load() }

// SetLevel parses a level name ("debug", "info", "warn", "error").
func SetLevel(name string) error {
	return level.UnmarshalText([]byte(name))
}

// DropError logs err under prefix at error level.  A nil err logs the
// prefix alone as a warning, which is how callers emit bare tags.
func DropError(prefix string, err error) {
	l := logger.Load()
	if err != nil {
		l.Error(prefix, zap.Error(err))
		return
	}
	l.Warn(prefix)
}

// DropMessage logs a tagged informational line.
func DropMessage(prefix, message string) {
	logger.Load().Info(prefix, zap.String("msg", message))
}

// Sync flushes buffered output; call once before exit.
func Sync() {
	_ = logger.Load().Sync()
}
