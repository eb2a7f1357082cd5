// Package logger wraps zerolog so the rest of the code depends on one
// injected type rather than on a global.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the logger options.
type Config struct {
	Env   string // "development" gets a readable console writer, anything else JSON
	Level string // trace, debug, info, warn, error
}

// Logger is a thin wrapper over zerolog for injection.
type Logger struct {
	zl zerolog.Logger
}

// New builds a structured logger and also points zerolog's global logger at
// it, for any library that logs through the global.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything. Used by tests and as the
// default when no logger is injected.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With starts a sublogger with fixed fields.
func (l *Logger) With() zerolog.Context { return l.zl.With() }
