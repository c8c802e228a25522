// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the CLI and the file layer.
package logger

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available on *Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a JSON logger writing to w at level. Every entry carries a
// "role" field and a timestamp.
func New(role string, w io.Writer, level zerolog.Level) *Logger {
	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{logger}
}

// NewConsole is New with zerolog's human-readable console output.
func NewConsole(role string, w io.Writer, level zerolog.Level) *Logger {
	return New(role, zerolog.ConsoleWriter{Out: w, NoColor: true}, level)
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// ParseLevel maps a level name ("debug", "info", "warn", ...) to a zerolog
// level. An empty name means warn.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
}

// WithContext attaches l to ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx. Without one it returns a
// disabled logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
