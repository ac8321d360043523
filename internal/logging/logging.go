// Package logging provides the structured, context-scoped logger used
// throughout focusctl: a zerolog.Logger attached to a context.Context
// via WithContext/FromContext.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// Config controls logger construction.
type Config struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text" or "json"
}

// ParseLevel maps a level string to a zerolog.Level, defaulting to
// Info for anything unrecognized.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New builds a zerolog.Logger writing to w per cfg. "json" writes raw
// JSON lines; anything else ("text" included) uses zerolog's
// human-readable console writer.
func New(w io.Writer, cfg Config) zerolog.Logger {
	var out io.Writer = w
	if strings.ToLower(cfg.Format) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	}
	return zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// NewDefault builds a logger writing to stderr, so that stdout stays
// reserved for the single focus command line (spec.md §6).
func NewDefault(cfg Config) zerolog.Logger {
	return New(os.Stderr, cfg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to ctx, or a disabled
// logger if none was attached.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}
