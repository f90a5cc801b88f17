// Package logging carries a zerolog logger through a context.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type logKey struct{}

// WithLogger attaches logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}

// Log returns the logger attached to ctx, or the global logger when the
// context carries none.
func Log(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(logKey{}).(*zerolog.Logger); ok {
		return logger
	}
	return &log.Logger
}
