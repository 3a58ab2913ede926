// Package util carries small cross-cutting helpers shared by the wallet
// core: context-scoped logging and pointer conveniences.
package util

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const ctxKeyLogger contextKey = "logger"

// WithLogger attaches a zerolog logger to the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

// LogFromContext returns the logger attached to the context, falling back
// to the global logger when none was attached.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKeyLogger).(zerolog.Logger); ok {
			return &logger
		}
	}
	return &log.Logger
}
