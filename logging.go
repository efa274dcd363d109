package ssm

import (
	"context"
	"log/slog"
	"time"
)

// Logger provides logging hooks for the transition protocol. All four
// outcomes of a guarded call are reported: committed, rejected (no legal
// transition), cancelled (from within the behavior), and failed (behavior
// returned an error).
type Logger interface {
	TransitionCommitted(ctx context.Context, event, from, to string, duration time.Duration)
	TransitionRejected(ctx context.Context, event, state string)
	TransitionCancelled(ctx context.Context, event, from, to string, duration time.Duration)
	TransitionFailed(ctx context.Context, event, from string, duration time.Duration, err error)
}

// DefaultLogger implements Logger using slog.
type DefaultLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a logger backed by slog.Default().
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		logger: slog.Default(),
	}
}

// NewSlogLogger creates a logger backed by the given slog logger.
func NewSlogLogger(logger *slog.Logger) *DefaultLogger {
	return &DefaultLogger{
		logger: logger,
	}
}

func (l *DefaultLogger) TransitionCommitted(
	ctx context.Context, event, from, to string, duration time.Duration,
) {
	l.logger.InfoContext(ctx, "Transition committed",
		"event", event,
		"from", from,
		"to", to,
		"duration_ms", duration.Milliseconds(),
	)
}

func (l *DefaultLogger) TransitionRejected(ctx context.Context, event, state string) {
	l.logger.WarnContext(ctx, "Transition rejected",
		"event", event,
		"state", state,
	)
}

func (l *DefaultLogger) TransitionCancelled(
	ctx context.Context, event, from, to string, duration time.Duration,
) {
	l.logger.InfoContext(ctx, "Transition cancelled",
		"event", event,
		"from", from,
		"candidate_to", to,
		"duration_ms", duration.Milliseconds(),
	)
}

func (l *DefaultLogger) TransitionFailed(
	ctx context.Context, event, from string, duration time.Duration, err error,
) {
	l.logger.ErrorContext(ctx, "Transition failed",
		"event", event,
		"from", from,
		"duration_ms", duration.Milliseconds(),
		"error", err,
	)
}

// NopLogger discards all transition logging.
type NopLogger struct{}

func (NopLogger) TransitionCommitted(context.Context, string, string, string, time.Duration) {}

func (NopLogger) TransitionRejected(context.Context, string, string) {}

func (NopLogger) TransitionCancelled(context.Context, string, string, string, time.Duration) {}

func (NopLogger) TransitionFailed(context.Context, string, string, time.Duration, error) {}
