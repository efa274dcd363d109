package ssm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// startTransitionSpan creates a span covering one guarded call.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startTransitionSpan(ctx context.Context, session *Session) (context.Context, trace.Span) {
	tracer := otel.Tracer("ssm")
	ctx, span := tracer.Start(ctx, "ssm.transition."+session.event)
	span.SetAttributes(
		attribute.String("event", session.event),
		attribute.String("from_state", session.from),
		attribute.String("to_state", session.to),
		attribute.String("session_id", session.id),
	)

	return ctx, span
}

// recordSpanOutcome marks the span with the call's outcome before it ends.
func recordSpanOutcome(span trace.Span, outcome string, err error) {
	span.SetAttributes(attribute.String("outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return
	}

	span.SetStatus(codes.Ok, outcome)
}
