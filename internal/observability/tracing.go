package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by the planning engine.
const TracerName = "github.com/salescopilot/copilot"

// StartSpan starts a span on the global tracer provider. When no SDK is
// installed this is a no-op span, so callers do not need to guard against
// tracing being disabled.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, name, opts...)
}
