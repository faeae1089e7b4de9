// Package observability provides structured logging and tracing helpers
// for the copilot planning engine. Logs are emitted via log/slog and are
// correlated with OpenTelemetry spans when a span is active on the context.
package observability

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// NewJSONHandler creates a JSON slog handler, suitable for production.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// NewTextHandler creates a human-readable slog handler for development.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// NewLogger builds a *slog.Logger from a level name ("debug", "info",
// "warn", "error") and format ("json" or "text"). Unknown values fall
// back to info-level text output.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = NewJSONHandler(w, lvl)
	} else {
		handler = NewTextHandler(w, lvl)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithTrace returns a logger annotated with the trace and span IDs of
// the span active on ctx, if any. Logs produced during a traced planning
// call can then be joined back to the trace.
func WithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return logger
	}
	sc := span.SpanContext()
	return logger.With(
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	)
}

// sensitive field names redacted by RedactArgs, normalized to lowercase
// with underscores stripped.
var sensitiveFields = map[string]bool{
	"prompt":  true,
	"prompts": true,
	"apikey":  true,
	"secret":  true,
	"token":   true,
}

// RedactArgs replaces values of sensitive keys in slog key-value pairs
// with "[REDACTED]". Args with an odd length are returned unchanged.
func RedactArgs(args []any) []any {
	if len(args)%2 != 0 {
		return args
	}

	redacted := make([]any, len(args))
	copy(redacted, args)

	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		normalized := strings.ToLower(strings.ReplaceAll(key, "_", ""))
		if sensitiveFields[normalized] {
			redacted[i+1] = "[REDACTED]"
		}
	}

	return redacted
}
