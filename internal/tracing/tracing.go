// Package tracing starts OpenTelemetry spans for lvtree operations.
// Spans go to the global TracerProvider, a no-op unless the host installs one.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies lvtree spans.
const TracerName = "github.com/katalvlaran/lvtree"

// StartSpan starts a span named "lvtree.<name>".
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, fmt.Sprintf("lvtree.%s", name), opts...)
}

// Fail records err on span and marks it failed. It returns err unchanged.
func Fail(span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	return err
}
