package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the cfgone tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("cfgone")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartLoadSpan starts a span for an entire config load.
	// Returns the context with span and the span itself.
	StartLoadSpan(ctx context.Context, filename, loadID string) (context.Context, trace.Span)

	// StartFileSpan starts a span for a single file of the extends chain.
	// The file span should be a child of the load span.
	StartFileSpan(ctx context.Context, path string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartLoadSpan starts a span for an entire config load.
func (m *otelSpanManager) StartLoadSpan(ctx context.Context, filename, loadID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "cfgone.load",
		trace.WithAttributes(
			attribute.String("config.filename", filename),
			attribute.String("load.id", loadID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartFileSpan starts a span for a single file parse.
func (m *otelSpanManager) StartFileSpan(ctx context.Context, path string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "cfgone.file",
		trace.WithAttributes(
			attribute.String("file.path", path),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
