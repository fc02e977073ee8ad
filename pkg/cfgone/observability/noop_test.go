package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	// Must not panic or allocate providers.
	m := NoopMetrics{}
	ctx := context.Background()

	m.RecordLoad(ctx, true, time.Second, 1)
	m.RecordLoad(ctx, false, 0, 0)
	m.RecordFileParse(ctx, "/srv/config.yaml", time.Millisecond, nil)
	m.RecordFileParse(ctx, "/srv/bad.yaml", time.Millisecond, errors.New("parse"))
}

func TestNoopSpanManager(t *testing.T) {
	s := NoopSpanManager{}
	ctx := context.Background()

	loadCtx, loadSpan := s.StartLoadSpan(ctx, "config.yaml", "load-1")
	assert.Equal(t, ctx, loadCtx, "noop span manager must not derive a new context")
	assert.False(t, loadSpan.IsRecording())

	fileCtx, fileSpan := s.StartFileSpan(ctx, "/srv/config.yaml")
	assert.Equal(t, ctx, fileCtx)
	assert.False(t, fileSpan.IsRecording())

	// None of these should panic.
	s.EndSpanWithError(loadSpan, nil)
	s.EndSpanWithError(fileSpan, errors.New("boom"))
	s.EndSpanWithError(nil, nil)
	s.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
}

func TestOtelSpanManager(t *testing.T) {
	s := NewSpanManager()
	ctx := context.Background()

	// With no provider configured the global tracer is a no-op, but the
	// lifecycle must still be safe end to end.
	loadCtx, span := s.StartLoadSpan(ctx, "config.yaml", "load-1")
	assert.NotNil(t, loadCtx)
	assert.NotNil(t, span)

	_, fileSpan := s.StartFileSpan(loadCtx, "/srv/config.yaml")
	s.EndSpanWithError(fileSpan, errors.New("parse"))
	s.EndSpanWithError(span, nil)
	s.EndSpanWithError(nil, nil)
	s.AddSpanEvent(loadCtx, "discovered", attribute.String("path", "/srv/config.yaml"))
}
