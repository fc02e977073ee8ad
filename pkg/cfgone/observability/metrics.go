package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records config load metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordLoad records a completed top-level load with its outcome,
	// duration, and the number of files parsed along the extends chain.
	RecordLoad(ctx context.Context, success bool, duration time.Duration, fileCount int)

	// RecordFileParse records a single file parse with its duration and error status.
	RecordFileParse(ctx context.Context, path string, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	loads       metric.Int64Counter
	loadLatency metric.Float64Histogram
	chainLength metric.Int64Histogram
	fileParses  metric.Int64Counter
	fileErrors  metric.Int64Counter
	fileLatency metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("cfgone")

	loads, err := meter.Int64Counter("cfgone.loads",
		metric.WithDescription("Number of config loads"),
	)
	if err != nil {
		return nil, err
	}

	loadLatency, err := meter.Float64Histogram("cfgone.load.latency_ms",
		metric.WithDescription("Config load latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	chainLength, err := meter.Int64Histogram("cfgone.load.chain_length",
		metric.WithDescription("Number of files parsed per load"),
	)
	if err != nil {
		return nil, err
	}

	fileParses, err := meter.Int64Counter("cfgone.file.parses",
		metric.WithDescription("Number of config file parses"),
	)
	if err != nil {
		return nil, err
	}

	fileErrors, err := meter.Int64Counter("cfgone.file.errors",
		metric.WithDescription("Number of config file parse errors"),
	)
	if err != nil {
		return nil, err
	}

	fileLatency, err := meter.Float64Histogram("cfgone.file.latency_ms",
		metric.WithDescription("Config file parse latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		loads:       loads,
		loadLatency: loadLatency,
		chainLength: chainLength,
		fileParses:  fileParses,
		fileErrors:  fileErrors,
		fileLatency: fileLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordLoad records a completed top-level load.
func (m *otelMetrics) RecordLoad(ctx context.Context, success bool, duration time.Duration, fileCount int) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.loads.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.loadLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.chainLength.Record(ctx, int64(fileCount), metric.WithAttributes(attrs...))
}

// RecordFileParse records a single file parse.
func (m *otelMetrics) RecordFileParse(ctx context.Context, path string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("path", path),
	}

	m.fileParses.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.fileLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.fileErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
