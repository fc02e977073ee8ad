package cfgone

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/cfgone/pkg/cfgone/observability"
)

// loadConfig holds configuration for a Load call.
type loadConfig struct {
	filename string
	startDir string
	markers  []string
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
}

// defaultLoadConfig returns the default load configuration: the conventional
// filename, discovery from the current working directory, and no-op
// observability.
func defaultLoadConfig() loadConfig {
	return loadConfig{
		filename: DefaultFilename,
		markers:  DefaultRootMarkers,
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
	}
}

// Option configures a Load call.
type Option func(*loadConfig)

// WithFilename sets the config file name to discover.
// Default: "config.yaml"
func WithFilename(name string) Option {
	return func(c *loadConfig) {
		if name != "" {
			c.filename = name
		}
	}
}

// WithStartDir sets the directory discovery starts from.
// Default: the process's current working directory.
//
// Injecting the start directory keeps Load testable without chdir.
func WithStartDir(dir string) Option {
	return func(c *loadConfig) {
		c.startDir = dir
	}
}

// WithRootMarkers sets the file and directory names that identify a project
// root during discovery.
// Default: DefaultRootMarkers
func WithRootMarkers(markers []string) Option {
	return func(c *loadConfig) {
		if len(markers) > 0 {
			c.markers = markers
		}
	}
}

// WithLogger sets a structured logger for load progress. A nil logger
// disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *loadConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder for load operations.
// Default: observability.NoopMetrics
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *loadConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing sets the span manager for load operations.
// Default: observability.NoopSpanManager
func WithTracing(s observability.SpanManager) Option {
	return func(c *loadConfig) {
		if s != nil {
			c.spans = s
		}
	}
}

// observer carries per-load observability state through the recursive
// loader. A nil observer is valid and records nothing.
type observer struct {
	ctx     context.Context
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	files   int
}

// fileSpan opens a span for one file of the extends chain and returns the
// function that closes it.
func (o *observer) fileSpan(path string) func(err error) {
	if o == nil {
		return func(error) {}
	}
	_, span := o.spans.StartFileSpan(o.ctx, path)
	return func(err error) {
		o.spans.EndSpanWithError(span, err)
	}
}

// fileParsed records one file's parse outcome.
func (o *observer) fileParsed(path string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.files++
	o.metrics.RecordFileParse(o.ctx, path, duration, err)
	if err != nil {
		observability.LogFileError(o.logger, path, err)
		return
	}
	observability.LogFileParsed(o.logger, path, float64(duration.Milliseconds()))
}

// Load discovers, loads, and resolves the configuration, returning an Object
// over the merged result.
//
// Discovery uses the three-tier search described in DiscoverPath. The
// extends chain of the discovered file is resolved recursively and merged
// with override precedence. There is no process-wide config instance: each
// call returns a fresh Object owned by the caller.
//
// The context is used for trace and metric propagation only; loading is
// synchronous and does not observe cancellation.
//
// Errors of the package's own kinds (ErrNotFound, ErrCircularExtends,
// ErrMalformedConfig, ErrInvalidExtends, ErrNotMapping) propagate unchanged;
// any other failure is wrapped with a generic load error.
func Load(ctx context.Context, opts ...Option) (*Object, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	obj, err := load(ctx, cfg)
	if err != nil && !isConfigError(err) {
		return nil, fmt.Errorf("unexpected error loading config: %w", err)
	}
	return obj, err
}

func load(ctx context.Context, cfg loadConfig) (*Object, error) {
	startDir := cfg.startDir
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		startDir = wd
	}

	loadID := uuid.NewString()
	logger := observability.EnrichLogger(cfg.logger, loadID, cfg.filename)
	start := time.Now()

	ctx, span := cfg.spans.StartLoadSpan(ctx, cfg.filename, loadID)
	observability.LogLoadStart(logger, startDir)

	obs := &observer{ctx: ctx, logger: logger, metrics: cfg.metrics, spans: cfg.spans}

	obj, err := func() (*Object, error) {
		path, err := discoverPath(cfg.filename, startDir, cfg.markers)
		if err != nil {
			return nil, err
		}
		observability.LogDiscovered(logger, path)

		resolved, err := loadFile(path, make(map[string]struct{}), "", obs)
		if err != nil {
			return nil, err
		}
		return New(resolved)
	}()

	duration := time.Since(start)
	cfg.metrics.RecordLoad(ctx, err == nil, duration, obs.files)
	cfg.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogLoadError(logger, err, float64(duration.Milliseconds()))
		return nil, err
	}
	observability.LogLoadComplete(logger, float64(duration.Milliseconds()), obs.files)
	return obj, nil
}
