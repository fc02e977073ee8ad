// Package observability provides opt-in observability for cfgone loads:
// structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Everything is opt-in and has a no-op implementation when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds load context to a logger.
// Returns a new logger with load_id and filename fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "load-123", "config.yaml")
//	enriched.Info("resolving") // includes load_id, filename
func EnrichLogger(logger *slog.Logger, loadID, filename string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("load_id", loadID),
		slog.String("filename", filename),
	)
}

// LogLoadStart logs the start of a config load.
func LogLoadStart(logger *slog.Logger, startDir string) {
	if logger == nil {
		return
	}
	logger.Info("config load starting",
		slog.String("start_dir", startDir),
	)
}

// LogDiscovered logs the discovered config file path.
func LogDiscovered(logger *slog.Logger, path string) {
	if logger == nil {
		return
	}
	logger.Debug("config file discovered",
		slog.String("path", path),
	)
}

// LogLoadComplete logs successful load completion.
func LogLoadComplete(logger *slog.Logger, durationMs float64, fileCount int) {
	if logger == nil {
		return
	}
	logger.Info("config load completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("files_parsed", fileCount),
	)
}

// LogLoadError logs load failure.
func LogLoadError(logger *slog.Logger, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("config load failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogFileParsed logs one file of the extends chain being parsed.
func LogFileParsed(logger *slog.Logger, path string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("config file parsed",
		slog.String("path", path),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogFileError logs a file-level parse or read failure.
func LogFileError(logger *slog.Logger, path string, err error) {
	if logger == nil {
		return
	}
	logger.Error("config file failed",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
