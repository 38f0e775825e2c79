package shapeset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with shapeset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCategory adds a category field to the logger.
func (l *Logger) WithCategory(category string) *Logger {
	return &Logger{
		Logger: l.Logger.With("category", category),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogResolve logs a selector resolution.
func (l *Logger) LogResolve(ctx context.Context, mode string, resolved int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "resolve failed",
			"mode", mode,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "resolve completed",
			"mode", mode,
			"resolved", resolved,
		)
	}
}

// WarnReplacementFallback warns that an oversized draw fell back to sampling
// with replacement. scope names the affected category, or "all categories"
// for catalog-wide draws.
func (l *Logger) WarnReplacementFallback(ctx context.Context, scope string, count, available int) {
	l.WarnContext(ctx, "sample size is larger than the number of objects, values sampled with replacement",
		"scope", scope,
		"count", count,
		"available", available,
	)
}

// WarnExtraSampleNums warns that only the first of several sample counts is
// used when no categories were given.
func (l *Logger) WarnExtraSampleNums(ctx context.Context, used, given int) {
	l.WarnContext(ctx, "more than one sample size specified without categories, using the first",
		"used", used,
		"given", given,
	)
}

// LogRender logs a render dispatch.
func (l *Logger) LogRender(ctx context.Context, meshes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "render failed",
			"meshes", meshes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "render completed",
			"meshes", meshes,
		)
	}
}
