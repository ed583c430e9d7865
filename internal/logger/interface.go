package logger

import "context"

// Logger is the leveled logging interface used across the pipeline.
// Context is accepted on every call so implementations can pick up
// per-run correlation fields later without changing call sites.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
