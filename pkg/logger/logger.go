// Package logger provides context-aware structured logging on top of zap.
// A logger travels in the request context; handlers and services log through
// the package-level helpers so request-scoped fields are carried everywhere.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvDev selects the human-readable development configuration at debug level.
	EnvDev = "dev"
	// EnvProd selects the JSON production configuration at info level.
	EnvProd = "prod"
)

// global is the process-wide fallback used when a context carries no logger.
// It starts as a nop logger so logging is safe before Setup runs.
var global = zap.NewNop() //nolint: gochecknoglobals

// Setup initializes the global logger for the given environment. Any value
// other than EnvDev selects the production configuration.
func Setup(environment string) {
	if environment == EnvDev {
		global, _ = zap.NewDevelopment()

		return
	}

	global, _ = zap.NewProduction()
}

// key is the context key under which a logger is stored.
type key struct{}

// Get returns the logger stored in ctx, or the global logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return global
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a context whose logger carries the extra fields on every
// subsequent log call made through that context.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Named returns a context whose logger is namespaced with the given component
// name, e.g. "serving" or "provisioner".
func Named(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, Get(ctx).Named(name))
}

// Sync flushes any buffered log entries on the context's logger.
func Sync(ctx context.Context) {
	_ = Get(ctx).Sync()
}

// Debug logs a message at debug level with the given fields.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs a message at info level with the given fields.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs a message at warn level with the given fields.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs a message at error level with the given fields.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs a message at fatal level with the given fields and exits.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
