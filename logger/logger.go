// Package logger provides structured logging utilities built on Go's
// log/slog package.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type contextKey string

const valuesKey contextKey = "logger-values"

// Debug logs a debug-level message using the logger retrieved from the
// context.
func Debug(ctx context.Context, msg string, args ...any) {
	Get(ctx).DebugContext(ctx, msg, args...)
}

// Info logs an info-level message using the logger retrieved from the
// context.
func Info(ctx context.Context, msg string, args ...any) {
	Get(ctx).InfoContext(ctx, msg, args...)
}

// Warn logs a warning-level message using the logger retrieved from the
// context.
func Warn(ctx context.Context, msg string, args ...any) {
	Get(ctx).WarnContext(ctx, msg, args...)
}

// Error logs an error-level message using the logger retrieved from the
// context.
func Error(ctx context.Context, msg string, args ...any) {
	Get(ctx).ErrorContext(ctx, msg, args...)
}

// Options configures the handler ConfigureLogging installs as the process
// default.
type Options struct {
	// JSON selects slog.NewJSONHandler over slog.NewTextHandler.
	JSON bool

	// MinLevel is the minimum level the handler emits.
	MinLevel slog.Level

	// Output defaults to os.Stderr if nil.
	Output io.Writer
}

// ConfigureLogging installs a slog.Logger built from opts as the process
// default and returns it.
func ConfigureLogging(opts Options) *slog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	l := slog.New(&slogErrorLogger{inner: handler})
	slog.SetDefault(l)

	return l
}

// With returns a context carrying additional key-value pairs that Get will
// attach to every logger it returns for that context. args must be an even
// number of arguments, alternating keys and values, exactly as slog.Logger.With
// expects.
func With(ctx context.Context, args ...any) context.Context {
	existing, _ := ctx.Value(valuesKey).([]any)
	combined := append(append([]any(nil), existing...), args...)

	return context.WithValue(ctx, valuesKey, combined)
}

// Get returns a logger. If ctx is non-nil and carries values attached via
// With, they are included as structured attributes.
func Get(ctx ...context.Context) *slog.Logger {
	l := slog.Default()

	if len(ctx) == 0 || ctx[0] == nil {
		return l
	}

	if vals, ok := ctx[0].Value(valuesKey).([]any); ok && len(vals) > 0 {
		l = l.With(vals...)
	}

	return l
}
