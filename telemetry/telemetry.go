// Package telemetry provides an injectable OpenTelemetry tracer for the
// domain-stack packages, without taking on any exporter or environment
// dependency of its own.
package telemetry

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/latticetree/rbtree"

var (
	mu       sync.RWMutex //nolint:gochecknoglobals
	provider oteltrace.TracerProvider
)

// SetProvider installs provider as the source of Tracer. Callers that want
// spans exported somewhere (OTLP, stdout, whatever their own stack uses)
// wire their own TracerProvider here; nothing in this module configures an
// exporter, since doing so would require endpoint and credential
// configuration this library has no business owning.
func SetProvider(p oteltrace.TracerProvider) {
	mu.Lock()
	defer mu.Unlock()

	provider = p
}

// Tracer returns the currently installed tracer. Absent a call to
// SetProvider, it falls back to otel.GetTracerProvider()'s global provider,
// which is a no-op until something else installs a real one.
func Tracer() oteltrace.Tracer {
	mu.RLock()
	p := provider
	mu.RUnlock()

	if p == nil {
		p = otel.GetTracerProvider()
	}

	return p.Tracer(tracerName)
}

// NewInProcessProvider returns a TracerProvider with no exporter attached —
// spans are created and sampled but go nowhere. It exists so that code
// exercising this package's span-producing paths (runqueue.Scheduler.Dispatch)
// has something non-nil to install without requiring a real collector, and
// so that callers who only want local span recording via
// sdktrace.WithSpanProcessor have something to build on.
func NewInProcessProvider(opts ...trace.TracerProviderOption) *trace.TracerProvider {
	return trace.NewTracerProvider(opts...)
}
