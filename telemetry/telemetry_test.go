package telemetry_test

import (
	"testing"

	"github.com/latticetree/rbtree/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer_DefaultsToNoopProvider(t *testing.T) {
	tr := telemetry.Tracer()
	require.NotNil(t, tr)

	_, span := tr.Start(t.Context(), "test-span")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid())
}

func TestSetProvider_InstallsInProcessProvider(t *testing.T) {
	provider := telemetry.NewInProcessProvider()
	telemetry.SetProvider(provider)

	t.Cleanup(func() {
		telemetry.SetProvider(nil)
	})

	tr := telemetry.Tracer()
	require.NotNil(t, tr)

	_, span := tr.Start(t.Context(), "test-span")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
}
