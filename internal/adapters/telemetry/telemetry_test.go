package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/internal/adapters/telemetry"
)

func TestOTelTracer_RecordsNestedSpans(t *testing.T) {
	tracer := telemetry.NewOTelTracer()
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	ctx, root := tracer.Start(t.Context(), "plan")
	root.SetAttribute("targets", 2)
	root.SetAttribute("job", "wasmtc.yaml")
	root.SetAttribute("write", true)
	root.SetAttribute("ratio", 0.5)
	root.SetAttribute("names", []string{"a", "b"})
	root.SetAttribute("other", struct{}{})

	_, child := tracer.Start(ctx, "target game")
	child.RecordError(errors.New("boom"))
	child.End()

	_, ok := tracer.Start(ctx, "target core")
	ok.RecordError(nil)
	ok.End()

	root.End()

	timings := tracer.Timings()
	require.Len(t, timings, 3)

	assert.Equal(t, "plan", timings[0].Name)
	assert.Equal(t, 0, timings[0].Depth)
	assert.Empty(t, timings[0].Err)

	assert.Equal(t, "target game", timings[1].Name)
	assert.Equal(t, 1, timings[1].Depth)
	assert.Equal(t, "boom", timings[1].Err)

	assert.Equal(t, "target core", timings[2].Name)
	assert.Empty(t, timings[2].Err)
	assert.GreaterOrEqual(t, timings[0].Duration, timings[1].Duration)
}

func TestOTelTracer_UnfinishedSpansAreNotReported(t *testing.T) {
	tracer := telemetry.NewOTelTracer()
	_, span := tracer.Start(t.Context(), "open")
	assert.Empty(t, tracer.Timings())
	span.End()
	assert.Len(t, tracer.Timings(), 1)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "plan")
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
	assert.Nil(t, tracer.Timings())
}
