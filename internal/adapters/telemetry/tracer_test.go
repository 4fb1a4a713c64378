package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/modcache/internal/adapters/telemetry"
	"go.trai.ch/modcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRecordedTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return telemetry.NewOTelTracer(provider), recorder
}

func TestOTelTracer_Span(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(context.Background(), "modcache.refresh")
	span.SetAttribute("module", "/models/part.scad")
	span.SetAttribute("changed", true)
	span.SetAttribute("parsed", 2)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "modcache.refresh", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("module", "/models/part.scad"))
	assert.Contains(t, ended[0].Attributes(), attribute.Bool("changed", true))
	assert.Contains(t, ended[0].Attributes(), attribute.Int("parsed", 2))
}

func TestOTelTracer_RecordError(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	_, span := tracer.Start(context.Background(), "modcache.refresh")
	span.RecordError(nil)
	span.RecordError(errors.New("parse failed"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "parse failed", ended[0].Status().Description)
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	tracer, recorder := newRecordedTracer(t)

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, child := tracer.Start(ctx, "child")
	child.End()
	parent.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { logged = msg }).Times(1)

	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(mockLogger)))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := telemetry.NewOTelTracer(provider).Start(context.Background(), "modcache.refresh")
	span.SetAttribute("module", "part.scad")
	span.End()

	assert.Contains(t, logged, "modcache.refresh took ")
	assert.Contains(t, logged, "module=part.scad")
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "anything")
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
