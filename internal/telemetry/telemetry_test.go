package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracerRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Tracer("world").Start(context.Background(), "world.assemble")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if got := ended[0].Name(); got != "world.assemble" {
		t.Errorf("span name = %q, want world.assemble", got)
	}
	if got := ended[0].InstrumentationScope().Name; got != "poorguelike/world" {
		t.Errorf("scope = %q, want poorguelike/world", got)
	}
}

func TestServiceAttributes(t *testing.T) {
	attrs := serviceAttributes()

	found := false
	for _, kv := range attrs {
		if kv.Key == "service.name" && kv.Value.AsString() == serviceName {
			found = true
		}
	}
	if !found {
		t.Errorf("service.name attribute missing from %v", attrs)
	}
}
