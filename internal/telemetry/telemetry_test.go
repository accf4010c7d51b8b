package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestTracerWithoutSetup(t *testing.T) {
	// The global provider is a no-op until Setup runs; spans must still work.
	_, span := Tracer("test").Start(context.Background(), "test.span")
	span.End()

	_, span = NoopTracer().Start(context.Background(), "noop.span")
	if span.SpanContext().IsValid() {
		t.Error("Noop tracer produced a valid span context")
	}
	span.End()
}

func TestCounterWithoutProvider(t *testing.T) {
	c := Counter(Meter("test"), "test.count", "counts tests")
	if c == nil {
		t.Fatal("Counter returned nil")
	}
	c.Add(context.Background(), 1)
}

func TestGetHostname(t *testing.T) {
	if getHostname() == "" {
		t.Error("getHostname returned empty string")
	}
}

func TestResourceAttributes(t *testing.T) {
	attrs := resourceAttributes(
		attribute.Int64("game.seed", 42),
		attribute.Int("map.rows", 4),
	)
	got := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		got[kv.Key] = kv.Value
	}
	if v := got["service.name"].AsString(); v != "tradeworld" {
		t.Errorf("service.name = %q, want tradeworld", v)
	}
	if v := got["game.seed"].AsInt64(); v != 42 {
		t.Errorf("game.seed = %d, want 42", v)
	}
	if v := got["map.rows"].AsInt64(); v != 4 {
		t.Errorf("map.rows = %d, want 4", v)
	}
}
