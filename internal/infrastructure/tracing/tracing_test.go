package tracing

import (
	"context"
	"testing"

	"clinica_odonto/internal/config"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap/zaptest"
)

func TestInitTracing(t *testing.T) {
	t.Run("disabled still sets propagator", func(t *testing.T) {
		shutdown, err := InitTracing("clinica-payments", config.TracingConfig{}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
		fields := otel.GetTextMapPropagator().Fields()
		found := false
		for _, f := range fields {
			if f == "traceparent" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected traceparent propagation, got %v", fields)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		shutdown, err := InitTracing("clinica-payments", config.TracingConfig{
			Enabled:        true,
			JaegerEndpoint: "http://127.0.0.1:1/api/traces",
		}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ctx, span := otel.Tracer("test").Start(context.Background(), "op")
		if !span.SpanContext().IsValid() {
			t.Fatalf("expected a recording span")
		}
		span.End()
		_ = shutdown(ctx)
	})
}
