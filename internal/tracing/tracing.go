// Package tracing wires an OpenTelemetry tracer provider exporting spans
// over OTLP/gRPC, used to trace individual /productionplan requests end to
// end (HTTP handler span wrapping the planner call).
package tracing

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "powerplant-dispatch"

// Tracer returns the package-wide tracer, usable even when tracing is
// disabled (it then produces no-op spans).
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// Setup configures the global tracer provider to export to endpoint over
// OTLP/gRPC. Call the returned shutdown func on process exit to flush
// pending spans. If endpoint is empty, tracing stays a no-op.
func Setup(ctx context.Context, endpoint string) (shutdown func(context.Context) error, err error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(tracerName),
	))
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Printf("Tracing: exporting spans to %s", endpoint)
	return tp.Shutdown, nil
}
