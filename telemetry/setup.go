package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config selects how spans are exported. The zero value exports to stdout,
// which is enough for the demo entrypoint and for local development.
type Config struct {
	// OTLPEndpoint, when non-empty, replaces the stdout exporter with an
	// OTLP/gRPC exporter pointed at this collector address.
	OTLPEndpoint string
}

// Setup wires a global TracerProvider and MeterProvider for the process.
// It returns a shutdown func that flushes and closes both providers; callers
// should defer it. There is no ambient env-var fallback for OTLPEndpoint —
// callers pass it explicitly, consistent with this module's no-env-var
// configuration stance.
func Setup(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	traceExporter, err := newTraceExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExporter))
	otel.SetTracerProvider(tracerProvider)

	meterProvider := sdkmetric.NewMeterProvider()
	otel.SetMeterProvider(meterProvider)

	shutdown := func(ctx context.Context) error {
		if err := tracerProvider.Shutdown(ctx); err != nil {
			return err
		}
		return meterProvider.Shutdown(ctx)
	}

	return shutdown, nil
}

func newTraceExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	if cfg.OTLPEndpoint != "" {
		return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint), otlptracegrpc.WithInsecure())
	}
	return stdouttrace.New()
}
