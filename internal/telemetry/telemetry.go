// Package telemetry wires OpenTelemetry tracing for farmsim. Farm actions are
// recorded as short spans so a session can be replayed from the trace.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "farmsim"

// Version is reported as service.version.
var Version = "0.1.0"

// ShutdownFunc flushes pending spans and stops the provider.
type ShutdownFunc func(context.Context) error

// Setup installs the global tracer provider.
//
// When enabled, spans are batched to an OTLP/HTTP exporter configured by the
// standard environment variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT
//   - OTEL_EXPORTER_OTLP_HEADERS
//
// Otherwise a no-op provider is installed and every span is free.
//
// Either way, exporter errors and otel's internal logs go to the default slog
// logger. Left alone they would print to stderr over the game screen.
func Setup(ctx context.Context, enabled bool) (ShutdownFunc, error) {
	routeLogs(slog.Default())

	if !enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. resource.Default() is left out because
// its schema URL can conflict with the one used here.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", Version),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

func routeLogs(logger *slog.Logger) {
	otel.SetLogger(logr.FromSlogHandler(logger.Handler()))
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Warn("telemetry error", "error", err)
	}))
}

// Tracer returns the tracer for a farmsim component, e.g. "game" or "save".
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

// Event records an instantaneous span. Game actions happen within a single
// tick, so their spans have no meaningful duration.
func Event(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) {
	_, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	span.End()
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
