// Package telemetry provides OpenTelemetry tracing exported over OTLP.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "eldanialight"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Options controls where spans are exported.
type Options struct {
	// APIKey and Dataset configure Honeycomb headers. Without an APIKey the
	// exporter relies on the standard OTEL_EXPORTER_OTLP_* variables.
	APIKey  string
	Dataset string
}

// Setup installs a global tracer provider backed by an OTLP HTTP exporter.
// The returned shutdown function flushes pending spans and must be called
// on exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	var exporterOpts []otlptracehttp.Option
	if opts.APIKey != "" {
		dataset := opts.Dataset
		if dataset == "" {
			dataset = serviceName
		}
		exporterOpts = append(exporterOpts,
			otlptracehttp.WithEndpointURL(honeycombEndpoint),
			otlptracehttp.WithHeaders(map[string]string{
				"x-honeycomb-team":    opts.APIKey,
				"x-honeycomb-dataset": dataset,
			}),
		)
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, err
	}

	// Built without resource.Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Disable installs a no-op tracer provider so spans cost nothing.
func Disable() {
	otel.SetTracerProvider(noop.NewTracerProvider())
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
