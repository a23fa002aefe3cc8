// Package telemetry sets up OpenTelemetry tracing for amp-lookup programs.
// Lookups create spans through the global provider, so until Initialize
// succeeds they go to the no-op tracer.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amp-labs/amp-lookup/envutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	defaultServiceName    = "amp-lookup"
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
)

var (
	providerMu     sync.Mutex              //nolint:gochecknoglobals
	tracerProvider *sdktrace.TracerProvider //nolint:gochecknoglobals
)

// ErrNoEndpoint is returned by Initialize when tracing is enabled without an
// exporter endpoint.
var ErrNoEndpoint = errors.New("telemetry: tracing enabled but no OTLP endpoint configured")

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration
}

// LoadConfigFromEnv reads OTEL_ENABLED, OTEL_SERVICE_NAME,
// OTEL_SERVICE_VERSION, OTEL_EXPORTER_OTLP_TRACES_ENDPOINT and
// OTEL_EXPORTER_OTLP_TRACES_TIMEOUT.
func LoadConfigFromEnv(environment string) (*Config, error) {
	enabled, err := envutil.Bool("OTEL_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	name, err := envutil.String("OTEL_SERVICE_NAME", envutil.Default(defaultServiceName)).Value()
	if err != nil {
		return nil, err
	}

	version, err := envutil.String("OTEL_SERVICE_VERSION", envutil.Default(defaultServiceVersion)).Value()
	if err != nil {
		return nil, err
	}

	endpoint, err := envutil.String("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT", envutil.Default(defaultTimeout)).Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    name,
		ServiceVersion: version,
		Environment:    environment,
		Endpoint:       endpoint,
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

// Initialize installs a global tracer provider exporting over OTLP/HTTP.
// With tracing disabled it does nothing.
func Initialize(ctx context.Context, config *Config) error {
	if !config.Enabled {
		slog.Debug("OpenTelemetry tracing is disabled")

		return nil
	}

	if config.Endpoint == "" {
		return ErrNoEndpoint
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", config.ServiceName),
		attribute.String("service.version", config.ServiceVersion),
		attribute.String("deployment.environment", config.Environment),
	)

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	providerMu.Lock()
	tracerProvider = provider
	providerMu.Unlock()

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.Info("OpenTelemetry tracing initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"endpoint", config.Endpoint)

	return nil
}

// Shutdown flushes pending spans and stops the provider installed by
// Initialize. It is a no-op if Initialize never installed one.
func Shutdown(ctx context.Context) error {
	providerMu.Lock()
	provider := tracerProvider
	tracerProvider = nil
	providerMu.Unlock()

	if provider == nil {
		return nil
	}

	return provider.Shutdown(ctx)
}
