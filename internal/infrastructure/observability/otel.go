// Package observability wires OpenTelemetry tracing, metrics and logs for the
// rentdesk server.
package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DefaultServiceName is used when OTEL_SERVICE_NAME is not set.
const DefaultServiceName = "rentdesk"

const exportTimeout = 10 * time.Second

// Config holds observability configuration.
type Config struct {
	Enabled     bool   // Whether OpenTelemetry export is enabled
	ServiceName string // Instrumentation scope for logs (defaults to DefaultServiceName)

	// Output receives JSON logs when export is disabled (defaults to stdout).
	Output io.Writer
}

// Telemetry holds the installed providers and the application logger.
type Telemetry struct {
	Logger *slog.Logger

	shutdowns []func(context.Context) error
}

// Shutdown flushes and stops every provider. All providers are shut down
// even when some fail.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(t.shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, t.shutdowns[i](ctx))
	}
	return errors.Join(errs...)
}

// Init installs global tracer and meter providers and builds the logger.
//
// When enabled, exporters use OTLP over HTTP and are configured with the
// standard OTEL_EXPORTER_OTLP_* and OTEL_RESOURCE_ATTRIBUTES variables.
// When disabled, SDK providers without exporters are installed so
// instrumentation stays cheap, and logs go to Output as JSON.
func Init(ctx context.Context, cfg Config) (*Telemetry, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t := &Telemetry{}

	if !cfg.Enabled {
		tp := sdktrace.NewTracerProvider()
		mp := sdkmetric.NewMeterProvider()
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(mp)
		t.shutdowns = append(t.shutdowns, tp.Shutdown, mp.Shutdown)
		t.Logger = slog.New(slog.NewJSONHandler(cfg.Output, nil))
		return t, nil
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	// Exporters are created with a background context so a cancelled
	// startup context cannot break them at shutdown.
	traceExporter, err := otlptracehttp.New(context.Background(),
		otlptracehttp.WithTimeout(exportTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExporter, sdktrace.WithBatchTimeout(5*time.Second)),
	)
	otel.SetTracerProvider(tp)
	t.shutdowns = append(t.shutdowns, tp.Shutdown)

	metricExporter, err := otlpmetrichttp.New(context.Background(),
		otlpmetrichttp.WithTimeout(exportTimeout),
	)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create metric exporter: %w", err), t.Shutdown(ctx))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
			sdkmetric.WithInterval(15*time.Second),
		)),
	)
	otel.SetMeterProvider(mp)
	t.shutdowns = append(t.shutdowns, mp.Shutdown)

	logExporter, err := otlploghttp.New(context.Background(),
		otlploghttp.WithTimeout(exportTimeout),
	)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create log exporter: %w", err), t.Shutdown(ctx))
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter,
			sdklog.WithExportTimeout(5*time.Second),
		)),
		sdklog.WithResource(res),
	)
	t.shutdowns = append(t.shutdowns, lp.Shutdown)
	t.Logger = otelslog.NewLogger(cfg.ServiceName, otelslog.WithLoggerProvider(lp))

	return t, nil
}

// newResource merges the SDK defaults with attributes from
// OTEL_RESOURCE_ATTRIBUTES and OTEL_SERVICE_NAME:
//
//	export OTEL_RESOURCE_ATTRIBUTES="service.name=rentdesk,service.version=1.0.0,deployment.environment=production"
func newResource(ctx context.Context) (*resource.Resource, error) {
	serviceResource, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithSchemaURL(semconv.SchemaURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create service resource: %w", err)
	}

	res, err := resource.Merge(resource.Default(), serviceResource)
	if err != nil {
		// Partial resources and schema conflicts still yield a usable resource.
		if errors.Is(err, resource.ErrPartialResource) || errors.Is(err, resource.ErrSchemaURLConflict) {
			return res, nil
		}
		return nil, fmt.Errorf("failed to merge resources: %w", err)
	}

	return res, nil
}
