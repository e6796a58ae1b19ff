package internal

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/envvar"
)

// OpenTelemetry holds the configured providers and the handler exposing metrics.
type OpenTelemetry struct {
	Metrics http.Handler

	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

// NewOTExporter instantiates the OpenTelemetry exporters using configuration defined in environment variables.
// Traces are sent to Jaeger only when JAEGER_ENDPOINT is set.
func NewOTExporter(conf *envvar.Configuration) (*OpenTelemetry, error) {
	serviceName, err := conf.GetDefault("OTEL_SERVICE_NAME", "task-tracker")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get OTEL_SERVICE_NAME")
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	promExporter, err := prometheus.New(prometheus.WithoutUnits())
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "prometheus.New")
	}

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(promExporter),
		metric.WithResource(res),
	)

	global.SetMeterProvider(meterProvider)

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Second)); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "runtime.Start")
	}

	traceOptions := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	jaegerEndpoint, err := conf.Get("JAEGER_ENDPOINT")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get JAEGER_ENDPOINT")
	}

	if jaegerEndpoint != "" {
		jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "jaeger.New")
		}

		traceOptions = append(traceOptions, sdktrace.WithBatcher(jaegerExporter))
	}

	tracerProvider := sdktrace.NewTracerProvider(traceOptions...)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &OpenTelemetry{
		Metrics:        promhttp.Handler(),
		meterProvider:  meterProvider,
		tracerProvider: tracerProvider,
	}, nil
}

// Shutdown flushes pending spans and stops the providers.
func (o *OpenTelemetry) Shutdown(ctx context.Context) error {
	return errors.Join(
		o.tracerProvider.Shutdown(ctx),
		o.meterProvider.Shutdown(ctx),
	)
}
