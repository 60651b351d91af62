package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Submission outcomes, used as the "outcome" label.
const (
	OutcomeSent           = "sent"
	OutcomeHoneypot       = "honeypot"
	OutcomeInvalid        = "invalid"
	OutcomeNotConfigured  = "not_configured"
	OutcomeProviderError  = "provider_error"
	OutcomeTransportError = "transport_error"
)

var (
	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact submissions by outcome.",
		},
		[]string{"outcome"},
	)
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_http_requests_total",
			Help: "Total number of HTTP requests received.",
		},
		[]string{"route", "method", "code"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contact_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	providerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contact_provider_request_duration_seconds",
			Help:    "Duration of calls to the email provider.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(submissionsTotal, httpRequestsTotal, httpRequestDuration, providerRequestDuration)
}

// RecordSubmission counts one handled contact submission.
func RecordSubmission(outcome string) {
	submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served HTTP request.
func ObserveHTTP(route, method string, code int, d time.Duration) {
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// ObserveProvider records the latency of one provider call. result is "ok",
// "rejected" or "error".
func ObserveProvider(result string, d time.Duration) {
	providerRequestDuration.WithLabelValues(result).Observe(d.Seconds())
}

// MetricsHandler returns the Prometheus metrics endpoint handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// Transport wraps base with client-side tracing. A nil base means
// http.DefaultTransport.
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return otelhttp.NewTransport(base)
}

// WrapHandler applies server-side tracing and context propagation.
func WrapHandler(name string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, name)
}

// ForceFlush exports spans still buffered in the global tracer provider.
// It is a no-op when tracing was never initialised.
func ForceFlush(ctx context.Context) error {
	if tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); ok {
		return tp.ForceFlush(ctx)
	}
	return nil
}

// TracingConfig selects the span exporter.
type TracingConfig struct {
	ServiceName string
	Exporter    string // none, stdout, otlp
	Endpoint    string
}

// InitTracing installs a global tracer provider. The returned function flushes
// and stops it; with exporter "none" it is a no-op.
func InitTracing(ctx context.Context, cfg TracingConfig) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	var exp sdktrace.SpanExporter
	var err error
	switch cfg.Exporter {
	case "", "none":
		return noop, nil
	case "stdout":
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "otlp":
		var opts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	default:
		return noop, fmt.Errorf("unknown tracing exporter %q", cfg.Exporter)
	}
	if err != nil {
		return noop, fmt.Errorf("create %s exporter: %w", cfg.Exporter, err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "contact-relay"
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
