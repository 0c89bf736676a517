package tracing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc/credentials/insecure"
)

// Tracer starts spans and carries trace context across HTTP hops. A nil *Tracer is valid
// and produces non-recording spans.
type Tracer struct {
	tracer     oteltrace.Tracer
	tp         *sdktrace.TracerProvider
	propagator propagation.TextMapPropagator
}

// NewTracer builds a tracer exporting through exporter in batches and installs it as the
// global provider.
func NewTracer(serviceName string, exporter sdktrace.SpanExporter) *Tracer {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	otel.SetTextMapPropagator(propagator)
	otel.SetTracerProvider(tp)

	return &Tracer{tracer: tp.Tracer(serviceName), tp: tp, propagator: propagator}
}

// NewExporter picks the OTLP gRPC exporter when endpoint is set, otherwise a pretty
// printed stdout exporter writing to w. It returns nil, nil when tracing is off.
func NewExporter(ctx context.Context, endpoint string, stdout bool, w io.Writer) (sdktrace.SpanExporter, error) {
	endpoint = strings.TrimSpace(endpoint)
	switch {
	case endpoint != "":
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithReconnectionPeriod(5*time.Second),
			otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, fmt.Errorf("otlp exporter: %w", err)
		}
		return exporter, nil
	case stdout:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("stdout exporter: %w", err)
		}
		return exporter, nil
	default:
		return nil, nil
	}
}

func (t *Tracer) Start(ctx context.Context, spanName string) (context.Context, oteltrace.Span) {
	if t == nil {
		return noop.NewTracerProvider().Tracer("").Start(ctx, spanName)
	}
	return t.tracer.Start(ctx, spanName)
}

// StartSpanFromHeader continues a trace whose context arrived in h.
func (t *Tracer) StartSpanFromHeader(ctx context.Context, h http.Header, spanName string) (context.Context, oteltrace.Span) {
	if t == nil {
		return t.Start(ctx, spanName)
	}
	return t.Start(t.propagator.Extract(ctx, propagation.HeaderCarrier(h)), spanName)
}

// InjectHTTP writes the trace context of ctx into h.
func (t *Tracer) InjectHTTP(ctx context.Context, h http.Header) {
	if t == nil {
		return
	}
	t.propagator.Inject(ctx, propagation.HeaderCarrier(h))
}

// Shutdown flushes pending spans.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	_ = t.tp.ForceFlush(ctx)
	return t.tp.Shutdown(ctx)
}
