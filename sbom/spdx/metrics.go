package spdx

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// TelemetrySchemaVersion is the OpenTelemetry "telemetry schema" version for
// this package.
const telemetrySchemaVersion = `0.1.0`

// Tracer and Meter singletons for this package.
var (
	tracer trace.Tracer
	meter  metric.Meter
)

// The instruments used in this package.
var (
	documentCount    metric.Int64Counter
	documentDuration metric.Float64Histogram
)

var (
	documentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "layerbom",
			Subsystem: "spdx",
			Name:      "documents_total",
			Help:      "Total number of SPDX documents generated, by format, kind and result.",
		},
		[]string{"format", "kind", "result"},
	)

	documentsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "layerbom",
			Subsystem: "spdx",
			Name:      "document_duration_seconds",
			Help:      "The duration of SPDX document generation.",
		},
		[]string{"format", "kind"},
	)
)

// Must is a panic-or-return helper for [init].
func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

func init() {
	tracer = otel.Tracer("github.com/quay/layerbom/sbom/spdx",
		trace.WithInstrumentationVersion(telemetrySchemaVersion),
	)
	meter = otel.Meter("github.com/quay/layerbom/sbom/spdx",
		metric.WithInstrumentationVersion(telemetrySchemaVersion),
	)

	documentCount = must(meter.Int64Counter("spdx.documents",
		metric.WithDescription("The number of SPDX documents generated."),
		metric.WithUnit("{document}"),
	))
	documentDuration = must(meter.Float64Histogram("spdx.document_time",
		metric.WithDescription("The time taken to generate an SPDX document."),
		metric.WithUnit("s"),
	))
}

// Observe records the outcome of one document generation on the span and
// in both metric systems.
func observe(ctx context.Context, span trace.Span, format Format, kind string, start time.Time, err error) {
	dur := time.Since(start).Seconds()
	result := "ok"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate error")
	} else {
		span.SetStatus(codes.Ok, "")
	}
	attrs := metric.WithAttributes(
		attribute.String("format", string(format)),
		attribute.String("kind", kind),
		attribute.String("result", result),
	)
	documentCount.Add(ctx, 1, attrs)
	documentDuration.Record(ctx, dur, attrs)
	documentsTotal.WithLabelValues(string(format), kind, result).Inc()
	documentsDuration.WithLabelValues(string(format), kind).Observe(dur)
}
