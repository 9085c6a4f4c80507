package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SetupTelemetry installs OTLP exporting trace, meter, and logger providers
// and returns a function to flush and stop them along with a handler that
// sends log records to the logger provider.
func setupTelemetry(ctx context.Context, protocol string) (func(context.Context) error, slog.Handler, error) {
	var (
		texp sdktrace.SpanExporter
		mexp sdkmetric.Exporter
		lexp sdklog.Exporter
		err  error
	)
	switch protocol {
	case "http":
		if texp, err = otlptracehttp.New(ctx); err != nil {
			return nil, nil, err
		}
		if mexp, err = otlpmetrichttp.New(ctx); err != nil {
			return nil, nil, err
		}
		if lexp, err = otlploghttp.New(ctx); err != nil {
			return nil, nil, err
		}
	case "grpc":
		if texp, err = otlptracegrpc.New(ctx); err != nil {
			return nil, nil, err
		}
		if mexp, err = otlpmetricgrpc.New(ctx); err != nil {
			return nil, nil, err
		}
		if lexp, err = otlploggrpc.New(ctx); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown OTLP protocol %q", protocol)
	}
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		fmt.Fprintln(os.Stderr, "otel error:", err)
	}))

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(texp))
	otel.SetTracerProvider(tp)
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(mexp)))
	otel.SetMeterProvider(mp)
	lp := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewBatchProcessor(lexp)))
	global.SetLoggerProvider(lp)

	shutdown := func(ctx context.Context) error {
		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}
	h := otelslog.NewHandler("github.com/quay/layerbom", otelslog.WithLoggerProvider(lp))
	return shutdown, h, nil
}

// WriteMetrics dumps the default Prometheus registry to the named file in
// the text exposition format.
func writeMetrics(name string) error {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(f, mf); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// TeeHandler sends every record to each of its handlers.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
