// Layerbom turns image models produced by a layer scanner into SPDX
// documents.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/quay/layerbom/log"
)

type commonConfig struct {
	Verbose      bool
	OTLP         bool
	OTLPProtocol string
	MetricsFile  string
}

type subcmd func(context.Context, *commonConfig, []string) error

func main() {
	var exit int
	defer func() {
		if exit != 0 {
			os.Exit(exit)
		}
	}()
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer done()

	var cfg commonConfig
	fs := flag.NewFlagSet("main", flag.ExitOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nSubcommands\n\n")
		fmt.Fprintln(out, "generate")
		fmt.Fprintln(out, "\tgenerate SPDX documents for image models provided as arguments or on stdin")
		fmt.Fprintln(out, "verify")
		fmt.Fprintln(out, "\tcheck SPDX documents for dangling references")
		fmt.Fprintln(out)
	}
	fs.BoolVar(&cfg.Verbose, "v", false, "log at debug level")
	fs.BoolVar(&cfg.OTLP, "otlp", false, "export traces, metrics, and logs over OTLP, configured by the OTEL_EXPORTER_OTLP_* environment")
	fs.StringVar(&cfg.OTLPProtocol, "otlp-protocol", "http", "OTLP transport: \"http\" or \"grpc\"")
	fs.StringVar(&cfg.MetricsFile, "metrics", "", "write Prometheus metrics to the named file on exit")
	fs.Parse(os.Args[1:])

	lvl := slog.LevelInfo
	if cfg.Verbose {
		lvl = slog.LevelDebug
	}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	if cfg.OTLP {
		shutdown, otelh, err := setupTelemetry(ctx, cfg.OTLPProtocol)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(99)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				fmt.Fprintln(os.Stderr, "telemetry shutdown:", err)
			}
		}()
		h = teeHandler{h, otelh}
	}
	slog.SetDefault(slog.New(log.WrapHandler(h)))

	var cmd subcmd
	switch n := fs.Arg(0); n {
	case "generate":
		cmd = Generate
	case "verify":
		cmd = Verify
	case "":
		fs.Usage()
		os.Exit(99)
	default:
		fs.Usage()
		fmt.Fprintf(os.Stderr, "\nunknown subcommand %q\n", n)
		os.Exit(99)
	}

	var cmdErr error
	cmdctx, cmddone := context.WithCancel(ctx)
	go func() {
		defer cmddone()
		cmdErr = cmd(cmdctx, &cfg, fs.Args()[1:])
	}()

	select {
	case <-ctx.Done():
		slog.Error("interrupted", "reason", ctx.Err())
		exit = 1
	case <-cmdctx.Done():
		if cmdErr != nil {
			slog.Error("command failed", "reason", cmdErr)
			exit = 2
		}
	}
	if cfg.MetricsFile != "" {
		if err := writeMetrics(cfg.MetricsFile); err != nil {
			slog.Error("unable to write metrics", "reason", err)
			exit = 3
		}
	}
}
