package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTeeHandler(t *testing.T) {
	var info, debug bytes.Buffer
	h := teeHandler{
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	l := slog.New(h).With("component", "test")
	ctx := context.Background()
	l.DebugContext(ctx, "quiet")
	l.InfoContext(ctx, "loud")

	if got := info.String(); strings.Contains(got, "quiet") || !strings.Contains(got, "msg=loud component=test") {
		t.Errorf("info handler got:\n%s", got)
	}
	if got := debug.String(); !strings.Contains(got, "quiet") || !strings.Contains(got, "loud") {
		t.Errorf("debug handler got:\n%s", got)
	}
}

func TestWriteMetrics(t *testing.T) {
	name := filepath.Join(t.TempDir(), "metrics.txt")
	if err := writeMetrics(name); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("# TYPE ")) {
		t.Errorf("unexpected metrics output:\n%s", b)
	}
}
