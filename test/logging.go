package test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/quay/layerbom/log"
)

var (
	// Setup installs the test log handler as the default exactly once.
	setup = sync.OnceFunc(func() {
		slog.SetDefault(slog.New(ctxHandler(nil)))
	})

	getwd = sync.OnceValue(func() string {
		dir, err := os.Getwd()
		if err != nil {
			panic(err)
		}
		return dir
	})

	modname = sync.OnceValue(func() string {
		if info, ok := debug.ReadBuildInfo(); ok {
			return info.Main.Path + "/"
		}
		return ""
	})
)

type handlerKey struct{}

// CtxHandler is a [slog.Handler] that forwards to the handler stored in the
// Context by [Logging]. The WithAttrs and WithGroup calls are recorded and
// replayed against that handler.
//
// Records logged with a Context that has no handler are dropped.
type ctxHandler []func(slog.Handler) slog.Handler

func (h ctxHandler) target(ctx context.Context) (slog.Handler, bool) {
	lh, ok := ctx.Value(handlerKey{}).(slog.Handler)
	return lh, ok
}

// Enabled implements [slog.Handler].
func (h ctxHandler) Enabled(ctx context.Context, l slog.Level) bool {
	lh, ok := h.target(ctx)
	return ok && lh.Enabled(ctx, l)
}

// Handle implements [slog.Handler].
func (h ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	lh, ok := h.target(ctx)
	if !ok {
		return nil
	}
	for _, op := range h {
		lh = op(lh)
	}
	if v, ok := ctx.Value(log.AttrsKey).(slog.Value); ok {
		r.AddAttrs(v.Group()...)
	}
	return lh.Handle(ctx, r)
}

// WithAttrs implements [slog.Handler].
func (h ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return append(h[:len(h):len(h)], func(h slog.Handler) slog.Handler {
		return h.WithAttrs(attrs)
	})
}

// WithGroup implements [slog.Handler].
func (h ctxHandler) WithGroup(name string) slog.Handler {
	return append(h[:len(h):len(h)], func(h slog.Handler) slog.Handler {
		return h.WithGroup(name)
	})
}

// Logging returns a [context.Context] that makes the default [slog.Logger]
// write to the output of the provided [testing.TB].
//
// Times are printed relative to the call, and sources relative to the
// module or the working directory.
func Logging(t testing.TB, parent ...context.Context) context.Context {
	setup()
	ctx := context.Background()
	if len(parent) > 0 {
		ctx = parent[0]
	}
	start := time.Now()
	h := slog.NewTextHandler(logOutput(t), &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(g []string, a slog.Attr) slog.Attr {
			if g != nil {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.String(slog.TimeKey, "+"+time.Since(start).String())
			case slog.SourceKey:
				src := a.Value.Any().(*slog.Source)
				if src.Function != "" {
					return slog.String(slog.SourceKey, strings.TrimPrefix(src.Function, modname()))
				}
				f := src.File
				if r, err := filepath.Rel(getwd(), f); err == nil && r != "" {
					f = r
				}
				return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", f, src.Line))
			}
			return a
		},
	})
	return context.WithValue(ctx, handlerKey{}, slog.Handler(h))
}
