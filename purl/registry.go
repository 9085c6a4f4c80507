// Package purl maps packages to package URLs.
package purl

import (
	"context"
	"fmt"
	"sync"
	"unique"

	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

var _ Converter = (*Registry)(nil)

// Converter is an interface that provides a method for generating PURLs.
type Converter interface {
	Generate(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error)
}

// ErrUnknownFormat is returned when a PURL generator is not registered for a
// package format.
type ErrUnknownFormat struct{ Format string }

// Error returns the error message.
func (e ErrUnknownFormat) Error() string {
	return fmt.Sprintf("no PURL generator registered for package format %q", e.Format)
}

// GenerateFunc produces a PackageURL for a given Package.
//
// A GenerateFunc should return an error when the package does not have a
// recognizable PURL form, e.g. when its version cannot be parsed in the
// format's version scheme.
type GenerateFunc func(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error)

// Registry is a thread-safe registry of PURL generators keyed by package
// format.
type Registry struct {
	genRegistry map[unique.Handle[string]]GenerateFunc
	mu          sync.RWMutex
}

// NewRegistry creates a new Registry.
func NewRegistry() *Registry {
	return &Registry{
		genRegistry: make(map[unique.Handle[string]]GenerateFunc),
	}
}

// Generate finds a registered generator by the package's
// [layerbom.Package.Format] and returns the generated PackageURL.
func (r *Registry) Generate(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	if p == nil || p.Format == "" {
		return packageurl.PackageURL{}, ErrUnknownFormat{Format: "unknown"}
	}
	r.mu.RLock()
	f, ok := r.genRegistry[unique.Make(p.Format)]
	r.mu.RUnlock()
	if !ok {
		return packageurl.PackageURL{}, ErrUnknownFormat{Format: p.Format}
	}
	purl, err := f(ctx, p)
	if err != nil {
		return packageurl.PackageURL{}, fmt.Errorf("purl: %s package %q: %w", p.Format, p.Name, err)
	}
	return purl, nil
}

// RegisterFormat registers a generator for the named package format.
//
// It panics if the format is already registered.
func (r *Registry) RegisterFormat(format string, fn GenerateFunc) {
	k := unique.Make(format)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.genRegistry[k]; ok {
		panic(fmt.Sprintf("purl generator already registered for format %q", format))
	}
	r.genRegistry[k] = fn
}
