// Package python generates PyPI package URLs.
package python

import (
	"context"

	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

const (
	// PURLType is the type of package URL for Python packages.
	PURLType = "pypi"
)

// GeneratePURL generates a PyPI PURL for a given [layerbom.Package].
// Example: pkg:pypi/django@1.11.1
func GeneratePURL(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	return packageurl.PackageURL{
		Type:    PURLType,
		Name:    p.Name,
		Version: p.Version,
	}, nil
}
