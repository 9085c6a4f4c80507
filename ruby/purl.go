// Package ruby generates RubyGems package URLs.
package ruby

import (
	"context"

	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

const (
	// PURLType is the type of package URL for Ruby packages.
	PURLType = "gem"
)

// GeneratePURL generates a Ruby PURL for a given [layerbom.Package].
// Example: pkg:gem/rails@6.1.0
func GeneratePURL(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	return packageurl.PackageURL{
		Type:    PURLType,
		Name:    p.Name,
		Version: p.Version,
	}, nil
}
