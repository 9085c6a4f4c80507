// Package gobin generates package URLs for the modules compiled into Go
// binaries.
package gobin

import (
	"context"
	"strings"

	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

// PURLType is the type of package URL for Go modules.
const PURLType = "golang"

// GeneratePURL generates a Go module PURL for a given [layerbom.Package].
// Example: pkg:golang/google.golang.org/genproto@v0.0.0#googleapis/api
func GeneratePURL(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	// Split the Go import path into namespace (domain), module name and package subpath.
	ns, name, subpath := splitGoModule(p.Name)
	return packageurl.PackageURL{
		Type:      PURLType,
		Namespace: ns,
		Name:      name,
		Version:   p.Version,
		Qualifiers: packageurl.QualifiersFromMap(map[string]string{
			"arch": p.Arch,
		}),
		Subpath: subpath,
	}, nil
}

// splitGoModule splits a Go import path into:
//   - domain namespace (the first path segment, e.g., "google.golang.org")
//   - package name (the second path segment, e.g., "genproto")
//   - package subpath (all remaining segments, e.g., "googleapis/api/annotations")
//
// Single-segment names yield an empty namespace and subpath.
func splitGoModule(full string) (namespace, name, subpath string) {
	parts := strings.Split(full, "/")
	switch len(parts) {
	case 0:
		return "", "", ""
	case 1:
		return "", parts[0], ""
	default:
		return parts[0], parts[1], strings.Join(parts[2:], "/")
	}
}
