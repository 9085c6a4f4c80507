// Package java generates Maven package URLs for JARs and POMs.
package java

import (
	"context"
	"fmt"
	"strings"

	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

const (
	// PURLType is the type of package URL for Java packages.
	PURLType = "maven"
)

// GeneratePURL generates a Maven PURL for a given [layerbom.Package].
func GeneratePURL(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	// The PURL examples in the spec show that the group ID is used
	// as the namespace for Maven PURLs, so split the package name on the colon.
	// https://github.com/package-url/purl-spec?tab=readme-ov-file#some-purl-examples
	parts := strings.SplitN(p.Name, ":", 2)
	if len(parts) != 2 {
		return packageurl.PackageURL{}, fmt.Errorf("invalid package name: %s", p.Name)
	}
	return packageurl.PackageURL{
		Type:      PURLType,
		Namespace: parts[0],
		Name:      parts[1],
		Version:   p.Version,
	}, nil
}
