// Package alpine generates package URLs for apk packages.
package alpine

import (
	"context"
	"fmt"

	version "github.com/knqyf263/go-apk-version"
	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

const (
	// PURLType is the type of package URL for Alpine APKs.
	PURLType = "apk"
	// PURLNamespace is the namespace of Alpine APKs.
	PURLNamespace = "alpine"
)

// GeneratePURL generates a PURL for an Alpine package in the format:
// pkg:apk/alpine/<package-name>@<package-version>?arch=<package-arch>
func GeneratePURL(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	if _, err := version.NewVersion(p.Version); err != nil {
		return packageurl.PackageURL{}, fmt.Errorf("alpine: invalid version %q: %w", p.Version, err)
	}
	return packageurl.PackageURL{
		Type:      PURLType,
		Namespace: PURLNamespace,
		Name:      p.Name,
		Version:   p.Version,
		Qualifiers: packageurl.QualifiersFromMap(map[string]string{
			"arch": p.Arch,
		}),
	}, nil
}
