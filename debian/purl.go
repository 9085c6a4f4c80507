// Package debian generates package URLs for dpkg-installed packages.
//
// Versions are checked against the Debian version grammar before a URL is
// produced.
package debian

import (
	"context"
	"fmt"

	version "github.com/knqyf263/go-deb-version"
	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

const (
	// PURLType is the type of package URL for Debian packages.
	PURLType = "deb"
	// PURLNamespace is the namespace of Debian packages.
	PURLNamespace = "debian"
)

// GeneratePURL generates a PURL for a Debian package in the format:
// pkg:deb/debian/<package-name>@<package-version>?arch=<package-arch>
//
// Packages whose version does not parse as a Debian version have no PURL.
func GeneratePURL(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	if _, err := version.NewVersion(p.Version); err != nil {
		return packageurl.PackageURL{}, fmt.Errorf("debian: invalid version %q: %w", p.Version, err)
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
