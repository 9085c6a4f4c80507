// Package nodejs generates npm package URLs.
package nodejs

import (
	"context"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

const (
	// PURLType is the type of package URL for Node.js packages.
	PURLType = "npm"
)

// GeneratePURL generates a Node.js PURL for a given [layerbom.Package].
// Example: pkg:npm/express@4.18.2
//
// Scoped names ("@scope/name") put the scope in the namespace. Versions that
// parse as semver are normalized; others are kept verbatim.
func GeneratePURL(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	var ns string
	name := p.Name
	if strings.HasPrefix(name, "@") {
		if i := strings.IndexByte(name, '/'); i != -1 {
			ns, name = name[:i], name[i+1:]
		}
	}
	v := p.Version
	if sv, err := semver.NewVersion(v); err == nil {
		v = sv.String()
	}
	return packageurl.PackageURL{
		Type:      PURLType,
		Namespace: ns,
		Name:      name,
		Version:   v,
	}, nil
}
