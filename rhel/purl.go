// Package rhel generates package URLs for RPMs.
package rhel

import (
	"context"
	"strings"

	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

const (
	// PURLType is the type of package URL for RPMs.
	PURLType = "rpm"

	// PURLNamespace is the namespace of RPMs.
	PURLNamespace = "redhat"
)

// GenerateRPMPURL generates an RPM PURL for a given [layerbom.Package].
//
// An epoch in the version ("1:2.3-4") is moved to the "epoch" qualifier, as
// the purl spec asks for RPMs.
func GenerateRPMPURL(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
	qs := map[string]string{
		"arch": p.Arch,
	}
	v := p.Version
	if e, rest, ok := strings.Cut(v, ":"); ok {
		v = rest
		if e != "0" {
			qs["epoch"] = e
		}
	}
	return packageurl.PackageURL{
		Type:       PURLType,
		Namespace:  PURLNamespace,
		Name:       p.Name,
		Version:    v,
		Qualifiers: packageurl.QualifiersFromMap(qs),
	}, nil
}
