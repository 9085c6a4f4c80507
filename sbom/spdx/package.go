package spdx

import (
	"errors"
	"log/slog"

	"github.com/quay/layerbom"
	"github.com/quay/layerbom/purl"
)

const sourceComment = "This package is the upstream source that one or more binary packages in this document were built from."

// AddPackage emits the records for an installed package and its source
// package, if any, and returns the installed package's SPDX identifier.
func (b *builder) addPackage(p *layerbom.Package) (string, error) {
	ref, err := PackageRef(p)
	if err != nil {
		return "", err
	}
	if _, ok := b.pkgSeen[ref]; !ok {
		b.pkgSeen[ref] = struct{}{}
		b.packages = append(b.packages, b.packageRecord(ref, p))
	}
	sref, ok, err := SourcePackageRef(p)
	switch {
	case err != nil:
		return "", err
	case !ok || sref == ref:
		return ref, nil
	}
	if _, ok := b.pkgSeen[sref]; !ok {
		b.pkgSeen[sref] = struct{}{}
		b.packages = append(b.packages, sourceRecord(sref, p))
	}
	b.generated = append(b.generated, Relationship{
		Element: ref,
		Type:    GeneratedFrom,
		Related: sref,
	})
	return ref, nil
}

func (b *builder) packageRecord(ref string, p *layerbom.Package) *packageRecord {
	fs := p.Fields(&Template)
	r := &packageRecord{
		Name:             fs[Template.Package.Name],
		SPDXID:           ref,
		VersionInfo:      orElse(fs[Template.Package.Version], NoAssertion),
		DownloadLocation: orElse(fs[Template.Package.DownloadLocation], NoAssertion),
		LicenseConcluded: NoAssertion,
		LicenseDeclared:  NoAssertion,
		CopyrightText:    orElse(fs[Template.Package.Copyright], None),
		Comment:          FormatOrigins(p.Origins),
	}
	if s := fs[Template.Package.Supplier]; s != "" {
		r.Supplier = "Organization: " + s
	}
	lic := fs[Template.Package.License]
	if p.Format == layerbom.FormatDeb {
		lic = p.DeclaredLicense()
	}
	if lic != "" {
		r.LicenseDeclared = b.addLicense(lic)
	}
	if b.purl != nil {
		u, err := b.purl.Generate(b.ctx, p)
		var unknown purl.ErrUnknownFormat
		switch {
		case err == nil:
			r.ExternalRefs = []externalRef{{
				Category: "PACKAGE-MANAGER",
				Type:     "purl",
				Locator:  u.String(),
			}}
		case errors.As(err, &unknown):
			slog.DebugContext(b.ctx, "no purl generator", "package", ref, "format", unknown.Format)
		default:
			slog.WarnContext(b.ctx, "unable to generate purl", "package", ref, "reason", err)
		}
	}
	return r
}

func sourceRecord(ref string, p *layerbom.Package) *packageRecord {
	fs := p.Fields(&Template)
	return &packageRecord{
		Name:             fs[Template.Package.SourceName],
		SPDXID:           ref,
		VersionInfo:      orElse(fs[Template.Package.SourceVersion], NoAssertion),
		DownloadLocation: NoAssertion,
		LicenseConcluded: NoAssertion,
		LicenseDeclared:  NoAssertion,
		CopyrightText:    NoAssertion,
		Comment:          sourceComment,
	}
}
