package spdx

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	spdxjson "github.com/spdx/tools-golang/json"
	"github.com/spdx/tools-golang/spdx/v2/common"
	"github.com/spdx/tools-golang/spdx/v2/v2_3"
	"github.com/spdx/tools-golang/tagvalue"

	"github.com/quay/layerbom"
)

// Verify reads an SPDX document from r and checks that it is internally
// consistent: element identifiers are unique, every relationship endpoint
// is declared, and every LicenseRef has extracted text.
//
// Documents of any SPDX 2.x version are accepted.
func Verify(ctx context.Context, r io.Reader, f Format) error {
	var doc *v2_3.Document
	var err error

	switch f {
	case FormatJSON:
		doc, err = spdxjson.Read(r)
	case FormatTagValue:
		doc, err = tagvalue.Read(r)
	default:
		return &layerbom.Error{
			Op:      "spdx.Verify",
			Kind:    layerbom.ErrInvalid,
			Message: fmt.Sprintf("unsupported format: %s", f),
		}
	}
	if err != nil {
		return &layerbom.Error{
			Op:      "spdx.Verify",
			Kind:    layerbom.ErrInvalid,
			Message: fmt.Sprintf("failed to read SPDX %s", f),
			Inner:   err,
		}
	}
	slog.DebugContext(ctx, "read document",
		"name", doc.DocumentName,
		"version", doc.SPDXVersion,
		"packages", len(doc.Packages),
		"relationships", len(doc.Relationships))
	return verifyDocument(doc)
}

func verifyDocument(doc *v2_3.Document) error {
	c := newRefCheck()
	if err := c.element(refPrefix + string(doc.SPDXIdentifier)); err != nil {
		return err
	}

	// Tag-value documents attach files to the preceding package; the same
	// *File may be listed in both places.
	var files []*v2_3.File
	seen := make(map[*v2_3.File]struct{})
	addFiles := func(fs []*v2_3.File) {
		for _, f := range fs {
			if _, ok := seen[f]; ok || f == nil {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	addFiles(doc.Files)
	for _, p := range doc.Packages {
		if err := c.element(refPrefix + string(p.PackageSPDXIdentifier)); err != nil {
			return err
		}
		addFiles(p.Files)
	}
	for _, f := range files {
		if err := c.element(refPrefix + string(f.FileSPDXIdentifier)); err != nil {
			return err
		}
	}
	for _, l := range doc.OtherLicenses {
		if err := c.license(l.LicenseIdentifier); err != nil {
			return err
		}
	}

	for _, r := range doc.Relationships {
		if !local(r.RefA) || !local(r.RefB) {
			continue
		}
		a, b := refPrefix+string(r.RefA.ElementRefID), refPrefix+string(r.RefB.ElementRefID)
		if err := c.edge(a, b); err != nil {
			return err
		}
	}
	for _, p := range doc.Packages {
		id := refPrefix + string(p.PackageSPDXIdentifier)
		if err := c.uses(id, p.PackageLicenseDeclared, p.PackageLicenseConcluded); err != nil {
			return err
		}
		if err := c.uses(id, p.PackageLicenseInfoFromFiles...); err != nil {
			return err
		}
	}
	for _, f := range files {
		id := refPrefix + string(f.FileSPDXIdentifier)
		if err := c.uses(id, f.LicenseConcluded); err != nil {
			return err
		}
		if err := c.uses(id, f.LicenseInfoInFiles...); err != nil {
			return err
		}
	}
	return nil
}

// Local reports whether id names an element of this document, as opposed
// to an external document or one of the special NONE/NOASSERTION values.
func local(id common.DocElementID) bool {
	return id.DocumentRefID == "" && id.SpecialID == "" && id.ElementRefID != ""
}
