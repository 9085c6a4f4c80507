package spdx

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/quay/layerbom"
)

// LayerRecord is a layer package along with what it contains.
type layerRecord struct {
	ref      string
	pkg      *packageRecord
	packages []string
	// Files holds the file records first emitted for this layer.
	files []*fileRecord
}

// AddLayer emits the records for a layer: the layer package, its installed
// packages and, when the layer's files were analyzed, its files.
//
// A layer with an identifier already seen returns the earlier record.
func (b *builder) addLayer(l *layerbom.Layer) (*layerRecord, error) {
	ref, err := LayerRef(l)
	if err != nil {
		return nil, err
	}
	if lr, ok := b.layers[ref]; ok {
		return lr, nil
	}
	sum, err := layerChecksum(l)
	if err != nil {
		return nil, err
	}
	layerID := Checksum(sum)
	p := &packageRecord{
		Name:             orElse(l.Name(), l.ShortDiffID(10)),
		SPDXID:           ref,
		PackageFileName:  l.TarFile,
		DownloadLocation: None,
		FilesAnalyzed:    l.FilesAnalyzed,
		Checksums: []checksum{{
			Algorithm: strings.ToUpper(sum.Algorithm()),
			Value:     sum.Hex(),
		}},
		LicenseConcluded: NoAssertion,
		LicenseDeclared:  NoAssertion,
		CopyrightText:    NoAssertion,
		Comment:          layerComment(l),
	}
	lr := &layerRecord{ref: ref, pkg: p}
	b.layers[ref] = lr

	// Packages go first so their declared licenses are extracted ahead of
	// the file licenses.
	seen := make(map[string]struct{}, len(l.Packages))
	for _, pkg := range l.Packages {
		pref, err := b.addPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", l.LayerIndex, err)
		}
		if _, ok := seen[pref]; ok {
			continue
		}
		seen[pref] = struct{}{}
		lr.packages = append(lr.packages, pref)
	}
	for _, f := range l.Files {
		for _, lic := range f.Licenses {
			b.addLicense(lic)
		}
	}
	if !l.FilesAnalyzed {
		return lr, nil
	}

	code, err := VerificationCode(l)
	if err != nil {
		return nil, err
	}
	p.VerificationCode = &verificationCode{Value: code}
	inLayer := make(map[string]struct{}, len(l.Files))
	var fileLicenses []string
	for _, f := range l.Files {
		fref := FileRef(f, layerID)
		if _, ok := inLayer[fref]; ok {
			continue
		}
		inLayer[fref] = struct{}{}
		p.HasFiles = append(p.HasFiles, fref)
		fileLicenses = append(fileLicenses, f.Licenses...)
		if _, ok := b.fileSeen[fref]; ok {
			continue
		}
		b.fileSeen[fref] = struct{}{}
		rec := newFileRecord(f, fref)
		b.files = append(b.files, rec)
		lr.files = append(lr.files, rec)
	}
	p.LicenseInfoFromFiles = licenseRefs(fileLicenses)
	return lr, nil
}

// LayerChecksum returns the layer checksum, falling back to the diff_id
// read as a SHA256.
func layerChecksum(l *layerbom.Layer) (layerbom.Digest, error) {
	if l.ChecksumType() != "" {
		return l.Checksum, nil
	}
	id := l.DiffID
	if strings.Contains(id, ":") {
		return layerbom.ParseDigest(id)
	}
	sum, err := hex.DecodeString(id)
	if err != nil || len(sum) == 0 {
		return layerbom.Digest{}, &layerbom.Error{
			Op:      "spdx.layerChecksum",
			Kind:    layerbom.ErrInvalid,
			Message: fmt.Sprintf("layer %d: no checksum and diff_id %q is not hex", l.LayerIndex, l.DiffID),
			Inner:   err,
		}
	}
	return layerbom.NewDigest("sha256", sum), nil
}

// LayerComment is the extension headers, one per line, followed by the
// layer's notices.
func layerComment(l *layerbom.Layer) string {
	var b strings.Builder
	for _, h := range l.Headers() {
		b.WriteString(h)
		b.WriteByte('\n')
	}
	b.WriteString(FormatOrigins(l.Origins))
	return b.String()
}
