package spdx

import (
	"bytes"
	"strconv"
	"strings"
)

// TextTags are always written as <text>...</text>.
var textTags = map[string]bool{
	"DocumentComment": true,
	"PackageComment":  true,
	"FileComment":     true,
	"FileNotice":      true,
	"ExtractedText":   true,
}

type tvWriter struct {
	buf *bytes.Buffer
	// Edges indexes the relationships by their first element.
	edges map[string][]Relationship
}

// WriteTagValue serializes the document in the SPDX tag-value format.
//
// The order is: header, image package, image CONTAINS layer edges, then for
// each layer its package, its edges and its files, then the installed
// packages, then the extracted licenses.
func writeTagValue(buf *bytes.Buffer, d *document) error {
	w := &tvWriter{
		buf:   buf,
		edges: make(map[string][]Relationship),
	}
	for _, r := range d.Relationships {
		w.edges[r.Element] = append(w.edges[r.Element], r)
	}

	w.tag("SPDXVersion", d.SPDXVersion)
	w.tag("DataLicense", d.DataLicense)
	w.tag("SPDXID", d.SPDXID)
	w.tag("DocumentName", d.Name)
	w.tag("DocumentNamespace", d.DocumentNamespace)
	w.opt("LicenseListVersion", d.CreationInfo.LicenseListVersion)
	for _, c := range d.CreationInfo.Creators {
		w.tag("Creator", c)
	}
	w.tag("Created", d.CreationInfo.Created)
	w.opt("DocumentComment", d.Comment)
	w.relationships(d.SPDXID, Describes)

	if d.image != nil {
		w.buf.WriteByte('\n')
		w.pkg(d.image)
		w.relationships(d.image.SPDXID, Contains)
	}
	for _, l := range d.layers {
		w.buf.WriteByte('\n')
		w.pkg(l.pkg)
		w.relationships(l.ref, HasPrerequisite)
		w.relationships(l.ref, Contains)
		for _, f := range l.files {
			w.buf.WriteByte('\n')
			w.file(f)
		}
	}
	for _, p := range d.installed {
		w.buf.WriteByte('\n')
		w.pkg(p)
		w.relationships(p.SPDXID, GeneratedFrom)
	}
	for _, l := range d.ExtractedLicenses {
		w.buf.WriteByte('\n')
		w.tag("LicenseID", l.LicenseID)
		w.tag("ExtractedText", l.ExtractedText)
	}
	return nil
}

// Tag writes a "Tag: value" line, wrapping the value in <text> when it is
// free-form or spans lines.
func (w *tvWriter) tag(t, v string) {
	w.buf.WriteString(t)
	w.buf.WriteString(": ")
	if textTags[t] || strings.ContainsRune(v, '\n') {
		w.buf.WriteString("<text>")
		w.buf.WriteString(v)
		w.buf.WriteString("</text>")
	} else {
		w.buf.WriteString(v)
	}
	w.buf.WriteByte('\n')
}

// Opt is like tag, but skips empty values.
func (w *tvWriter) opt(t, v string) {
	if v != "" {
		w.tag(t, v)
	}
}

func (w *tvWriter) relationships(from string, t RelationshipType) {
	for _, r := range w.edges[from] {
		if r.Type == t {
			w.tag("Relationship", r.String())
		}
	}
}

func (w *tvWriter) pkg(p *packageRecord) {
	w.tag("PackageName", p.Name)
	w.tag("SPDXID", p.SPDXID)
	w.opt("PackageVersion", p.VersionInfo)
	w.opt("PackageFileName", p.PackageFileName)
	w.tag("PackageSupplier", orElse(p.Supplier, NoAssertion))
	w.tag("PackageDownloadLocation", p.DownloadLocation)
	w.tag("FilesAnalyzed", strconv.FormatBool(p.FilesAnalyzed))
	if p.VerificationCode != nil {
		w.tag("PackageVerificationCode", p.VerificationCode.Value)
	}
	for _, c := range p.Checksums {
		w.tag("PackageChecksum", c.Algorithm+": "+c.Value)
	}
	w.tag("PackageLicenseConcluded", p.LicenseConcluded)
	for _, l := range p.LicenseInfoFromFiles {
		w.tag("PackageLicenseInfoFromFiles", l)
	}
	w.tag("PackageLicenseDeclared", p.LicenseDeclared)
	w.tag("PackageCopyrightText", p.CopyrightText)
	w.opt("PackageComment", p.Comment)
	for _, r := range p.ExternalRefs {
		w.tag("ExternalRef", r.Category+" "+r.Type+" "+r.Locator)
	}
}

func (w *tvWriter) file(f *fileRecord) {
	w.tag("FileName", f.FileName)
	w.tag("SPDXID", f.SPDXID)
	for _, t := range f.FileTypes {
		w.tag("FileType", t)
	}
	for _, c := range f.Checksums {
		w.tag("FileChecksum", c.Algorithm+": "+c.Value)
	}
	w.tag("LicenseConcluded", f.LicenseConcluded)
	for _, l := range f.LicenseInfoInFiles {
		w.tag("LicenseInfoInFile", l)
	}
	w.tag("FileCopyrightText", f.CopyrightText)
	w.opt("FileComment", f.Comment)
	w.opt("FileNotice", f.NoticeText)
	for _, c := range f.Contributors {
		w.tag("FileContributor", c)
	}
}
