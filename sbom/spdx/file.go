package spdx

import (
	"strings"

	"github.com/quay/layerbom"
)

// NewFileRecord builds the SPDX File for f. The caller must have checked that
// f has a SHA1.
func newFileRecord(f *layerbom.File, ref string) *fileRecord {
	fs := f.Fields(&Template)
	sum, _ := f.SHA1()
	r := &fileRecord{
		FileName:           fs[Template.File.Name],
		SPDXID:             ref,
		Checksums:          []checksum{{Algorithm: "SHA1", Value: sum}},
		LicenseConcluded:   NoAssertion,
		LicenseInfoInFiles: licenseRefs(f.Licenses),
		CopyrightText:      NoAssertion,
		NoticeText:         strings.Join(f.Copyrights, "\n"),
		Comment:            FormatOrigins(f.Origins),
		Contributors:       f.Authors,
	}
	if r.LicenseInfoInFiles == nil {
		r.LicenseInfoInFiles = []string{None}
	}
	if t := fs[Template.File.Type]; t != "" {
		r.FileTypes = []string{t}
	}
	return r
}
