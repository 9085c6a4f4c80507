package spdx

import "github.com/quay/layerbom"

// ImageRecord is the image as an SPDX package. Nothing is asserted about
// its licensing.
func imageRecord(img *layerbom.Image, ref string) *packageRecord {
	fs := img.Fields(&Template)
	return &packageRecord{
		Name:             fs[Template.Image.Name],
		SPDXID:           ref,
		VersionInfo:      orElse(fs[Template.Image.Version], NoAssertion),
		DownloadLocation: NoAssertion,
		LicenseConcluded: NoAssertion,
		LicenseDeclared:  NoAssertion,
		CopyrightText:    NoAssertion,
		Comment:          FormatOrigins(img.Origins),
	}
}
