// Package spdx renders an image model as an SPDX 2.x document in either the
// JSON or the tag-value serialization.
package spdx

import (
	"fmt"
	"strings"

	"github.com/quay/layerbom"
)

// Format describes the data format for the SPDX document.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatTagValue Format = "tagvalue"
)

// ParseFormat parses the command-line spelling of a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "spdx-json":
		return FormatJSON, nil
	case "tagvalue", "tag-value", "tv", "spdx":
		return FormatTagValue, nil
	}
	return "", &layerbom.Error{
		Op:      "spdx.ParseFormat",
		Kind:    layerbom.ErrInvalid,
		Message: fmt.Sprintf("unknown format %q", s),
	}
}

// Version describes the SPDX version to target.
type Version string

// Supported versions.
const (
	V2_2 Version = "SPDX-2.2"
	V2_3 Version = "SPDX-2.3"
)

// ParseVersion accepts "2.2", "v2.2" or "SPDX-2.2" style version strings.
func ParseVersion(s string) (Version, error) {
	v := strings.TrimPrefix(strings.TrimPrefix(strings.ToUpper(s), "SPDX-"), "V")
	switch v {
	case "2.2":
		return V2_2, nil
	case "2.3":
		return V2_3, nil
	}
	return "", &layerbom.Error{
		Op:      "spdx.ParseVersion",
		Kind:    layerbom.ErrInvalid,
		Message: fmt.Sprintf("unknown SPDX version %q", s),
	}
}

// Values with special meaning in SPDX documents.
const (
	NoAssertion = "NOASSERTION"
	None        = "NONE"

	// DataLicense is the license of the document itself.
	DataLicense = "CC0-1.0"
	// DocumentRef is the SPDX identifier of the document.
	DocumentRef = "SPDXRef-DOCUMENT"
	// DefaultLicenseListVersion is the SPDX license list version
	// documents claim by default.
	DefaultLicenseListVersion = "3.20"
)

// Template maps model attributes to SPDX tag names.
var Template = layerbom.Template{
	Image: layerbom.ImageTemplate{
		Name:    "PackageName",
		Version: "PackageVersion",
	},
	File: layerbom.FileTemplate{
		Name: "FileName",
		Type: "FileType",
	},
	Package: layerbom.PackageTemplate{
		Name:             "PackageName",
		Version:          "PackageVersion",
		License:          "PackageLicenseDeclared",
		Copyright:        "PackageCopyrightText",
		DownloadLocation: "PackageDownloadLocation",
		Supplier:         "PackageSupplier",
		SourceName:       "SourcePackageName",
		SourceVersion:    "SourcePackageVersion",
	},
}
