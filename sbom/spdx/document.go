package spdx

// The types in this file are the in-memory SPDX document. Field order and
// JSON names follow the SPDX 2.x JSON schema; the tag-value writer walks the
// same records.

type document struct {
	SPDXID            string             `json:"SPDXID"`
	SPDXVersion       string             `json:"spdxVersion"`
	CreationInfo      creationInfo       `json:"creationInfo"`
	Name              string             `json:"name"`
	DataLicense       string             `json:"dataLicense"`
	Comment           string             `json:"comment,omitempty"`
	DocumentNamespace string             `json:"documentNamespace"`
	DocumentDescribes []string           `json:"documentDescribes"`
	Packages          []*packageRecord   `json:"packages"`
	Files             []*fileRecord      `json:"files,omitempty"`
	Relationships     []Relationship     `json:"relationships"`
	ExtractedLicenses []extractedLicense `json:"hasExtractedLicensingInfos,omitempty"`

	// The tag-value writer needs to know which package is which.
	image     *packageRecord
	layers    []*layerRecord
	installed []*packageRecord
}

type creationInfo struct {
	Created            string   `json:"created"`
	Creators           []string `json:"creators"`
	LicenseListVersion string   `json:"licenseListVersion,omitempty"`
}

type packageRecord struct {
	Name                 string            `json:"name"`
	SPDXID               string            `json:"SPDXID"`
	VersionInfo          string            `json:"versionInfo,omitempty"`
	PackageFileName      string            `json:"packageFileName,omitempty"`
	Supplier             string            `json:"supplier,omitempty"`
	DownloadLocation     string            `json:"downloadLocation"`
	FilesAnalyzed        bool              `json:"filesAnalyzed"`
	VerificationCode     *verificationCode `json:"packageVerificationCode,omitempty"`
	Checksums            []checksum        `json:"checksums,omitempty"`
	LicenseConcluded     string            `json:"licenseConcluded"`
	LicenseInfoFromFiles []string          `json:"licenseInfoFromFiles,omitempty"`
	LicenseDeclared      string            `json:"licenseDeclared"`
	CopyrightText        string            `json:"copyrightText"`
	Comment              string            `json:"comment,omitempty"`
	ExternalRefs         []externalRef     `json:"externalRefs,omitempty"`
	HasFiles             []string          `json:"hasFiles,omitempty"`
}

type verificationCode struct {
	Value string `json:"packageVerificationCodeValue"`
}

type checksum struct {
	Algorithm string `json:"algorithm"`
	Value     string `json:"checksumValue"`
}

type externalRef struct {
	Category string `json:"referenceCategory"`
	Type     string `json:"referenceType"`
	Locator  string `json:"referenceLocator"`
}

type fileRecord struct {
	FileName           string     `json:"fileName"`
	SPDXID             string     `json:"SPDXID"`
	FileTypes          []string   `json:"fileTypes,omitempty"`
	Checksums          []checksum `json:"checksums"`
	LicenseConcluded   string     `json:"licenseConcluded"`
	LicenseInfoInFiles []string   `json:"licenseInfoInFiles"`
	CopyrightText      string     `json:"copyrightText"`
	NoticeText         string     `json:"noticeText,omitempty"`
	Comment            string     `json:"comment,omitempty"`
	Contributors       []string   `json:"fileContributors,omitempty"`
}

type extractedLicense struct {
	LicenseID     string `json:"licenseId"`
	ExtractedText string `json:"extractedText"`
}

// Check reports dangling references: relationship endpoints, described
// elements and files that are not in the document, and LicenseRefs without
// extracted text. It returns the first problem found.
func (d *document) check() error {
	c := newRefCheck()
	if err := c.element(d.SPDXID); err != nil {
		return err
	}
	for _, p := range d.Packages {
		if err := c.element(p.SPDXID); err != nil {
			return err
		}
	}
	for _, f := range d.Files {
		if err := c.element(f.SPDXID); err != nil {
			return err
		}
	}
	for _, l := range d.ExtractedLicenses {
		if err := c.license(l.LicenseID); err != nil {
			return err
		}
	}
	for _, id := range d.DocumentDescribes {
		if err := c.edge(d.SPDXID, id); err != nil {
			return err
		}
	}
	for _, r := range d.Relationships {
		if err := c.edge(r.Element, r.Related); err != nil {
			return err
		}
	}
	for _, p := range d.Packages {
		for _, f := range p.HasFiles {
			if err := c.edge(p.SPDXID, f); err != nil {
				return err
			}
		}
		if err := c.uses(p.SPDXID, p.LicenseDeclared, p.LicenseConcluded); err != nil {
			return err
		}
		if err := c.uses(p.SPDXID, p.LicenseInfoFromFiles...); err != nil {
			return err
		}
	}
	for _, f := range d.Files {
		if err := c.uses(f.SPDXID, f.LicenseConcluded); err != nil {
			return err
		}
		if err := c.uses(f.SPDXID, f.LicenseInfoInFiles...); err != nil {
			return err
		}
	}
	return nil
}
