package layerbom

import "strings"

// Package is a software package installed in a layer.
type Package struct {
	// the name of the package
	Name string `json:"name"`
	// the version of the package, may be empty
	Version string `json:"version,omitempty"`
	// License is the declared license as a single string, may be empty.
	License string `json:"pkg_license,omitempty"`
	// Licenses holds every license found for the package. Formats that
	// carry one license per copyright stanza (Debian) fill this instead of
	// License.
	Licenses []string `json:"pkg_licenses,omitempty"`
	// Source is the name of the source package this binary was built from.
	Source string `json:"src_name,omitempty"`
	// SourceVersion is the version of the source package. Empty means the
	// same as Version.
	SourceVersion string `json:"src_version,omitempty"`
	Copyright     string `json:"copyright,omitempty"`
	// ProjectURL is the upstream project page.
	ProjectURL string `json:"proj_url,omitempty"`
	// DownloadURL is where the package can be fetched from.
	DownloadURL string `json:"download_url,omitempty"`
	Supplier    string `json:"pkg_supplier,omitempty"`
	// Format is the packaging format, e.g. "deb", "apk", "rpm", "pypi".
	Format string `json:"pkg_format,omitempty"`
	// Package architecture
	Arch    string  `json:"arch,omitempty"`
	Origins Origins `json:"origins,omitempty"`
}

// Packaging formats with special handling.
const (
	FormatDeb = "deb"
	FormatAPK = "apk"
	FormatRPM = "rpm"
)

// DeclaredLicense is the license the package claims for itself.
//
// Debian packages carry their licenses as a list, which is joined with
// commas; everything else uses License directly.
func (p *Package) DeclaredLicense() string {
	if p.Format == FormatDeb && len(p.Licenses) != 0 {
		return strings.Join(p.Licenses, ", ")
	}
	return p.License
}

// SourceName returns the source package name and version, or empty strings
// if no source package is recorded.
func (p *Package) SourceName() (name, version string) {
	if p.Source == "" {
		return "", ""
	}
	version = p.SourceVersion
	if version == "" {
		version = p.Version
	}
	return p.Source, version
}
