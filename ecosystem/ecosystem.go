// Package ecosystem wires the per-ecosystem package URL generators into a
// [purl.Registry].
package ecosystem

import (
	"github.com/quay/layerbom"
	"github.com/quay/layerbom/alpine"
	"github.com/quay/layerbom/debian"
	"github.com/quay/layerbom/gobin"
	"github.com/quay/layerbom/java"
	"github.com/quay/layerbom/nodejs"
	"github.com/quay/layerbom/purl"
	"github.com/quay/layerbom/python"
	"github.com/quay/layerbom/rhel"
	"github.com/quay/layerbom/ruby"
)

// Package formats beyond the ones the model names.
const (
	FormatPyPI    = "pypi"
	FormatNPM     = "npm"
	FormatGem     = "gem"
	FormatGo      = "go"
	FormatMaven   = "maven"
	FormatJavaJar = "jar"
)

// NewRegistry returns a registry with every known format registered.
func NewRegistry() *purl.Registry {
	r := purl.NewRegistry()
	r.RegisterFormat(layerbom.FormatDeb, debian.GeneratePURL)
	r.RegisterFormat(layerbom.FormatAPK, alpine.GeneratePURL)
	r.RegisterFormat(layerbom.FormatRPM, rhel.GenerateRPMPURL)
	r.RegisterFormat(FormatPyPI, python.GeneratePURL)
	r.RegisterFormat(FormatNPM, nodejs.GeneratePURL)
	r.RegisterFormat(FormatGem, ruby.GeneratePURL)
	r.RegisterFormat(FormatGo, gobin.GeneratePURL)
	r.RegisterFormat(FormatMaven, java.GeneratePURL)
	r.RegisterFormat(FormatJavaJar, java.GeneratePURL)
	return r
}
