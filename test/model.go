package test

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/quay/layerbom"
)

// SHA1 returns the SHA1 digest of s.
func SHA1(s string) layerbom.Digest {
	sum := sha1.Sum([]byte(s))
	return layerbom.NewDigest("sha1", sum[:])
}

// SHA256 returns the SHA256 digest of s.
func SHA256(s string) layerbom.Digest {
	sum := sha256.Sum256([]byte(s))
	return layerbom.NewDigest("sha256", sum[:])
}

// LoadImage decodes the image model in the named file.
func LoadImage(t testing.TB, name string) *layerbom.Image {
	t.Helper()
	b, err := os.ReadFile(filepath.FromSlash(name))
	if err != nil {
		t.Fatal(err)
	}
	var img layerbom.Image
	if err := json.Unmarshal(b, &img); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return &img
}

// GenImage creates an image with n analyzed layers. Each layer has pkgs
// packages and files files.
//
// Layer i holds packages "package-i" through "package-(i+pkgs-1)", so
// consecutive layers share all but one package. Even-numbered packages
// carry a source package and an epoch in their version. Files carry a
// license drawn from a pool of three, listed twice.
func GenImage(name string, n, pkgs, files int) *layerbom.Image {
	img := &layerbom.Image{Name: name, Tag: "latest"}
	for i := 1; i <= n; i++ {
		diff := SHA256(fmt.Sprintf("layer-%d", i))
		l := &layerbom.Layer{
			LayerIndex:    i,
			DiffID:        diff.Hex(),
			TarFile:       fmt.Sprintf("%s/layer.tar", diff.Hex()),
			Checksum:      diff,
			FilesAnalyzed: true,
		}
		for j := range pkgs {
			l.Packages = append(l.Packages, genPackage(i+j))
		}
		for j := range files {
			lic := fmt.Sprintf("license-%d", j%3)
			l.Files = append(l.Files, &layerbom.File{
				Path:     fmt.Sprintf("/usr/lib/file-%d", j),
				Checksum: SHA1(fmt.Sprintf("layer-%d-file-%d", i, j)),
				Licenses: []string{lic, lic},
			})
		}
		img.Layers = append(img.Layers, l)
	}
	return img
}

func genPackage(k int) *layerbom.Package {
	p := &layerbom.Package{
		Name:     fmt.Sprintf("package-%d", k),
		Version:  fmt.Sprintf("version-%d", k),
		License:  fmt.Sprintf("package-license-%d", k%4),
		Supplier: "Example",
	}
	if k%2 == 0 {
		p.Version = "1:" + p.Version
		p.Source = fmt.Sprintf("source-package-%d", k)
	}
	return p
}
