package spdx

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/quay/layerbom"
)

const refPrefix = "SPDXRef-"

// ShortID returns the last 7 hex characters of the SHA-256 of s.
func ShortID(s string) string {
	sum := sha256.Sum256([]byte(s))
	h := hex.EncodeToString(sum[:])
	return h[len(h)-7:]
}

// LicenseRef returns the document-local license identifier for a license
// text. The same text always produces the same identifier.
func LicenseRef(text string) string {
	return "LicenseRef-" + ShortID(text)
}

// ImageRef returns the SPDX identifier of the image package.
func ImageRef(img *layerbom.Image) (string, error) {
	return elementID(img.HumanReadableID())
}

// LayerRef returns the SPDX identifier of the layer package: the first 10
// characters of the layer's diff_id.
func LayerRef(l *layerbom.Layer) (string, error) {
	return elementID(l.ShortDiffID(10))
}

// PackageRef returns the SPDX identifier of an installed package, built
// from "name-version". Epoch separators in the version become dashes.
func PackageRef(p *layerbom.Package) (string, error) {
	return elementID(p.Name + "-" + p.Version)
}

// SourcePackageRef returns the SPDX identifier of the source package p was
// built from, and false if p records no source package.
func SourcePackageRef(p *layerbom.Package) (string, bool, error) {
	n, v := p.SourceName()
	if n == "" {
		return "", false, nil
	}
	id, err := elementID(n + "-" + v)
	return id, true, err
}

// FileRef returns the SPDX identifier of a file inside the layer whose
// SPDX-formatted checksum is layerID. The checksum is mixed in so the same
// path in two layers gets two identifiers.
func FileRef(f *layerbom.File, layerID string) string {
	sum, _ := f.SHA1()
	if len(sum) > 7 {
		sum = sum[:7]
	}
	return refPrefix + ShortID(f.Path+sum+layerID)
}

// Checksum formats d the way SPDX writes checksums: "SHA256: <hex>".
func Checksum(d layerbom.Digest) string {
	return strings.ToUpper(d.Algorithm()) + ": " + d.Hex()
}

// VerificationCode computes the package verification code of a layer: the
// SHA1 of the sorted concatenation of every file's SHA1.
//
// Every file must have a SHA1; an [layerbom.ErrMissingChecksum] error is
// returned otherwise.
func VerificationCode(l *layerbom.Layer) (string, error) {
	sums := make([]string, 0, len(l.Files))
	for _, f := range l.Files {
		s, ok := f.SHA1()
		if !ok {
			return "", &layerbom.Error{
				Op:      "spdx.VerificationCode",
				Kind:    layerbom.ErrMissingChecksum,
				Message: fmt.Sprintf("layer %d: file %q has no SHA1 (primary checksum %q)", l.LayerIndex, f.Path, f.ChecksumType()),
			}
		}
		sums = append(sums, s)
	}
	slices.Sort(sums)
	h := sha1.New()
	for _, s := range sums {
		h.Write([]byte(s))
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// elementID turns s into an SPDX element identifier.
//
// Diacritics are stripped and the characters SPDX does not allow but
// package names and versions commonly carry ("+", "~", "_", "/", ":", "@")
// are mapped to "-". Anything else outside [A-Za-z0-9.-] is an
// [layerbom.ErrInvalidIdentifier] error.
func elementID(s string) (string, error) {
	t, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		return "", &layerbom.Error{
			Op:    "spdx.elementID",
			Kind:  layerbom.ErrInvalidIdentifier,
			Inner: err,
		}
	}
	t = strings.Map(func(r rune) rune {
		switch r {
		case '+', '~', '_', '/', ':', '@':
			return '-'
		}
		return r
	}, t)
	if t == "" {
		return "", &layerbom.Error{
			Op:      "spdx.elementID",
			Kind:    layerbom.ErrInvalidIdentifier,
			Message: "empty identifier",
		}
	}
	if i := strings.IndexFunc(t, notIDRune); i != -1 {
		r, _ := utf8.DecodeRuneInString(t[i:])
		return "", &layerbom.Error{
			Op:      "spdx.elementID",
			Kind:    layerbom.ErrInvalidIdentifier,
			Message: fmt.Sprintf("%q: disallowed character %q", s, r),
		}
	}
	return refPrefix + t, nil
}

func notIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == '.' || r == '-':
		return false
	}
	return true
}
