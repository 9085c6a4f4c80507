package spdx

import (
	"bufio"
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/layerbom"
	"github.com/quay/layerbom/test"
)

func generateTagValue(t testing.TB) []string {
	t.Helper()
	ctx := test.Logging(t)
	img := test.LoadImage(t, fixture)
	out, err := newTestEncoder(WithFormat(FormatTagValue)).Generate(ctx, []*layerbom.Image{img})
	if err != nil {
		t.Fatal(err)
	}
	var lines []string
	s := bufio.NewScanner(bytes.NewReader(out))
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	return lines
}

func TestTagValueHeader(t *testing.T) {
	lines := generateTagValue(t)
	want := []string{
		"SPDXVersion: SPDX-2.2",
		"DataLicense: CC0-1.0",
		"SPDXID: SPDXRef-DOCUMENT",
		"DocumentName: layerbom SBOM for golang:1.12-alpine",
		"DocumentNamespace: https://spdx.org/spdxdocs/layerbom-report-v1.0.0-golang-1.12-alpine-" + fixedUUID,
		"LicenseListVersion: 3.20",
		"Creator: Tool: layerbom-v1.0.0",
		"Created: 2023-01-02T08:04:05Z",
	}
	if got := lines[:len(want)]; !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
	rest := lines[len(want):]
	if !strings.HasPrefix(rest[0], "DocumentComment: <text>") || !strings.HasSuffix(rest[0], "</text>") {
		t.Errorf("bad document comment: %q", rest[0])
	}
	if got, want := rest[1], "Relationship: SPDXRef-DOCUMENT DESCRIBES SPDXRef-golang-1.12-alpine"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
	if rest[2] != "" {
		t.Errorf("want a blank line after the header, got %q", rest[2])
	}
}

func TestTagValueOrder(t *testing.T) {
	lines := generateTagValue(t)
	// Each of these must appear, in this order.
	want := []string{
		"PackageName: golang",
		"Relationship: SPDXRef-golang-1.12-alpine CONTAINS SPDXRef-5216338b40",
		"Relationship: SPDXRef-golang-1.12-alpine CONTAINS SPDXRef-3957f7032f",
		"SPDXID: SPDXRef-5216338b40",
		"Relationship: SPDXRef-5216338b40 CONTAINS SPDXRef-alpine-keys-2.1-r2",
		"Relationship: SPDXRef-5216338b40 CONTAINS SPDXRef-musl-utils-1.1.22-r3",
		"SPDXID: SPDXRef-7306dca01e",
		"Relationship: SPDXRef-7306dca01e HAS_PREREQUISITE SPDXRef-5216338b40",
		"Relationship: SPDXRef-7306dca01e CONTAINS SPDXRef-alpine-keys-2.1-r2",
		"SPDXID: SPDXRef-3957f7032f",
		"Relationship: SPDXRef-3957f7032f HAS_PREREQUISITE SPDXRef-7306dca01e",
		"FileName: /usr/local/go/LICENSE",
		"FileName: /usr/local/go/bin/go",
		"SPDXID: SPDXRef-alpine-keys-2.1-r2",
		"SPDXID: SPDXRef-musl-1.1.22-r3",
		"SPDXID: SPDXRef-musl-utils-1.1.22-r3",
		"Relationship: SPDXRef-musl-utils-1.1.22-r3 GENERATED_FROM SPDXRef-musl-1.1.22-r3",
		"LicenseID: LicenseRef-c7ea3b7",
		"ExtractedText: <text>MIT</text>",
		"LicenseID: LicenseRef-da38037",
		"ExtractedText: <text>BSD-3-Clause</text>",
	}
	i := 0
	for _, l := range lines {
		if i < len(want) && l == want[i] {
			i++
		}
	}
	if i != len(want) {
		t.Errorf("line %q missing or out of order", want[i])
	}
}

func TestTagValuePackage(t *testing.T) {
	lines := generateTagValue(t)
	start := slices.Index(lines, "SPDXID: SPDXRef-3957f7032f")
	if start < 1 {
		t.Fatal("layer package not found")
	}
	got := lines[start-1 : start+13]
	want := []string{
		"PackageName: layer.tar",
		"SPDXID: SPDXRef-3957f7032f",
		"PackageFileName: 3957f7032f/layer.tar",
		"PackageSupplier: NOASSERTION",
		"PackageDownloadLocation: NONE",
		"FilesAnalyzed: true",
		"PackageVerificationCode: 68261e8741b847dbf16592dfc8abef22c1ad2715",
		"PackageChecksum: SHA256: " + layer3,
		"PackageLicenseConcluded: NOASSERTION",
		"PackageLicenseInfoFromFiles: LicenseRef-da38037",
		"PackageLicenseDeclared: NOASSERTION",
		"PackageCopyrightText: NOASSERTION",
		"Relationship: SPDXRef-3957f7032f HAS_PREREQUISITE SPDXRef-7306dca01e",
		"",
	}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}

	start = slices.Index(lines, "SPDXID: SPDXRef-alpine-keys-2.1-r2")
	got = lines[start-1 : start+10]
	want = []string{
		"PackageName: alpine-keys",
		"SPDXID: SPDXRef-alpine-keys-2.1-r2",
		"PackageVersion: 2.1-r2",
		"PackageSupplier: Organization: Alpine Linux",
		"PackageDownloadLocation: https://alpinelinux.org",
		"FilesAnalyzed: false",
		"PackageLicenseConcluded: NOASSERTION",
		"PackageLicenseDeclared: LicenseRef-c7ea3b7",
		"PackageCopyrightText: NONE",
		"ExternalRef: PACKAGE-MANAGER purl pkg:apk/alpine/alpine-keys@2.1-r2?arch=x86_64",
		"",
	}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

func TestTagValueText(t *testing.T) {
	lines := generateTagValue(t)
	for _, want := range []string{
		"PackageComment: <text>golang:1.12-alpine:",
		"PackageComment: <text>scanned by test extension",
		"FileNotice: <text>Copyright (c) 2009 The Go Authors. All rights reserved.</text>",
		"FileComment: <text>/usr/local/go/bin/go:",
		"FileContributor: The Go Authors",
		"LicenseInfoInFile: NONE",
		"FileType: BINARY",
		"FileChecksum: SHA1: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb2",
	} {
		if !slices.Contains(lines, want) {
			t.Errorf("missing line %q", want)
		}
	}
	// Multi-line values close their text block on a later line.
	i := slices.Index(lines, "PackageComment: <text>scanned by test extension")
	if got, want := lines[i+1], "5216338b40/layer.tar:"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
	if got, want := lines[i+3], "</text>"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
}

func TestTagWrap(t *testing.T) {
	tt := []struct {
		Tag, Value, Want string
	}{
		{"PackageName", "musl", "PackageName: musl\n"},
		{"PackageCopyrightText", "a\nb", "PackageCopyrightText: <text>a\nb</text>\n"},
		{"ExtractedText", "MIT", "ExtractedText: <text>MIT</text>\n"},
		{"FileNotice", "(c) me", "FileNotice: <text>(c) me</text>\n"},
	}
	for _, tc := range tt {
		t.Run(tc.Tag, func(t *testing.T) {
			var buf bytes.Buffer
			w := &tvWriter{buf: &buf}
			w.tag(tc.Tag, tc.Value)
			if got := buf.String(); got != tc.Want {
				t.Errorf("got: %q, want: %q", got, tc.Want)
			}
		})
	}
}
