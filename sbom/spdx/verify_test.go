package spdx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/quay/layerbom"
	"github.com/quay/layerbom/test"
)

func TestVerifyRoundTrip(t *testing.T) {
	ctx := test.Logging(t)
	images := map[string]*layerbom.Image{
		"Fixture":   test.LoadImage(t, fixture),
		"Generated": test.GenImage("example.com/generated", 4, 3, 5),
	}
	for name, img := range images {
		for _, f := range []Format{FormatJSON, FormatTagValue} {
			for _, v := range []Version{V2_2, V2_3} {
				t.Run(fmt.Sprintf("%s/%s/%s", name, f, v), func(t *testing.T) {
					e := newTestEncoder(WithFormat(f), WithVersion(v))
					out, err := e.Generate(ctx, []*layerbom.Image{img})
					if err != nil {
						t.Fatal(err)
					}
					if err := Verify(ctx, bytes.NewReader(out), f); err != nil {
						t.Errorf("generated document failed verification: %v", err)
					}
				})
			}
		}
	}
	t.Run("Snapshot", func(t *testing.T) {
		img := test.LoadImage(t, fixture)
		for _, f := range []Format{FormatJSON, FormatTagValue} {
			out, err := newTestEncoder(WithFormat(f)).GenerateLayer(ctx, img.Layers[0])
			if err != nil {
				t.Fatal(err)
			}
			if err := Verify(ctx, bytes.NewReader(out), f); err != nil {
				t.Errorf("%s: generated snapshot failed verification: %v", f, err)
			}
		}
	})
}

const verifyTemplate = `{
	"spdxVersion": "SPDX-2.3",
	"dataLicense": "CC0-1.0",
	"SPDXID": "SPDXRef-DOCUMENT",
	"name": "verify",
	"documentNamespace": "https://example.com/verify",
	"creationInfo": {"created": "2023-01-02T03:04:05Z", "creators": ["Tool: test"]},
	"packages": [
		{"name": "a", "SPDXID": "SPDXRef-a", "downloadLocation": "NONE", "filesAnalyzed": false, "licenseDeclared": "%s"},
		{"name": "b", "SPDXID": "SPDXRef-%s", "downloadLocation": "NONE", "filesAnalyzed": false}
	],
	"relationships": [
		{"spdxElementId": "SPDXRef-DOCUMENT", "relationshipType": "DESCRIBES", "relatedSpdxElement": "SPDXRef-a"},
		{"spdxElementId": "SPDXRef-a", "relationshipType": "CONTAINS", "relatedSpdxElement": "%s"}
	],
	"hasExtractedLicensingInfos": [
		{"licenseId": "LicenseRef-mit", "extractedText": "MIT"}
	]
}`

func TestVerifyErrors(t *testing.T) {
	ctx := test.Logging(t)
	tt := []struct {
		Name    string
		License string
		ID      string
		Related string
		Want    error
	}{
		{"OK", "LicenseRef-mit", "b", "SPDXRef-b", nil},
		{"OKExternal", "MIT", "b", "DocumentRef-other:SPDXRef-x", nil},
		{"OKNoAssertion", "NOASSERTION", "b", "NOASSERTION", nil},
		{"MissingLicense", "LicenseRef-gpl", "b", "SPDXRef-b", layerbom.ErrInconsistentReferences},
		{"MissingLicenseInExpression", "MIT AND LicenseRef-gpl", "b", "SPDXRef-b", layerbom.ErrInconsistentReferences},
		{"DanglingRelationship", "LicenseRef-mit", "b", "SPDXRef-c", layerbom.ErrInconsistentReferences},
		{"DuplicateID", "LicenseRef-mit", "a", "SPDXRef-a", layerbom.ErrInvalidIdentifier},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			doc := fmt.Sprintf(verifyTemplate, tc.License, tc.ID, tc.Related)
			err := Verify(ctx, strings.NewReader(doc), FormatJSON)
			switch {
			case tc.Want == nil && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tc.Want != nil && !errors.Is(err, tc.Want):
				t.Errorf("got error %v, want %v", err, tc.Want)
			}
		})
	}
}

func TestVerifyInvalidInput(t *testing.T) {
	ctx := test.Logging(t)
	if err := Verify(ctx, strings.NewReader("{"), FormatJSON); !errors.Is(err, layerbom.ErrInvalid) {
		t.Errorf("got error %v, want %v", err, layerbom.ErrInvalid)
	}
	if err := Verify(ctx, strings.NewReader("{}"), "yaml"); !errors.Is(err, layerbom.ErrInvalid) {
		t.Errorf("got error %v, want %v", err, layerbom.ErrInvalid)
	}
}
