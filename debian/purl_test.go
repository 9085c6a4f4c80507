package debian

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

func TestGeneratePURL(t *testing.T) {
	ctx := context.Background()
	tt := []struct {
		Name    string
		In      layerbom.Package
		Want    packageurl.PackageURL
		WantErr bool
	}{
		{
			Name: "Simple",
			In:   layerbom.Package{Name: "libc6", Version: "2.28-10", Arch: "amd64", Format: layerbom.FormatDeb},
			Want: packageurl.PackageURL{
				Type:       PURLType,
				Namespace:  PURLNamespace,
				Name:       "libc6",
				Version:    "2.28-10",
				Qualifiers: packageurl.QualifiersFromMap(map[string]string{"arch": "amd64"}),
			},
		},
		{
			Name: "Epoch",
			In:   layerbom.Package{Name: "bsdutils", Version: "1:2.33.1-0.1", Arch: "amd64", Format: layerbom.FormatDeb},
			Want: packageurl.PackageURL{
				Type:       PURLType,
				Namespace:  PURLNamespace,
				Name:       "bsdutils",
				Version:    "1:2.33.1-0.1",
				Qualifiers: packageurl.QualifiersFromMap(map[string]string{"arch": "amd64"}),
			},
		},
		{
			Name:    "BadVersion",
			In:      layerbom.Package{Name: "broken", Version: "not a version!", Format: layerbom.FormatDeb},
			WantErr: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := GeneratePURL(ctx, &tc.In)
			if (err != nil) != tc.WantErr {
				t.Fatalf("error = %v, wantErr %v", err, tc.WantErr)
			}
			if tc.WantErr {
				return
			}
			if !cmp.Equal(got, tc.Want) {
				t.Error(cmp.Diff(got, tc.Want))
			}
		})
	}
}
