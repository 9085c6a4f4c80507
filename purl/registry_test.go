package purl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/package-url/packageurl-go"

	"github.com/quay/layerbom"
)

func TestRegistryGenerate(t *testing.T) {
	ctx := context.Background()
	fake := func(ctx context.Context, p *layerbom.Package) (packageurl.PackageURL, error) {
		if p.Version == "" {
			return packageurl.PackageURL{}, errors.New("no version")
		}
		return packageurl.PackageURL{Type: "x", Name: p.Name, Version: p.Version}, nil
	}
	tests := []struct {
		name    string
		pkg     *layerbom.Package
		want    packageurl.PackageURL
		wantErr bool
	}{
		{
			name: "registered format generates purl",
			pkg:  &layerbom.Package{Name: "pkg", Version: "1.0.0", Format: "fake"},
			want: packageurl.PackageURL{Type: "x", Name: "pkg", Version: "1.0.0"},
		},
		{
			name:    "unknown format returns error",
			pkg:     &layerbom.Package{Name: "pkg", Version: "1.0.0", Format: "other"},
			wantErr: true,
		},
		{
			name:    "missing format returns error",
			pkg:     &layerbom.Package{Name: "pkg", Version: "1.0.0"},
			wantErr: true,
		},
		{
			name:    "generator error is wrapped",
			pkg:     &layerbom.Package{Name: "pkg", Format: "fake"},
			wantErr: true,
		},
	}
	r := NewRegistry()
	r.RegisterFormat("fake", fake)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Generate(ctx, tt.pkg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !cmp.Equal(got, tt.want) {
				t.Error(cmp.Diff(got, tt.want))
			}
		})
	}
}

func TestRegistryUnknownFormatError(t *testing.T) {
	r := NewRegistry()
	_, err := r.Generate(context.Background(), &layerbom.Package{Name: "a", Format: "cargo"})
	var uf ErrUnknownFormat
	if !errors.As(err, &uf) {
		t.Fatalf("got %T, want ErrUnknownFormat", err)
	}
	if uf.Format != "cargo" {
		t.Errorf("got format %q", uf.Format)
	}
}

func TestRegisterFormatTwicePanics(t *testing.T) {
	r := NewRegistry()
	fn := func(context.Context, *layerbom.Package) (packageurl.PackageURL, error) {
		return packageurl.PackageURL{}, nil
	}
	r.RegisterFormat("deb", fn)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	r.RegisterFormat("deb", fn)
}
