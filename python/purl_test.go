package python

import (
	"context"
	"testing"

	"github.com/quay/layerbom"
)

func TestGeneratePURL(t *testing.T) {
	ctx := context.Background()
	got, err := GeneratePURL(ctx, &layerbom.Package{Name: "django", Version: "1.11.1", Format: "pypi"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := got.ToString(), "pkg:pypi/django@1.11.1"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
}
