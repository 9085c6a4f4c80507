package java

import (
	"context"
	"testing"

	"github.com/quay/layerbom"
)

func TestGeneratePURL(t *testing.T) {
	ctx := context.Background()
	got, err := GeneratePURL(ctx, &layerbom.Package{Name: "org.apache.logging.log4j:log4j-core", Version: "2.17.1"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := got.ToString(), "pkg:maven/org.apache.logging.log4j/log4j-core@2.17.1"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}

	if _, err := GeneratePURL(ctx, &layerbom.Package{Name: "no-group", Version: "1.0"}); err == nil {
		t.Error("expected error for a name without a group")
	}
}
