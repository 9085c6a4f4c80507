package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quay/layerbom"
	"github.com/quay/layerbom/sbom/spdx"
	"github.com/quay/layerbom/test"
)

func TestRunVerify(t *testing.T) {
	ctx := test.Logging(t)
	dir := t.TempDir()
	img := test.GenImage("verify", 2, 2, 2)
	var inputs []string
	for _, tc := range []struct {
		Name   string
		Format spdx.Format
	}{
		{"doc.spdx.json", spdx.FormatJSON},
		{"doc.spdx.gz", spdx.FormatTagValue},
	} {
		b, err := spdx.NewDefaultEncoder(spdx.WithFormat(tc.Format)).Generate(ctx, []*layerbom.Image{img})
		if err != nil {
			t.Fatal(err)
		}
		p := filepath.Join(dir, tc.Name)
		if err := writeFile(p, b); err != nil {
			t.Fatal(err)
		}
		inputs = append(inputs, p)
	}

	var out bytes.Buffer
	if err := runVerify(ctx, "", inputs, &out); err != nil {
		t.Fatalf("%v\n%s", err, out.String())
	}
	if got, want := strings.Count(out.String(), " ok\n"), 2; got != want {
		t.Errorf("got %d ok lines, want %d:\n%s", got, want, out.String())
	}

	t.Run("Bad", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(bad, []byte(`{"spdxVersion": "SPDX-2.3"`), 0o644); err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		if err := runVerify(ctx, "", append(inputs, bad), &out); err == nil {
			t.Error("expected an error")
		}
		var found bool
		for _, l := range strings.Split(out.String(), "\n") {
			fs := strings.Fields(l)
			if len(fs) > 1 && fs[0] == bad && fs[1] == "error" {
				found = true
			}
		}
		if !found {
			t.Errorf("missing error line:\n%s", out.String())
		}
	})
}

func TestGuessFormat(t *testing.T) {
	for in, want := range map[string]spdx.Format{
		"a.json":         spdx.FormatJSON,
		"a.spdx.json.gz": spdx.FormatJSON,
		"A.JSON":         spdx.FormatJSON,
		"a.spdx":         spdx.FormatTagValue,
		"a.spdx.zst":     spdx.FormatTagValue,
		"-":              spdx.FormatTagValue,
	} {
		if got := guessFormat(in); got != want {
			t.Errorf("%s: got: %q, want: %q", in, got, want)
		}
	}
}
