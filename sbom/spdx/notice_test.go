package spdx

import (
	"testing"

	"github.com/quay/layerbom"
)

func TestFormatOrigins(t *testing.T) {
	var o layerbom.Origins
	if got := FormatOrigins(o); got != "" {
		t.Errorf("empty origins: got %q", got)
	}
	o.Add("layer 1", layerbom.Notice{Level: "info", Message: "Found 'Alpine Linux v3.10'"})
	o.Add("/usr/bin/app", layerbom.Notice{Level: "warning", Message: "No license found"})
	o.Add("layer 1", layerbom.Notice{Level: "hint", Message: "Consider a package manager"})
	const want = "layer 1:\n" +
		"info: Found 'Alpine Linux v3.10'\n" +
		"hint: Consider a package manager\n" +
		"/usr/bin/app:\n" +
		"warning: No license found\n"
	if got := FormatOrigins(o); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
