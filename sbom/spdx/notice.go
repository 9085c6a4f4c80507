package spdx

import (
	"strings"

	"github.com/quay/layerbom"
)

// FormatOrigins renders notices as plain text: each origin on its own line
// followed by a colon, then one "level: message" line per notice.
func FormatOrigins(o layerbom.Origins) string {
	if o.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for _, no := range o {
		b.WriteString(no.Origin)
		b.WriteString(":\n")
		for _, n := range no.Notices {
			b.WriteString(n.Level)
			b.WriteString(": ")
			b.WriteString(n.Message)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
