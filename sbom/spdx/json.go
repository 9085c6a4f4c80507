package spdx

import (
	"bytes"
	"encoding/json"
)

// WriteJSON serializes the document as indented SPDX JSON.
func writeJSON(buf *bytes.Buffer, d *document) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
