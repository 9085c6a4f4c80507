package layerbom

import (
	"path"
	"slices"
	"strings"
)

// Layer is a container image filesystem layer as seen by the scanner.
// Layers are stacked on top of each other to comprise the final filesystem
// of the container image.
type Layer struct {
	// LayerIndex is the 1-based position of the layer in the image.
	LayerIndex int `json:"layer_index"`
	// DiffID is the hex digest of the uncompressed layer tarball, without
	// an algorithm prefix.
	DiffID string `json:"diff_id"`
	// TarFile is the path of the layer tarball inside the image archive.
	TarFile string `json:"tar_file"`
	// Checksum is the digest of the layer tarball.
	Checksum Digest `json:"checksum,omitzero"`
	// FilesAnalyzed is set when every file in the layer was inventoried.
	// When set, every File must carry a SHA1.
	FilesAnalyzed bool   `json:"files_analyzed"`
	OSGuess       string `json:"os_guess,omitempty"`

	Files         []*File        `json:"files,omitempty"`
	Packages      []*Package     `json:"packages,omitempty"`
	ExtensionInfo *ExtensionInfo `json:"extension_info,omitempty"`
	Origins       Origins        `json:"origins,omitempty"`
}

// ExtensionInfo holds output of external analysis extensions run against
// the layer.
type ExtensionInfo struct {
	// Headers are free-form header lines the extension emitted.
	Headers []string `json:"headers,omitempty"`
}

// ChecksumType is the algorithm of the layer checksum.
func (l *Layer) ChecksumType() string { return l.Checksum.Algorithm() }

// Name is the base name of the layer tarball.
func (l *Layer) Name() string {
	if l.TarFile == "" {
		return ""
	}
	return path.Base(l.TarFile)
}

// Headers returns the extension headers, sorted and without duplicates.
func (l *Layer) Headers() []string {
	if l.ExtensionInfo == nil || len(l.ExtensionInfo.Headers) == 0 {
		return nil
	}
	hs := slices.Clone(l.ExtensionInfo.Headers)
	slices.Sort(hs)
	return slices.Compact(hs)
}

// SortLayers returns a copy of ls ordered by LayerIndex. Layers with equal
// indexes keep their relative order.
func SortLayers(ls []*Layer) []*Layer {
	out := slices.Clone(ls)
	slices.SortStableFunc(out, func(a, b *Layer) int {
		return a.LayerIndex - b.LayerIndex
	})
	return out
}

// ShortDiffID returns at most the first n characters of the DiffID, with
// any "algo:" prefix removed.
func (l *Layer) ShortDiffID(n int) string {
	id := l.DiffID
	if i := strings.IndexByte(id, ':'); i != -1 {
		id = id[i+1:]
	}
	if len(id) > n {
		id = id[:n]
	}
	return id
}
