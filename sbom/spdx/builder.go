package spdx

import (
	"context"
	"slices"

	"github.com/quay/layerbom/purl"
)

// Builder collects the records of one document. Every identifier is
// computed once and remembered, so duplicates are emitted a single time.
type builder struct {
	ctx  context.Context
	purl purl.Converter

	layers    map[string]*layerRecord
	packages  []*packageRecord
	pkgSeen   map[string]struct{}
	files     []*fileRecord
	fileSeen  map[string]struct{}
	licenses  []extractedLicense
	licSeen   map[string]struct{}
	generated []Relationship
}

func newBuilder(ctx context.Context, c purl.Converter) *builder {
	return &builder{
		ctx:      ctx,
		purl:     c,
		layers:   make(map[string]*layerRecord),
		pkgSeen:  make(map[string]struct{}),
		fileSeen: make(map[string]struct{}),
		licSeen:  make(map[string]struct{}),
	}
}

// AddLicense records text as an extracted license and returns its
// LicenseRef.
func (b *builder) addLicense(text string) string {
	ref := LicenseRef(text)
	if _, ok := b.licSeen[ref]; !ok {
		b.licSeen[ref] = struct{}{}
		b.licenses = append(b.licenses, extractedLicense{
			LicenseID:     ref,
			ExtractedText: text,
		})
	}
	return ref
}

// LicenseRefs maps license texts to sorted, unique LicenseRefs.
func licenseRefs(texts []string) []string {
	if len(texts) == 0 {
		return nil
	}
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		out = append(out, LicenseRef(t))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
