// Package sbom defines the capability shared by every report formatter.
package sbom

import (
	"context"

	"github.com/quay/layerbom"
)

// Generator renders scanned images into a report document.
type Generator interface {
	// Generate renders a document for the images. Images must be non-empty;
	// a formatter may describe only the first one and must say so.
	Generate(ctx context.Context, images []*layerbom.Image) ([]byte, error)
	// GenerateLayer renders a snapshot document for a single layer.
	GenerateLayer(ctx context.Context, layer *layerbom.Layer) ([]byte, error)
}
