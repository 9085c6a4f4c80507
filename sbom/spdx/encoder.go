package spdx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/quay/layerbom"
	"github.com/quay/layerbom/log"
	"github.com/quay/layerbom/purl"
	"github.com/quay/layerbom/sbom"
)

const (
	modulePath = "github.com/quay/layerbom"
	// DefaultToolName is the tool named in the creator and namespace of
	// documents by default.
	DefaultToolName = "layerbom"
	timeFormat      = "2006-01-02T15:04:05Z"
)

// Option is a type for setting optional fields for the Encoder.
type Option func(*Encoder)

// Creator describes the creator of the SPDX document that will be produced from the encoding.
type Creator struct {
	// Creator is the value of the [Creator] relationship.
	Creator string
	// CreatorType is the key of the [Creator] relationship.
	// In accordance to the SPDX v2 spec, CreatorType should be one of "Person", "Organization", or "Tool".
	CreatorType string
}

func (c Creator) String() string { return c.CreatorType + ": " + c.Creator }

var _ sbom.Generator = (*Encoder)(nil)

// Encoder defines an SPDX encoder and accepts certain values from the caller
// to use in the SPDX document.
//
// An Encoder holds no state across calls and may be used concurrently.
type Encoder struct {
	// The target SPDX version in which to encode.
	Version Version
	// The data format in which to encode.
	Format Format
	// ToolName and ToolVersion name the tool creating the document. They
	// are the first creator and are part of the document namespace.
	ToolName    string
	ToolVersion string
	// Additional SPDX document creators.
	Creators []Creator
	// The SPDX document comment field.
	DocumentComment string
	// The SPDX license list version the document claims.
	LicenseListVersion string
	// PURLConverter, if set, is used to add package URL external
	// references to installed packages.
	PURLConverter purl.Converter

	newUUID func() uuid.UUID
	now     func() time.Time
}

// NewDefaultEncoder creates an Encoder with default values and sets optional
// fields based on the provided options.
func NewDefaultEncoder(options ...Option) *Encoder {
	e := &Encoder{
		Version:            V2_2,
		Format:             FormatJSON,
		ToolName:           DefaultToolName,
		ToolVersion:        getVersion(),
		LicenseListVersion: DefaultLicenseListVersion,
		newUUID:            uuid.New,
		now:                time.Now,
	}

	for _, opt := range options {
		opt(e)
	}
	if e.DocumentComment == "" {
		e.DocumentComment = fmt.Sprintf("This document was created using %s-%s. "+
			"Licenses are as declared by packages and as found in files; none were concluded.",
			e.ToolName, e.ToolVersion)
	}

	return e
}

// WithFormat sets the data format.
func WithFormat(f Format) Option {
	return func(e *Encoder) {
		e.Format = f
	}
}

// WithVersion sets the target SPDX version.
func WithVersion(v Version) Option {
	return func(e *Encoder) {
		e.Version = v
	}
}

// WithCreator adds a document creator after the tool.
func WithCreator(c Creator) Option {
	return func(e *Encoder) {
		e.Creators = append(e.Creators, c)
	}
}

// WithTool sets the name and version of the creating tool.
func WithTool(name, version string) Option {
	return func(e *Encoder) {
		e.ToolName = name
		e.ToolVersion = version
	}
}

// WithUUIDSource sets the source of the UUIDs used in document namespaces.
func WithUUIDSource(f func() uuid.UUID) Option {
	return func(e *Encoder) {
		e.newUUID = f
	}
}

// WithClock sets the source of the document creation time.
func WithClock(f func() time.Time) Option {
	return func(e *Encoder) {
		e.now = f
	}
}

// WithPURLConverter sets the converter used for package URL external
// references.
func WithPURLConverter(c purl.Converter) Option {
	return func(e *Encoder) {
		e.PURLConverter = c
	}
}

// WithDocumentComment is used to set the SPDX document comment field.
func WithDocumentComment(comment string) Option {
	return func(e *Encoder) {
		e.DocumentComment = comment
	}
}

// WithLicenseListVersion sets the SPDX license list version.
func WithLicenseListVersion(v string) Option {
	return func(e *Encoder) {
		e.LicenseListVersion = v
	}
}

// Encode writes the SPDX document for img to w.
//
// Nothing is written if the document cannot be built.
func (e *Encoder) Encode(ctx context.Context, w io.Writer, img *layerbom.Image) error {
	b, err := e.encode(ctx, "image", func(ctx context.Context) (*document, error) {
		return e.imageDocument(ctx, img)
	})
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Generate implements [sbom.Generator].
//
// Only the first image is described; the rest are ignored.
func (e *Encoder) Generate(ctx context.Context, images []*layerbom.Image) ([]byte, error) {
	if len(images) == 0 || images[0] == nil {
		return nil, &layerbom.Error{
			Op:      "spdx.Generate",
			Kind:    layerbom.ErrEmptyImageList,
			Message: "no image to describe",
		}
	}
	if len(images) > 1 {
		slog.DebugContext(ctx, "describing first image only", "count", len(images))
	}
	img := images[0]
	return e.encode(ctx, "image", func(ctx context.Context) (*document, error) {
		return e.imageDocument(ctx, img)
	})
}

// GenerateLayer implements [sbom.Generator].
//
// The document describes the packages found in the layer directly; the
// layer itself and its files are not part of it.
func (e *Encoder) GenerateLayer(ctx context.Context, l *layerbom.Layer) ([]byte, error) {
	if l == nil {
		return nil, &layerbom.Error{
			Op:      "spdx.GenerateLayer",
			Kind:    layerbom.ErrInvalid,
			Message: "nil layer",
		}
	}
	return e.encode(ctx, "snapshot", func(ctx context.Context) (*document, error) {
		return e.layerDocument(ctx, l)
	})
}

func (e *Encoder) encode(ctx context.Context, kind string, build func(context.Context) (*document, error)) (_ []byte, err error) {
	ctx, span := tracer.Start(ctx, "Encode", trace.WithAttributes(
		attribute.String("format", string(e.Format)),
		attribute.String("version", string(e.Version)),
		attribute.String("kind", kind),
	))
	defer span.End()
	start := time.Now()
	defer func() {
		observe(ctx, span, e.Format, kind, start, err)
	}()
	ctx = log.With(ctx, "format", e.Format, "kind", kind)

	var write func(*bytes.Buffer, *document) error
	switch e.Format {
	case FormatJSON:
		write = writeJSON
	case FormatTagValue:
		write = writeTagValue
	default:
		return nil, &layerbom.Error{
			Op:      "spdx.Encode",
			Kind:    layerbom.ErrInvalid,
			Message: fmt.Sprintf("unknown requested format: %v", e.Format),
		}
	}
	switch e.Version {
	case V2_2, V2_3:
	default:
		return nil, &layerbom.Error{
			Op:      "spdx.Encode",
			Kind:    layerbom.ErrInvalid,
			Message: fmt.Sprintf("unknown SPDX version: %v", e.Version),
		}
	}

	doc, err := build(ctx)
	if err != nil {
		return nil, err
	}
	if err := doc.check(); err != nil {
		return nil, fmt.Errorf("spdx: inconsistent document: %w", err)
	}
	var buf bytes.Buffer
	if err := write(&buf, doc); err != nil {
		return nil, &layerbom.Error{
			Op:    "spdx.Encode",
			Kind:  layerbom.ErrInternal,
			Inner: err,
		}
	}
	slog.DebugContext(ctx, "document generated",
		"name", doc.Name,
		"packages", len(doc.Packages),
		"files", len(doc.Files),
		"relationships", len(doc.Relationships),
		"licenses", len(doc.ExtractedLicenses),
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

func (e *Encoder) imageDocument(ctx context.Context, img *layerbom.Image) (*document, error) {
	ctx = log.With(ctx, "image", img.Reference())
	slog.DebugContext(ctx, "building image document", "layers", len(img.Layers))
	ref, err := ImageRef(img)
	if err != nil {
		return nil, err
	}
	b := newBuilder(ctx, e.PURLConverter)
	var order []*layerRecord
	var uniq []*layerRecord
	seen := make(map[*layerRecord]struct{})
	for _, l := range layerbom.SortLayers(img.Layers) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lr, err := b.addLayer(l)
		if err != nil {
			return nil, err
		}
		order = append(order, lr)
		if _, ok := seen[lr]; !ok {
			seen[lr] = struct{}{}
			uniq = append(uniq, lr)
		}
	}

	d := e.header(img.HumanReadableID(), e.ToolName+" SBOM for "+img.Reference())
	d.DocumentDescribes = []string{ref}
	d.image = imageRecord(img, ref)
	d.layers = uniq
	d.installed = b.packages
	d.Packages = make([]*packageRecord, 0, 1+len(uniq)+len(b.packages))
	d.Packages = append(d.Packages, d.image)
	for _, lr := range uniq {
		d.Packages = append(d.Packages, lr.pkg)
	}
	d.Packages = append(d.Packages, b.packages...)
	d.Files = b.files
	d.Relationships = buildRelationships(ref, order, b.generated)
	d.ExtractedLicenses = b.licenses
	return d, nil
}

func (e *Encoder) layerDocument(ctx context.Context, l *layerbom.Layer) (*document, error) {
	ctx = log.With(ctx, "layer", l.ShortDiffID(10))
	slog.DebugContext(ctx, "building layer snapshot", "packages", len(l.Packages))
	b := newBuilder(ctx, e.PURLConverter)
	refs := []string{}
	seen := make(map[string]struct{}, len(l.Packages))
	for _, p := range l.Packages {
		ref, err := b.addPackage(p)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		refs = append(refs, ref)
	}

	name := orElse(l.Name(), l.ShortDiffID(10))
	d := e.header(l.ShortDiffID(10), e.ToolName+" SBOM for layer "+name)
	d.DocumentDescribes = refs
	d.installed = b.packages
	d.Packages = b.packages
	if d.Packages == nil {
		d.Packages = []*packageRecord{}
	}
	d.Relationships = snapshotRelationships(refs, b.generated)
	d.ExtractedLicenses = b.licenses
	return d, nil
}

func (e *Encoder) header(id, name string) *document {
	creators := make([]string, 0, 1+len(e.Creators))
	creators = append(creators, Creator{CreatorType: "Tool", Creator: e.ToolName + "-" + e.ToolVersion}.String())
	for _, c := range e.Creators {
		creators = append(creators, c.String())
	}
	return &document{
		SPDXID:      DocumentRef,
		SPDXVersion: string(e.Version),
		CreationInfo: creationInfo{
			Created:            e.now().UTC().Format(timeFormat),
			Creators:           creators,
			LicenseListVersion: e.LicenseListVersion,
		},
		Name:        name,
		DataLicense: DataLicense,
		Comment:     e.DocumentComment,
		DocumentNamespace: fmt.Sprintf("https://spdx.org/spdxdocs/%s-report-%s-%s-%s",
			url.PathEscape(e.ToolName), url.PathEscape(e.ToolVersion), url.PathEscape(id), e.newUUID()),
		Relationships: []Relationship{},
	}
}

// getVersion will attempt to read out the current binary's debug info, find the
// layerbom version.
func getVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Path == modulePath && info.Main.Version != "" {
		return info.Main.Version
	}
	for _, m := range info.Deps {
		if m.Path != modulePath {
			continue
		}
		if m.Replace != nil && m.Replace.Version != "" {
			return m.Replace.Version
		}
		return m.Version
	}
	return "unknown"
}
