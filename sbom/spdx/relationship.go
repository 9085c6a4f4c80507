package spdx

import "fmt"

//go:generate go tool stringer -type=RelationshipType -linecomment

// RelationshipType is the kind of an SPDX relationship.
type RelationshipType int

// Relationship kinds used in documents.
const (
	Describes       RelationshipType = iota // DESCRIBES
	Contains                                // CONTAINS
	HasPrerequisite                         // HAS_PREREQUISITE
	GeneratedFrom                           // GENERATED_FROM
)

// MarshalText implements [encoding.TextMarshaler].
func (t RelationshipType) MarshalText() ([]byte, error) {
	if t < Describes || t > GeneratedFrom {
		return nil, fmt.Errorf("spdx: invalid relationship type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *RelationshipType) UnmarshalText(b []byte) error {
	for i := Describes; i <= GeneratedFrom; i++ {
		if i.String() == string(b) {
			*t = i
			return nil
		}
	}
	return fmt.Errorf("spdx: unknown relationship type %q", string(b))
}

// Relationship is an edge between two SPDX elements.
type Relationship struct {
	Element string           `json:"spdxElementId"`
	Type    RelationshipType `json:"relationshipType"`
	Related string           `json:"relatedSpdxElement"`
}

func (r Relationship) String() string {
	return r.Element + " " + r.Type.String() + " " + r.Related
}

// relationships accumulates edges in insertion order, dropping duplicates
// and self-edges.
type relationships struct {
	list []Relationship
	seen map[Relationship]struct{}
}

func (rs *relationships) add(a string, t RelationshipType, b string) {
	if a == b {
		return
	}
	r := Relationship{Element: a, Type: t, Related: b}
	if rs.seen == nil {
		rs.seen = make(map[Relationship]struct{})
	}
	if _, ok := rs.seen[r]; ok {
		return
	}
	rs.seen[r] = struct{}{}
	rs.list = append(rs.list, r)
}

// buildRelationships emits the edges between the document, the image, its
// layers and their packages in document order:
//
//  1. DOCUMENT DESCRIBES image
//  2. image CONTAINS layer, for every layer
//  3. layer HAS_PREREQUISITE previous layer, unless the previous layer
//     already depends on it
//  4. layer CONTAINS package, for every package in a layer
//  5. binary GENERATED_FROM source, for every source package
func buildRelationships(imageRef string, layers []*layerRecord, generated []Relationship) []Relationship {
	var rs relationships
	rs.add(DocumentRef, Describes, imageRef)
	for _, l := range layers {
		rs.add(imageRef, Contains, l.ref)
	}
	prereq := make(map[string][]string)
	for i := 1; i < len(layers); i++ {
		a, b := layers[i].ref, layers[i-1].ref
		if a == b || dependsOn(prereq, b, a) {
			continue
		}
		prereq[a] = append(prereq[a], b)
		rs.add(a, HasPrerequisite, b)
	}
	for _, l := range layers {
		for _, p := range l.packages {
			rs.add(l.ref, Contains, p)
		}
	}
	for _, r := range generated {
		rs.add(r.Element, r.Type, r.Related)
	}
	if rs.list == nil {
		return []Relationship{}
	}
	return rs.list
}

// DependsOn reports whether to is reachable from from along the edges in g.
func dependsOn(g map[string][]string, from, to string) bool {
	seen := map[string]struct{}{from: {}}
	stack := []string{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g[n] {
			if next == to {
				return true
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			stack = append(stack, next)
		}
	}
	return false
}

// snapshotRelationships is the snapshot variant: the document describes
// every package directly.
func snapshotRelationships(pkgs []string, generated []Relationship) []Relationship {
	var rs relationships
	for _, p := range pkgs {
		rs.add(DocumentRef, Describes, p)
	}
	for _, r := range generated {
		rs.add(r.Element, r.Type, r.Related)
	}
	if rs.list == nil {
		return []Relationship{}
	}
	return rs.list
}
