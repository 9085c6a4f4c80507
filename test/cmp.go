package test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/quay/layerbom"
)

// CompareDigests allows for comparing [layerbom.Digest] objects.
var CompareDigests = cmp.Options{
	cmp.Transformer("MarshalDigest", marshalDigest),
	cmp.Transformer("MarshalDigestPointer", marshalDigestPointer),
}

// CmpOptions is a bundle of [cmp.Option] for [layerbom] model types.
var CmpOptions = cmp.Options{
	CompareDigests,
	cmpopts.EquateEmpty(),
}

func marshalDigest(d layerbom.Digest) string         { return marshalDigestPointer(&d) }
func marshalDigestPointer(d *layerbom.Digest) string { return d.String() }
