package spdx

import (
	"fmt"
	"regexp"

	"github.com/quay/layerbom"
)

var licenseRefPattern = regexp.MustCompile(`LicenseRef-[A-Za-z0-9.\-]+`)

// RefCheck tracks the identifiers a document declares.
type refCheck struct {
	elements map[string]struct{}
	licenses map[string]struct{}
}

func newRefCheck() *refCheck {
	return &refCheck{
		elements: make(map[string]struct{}),
		licenses: make(map[string]struct{}),
	}
}

// Element declares an element identifier. Declaring one twice is an
// [layerbom.ErrInvalidIdentifier] error.
func (c *refCheck) element(id string) error {
	if _, ok := c.elements[id]; ok {
		return &layerbom.Error{
			Op:      "spdx.check",
			Kind:    layerbom.ErrInvalidIdentifier,
			Message: fmt.Sprintf("duplicate element %q", id),
		}
	}
	c.elements[id] = struct{}{}
	return nil
}

// License declares an extracted license.
func (c *refCheck) license(id string) error {
	if _, ok := c.licenses[id]; ok {
		return &layerbom.Error{
			Op:      "spdx.check",
			Kind:    layerbom.ErrInconsistentReferences,
			Message: fmt.Sprintf("license %q extracted more than once", id),
		}
	}
	c.licenses[id] = struct{}{}
	return nil
}

// Edge checks that both ends of an edge are declared.
func (c *refCheck) edge(a, b string) error {
	for _, id := range [...]string{a, b} {
		if _, ok := c.elements[id]; !ok {
			return &layerbom.Error{
				Op:      "spdx.check",
				Kind:    layerbom.ErrInconsistentReferences,
				Message: fmt.Sprintf("%s -> %s: unknown element %q", a, b, id),
			}
		}
	}
	return nil
}

// Uses checks that every LicenseRef mentioned in exprs is declared.
func (c *refCheck) uses(owner string, exprs ...string) error {
	for _, e := range exprs {
		for _, ref := range licenseRefPattern.FindAllString(e, -1) {
			if _, ok := c.licenses[ref]; !ok {
				return &layerbom.Error{
					Op:      "spdx.check",
					Kind:    layerbom.ErrInconsistentReferences,
					Message: fmt.Sprintf("%s: no extracted text for %q", owner, ref),
				}
			}
		}
	}
	return nil
}
