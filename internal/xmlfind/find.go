// Package xmlfind locates 3MF elements by local name. Model documents
// mix default-namespace and prefixed forms for the same elements, so
// lookups must ignore the namespace binding entirely. etree keeps any
// prefix in Element.Space, which makes Tag always the local name.
package xmlfind

import "github.com/beevik/etree"

// Child returns the first direct child of parent with the given local
// name, in document order, or nil if there is none. Absence is a
// legitimate outcome for most 3MF elements (e.g. a model with no build
// section), so nil is not an error here.
func Child(parent *etree.Element, local string) *etree.Element {
	for _, c := range parent.ChildElements() {
		if c.Tag == local {
			return c
		}
	}

	return nil
}

// Children returns all direct children of parent with the given local
// name, in document order.
func Children(parent *etree.Element, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range parent.ChildElements() {
		if c.Tag == local {
			out = append(out, c)
		}
	}

	return out
}
