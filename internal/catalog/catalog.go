package catalog

import (
	"errors"

	"github.com/beevik/etree"

	"lumina3mf/internal/xmlfind"
)

// ErrNoResources reports a model document without a resources element.
// Unlike most missing 3MF elements this one is structural: nothing can
// be cataloged or colored without it.
var ErrNoResources = errors.New("model has no resources element")

// Object describes one object element of the model document. The
// Element reference becomes stale if the document is restructured after
// extraction; rebuild the catalog after any edit that adds, removes or
// reorders objects.
type Object struct {
	ID         string
	Name       string
	Type       string
	IsAssembly bool
	Element    *etree.Element
}

// Build returns the catalog of objects under the document's resources
// element. The returned order is the document order of the object
// elements; name-slot assignment and assembly component order both rely
// on it, so it is part of this function's contract.
func Build(root *etree.Element) ([]Object, error) {
	resources := xmlfind.Child(root, "resources")
	if resources == nil {
		return nil, ErrNoResources
	}

	var objects []Object

	for _, el := range xmlfind.Children(resources, "object") {
		objects = append(objects, Object{
			ID:         el.SelectAttrValue("id", ""),
			Name:       el.SelectAttrValue("name", ""),
			Type:       el.SelectAttrValue("type", "model"),
			IsAssembly: xmlfind.Child(el, "components") != nil,
			Element:    el,
		})
	}

	return objects, nil
}

// Triangles returns the object's triangles element, or nil when the
// object has no mesh or no triangles. Both are soft conditions.
func Triangles(obj Object) *etree.Element {
	mesh := xmlfind.Child(obj.Element, "mesh")
	if mesh == nil {
		return nil
	}

	return xmlfind.Child(mesh, "triangles")
}

// TriangleCount returns the number of direct triangle children of the
// object's mesh, zero when mesh or triangles are absent.
func TriangleCount(obj Object) int {
	triangles := Triangles(obj)
	if triangles == nil {
		return 0
	}

	return len(xmlfind.Children(triangles, "triangle"))
}

// TriangleCounts maps each non-assembly object name to its triangle
// count. Used for diagnostics only.
func TriangleCounts(objects []Object) map[string]int {
	counts := make(map[string]int)

	for _, obj := range objects {
		if obj.IsAssembly {
			continue
		}

		if triangles := Triangles(obj); triangles != nil {
			counts[obj.Name] = len(xmlfind.Children(triangles, "triangle"))
		}
	}

	return counts
}
