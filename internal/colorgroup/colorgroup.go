package colorgroup

import (
	"github.com/beevik/etree"

	"lumina3mf/internal/catalog"
	"lumina3mf/internal/report"
	"lumina3mf/internal/xmlfind"
	"lumina3mf/palette"
)

// 3MF namespaces. Slicer software resolves colorgroup and color
// elements against the material extension namespace.
const (
	MaterialNamespace = "http://schemas.microsoft.com/3dmanufacturing/material/2015/02"
	CoreNamespace     = "http://schemas.microsoft.com/3dmanufacturing/core/2015/02"
)

// materialPrefix returns the prefix bound to the material namespace on
// the root model element, declaring xmlns:m there when no binding
// exists yet.
func materialPrefix(root *etree.Element) string {
	for _, a := range root.Attr {
		if a.Space == "xmlns" && a.Value == MaterialNamespace {
			return a.Key
		}
	}

	root.CreateAttr("xmlns:m", MaterialNamespace)

	return "m"
}

// Inject builds one colorgroup element per palette entry and splices
// the set into resources immediately before the first object element,
// preserving palette order; with no object children the set is appended
// instead. Existing resource elements are never reordered or removed.
//
// It returns the color-name to colorgroup-id mapping used by the
// taggers. Ids come from the palette's fixed table, so injecting twice
// into one document duplicates them; run this once per transform.
func Inject(root, resources *etree.Element, entries []palette.Entry) map[string]string {
	prefix := materialPrefix(root)
	groups := make(map[string]string, len(entries))

	for _, e := range entries {
		cg := etree.NewElement(prefix + ":colorgroup")
		cg.CreateAttr("id", e.ID)

		c := cg.CreateElement(prefix + ":color")
		c.CreateAttr("color", e.Color)

		if obj := xmlfind.Child(resources, "object"); obj != nil {
			resources.InsertChildAt(obj.Index(), cg)
		} else {
			resources.AddChild(cg)
		}

		groups[e.Name] = e.ID
	}

	return groups
}

// TagTriangles sets pid and p1 on every direct triangle of each
// non-assembly object whose name has a colorgroup. Objects without a
// mapping or without mesh triangles are skipped and reported; they are
// never tagged with a default. Returns the total triangles tagged.
func TagTriangles(objects []catalog.Object, groups map[string]string, rep *report.Report) int {
	total := 0

	for _, obj := range objects {
		if obj.IsAssembly {
			rep.Infof("assembly-skipped", obj.Name, "assembly object, nothing to tag")
			continue
		}

		id, ok := groups[obj.Name]
		if !ok {
			rep.Warnf("no-colorgroup", obj.Name, "no colorgroup for this name, skipping")
			continue
		}

		triangles := catalog.Triangles(obj)
		if triangles == nil {
			rep.Warnf("no-mesh", obj.Name, "object has no mesh triangles, skipping")
			continue
		}

		count := 0
		for _, t := range xmlfind.Children(triangles, "triangle") {
			t.CreateAttr("pid", id)
			t.CreateAttr("p1", "0")
			count++
		}

		rep.Infof("triangles-tagged", obj.Name, "tagged %d triangles with pid=%s p1=0", count, id)
		rep.ObjectsTagged++
		rep.TrianglesTagged += count
		total += count
	}

	return total
}

// TagBuildItems sets materialid on each build item whose partnumber
// names a colorgroup. Items with an empty or unmapped partnumber stay
// untouched; a missing build element is reported, not fatal. Returns
// the number of items tagged.
func TagBuildItems(root *etree.Element, groups map[string]string, rep *report.Report) int {
	build := xmlfind.Child(root, "build")
	if build == nil {
		rep.Warnf("no-build", "", "model has no build element")
		return 0
	}

	count := 0

	for _, item := range xmlfind.Children(build, "item") {
		objectID := item.SelectAttrValue("objectid", "")
		partNumber := item.SelectAttrValue("partnumber", "")

		id, ok := groups[partNumber]
		if !ok {
			if partNumber != "" {
				rep.Warnf("unmapped-partnumber", objectID, "partnumber %q has no colorgroup", partNumber)
			}
			continue
		}

		item.CreateAttr("materialid", id)
		rep.Infof("item-tagged", objectID, "partnumber %q tagged with materialid=%s", partNumber, id)
		rep.ItemsTagged++
		count++
	}

	return count
}
