package lumina3mf

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"lumina3mf/internal/catalog"
	"lumina3mf/internal/colorgroup"
	"lumina3mf/internal/pack"
	"lumina3mf/internal/report"
	"lumina3mf/internal/xmlfind"
	"lumina3mf/palette"
)

// Structural errors. Any of these aborts the current transform; soft
// conditions (missing meshes, unmapped names, short slot lists) only
// show up as report events.
var (
	// ErrNoResources reports a model document without a resources element.
	ErrNoResources = catalog.ErrNoResources
	// ErrNoModelEntry reports an archive without a 3D model entry.
	ErrNoModelEntry = pack.ErrNoModelEntry
)

// Colorize parses model XML and applies the whole coloring pipeline:
// object cataloging, color-mode resolution, colorgroup injection, and
// pid/p1/materialid tagging of triangles and build items. With
// palette.Auto the mode is detected from the document's own object
// names. The returned report carries the per-stage diagnostics.
//
// Colorize assumes a document that has not been colored yet; applying
// it twice duplicates colorgroup ids.
func Colorize(xmlText string, mode palette.Mode) (string, *report.Report, error) {
	rep := &report.Report{}

	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true

	if err := doc.ReadFromString(xmlText); err != nil {
		return "", rep, fmt.Errorf("parsing model XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return "", rep, errors.New("model XML has no root element")
	}

	objects, err := catalog.Build(root)
	if err != nil {
		return "", rep, err
	}

	rep.ObjectsFound = len(objects)

	if mode == palette.Auto {
		var names []string
		for _, obj := range objects {
			if !obj.IsAssembly {
				names = append(names, obj.Name)
			}
		}

		mode = palette.Detect(names)
		rep.Infof("mode-detected", "", "auto-detected color mode %s", mode)
	}

	rep.DetectedMode = mode.String()

	// catalog.Build already proved resources exists.
	resources := xmlfind.Child(root, "resources")

	groups := colorgroup.Inject(root, resources, palette.Entries(mode))
	colorgroup.TagTriangles(objects, groups, rep)
	colorgroup.TagBuildItems(root, groups, rep)

	out, err := doc.WriteToString()
	if err != nil {
		return "", rep, fmt.Errorf("serializing model XML: %w", err)
	}

	return out, rep, nil
}
