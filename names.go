package lumina3mf

import (
	"lumina3mf/internal/namefix"
	"lumina3mf/internal/report"
	"lumina3mf/palette"
)

// AssemblyName is the name given to the synthesized assembly object.
const AssemblyName = namefix.AssemblyName

// FixOptions control the optional stages of FixNames.
type FixOptions struct {
	// CreateAssembly folds all objects into one synthesized assembly
	// and rewrites the build section to reference only it. Takes effect
	// only when the document holds more than one object.
	CreateAssembly bool
	// EnableColors runs Colorize on the renamed text.
	EnableColors bool
	// Mode selects the palette for coloring; palette.Auto detects it
	// from the slot names.
	Mode palette.Mode
}

// FixNames assigns slot names to objects in their order of appearance
// in the raw model text, optionally synthesizes an assembly, and
// optionally delegates to Colorize. Renaming and assembly synthesis are
// textual edits; a slot list shorter than the object count leaves
// trailing objects unrenamed.
//
// A Colorize failure degrades the run instead of aborting it: the
// renamed (and assembled) text is returned uncolored and the failure
// recorded as a warning.
func FixNames(xmlText string, slots []string, opts FixOptions) (string, *report.Report) {
	rep := &report.Report{}

	refs := namefix.ScanObjects(xmlText)
	rep.ObjectsFound = len(refs)
	rep.Infof("objects-found", "", "found %d objects with numeric ids", len(refs))

	if len(slots) < len(refs) {
		rep.Warnf("slots-short", "", "%d slot names for %d objects, trailing objects keep their names",
			len(slots), len(refs))
	}

	text := namefix.RenameObjects(xmlText, refs, slots)

	if opts.CreateAssembly && len(refs) > 1 {
		ids := make([]string, 0, len(refs))
		for _, ref := range refs {
			ids = append(ids, ref.ID)
		}

		var assemblyID string
		text, assemblyID = namefix.InsertAssembly(text, ids)
		text = namefix.ReplaceBuild(text, assemblyID)

		rep.Infof("assembly-created", AssemblyName, "assembly id=%s references %d components", assemblyID, len(ids))
	}

	if opts.EnableColors {
		mode := opts.Mode
		if mode == palette.Auto {
			mode = palette.Detect(slots)
			rep.Infof("mode-detected", "", "auto-detected color mode %s from slot names", mode)
		}

		colored, colorRep, err := Colorize(text, mode)
		rep.Merge(colorRep)

		if err != nil {
			rep.Warnf("colorize-failed", "", "coloring failed, keeping uncolored model: %v", err)
		} else {
			text = colored
		}
	}

	return text, rep
}
