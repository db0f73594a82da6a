// Package lumina3mf edits 3MF print files: it assigns human-readable
// names to geometry objects in file order, optionally folds them into a
// single assembly object, and injects per-object material colorgroups
// so slicer software picks up one flat color per part.
//
// Two entry points compose the pipeline:
//   - Colorize runs the structural coloring passes on raw model XML.
//   - FixNames performs the textual rename/assembly edits and may
//     delegate to Colorize; ProcessFile applies it to a whole archive.
//
// Renaming is deliberately a string-level edit so it works on documents
// the structural pipeline never touches; coloring is tree surgery on
// the parsed document. Every stage either completes or is skipped whole.
package lumina3mf
