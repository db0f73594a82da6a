// Package namefix performs string-level edits on raw model XML: object
// renaming, assembly synthesis and build-section replacement. It works
// on text rather than a parsed tree so renaming still succeeds when the
// structural coloring pipeline is disabled, and so every untouched byte
// of the document stays exactly as it was.
package namefix
