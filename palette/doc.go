// Package palette defines the two fixed four-color palettes understood
// by downstream slicer software, the mapping from color names to
// colorgroup ids, and palette auto-detection from object names.
package palette
