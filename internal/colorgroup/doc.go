// Package colorgroup synthesizes 3MF material colorgroups and applies
// their ids to mesh triangles and build items.
//
// Key capabilities:
//   - One colorgroup per palette entry with a fixed, deterministic id
//   - Order-preserving splice before the first object resource
//   - pid/p1 tagging of triangles, materialid tagging of build items
package colorgroup
