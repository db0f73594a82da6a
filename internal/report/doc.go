// Package report collects structured diagnostics from the transform
// pipeline: counts of tagged triangles, skipped objects, and the color
// mode a run resolved to.
//
// Key capabilities:
//   - Info and warning events with stable codes
//   - Summary counters per transform
//   - Merging of sub-stage reports into the enclosing run
package report
