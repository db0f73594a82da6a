// Package manifest loads CLI job files: the slot names to assign to
// objects and the per-run transform toggles, as YAML.
package manifest
