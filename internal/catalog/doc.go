// Package catalog extracts the object inventory from a parsed model
// document: id, name, type, assembly flag and triangle counts, in
// document order.
package catalog
