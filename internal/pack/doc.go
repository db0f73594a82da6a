// Package pack reads and rewrites 3MF archives. A 3MF file is a plain
// ZIP container; every entry other than the model document must round
// trip byte for byte.
package pack
