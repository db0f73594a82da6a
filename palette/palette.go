package palette

import (
	"fmt"
	"strings"
)

// Mode identifies a color palette, or automatic detection.
type Mode int

const (
	Auto Mode = iota // pick the palette from object names
	RYBW             // Red / Yellow / Blue / White
	CMYW             // Cyan / Magenta / Yellow / White
)

// String returns the wire spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case RYBW:
		return "rybw"
	case CMYW:
		return "cmyw"
	default:
		return "unknown"
	}
}

// Parse converts a mode spelling into a Mode.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "rybw":
		return RYBW, nil
	case "cmyw":
		return CMYW, nil
	default:
		return Auto, fmt.Errorf("unknown color mode %q (want rybw, cmyw or auto)", s)
	}
}

// Entry pairs a color name with its ARGB hex value and colorgroup id.
// Both the hex values and the id numbering are relied on by slicer
// software and must not change.
type Entry struct {
	Name  string
	Color string // ARGB hex, e.g. "#FF0000FF"
	ID    string // colorgroup id, "1".."4"
}

// Entry order matters: the first entry becomes the first colorgroup
// spliced into the resources element.
var (
	rybwEntries = []Entry{
		{Name: "Red", Color: "#FF0000FF", ID: "1"},
		{Name: "Yellow", Color: "#FFFF00FF", ID: "2"},
		{Name: "Blue", Color: "#0000FFFF", ID: "3"},
		{Name: "White", Color: "#FFFFFFFF", ID: "4"},
	}

	cmywEntries = []Entry{
		{Name: "Cyan", Color: "#00FFFFFF", ID: "1"},
		{Name: "Magenta", Color: "#FF00FFFF", ID: "2"},
		{Name: "Yellow", Color: "#FFFF00FF", ID: "3"},
		{Name: "White", Color: "#FFFFFFFF", ID: "4"},
	}
)

// Entries returns the ordered palette for a mode. Auto resolves to the
// RYBW palette, matching the detection tie-break.
func Entries(m Mode) []Entry {
	if m == CMYW {
		return cmywEntries
	}

	return rybwEntries
}

// GroupID returns the colorgroup id for a color name under the given
// mode. Unknown names map to "1", the first color.
func GroupID(name string, m Mode) string {
	for _, e := range Entries(m) {
		if e.Name == name {
			return e.ID
		}
	}

	return "1"
}

// Detect picks the palette with strictly more exact name matches among
// the candidates. Ties, including no matches at all, resolve to RYBW.
func Detect(names []string) Mode {
	var rybw, cmyw int

	for _, n := range names {
		for _, e := range rybwEntries {
			if e.Name == n {
				rybw++
				break
			}
		}

		for _, e := range cmywEntries {
			if e.Name == n {
				cmyw++
				break
			}
		}
	}

	if cmyw > rybw {
		return CMYW
	}

	return RYBW
}
