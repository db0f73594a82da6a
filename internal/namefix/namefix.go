package namefix

import (
	"regexp"
	"strconv"
	"strings"
)

// AssemblyName is the name given to the synthesized assembly object.
const AssemblyName = "Lumina_Model"

var (
	objectTagRe = regexp.MustCompile(`(?i)<object\s+([^>]*)>`)
	objectIDRe  = regexp.MustCompile(`\bid="(\d+)"`)
	nameAttrRe  = regexp.MustCompile(`\s+name="[^"]*"`)
	buildRe     = regexp.MustCompile(`(?s)<build>.*?</build>`)
)

// TagRef is one object start tag found in the raw model text.
type TagRef struct {
	Start int    // byte offset of '<'
	End   int    // byte offset past '>'
	Tag   string // the full start tag
	ID    string // numeric id attribute value
}

// ScanObjects returns every object start tag carrying a numeric id, in
// order of appearance. That order is the contract for slot assignment
// and assembly component order. Tags without a numeric id are left in
// place but not returned.
func ScanObjects(text string) []TagRef {
	var refs []TagRef

	for _, m := range objectTagRe.FindAllStringSubmatchIndex(text, -1) {
		attrs := text[m[2]:m[3]]

		idMatch := objectIDRe.FindStringSubmatch(attrs)
		if idMatch == nil {
			continue
		}

		refs = append(refs, TagRef{
			Start: m[0],
			End:   m[1],
			Tag:   text[m[0]:m[1]],
			ID:    idMatch[1],
		})
	}

	return refs
}

// RenameObjects rewrites the name attribute of each scanned tag from
// the slot list, dropping any pre-existing name. Slots are assigned by
// the tag's original forward rank; the walk itself runs in reverse only
// so that earlier byte offsets stay valid while the text is rewritten.
// Tags past the end of the slot list are left untouched.
func RenameObjects(text string, refs []TagRef, slots []string) string {
	for i := len(refs) - 1; i >= 0; i-- {
		if i >= len(slots) {
			continue
		}

		ref := refs[i]

		tag := nameAttrRe.ReplaceAllString(ref.Tag, "")
		tag = tag[:len(tag)-1] + ` name="` + slots[i] + `">`

		text = text[:ref.Start] + tag + text[ref.End:]
	}

	return text
}

// AssemblyID returns the id a synthesized assembly would take: one
// greater than the maximum numeric id among the given object ids.
func AssemblyID(ids []string) string {
	maxID := 0

	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > maxID {
			maxID = n
		}
	}

	return strconv.Itoa(maxID + 1)
}

// InsertAssembly synthesizes an assembly object holding one component
// reference per id, in the given order, and splices it in immediately
// before the closing resources tag. The text comes back unchanged when
// no closing tag exists. Returns the new text and the assembly id.
func InsertAssembly(text string, ids []string) (string, string) {
	assemblyID := AssemblyID(ids)

	components := make([]string, 0, len(ids))
	for _, id := range ids {
		components = append(components, `      <component objectid="`+id+`" />`)
	}

	assembly := "\n  <object id=\"" + assemblyID + "\" type=\"model\" name=\"" + AssemblyName + "\">\n" +
		"    <components>\n" +
		strings.Join(components, "\n") + "\n" +
		"    </components>\n" +
		"  </object>\n"

	end := strings.Index(text, "</resources>")
	if end == -1 {
		return text, assemblyID
	}

	return text[:end] + assembly + text[end:], assemblyID
}

// ReplaceBuild replaces the first build section with a single item
// referencing the assembly. Without a build section the text comes back
// unchanged.
func ReplaceBuild(text, assemblyID string) string {
	loc := buildRe.FindStringIndex(text)
	if loc == nil {
		return text
	}

	replacement := "<build>\n    <item objectid=\"" + assemblyID + "\" />\n  </build>"

	return text[:loc[0]] + replacement + text[loc[1]:]
}
