package report

import (
	"fmt"
	"strings"
)

// Severity classifies a report event.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Event is a single diagnostic emitted by a pipeline stage.
type Event struct {
	// Severity of the event.
	Severity Severity
	// Code is a stable machine-readable identifier, e.g. "object-skipped".
	Code string
	// Object names the model object or archive entry this relates to (if any).
	Object string
	// Message is the human-readable description.
	Message string
}

// String returns a formatted event string.
func (e Event) String() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("[%s] %s", e.Code, msg)
	}

	if e.Object != "" {
		return e.Object + ": " + msg
	}

	return msg
}

// Report accumulates events and summary counters for one transform.
// The pipeline never prints; callers format or discard the report.
type Report struct {
	Events []Event

	// DetectedMode is the color mode the transform ran with, once resolved.
	DetectedMode string
	// ObjectsFound is the number of objects discovered in the document.
	ObjectsFound int
	// ObjectsTagged is the number of objects whose triangles were tagged.
	ObjectsTagged int
	// TrianglesTagged is the total number of triangles tagged.
	TrianglesTagged int
	// ItemsTagged is the number of build items that received a material id.
	ItemsTagged int
}

// Infof adds an info event.
func (r *Report) Infof(code, object, format string, args ...any) {
	r.Events = append(r.Events, Event{
		Severity: SeverityInfo,
		Code:     code,
		Object:   object,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf adds a warning event.
func (r *Report) Warnf(code, object, format string, args ...any) {
	r.Events = append(r.Events, Event{
		Severity: SeverityWarning,
		Code:     code,
		Object:   object,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnings returns only the warning events.
func (r *Report) Warnings() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Severity == SeverityWarning {
			out = append(out, e)
		}
	}

	return out
}

// HasWarnings returns true if any warning was recorded.
func (r *Report) HasWarnings() bool {
	for _, e := range r.Events {
		if e.Severity == SeverityWarning {
			return true
		}
	}

	return false
}

// Merge folds another report's events and counters into this one.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}

	r.Events = append(r.Events, other.Events...)

	if other.DetectedMode != "" {
		r.DetectedMode = other.DetectedMode
	}

	if other.ObjectsFound > r.ObjectsFound {
		r.ObjectsFound = other.ObjectsFound
	}

	r.ObjectsTagged += other.ObjectsTagged
	r.TrianglesTagged += other.TrianglesTagged
	r.ItemsTagged += other.ItemsTagged
}

// String returns a formatted multi-line report.
func (r *Report) String() string {
	var lines []string
	for _, e := range r.Events {
		lines = append(lines, e.Severity.String()+": "+e.String())
	}

	lines = append(lines, fmt.Sprintf(
		"mode=%s objects=%d tagged=%d triangles=%d items=%d",
		r.DetectedMode, r.ObjectsFound, r.ObjectsTagged, r.TrianglesTagged, r.ItemsTagged))

	return strings.Join(lines, "\n")
}
