// Package diag defines the non-fatal diagnostics the configuration engine
// collects while loading. Nothing here aborts a load; every diagnostic
// means some value fell back to its default.
package diag

import "fmt"

// Kind classifies a diagnostic.
type Kind string

const (
	// ParseWarning covers malformed lines and values; the previous or
	// default value is retained.
	ParseWarning Kind = "parse_warning"
	// UnknownTheme means the configured theme did not resolve and the
	// default theme was used instead.
	UnknownTheme Kind = "unknown_theme"
	// InvalidColorValue means a color override was skipped and the base
	// palette value kept.
	InvalidColorValue Kind = "invalid_color_value"
	// UnknownAction means a keybind directive named an action outside the
	// fixed action set and was ignored.
	UnknownAction Kind = "unknown_action"
	// UnknownTrigger means a keybind trigger failed to parse and the
	// directive was ignored.
	UnknownTrigger Kind = "unknown_trigger"
)

// Diagnostic is one collected warning. Line is the 1-based config file
// line, or 0 when the diagnostic has no file position.
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// Newf builds a diagnostic with a formatted message.
func Newf(kind Kind, line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}
