// Package output provides unified output formatting for the CLI. All
// commands render through a Formatter so text, JSON, and YAML output
// stay consistent.
package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Format represents the output format type.
type Format int

const (
	// FormatText is human-readable formatted text (default).
	FormatText Format = iota
	// FormatJSON is machine-readable JSON output.
	FormatJSON
	// FormatYAML is machine-readable YAML output.
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseFormat parses a --format flag value.
func ParseFormat(value string) (Format, bool) {
	switch value {
	case "", "text", "TEXT":
		return FormatText, true
	case "json", "JSON":
		return FormatJSON, true
	case "yaml", "YAML", "yml":
		return FormatYAML, true
	}
	return FormatText, false
}

// Formatter handles output formatting for commands.
type Formatter struct {
	format Format
	writer io.Writer
	pretty bool // for JSON: whether to indent
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		format: FormatText,
		writer: os.Stdout,
		pretty: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Option is a functional option for Formatter.
type Option func(*Formatter)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(f *Formatter) {
		f.format = format
	}
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(f *Formatter) {
		f.writer = w
	}
}

// WithPretty sets whether JSON should be indented.
func WithPretty(pretty bool) Option {
	return func(f *Formatter) {
		f.pretty = pretty
	}
}

// Format returns the current output format.
func (f *Formatter) Format() Format {
	return f.format
}

// IsText returns true if the output format is plain text.
func (f *Formatter) IsText() bool {
	return f.format == FormatText
}

// Writer returns the output writer.
func (f *Formatter) Writer() io.Writer {
	return f.writer
}

// DetectFormat determines the output format.
// Priority: explicit flag > env var > pipe detection > default text.
func DetectFormat(flagValue string) Format {
	if format, ok := ParseFormat(flagValue); ok && flagValue != "" {
		return format
	}

	if env := os.Getenv("TERMY_OUTPUT_FORMAT"); env != "" {
		if format, ok := ParseFormat(env); ok {
			return format
		}
	}

	// Piped output defaults to JSON so `termy keybinds list | jq .`
	// works without flags.
	if !IsTerminal() {
		return FormatJSON
	}
	return FormatText
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
