package output

import "io"

// Result represents a command result that can render in every format.
type Result interface {
	// Text writes the human-readable representation.
	Text(w io.Writer) error
	// Data returns the structure serialized for JSON and YAML.
	Data() any
}

// Output writes a Result in the formatter's format.
func (f *Formatter) Output(r Result) error {
	switch f.format {
	case FormatJSON:
		return f.JSON(r.Data())
	case FormatYAML:
		return f.YAML(r.Data())
	default:
		return r.Text(f.writer)
	}
}

// OutputData serializes data in JSON/YAML mode, or calls textFn.
func (f *Formatter) OutputData(data any, textFn func(w io.Writer) error) error {
	switch f.format {
	case FormatJSON:
		return f.JSON(data)
	case FormatYAML:
		return f.YAML(data)
	default:
		return textFn(f.writer)
	}
}
