package report

import (
	"encoding/json"
)

// Formatter defines the interface for serializing a Report.
type Formatter interface {
	// Format converts a Report to its serialized form.
	Format(report *Report) ([]byte, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(report *Report) ([]byte, error)

// Format implements the Formatter interface.
func (f FormatFunc) Format(report *Report) ([]byte, error) {
	return f(report)
}

// JSONFormatter serializes a Report as an indented JSON object.
type JSONFormatter struct {
	// Indent is the indentation unit. Empty means compact output.
	Indent string
}

// NewJSONFormatter creates a JSONFormatter with two-space indentation.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{Indent: "  "}
}

// Format implements the Formatter interface.
func (f *JSONFormatter) Format(report *Report) ([]byte, error) {
	if f.Indent == "" {
		return json.Marshal(report)
	}
	return json.MarshalIndent(report, "", f.Indent)
}

// Ensure JSONFormatter implements Formatter
var _ Formatter = (*JSONFormatter)(nil)
