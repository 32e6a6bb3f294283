package output

import (
	"io"
	"strings"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats, default first.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML}
}

// FormatUsage returns the help text of an --output flag.
func FormatUsage() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "Output format: " + strings.Join(names, ", ")
}

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format. Names are matched
// case-insensitively; unknown names get the table formatter.
func NewFormatter(format Format) Formatter {
	switch Format(strings.ToLower(strings.TrimSpace(string(format)))) {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}
