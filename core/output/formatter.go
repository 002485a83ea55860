// Package output renders validation results and compliance reports.
// All human-readable text for structured issue kinds is produced here, at
// the presentation boundary.
package output

import (
	"io"

	"foster-budget/core/types"
	"foster-budget/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderResult renders a single validation result
	RenderResult(w io.Writer, result *types.ValidationResult) error

	// RenderReport renders a compliance report
	RenderReport(w io.Writer, report *types.ComplianceReport) error
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format %q", format)
	}
}
