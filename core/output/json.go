// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"foster-budget/core/types"
)

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// RenderResult renders a single validation result
func (f *JSONFormatter) RenderResult(w io.Writer, result *types.ValidationResult) error {
	return writeIndented(w, result)
}

// RenderReport renders a compliance report
func (f *JSONFormatter) RenderReport(w io.Writer, report *types.ComplianceReport) error {
	return writeIndented(w, report)
}

func writeIndented(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
