// Package output - Markdown rendering
package output

import (
	"fmt"
	"io"

	"foster-budget/core/types"
)

// MarkdownFormatter renders markdown suitable for audit documents
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// RenderResult renders a single validation result
func (f *MarkdownFormatter) RenderResult(w io.Writer, result *types.ValidationResult) error {
	status := "compliant"
	if !result.IsValid {
		status = "non-compliant"
	}
	fmt.Fprintf(w, "## Placement %s (%s)\n\n", result.PlacementID, status)

	calc := result.Calculated
	fmt.Fprintf(w, "| Component | Amount |\n|---|---|\n")
	fmt.Fprintf(w, "| Base benefit | %s |\n", calc.BaseBenefit.StringFixed(2))
	fmt.Fprintf(w, "| Special-needs support | %s |\n", calc.SpecialNeedsSupport.StringFixed(2))
	fmt.Fprintf(w, "| Sibling support | %s |\n", calc.SiblingSupport.StringFixed(2))
	fmt.Fprintf(w, "| Healthcare allowance | %s |\n", calc.HealthcareSupport.StringFixed(2))
	fmt.Fprintf(w, "| Education allowance | %s |\n", calc.EducationSupport.StringFixed(2))
	fmt.Fprintf(w, "| Clothing allowance | %s |\n", calc.ClothingSupport.StringFixed(2))
	fmt.Fprintf(w, "| Transport allowance | %s |\n", calc.TransportSupport.StringFixed(2))
	fmt.Fprintf(w, "| **Total monthly** | **%s** |\n", calc.TotalMonthly.StringFixed(2))
	fmt.Fprintf(w, "| **Total annual** | **%s** |\n\n", calc.TotalAnnual.StringFixed(2))

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "### Errors\n\n")
		for _, issue := range result.Errors {
			fmt.Fprintf(w, "- `%s` %s\n", issue.Kind, issue.Message)
		}
		fmt.Fprintln(w)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "### Warnings\n\n")
		for _, issue := range result.Warnings {
			fmt.Fprintf(w, "- `%s` %s\n", issue.Kind, issue.Message)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// RenderReport renders a compliance report
func (f *MarkdownFormatter) RenderReport(w io.Writer, report *types.ComplianceReport) error {
	fmt.Fprintf(w, "# Compliance report %s\n\n", report.ID)
	fmt.Fprintf(w, "Rule table `%s`, generated %s.\n\n",
		report.RuleTableVersion, report.GeneratedAt.Format("2006-01-02"))

	s := report.Summary
	fmt.Fprintf(w, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| Placements | %d |\n", s.TotalPlacements)
	fmt.Fprintf(w, "| Compliant | %d |\n", s.Compliant)
	fmt.Fprintf(w, "| Non-compliant | %d |\n", s.NonCompliant)
	fmt.Fprintf(w, "| Compliance rate | %s%% |\n", s.ComplianceRate)
	fmt.Fprintf(w, "| Total monthly budget | %s |\n", s.TotalMonthlyBudget.StringFixed(2))
	fmt.Fprintf(w, "| Average monthly budget | %s |\n\n", s.AverageMonthlyBudget.StringFixed(2))

	if len(report.Violations) > 0 {
		fmt.Fprintf(w, "## Violations\n\n| Type | Severity | Count | Description |\n|---|---|---|---|\n")
		for _, v := range report.Violations {
			fmt.Fprintf(w, "| %s | %s | %d | %s |\n", v.Type, v.Severity, v.Count, v.Description)
		}
		fmt.Fprintln(w)
	}
	if len(report.Recommendations) > 0 {
		fmt.Fprintf(w, "## Recommendations\n\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(w, "1. %s\n", rec)
		}
	}
	return nil
}
