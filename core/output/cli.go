// Package output - Terminal rendering
package output

import (
	"fmt"
	"io"

	"foster-budget/core/types"
)

// CLIFormatter renders human-readable terminal output
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// RenderResult renders a single validation result
func (f *CLIFormatter) RenderResult(w io.Writer, result *types.ValidationResult) error {
	status := "COMPLIANT"
	if !result.IsValid {
		status = "NON-COMPLIANT"
	}
	fmt.Fprintf(w, "Placement %s: %s\n\n", result.PlacementID, status)

	calc := result.Calculated
	fmt.Fprintf(w, "Calculated breakdown (age %d, region %s):\n", calc.Age, calc.Region)
	fmt.Fprintf(w, "  base benefit           %12s\n", calc.BaseBenefit.StringFixed(2))
	fmt.Fprintf(w, "  special-needs support  %12s\n", calc.SpecialNeedsSupport.StringFixed(2))
	fmt.Fprintf(w, "  sibling support        %12s\n", calc.SiblingSupport.StringFixed(2))
	fmt.Fprintf(w, "  healthcare allowance   %12s\n", calc.HealthcareSupport.StringFixed(2))
	fmt.Fprintf(w, "  education allowance    %12s\n", calc.EducationSupport.StringFixed(2))
	fmt.Fprintf(w, "  clothing allowance     %12s\n", calc.ClothingSupport.StringFixed(2))
	fmt.Fprintf(w, "  transport allowance    %12s\n", calc.TransportSupport.StringFixed(2))
	fmt.Fprintf(w, "  total monthly          %12s\n", calc.TotalMonthly.StringFixed(2))
	fmt.Fprintf(w, "  total annual           %12s\n", calc.TotalAnnual.StringFixed(2))

	fmt.Fprintf(w, "\nCompliance checks:\n")
	for _, check := range namedChecks(result.Checks) {
		fmt.Fprintf(w, "  %-28s %s\n", check.name, passFail(check.passed))
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors:\n")
		for _, issue := range result.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", issue.Kind, issue.Message)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings:\n")
		for _, issue := range result.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", issue.Kind, issue.Message)
		}
	}
	if len(result.Recommendations) > 0 {
		fmt.Fprintf(w, "\nRecommendations:\n")
		for i, rec := range result.Recommendations {
			fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
		}
	}
	return nil
}

// RenderReport renders a compliance report
func (f *CLIFormatter) RenderReport(w io.Writer, report *types.ComplianceReport) error {
	fmt.Fprintf(w, "Compliance report %s (rule table %s)\n", report.ID, report.RuleTableVersion)
	fmt.Fprintf(w, "Generated at %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	s := report.Summary
	fmt.Fprintf(w, "Placements:      %d\n", s.TotalPlacements)
	fmt.Fprintf(w, "Compliant:       %d\n", s.Compliant)
	fmt.Fprintf(w, "Non-compliant:   %d\n", s.NonCompliant)
	fmt.Fprintf(w, "Compliance rate: %s%%\n", s.ComplianceRate)
	fmt.Fprintf(w, "Monthly budget:  %s total, %s average\n",
		s.TotalMonthlyBudget.StringFixed(2), s.AverageMonthlyBudget.StringFixed(2))

	if len(report.Violations) > 0 {
		fmt.Fprintf(w, "\nViolations:\n")
		for _, v := range report.Violations {
			fmt.Fprintf(w, "  %-22s %-6s x%-3d %s\n", v.Type, v.Severity, v.Count, v.Description)
		}
	}
	if len(report.Recommendations) > 0 {
		fmt.Fprintf(w, "\nRecommendations:\n")
		for i, rec := range report.Recommendations {
			fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
		}
	}
	return nil
}

type namedCheck struct {
	name   string
	passed bool
}

func namedChecks(checks types.ComplianceChecks) []namedCheck {
	return []namedCheck{
		{"minimum wage compliance", checks.MinimumWage},
		{"maximum benefit compliance", checks.MaximumBenefit},
		{"regional compliance", checks.Regional},
		{"age group compliance", checks.AgeGroup},
		{"special needs compliance", checks.SpecialNeeds},
		{"documentation compliance", checks.Documentation},
	}
}

func passFail(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
