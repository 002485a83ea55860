// Package types - Compliance report types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ViolationType is one of the small fixed set of violation classes
type ViolationType string

const (
	ViolationMinimumWage    ViolationType = "minimum_wage"
	ViolationMaximumBenefit ViolationType = "maximum_benefit"
	ViolationSpecialNeeds   ViolationType = "special_needs"
	ViolationRegional       ViolationType = "regional_compliance"
	ViolationDocumentation  ViolationType = "documentation"
	ViolationGeneral        ViolationType = "general"
)

// Severity grades a violation
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Violation is a classified, severity-tagged failure aggregated across a
// batch. Violations are derived per report, never stored independently.
type Violation struct {
	// Type is the violation class
	Type ViolationType `json:"type"`

	// Severity is the fixed severity for the class
	Severity Severity `json:"severity"`

	// Description summarizes the violation class
	Description string `json:"description"`

	// Count is the number of occurrences across the batch
	Count int `json:"count"`
}

// ReportSummary holds batch-level totals
type ReportSummary struct {
	// TotalPlacements is the batch size
	TotalPlacements int `json:"total_placements"`

	// Compliant is the number of valid results
	Compliant int `json:"compliant"`

	// NonCompliant is the number of invalid results
	NonCompliant int `json:"non_compliant"`

	// ComplianceRate is Compliant/Total as a percentage
	ComplianceRate decimal.Decimal `json:"compliance_rate"`

	// TotalMonthlyBudget sums the calculated monthly totals
	TotalMonthlyBudget decimal.Decimal `json:"total_monthly_budget"`

	// AverageMonthlyBudget is TotalMonthlyBudget over the batch size
	AverageMonthlyBudget decimal.Decimal `json:"average_monthly_budget"`
}

// ComplianceReport is the immutable aggregate output of a batch run
type ComplianceReport struct {
	// ID uniquely identifies the report
	ID string `json:"id"`

	// GeneratedAt is when the report was built
	GeneratedAt time.Time `json:"generated_at"`

	// RuleTableVersion identifies the rule table used
	RuleTableVersion string `json:"rule_table_version"`

	// Summary holds batch-level totals
	Summary ReportSummary `json:"summary"`

	// Violations are the classified failures, counted per type
	Violations []Violation `json:"violations,omitempty"`

	// Recommendations are system-level remediation lines
	Recommendations []string `json:"recommendations,omitempty"`

	// Results are the per-placement outcomes in input order
	Results []*ValidationResult `json:"results,omitempty"`
}
