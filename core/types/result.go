// Package types - Validation result types
package types

import "github.com/shopspring/decimal"

// IssueKind classifies a validation finding. Checks emit structured kinds;
// human-readable text is produced only at the presentation boundary.
type IssueKind string

const (
	// KindDataNotFound - placement context or stored budget is missing
	KindDataNotFound IssueKind = "data_not_found"

	// KindTolerance - stored amount diverges from calculated beyond the band
	KindTolerance IssueKind = "tolerance_violation"

	// KindMinimumWage - stored amount below the statutory floor
	KindMinimumWage IssueKind = "minimum_wage"

	// KindMaximumBenefit - stored amount above the statutory ceiling
	KindMaximumBenefit IssueKind = "maximum_benefit"

	// KindSpecialNeeds - special-needs support owed but missing or short
	KindSpecialNeeds IssueKind = "special_needs"

	// KindRegional - stored amount below the regional floor
	KindRegional IssueKind = "regional_compliance"

	// KindAgeGroup - stored amount below the age-group floor
	KindAgeGroup IssueKind = "age_group_compliance"

	// KindDocumentation - mandatory legal references incomplete
	KindDocumentation IssueKind = "documentation"

	// KindAdvisoryGap - optional allowance not itemized in the stored budget
	KindAdvisoryGap IssueKind = "advisory_gap"

	// KindUnknownRegion - family state code absent from the rule table
	KindUnknownRegion IssueKind = "unknown_region"

	// KindUnexpected - unexpected failure converted into a failed result
	KindUnexpected IssueKind = "unexpected_failure"
)

// Issue is a single structured validation finding
type Issue struct {
	// Kind classifies the finding
	Kind IssueKind `json:"kind"`

	// Message is the formatted description
	Message string `json:"message"`
}

// ComplianceChecks holds the six named compliance predicates
type ComplianceChecks struct {
	// MinimumWage - stored monthly >= statutory minimum wage
	MinimumWage bool `json:"minimum_wage_compliance"`

	// MaximumBenefit - stored monthly <= statutory ceiling
	MaximumBenefit bool `json:"maximum_benefit_compliance"`

	// Regional - stored monthly >= 95% of the region-adjusted base
	Regional bool `json:"regional_compliance"`

	// AgeGroup - stored monthly >= 95% of the age-adjusted base
	AgeGroup bool `json:"age_group_compliance"`

	// SpecialNeeds - itemized special-needs support >= 90% of expected
	SpecialNeeds bool `json:"special_needs_compliance"`

	// Documentation - all three mandatory legal references present
	Documentation bool `json:"documentation_compliance"`
}

// AllPassed reports whether every check passed
func (c ComplianceChecks) AllPassed() bool {
	return c.MinimumWage && c.MaximumBenefit && c.Regional &&
		c.AgeGroup && c.SpecialNeeds && c.Documentation
}

// BenefitBreakdown is the itemized expected stipend for a placement
type BenefitBreakdown struct {
	// BaseBenefit is the table base after age and region multipliers
	BaseBenefit decimal.Decimal `json:"base_benefit"`

	// SpecialNeedsSupport is the special-needs supplement
	SpecialNeedsSupport decimal.Decimal `json:"special_needs_support"`

	// SiblingSupport is the sibling-group supplement
	SiblingSupport decimal.Decimal `json:"sibling_support"`

	// HealthcareSupport is the fixed monthly healthcare allowance
	HealthcareSupport decimal.Decimal `json:"healthcare_support"`

	// EducationSupport is the fixed monthly education allowance
	EducationSupport decimal.Decimal `json:"education_support"`

	// ClothingSupport is the annual clothing allowance divided by 12
	ClothingSupport decimal.Decimal `json:"clothing_support"`

	// TransportSupport is the fixed monthly transport allowance
	TransportSupport decimal.Decimal `json:"transport_support"`

	// TotalMonthly is the sum of the seven components
	TotalMonthly decimal.Decimal `json:"total_monthly"`

	// TotalAnnual is TotalMonthly times 12
	TotalAnnual decimal.Decimal `json:"total_annual"`

	// Age is the child's age in completed years at calculation time
	Age int `json:"age"`

	// Region is the resolved family region
	Region Region `json:"region"`

	// RegionMultiplier is the applied regional factor
	RegionMultiplier decimal.Decimal `json:"region_multiplier"`

	// AgeGroupMultiplier is the applied age-band factor
	AgeGroupMultiplier decimal.Decimal `json:"age_group_multiplier"`

	// Formula describes how the base was derived
	Formula string `json:"formula,omitempty"`
}

// Components returns the seven monthly components in a fixed order
func (b BenefitBreakdown) Components() []decimal.Decimal {
	return []decimal.Decimal{
		b.BaseBenefit,
		b.SpecialNeedsSupport,
		b.SiblingSupport,
		b.HealthcareSupport,
		b.EducationSupport,
		b.ClothingSupport,
		b.TransportSupport,
	}
}

// ValidationResult is the complete outcome of validating one placement.
// It is created fresh per validation call and never mutated afterwards.
type ValidationResult struct {
	// PlacementID is the validated placement
	PlacementID string `json:"placement_id"`

	// IsValid is true when no errors were recorded
	IsValid bool `json:"is_valid"`

	// Errors are blocking findings
	Errors []Issue `json:"errors,omitempty"`

	// Warnings are advisory findings that never block validity
	Warnings []Issue `json:"warnings,omitempty"`

	// Calculated is the expected benefit breakdown
	Calculated BenefitBreakdown `json:"calculated_values"`

	// Checks holds the six named compliance predicates
	Checks ComplianceChecks `json:"compliance_checks"`

	// Recommendations are remediation steps in priority order
	Recommendations []string `json:"recommendations,omitempty"`
}

// HasErrorKind reports whether any error carries the given kind
func (r *ValidationResult) HasErrorKind(kind IssueKind) bool {
	for _, issue := range r.Errors {
		if issue.Kind == kind {
			return true
		}
	}
	return false
}
