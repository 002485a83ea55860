// Package compliance evaluates the six named compliance predicates.
// Every check is a pure predicate comparing the stored budget against the
// expected breakdown; none mutate state or perform I/O.
package compliance

import (
	"github.com/shopspring/decimal"

	"foster-budget/core/rules"
	"foster-budget/core/types"
)

// Floor fractions for the soft checks. Statutory bounds (minimum wage,
// maximum benefit) have no slack.
var (
	regionalFloor     = decimal.RequireFromString("0.95")
	ageGroupFloor     = decimal.RequireFromString("0.95")
	specialNeedsFloor = decimal.RequireFromString("0.90")
)

// Checker evaluates compliance checks against a rule table
type Checker struct {
	table *rules.Table
}

// NewChecker creates a checker bound to a rule table
func NewChecker(table *rules.Table) *Checker {
	return &Checker{table: table}
}

// Check runs all six predicates
func (c *Checker) Check(budget *types.Budget, expected types.BenefitBreakdown, placement *types.Placement) types.ComplianceChecks {
	return types.ComplianceChecks{
		MinimumWage:    c.MinimumWage(budget),
		MaximumBenefit: c.MaximumBenefit(budget),
		Regional:       c.Regional(budget, expected),
		AgeGroup:       c.AgeGroup(budget, expected),
		SpecialNeeds:   c.SpecialNeeds(budget, expected, placement.Child),
		Documentation:  c.Documentation(placement),
	}
}

// MinimumWage checks the stored monthly amount against the statutory floor
func (c *Checker) MinimumWage(budget *types.Budget) bool {
	return budget.MonthlyAmount.GreaterThanOrEqual(c.table.MinimumWage)
}

// MaximumBenefit checks the stored monthly amount against the statutory ceiling
func (c *Checker) MaximumBenefit(budget *types.Budget) bool {
	return budget.MonthlyAmount.LessThanOrEqual(c.table.MaximumMonthlyBenefit)
}

// Regional checks the stored monthly amount against 95% of the
// region-adjusted base
func (c *Checker) Regional(budget *types.Budget, expected types.BenefitBreakdown) bool {
	floor := c.table.BaseBenefit.Mul(expected.RegionMultiplier).Mul(regionalFloor)
	return budget.MonthlyAmount.GreaterThanOrEqual(floor)
}

// AgeGroup checks the stored monthly amount against 95% of the
// age-adjusted base
func (c *Checker) AgeGroup(budget *types.Budget, expected types.BenefitBreakdown) bool {
	floor := c.table.BaseBenefit.Mul(expected.AgeGroupMultiplier).Mul(ageGroupFloor)
	return budget.MonthlyAmount.GreaterThanOrEqual(floor)
}

// SpecialNeeds checks the itemized special-needs support against 90% of
// the expected supplement. Trivially true when the child has no special
// needs.
func (c *Checker) SpecialNeeds(budget *types.Budget, expected types.BenefitBreakdown, child types.ChildProfile) bool {
	if !child.HasSpecialNeeds {
		return true
	}
	if budget.SpecialNeedsSupport == nil {
		return false
	}
	floor := expected.SpecialNeedsSupport.Mul(specialNeedsFloor)
	return budget.SpecialNeedsSupport.GreaterThanOrEqual(floor)
}

// Documentation checks that all three mandatory legal references are present
func (c *Checker) Documentation(placement *types.Placement) bool {
	return placement.Legal.Complete()
}
