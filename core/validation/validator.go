// Package validation orchestrates single-placement budget validation.
// It fetches placement context and the stored budget through the external
// ports, runs the calculator and checker, reconciles stored against
// expected within the tolerance band, and emits a structured result.
// Data problems are returned as failed results, never as errors, so batch
// callers can always continue.
package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"foster-budget/core/benefit"
	"foster-budget/core/compliance"
	"foster-budget/core/rules"
	"foster-budget/core/types"
	"foster-budget/internal/errors"
)

// DefaultTolerance is the allowed deviation between stored and calculated
// monthly amounts. The comparison is strict: a deviation of exactly the
// tolerance is compliant, anything beyond it is an error.
var DefaultTolerance = decimal.RequireFromString("0.05")

// DefaultFetchTimeout bounds each external fetch
const DefaultFetchTimeout = 10 * time.Second

// Validator validates one placement at a time
type Validator struct {
	source     PlacementDataSource
	store      BudgetStore
	table      *rules.Table
	calculator *benefit.Calculator
	checker    *compliance.Checker

	tolerance    decimal.Decimal
	fetchTimeout time.Duration
	logger       *zap.Logger
}

// NewValidator creates a validator bound to a rule table and the two
// external collaborators
func NewValidator(source PlacementDataSource, store BudgetStore, table *rules.Table) *Validator {
	return &Validator{
		source:       source,
		store:        store,
		table:        table,
		calculator:   benefit.NewCalculator(table),
		checker:      compliance.NewChecker(table),
		tolerance:    DefaultTolerance,
		fetchTimeout: DefaultFetchTimeout,
		logger:       zap.NewNop(),
	}
}

// WithTolerance overrides the tolerance band
func (v *Validator) WithTolerance(tolerance decimal.Decimal) *Validator {
	v.tolerance = tolerance
	return v
}

// WithFetchTimeout overrides the per-fetch timeout
func (v *Validator) WithFetchTimeout(timeout time.Duration) *Validator {
	v.fetchTimeout = timeout
	return v
}

// WithLogger attaches a logger
func (v *Validator) WithLogger(logger *zap.Logger) *Validator {
	v.logger = logger
	return v
}

// WithClock overrides the reference date used for age derivation
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.calculator.WithClock(now)
	return v
}

// Table returns the rule table the validator is bound to
func (v *Validator) Table() *rules.Table {
	return v.table
}

// ValidatePlacement validates a single placement. Missing context or
// budget yields a terminal failed result with zeroed calculated values and
// all checks false.
func (v *Validator) ValidatePlacement(ctx context.Context, placementID string) *types.ValidationResult {
	placement, err := v.fetchPlacement(ctx, placementID)
	if err != nil {
		return v.failed(placementID, err)
	}

	budget, err := v.fetchBudget(ctx, placementID)
	if err != nil {
		return v.failed(placementID, err)
	}

	result := &types.ValidationResult{PlacementID: placementID}

	breakdown, warnings := v.calculator.Calculate(placement.Child, placement.Family, placement.SiblingCount())
	result.Calculated = breakdown
	result.Warnings = append(result.Warnings, warnings...)

	result.Checks = v.checker.Check(budget, breakdown, placement)

	v.reconcile(result, budget)
	v.collectCheckErrors(result, budget, placement)
	v.collectAdvisoryGaps(result, budget)
	result.Recommendations = v.recommendations(result, budget, placement)

	result.IsValid = len(result.Errors) == 0

	v.logger.Debug("placement validated",
		zap.String("placement_id", placementID),
		zap.Bool("is_valid", result.IsValid),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)))

	return result
}

func (v *Validator) fetchPlacement(ctx context.Context, placementID string) (*types.Placement, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, v.fetchTimeout)
	defer cancel()
	return v.source.GetPlacement(fetchCtx, placementID)
}

func (v *Validator) fetchBudget(ctx context.Context, placementID string) (*types.Budget, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, v.fetchTimeout)
	defer cancel()
	return v.store.GetBudget(fetchCtx, placementID)
}

// failed builds a terminal result for a fetch failure. This is a returned
// value, never a thrown error.
func (v *Validator) failed(placementID string, cause error) *types.ValidationResult {
	kind := types.KindUnexpected
	if errors.IsNotFound(cause) {
		kind = types.KindDataNotFound
	}
	v.logger.Warn("placement validation failed before calculation",
		zap.String("placement_id", placementID),
		zap.Error(cause))
	return &types.ValidationResult{
		PlacementID: placementID,
		IsValid:     false,
		Errors: []types.Issue{{
			Kind:    kind,
			Message: cause.Error(),
		}},
	}
}

// reconcile compares the stored monthly amount against the calculated
// total within the tolerance band
func (v *Validator) reconcile(result *types.ValidationResult, budget *types.Budget) {
	total := result.Calculated.TotalMonthly
	if total.IsZero() {
		return
	}
	deviation := budget.MonthlyAmount.Sub(total).Abs()
	allowed := total.Mul(v.tolerance)
	if deviation.GreaterThan(allowed) {
		result.Errors = append(result.Errors, types.Issue{
			Kind: types.KindTolerance,
			Message: fmt.Sprintf("stored monthly amount %s deviates from calculated total %s beyond the %s%% tolerance",
				budget.MonthlyAmount.StringFixed(2), total.StringFixed(2),
				v.tolerance.Mul(decimal.NewFromInt(100))),
		})
	}
}

// collectCheckErrors converts failed compliance checks into typed errors.
// Minimum-wage and maximum-benefit failures are hard statutory bounds.
func (v *Validator) collectCheckErrors(result *types.ValidationResult, budget *types.Budget, placement *types.Placement) {
	checks := result.Checks

	if !checks.MinimumWage {
		result.Errors = append(result.Errors, types.Issue{
			Kind: types.KindMinimumWage,
			Message: fmt.Sprintf("stored monthly amount %s is below the statutory minimum wage %s",
				budget.MonthlyAmount.StringFixed(2), v.table.MinimumWage.StringFixed(2)),
		})
	}
	if !checks.MaximumBenefit {
		result.Errors = append(result.Errors, types.Issue{
			Kind: types.KindMaximumBenefit,
			Message: fmt.Sprintf("stored monthly amount %s exceeds the maximum monthly benefit %s",
				budget.MonthlyAmount.StringFixed(2), v.table.MaximumMonthlyBenefit.StringFixed(2)),
		})
	}
	if !checks.SpecialNeeds {
		recorded := "none recorded"
		if budget.SpecialNeedsSupport != nil {
			recorded = budget.SpecialNeedsSupport.StringFixed(2)
		}
		result.Errors = append(result.Errors, types.Issue{
			Kind: types.KindSpecialNeeds,
			Message: fmt.Sprintf("special-needs support of %s is owed but stored support is %s",
				result.Calculated.SpecialNeedsSupport.StringFixed(2), recorded),
		})
	}
	if !checks.Regional {
		result.Errors = append(result.Errors, types.Issue{
			Kind: types.KindRegional,
			Message: fmt.Sprintf("stored monthly amount %s is below the regional floor for %s",
				budget.MonthlyAmount.StringFixed(2), result.Calculated.Region),
		})
	}
	if !checks.AgeGroup {
		result.Errors = append(result.Errors, types.Issue{
			Kind: types.KindAgeGroup,
			Message: fmt.Sprintf("stored monthly amount %s is below the age-group floor for age %d",
				budget.MonthlyAmount.StringFixed(2), result.Calculated.Age),
		})
	}
	if !checks.Documentation {
		result.Errors = append(result.Errors, types.Issue{
			Kind:    types.KindDocumentation,
			Message: fmt.Sprintf("placement %s is missing mandatory legal document references", placement.ID),
		})
	}
}

// collectAdvisoryGaps records missing optional itemizations as warnings.
// Advisory gaps never block validity.
func (v *Validator) collectAdvisoryGaps(result *types.ValidationResult, budget *types.Budget) {
	if budget.HealthcareAllowance == nil {
		result.Warnings = append(result.Warnings, types.Issue{
			Kind: types.KindAdvisoryGap,
			Message: fmt.Sprintf("healthcare allowance of %s is not itemized in the stored budget",
				result.Calculated.HealthcareSupport.StringFixed(2)),
		})
	}
	if budget.EducationAllowance == nil {
		result.Warnings = append(result.Warnings, types.Issue{
			Kind: types.KindAdvisoryGap,
			Message: fmt.Sprintf("education allowance of %s is not itemized in the stored budget",
				result.Calculated.EducationSupport.StringFixed(2)),
		})
	}
}

var one = decimal.NewFromInt(1)

// recommendations produces remediation steps in a fixed priority order;
// general reminders are always appended last.
func (v *Validator) recommendations(result *types.ValidationResult, budget *types.Budget, placement *types.Placement) []string {
	var recs []string
	calc := result.Calculated

	if budget.MonthlyAmount.LessThan(calc.TotalMonthly) {
		recs = append(recs, fmt.Sprintf("increase the monthly amount from %s to the calculated total %s",
			budget.MonthlyAmount.StringFixed(2), calc.TotalMonthly.StringFixed(2)))
	}
	if placement.Child.HasSpecialNeeds &&
		(budget.SpecialNeedsSupport == nil || budget.SpecialNeedsSupport.LessThan(calc.SpecialNeedsSupport)) {
		recs = append(recs, fmt.Sprintf("add special-needs support of %s",
			calc.SpecialNeedsSupport.StringFixed(2)))
	}
	if budget.HealthcareAllowance == nil {
		recs = append(recs, fmt.Sprintf("add the healthcare allowance of %s",
			calc.HealthcareSupport.StringFixed(2)))
	}
	if budget.EducationAllowance == nil {
		recs = append(recs, fmt.Sprintf("add the education allowance of %s",
			calc.EducationSupport.StringFixed(2)))
	}
	if calc.RegionMultiplier.GreaterThan(one) {
		recs = append(recs, fmt.Sprintf("apply the regional multiplier %s for region %s",
			calc.RegionMultiplier, calc.Region))
	}
	if calc.AgeGroupMultiplier.GreaterThan(one) {
		recs = append(recs, fmt.Sprintf("apply the age-group multiplier %s for age %d",
			calc.AgeGroupMultiplier, calc.Age))
	}

	recs = append(recs,
		"keep court order, guardianship and birth certificate references current",
		"review the placement budget quarterly against the fiscal-year rule table")
	return recs
}
