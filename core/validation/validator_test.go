package validation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"foster-budget/adapters/placementdata"
	"foster-budget/core/rules"
	"foster-budget/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

// scenarioPlacement is the reference placement: age 5, Sudeste, no special
// needs, complete documentation. Calculated total is 2549.95.
func scenarioPlacement() types.Placement {
	return types.Placement{
		ID:     "plc-1",
		Child:  types.ChildProfile{ID: "c1", BirthDate: date(2019, 1, 10)},
		Family: types.FamilyProfile{ID: "f1", State: "SP"},
		Legal: types.LegalRecord{
			CourtOrderRef:       "co-1",
			LegalGuardianRef:    "lg-1",
			BirthCertificateRef: "bc-1",
		},
	}
}

func newTestValidator(budget types.Budget) *Validator {
	source := placementdata.NewMemorySource(scenarioPlacement())
	store := placementdata.NewMemoryStore(budget)
	return NewValidator(source, store, rules.Builtin()).WithClock(fixedNow)
}

func itemizedBudget(monthly decimal.Decimal) types.Budget {
	healthcare := dec("200.00")
	education := dec("150.00")
	return types.Budget{
		PlacementID:         "plc-1",
		MonthlyAmount:       monthly,
		HealthcareAllowance: &healthcare,
		EducationAllowance:  &education,
	}
}

// TestIdempotence feeds the calculated total back as the stored budget
// and expects a fully compliant result
func TestIdempotence(t *testing.T) {
	validator := newTestValidator(itemizedBudget(dec("2549.95")))

	result := validator.ValidatePlacement(context.Background(), "plc-1")

	if !result.IsValid {
		t.Fatalf("expected valid result, got errors: %v", result.Errors)
	}
	if !result.Checks.AllPassed() {
		t.Errorf("expected all six checks true, got %+v", result.Checks)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

// TestToleranceBoundary pins the strict 5% band: a deviation of exactly
// 5% is compliant, anything beyond is an error
func TestToleranceBoundary(t *testing.T) {
	total := dec("2549.95")

	tests := []struct {
		name      string
		factor    string
		wantError bool
	}{
		{"exactly at the band", "0.9500", false},
		{"just beyond the band", "0.9499", true},
		{"well inside the band", "0.99", false},
		{"exact match", "1.00", false},
		{"over by exactly 5%", "1.05", false},
		{"over beyond the band", "1.0501", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := total.Mul(dec(tt.factor))
			validator := newTestValidator(itemizedBudget(stored))

			result := validator.ValidatePlacement(context.Background(), "plc-1")
			if got := result.HasErrorKind(types.KindTolerance); got != tt.wantError {
				t.Errorf("stored %s: tolerance error = %v, want %v (errors: %v)",
					stored, got, tt.wantError, result.Errors)
			}
		})
	}
}

// TestScenarioC covers a stored budget below the minimum wage
func TestScenarioC(t *testing.T) {
	validator := newTestValidator(itemizedBudget(dec("1000.00")))

	result := validator.ValidatePlacement(context.Background(), "plc-1")

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if result.Checks.MinimumWage {
		t.Error("minimum wage check should fail")
	}

	var minWageMsg string
	for _, issue := range result.Errors {
		if issue.Kind == types.KindMinimumWage {
			minWageMsg = issue.Message
		}
	}
	if minWageMsg == "" {
		t.Fatal("expected a minimum_wage error")
	}
	if !strings.Contains(minWageMsg, "1000.00") || !strings.Contains(minWageMsg, "1412.00") {
		t.Errorf("minimum wage error should name both figures, got %q", minWageMsg)
	}

	if len(result.Recommendations) == 0 ||
		!strings.Contains(result.Recommendations[0], "2549.95") {
		t.Errorf("first recommendation should raise to the calculated total, got %v",
			result.Recommendations)
	}
}

// TestMaximumBenefitMessageUsesNumericCeiling guards against formatting a
// flag where the ceiling constant belongs
func TestMaximumBenefitMessageUsesNumericCeiling(t *testing.T) {
	validator := newTestValidator(itemizedBudget(dec("9000.00")))

	result := validator.ValidatePlacement(context.Background(), "plc-1")
	if result.IsValid {
		t.Fatal("expected invalid result")
	}

	found := false
	for _, issue := range result.Errors {
		if issue.Kind == types.KindMaximumBenefit {
			found = true
			if !strings.Contains(issue.Message, "7060.00") {
				t.Errorf("message should name the numeric ceiling, got %q", issue.Message)
			}
		}
	}
	if !found {
		t.Fatal("expected a maximum_benefit error")
	}
}

// TestMissingPlacementIsTerminalResult proves data problems are returned,
// never thrown
func TestMissingPlacementIsTerminalResult(t *testing.T) {
	validator := newTestValidator(itemizedBudget(dec("2549.95")))

	result := validator.ValidatePlacement(context.Background(), "missing")

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if !result.HasErrorKind(types.KindDataNotFound) {
		t.Errorf("expected data_not_found error, got %v", result.Errors)
	}
	if result.Checks.AllPassed() || result.Checks.MinimumWage {
		t.Errorf("expected all checks false, got %+v", result.Checks)
	}
	if !result.Calculated.TotalMonthly.IsZero() {
		t.Errorf("expected zeroed calculated values, got total %s", result.Calculated.TotalMonthly)
	}
}

func TestMissingBudgetIsTerminalResult(t *testing.T) {
	source := placementdata.NewMemorySource(scenarioPlacement())
	store := placementdata.NewMemoryStore() // no budgets
	validator := NewValidator(source, store, rules.Builtin()).WithClock(fixedNow)

	result := validator.ValidatePlacement(context.Background(), "plc-1")
	if result.IsValid || !result.HasErrorKind(types.KindDataNotFound) {
		t.Errorf("expected data_not_found failure, got %+v", result)
	}
}

// TestAdvisoryGapsAreWarnings proves missing optional itemizations never
// block validity
func TestAdvisoryGapsAreWarnings(t *testing.T) {
	budget := types.Budget{PlacementID: "plc-1", MonthlyAmount: dec("2549.95")}
	validator := newTestValidator(budget)

	result := validator.ValidatePlacement(context.Background(), "plc-1")

	if !result.IsValid {
		t.Fatalf("advisory gaps must not block validity, errors: %v", result.Errors)
	}
	gaps := 0
	for _, issue := range result.Warnings {
		if issue.Kind == types.KindAdvisoryGap {
			gaps++
		}
	}
	if gaps != 2 {
		t.Errorf("expected 2 advisory-gap warnings, got %d (%v)", gaps, result.Warnings)
	}
}

// TestDocumentationGapIsError proves incomplete legal records block validity
func TestDocumentationGapIsError(t *testing.T) {
	placement := scenarioPlacement()
	placement.Legal.CourtOrderRef = ""

	source := placementdata.NewMemorySource(placement)
	store := placementdata.NewMemoryStore(itemizedBudget(dec("2549.95")))
	validator := NewValidator(source, store, rules.Builtin()).WithClock(fixedNow)

	result := validator.ValidatePlacement(context.Background(), "plc-1")
	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	if !result.HasErrorKind(types.KindDocumentation) {
		t.Errorf("expected documentation error, got %v", result.Errors)
	}
	if result.Checks.Documentation {
		t.Error("documentation check should fail")
	}
}

// TestRecommendationOrder pins the fixed priority order
func TestRecommendationOrder(t *testing.T) {
	placement := scenarioPlacement()
	placement.Child.HasSpecialNeeds = true

	source := placementdata.NewMemorySource(placement)
	// Under-funded, nothing itemized
	store := placementdata.NewMemoryStore(types.Budget{
		PlacementID:   "plc-1",
		MonthlyAmount: dec("2000.00"),
	})
	validator := NewValidator(source, store, rules.Builtin()).WithClock(fixedNow)

	result := validator.ValidatePlacement(context.Background(), "plc-1")

	wantOrder := []string{
		"increase the monthly amount",
		"add special-needs support",
		"add the healthcare allowance",
		"add the education allowance",
		"apply the regional multiplier",
		"apply the age-group multiplier",
		"keep court order",
		"review the placement budget quarterly",
	}
	if len(result.Recommendations) != len(wantOrder) {
		t.Fatalf("expected %d recommendations, got %d: %v",
			len(wantOrder), len(result.Recommendations), result.Recommendations)
	}
	for i, prefix := range wantOrder {
		if !strings.HasPrefix(result.Recommendations[i], prefix) {
			t.Errorf("recommendation %d = %q, want prefix %q", i, result.Recommendations[i], prefix)
		}
	}
}
