package report

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"foster-budget/adapters/placementdata"
	"foster-budget/core/rules"
	"foster-budget/core/types"
	"foster-budget/core/validation"
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

func placementWithID(id string) types.Placement {
	return types.Placement{
		ID:     id,
		Child:  types.ChildProfile{ID: "c-" + id, BirthDate: date(2019, 1, 10)},
		Family: types.FamilyProfile{ID: "f-" + id, State: "SP"},
		Legal: types.LegalRecord{
			CourtOrderRef:       "co",
			LegalGuardianRef:    "lg",
			BirthCertificateRef: "bc",
		},
	}
}

func compliantBudget(id string) types.Budget {
	healthcare := dec("200.00")
	education := dec("150.00")
	return types.Budget{
		PlacementID:         id,
		MonthlyAmount:       dec("2549.95"),
		HealthcareAllowance: &healthcare,
		EducationAllowance:  &education,
	}
}

// newBatchFixture seeds n compliant placements plus overrides
func newBatchFixture(ids []string, budgets map[string]types.Budget) *validation.Validator {
	var placements []types.Placement
	var stored []types.Budget
	for _, id := range ids {
		placements = append(placements, placementWithID(id))
		if b, ok := budgets[id]; ok {
			stored = append(stored, b)
		} else {
			stored = append(stored, compliantBudget(id))
		}
	}
	source := placementdata.NewMemorySource(placements...)
	store := placementdata.NewMemoryStore(stored...)
	return validation.NewValidator(source, store, rules.Builtin()).WithClock(fixedNow)
}

// TestScenarioD covers a batch of 3 with one non-compliant placement
func TestScenarioD(t *testing.T) {
	ids := []string{"plc-1", "plc-2", "plc-3"}
	validator := newBatchFixture(ids, map[string]types.Budget{
		"plc-3": {PlacementID: "plc-3", MonthlyAmount: dec("1000.00")},
	})

	generated := NewReporter(validator).Run(context.Background(), ids)

	s := generated.Summary
	if s.TotalPlacements != 3 || s.Compliant != 2 || s.NonCompliant != 1 {
		t.Fatalf("summary = %+v, want 3/2/1", s)
	}
	if !s.ComplianceRate.Equal(dec("66.7")) {
		t.Errorf("compliance rate = %s, want 66.7", s.ComplianceRate)
	}

	var minWage *types.Violation
	for i := range generated.Violations {
		if generated.Violations[i].Type == types.ViolationMinimumWage {
			minWage = &generated.Violations[i]
		}
	}
	if minWage == nil {
		t.Fatalf("expected a minimum_wage violation, got %v", generated.Violations)
	}
	if minWage.Count != 1 {
		t.Errorf("minimum_wage count = %d, want 1", minWage.Count)
	}
	if minWage.Severity != types.SeverityHigh {
		t.Errorf("minimum_wage severity = %s, want high", minWage.Severity)
	}

	// 1 of 3 placements below minimum wage exceeds the 30% alert share
	found := false
	for _, rec := range generated.Recommendations {
		if strings.HasPrefix(rec, "priority:") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a priority remediation line, got %v", generated.Recommendations)
	}
}

// TestCompliantPlusNonCompliantEqualsTotal holds for any batch
func TestCompliantPlusNonCompliantEqualsTotal(t *testing.T) {
	for _, size := range []int{1, 3, 7} {
		var ids []string
		budgets := make(map[string]types.Budget)
		for i := 0; i < size; i++ {
			id := fmt.Sprintf("plc-%d", i)
			ids = append(ids, id)
			if i%2 == 0 {
				budgets[id] = types.Budget{PlacementID: id, MonthlyAmount: dec("1000.00")}
			}
		}

		validator := newBatchFixture(ids, budgets)
		generated := NewReporter(validator).Run(context.Background(), ids)

		s := generated.Summary
		if s.Compliant+s.NonCompliant != s.TotalPlacements {
			t.Errorf("size %d: %d + %d != %d", size, s.Compliant, s.NonCompliant, s.TotalPlacements)
		}
	}
}

// TestResultsPreserveInputOrder proves concurrent validation reassembles
// results deterministically
func TestResultsPreserveInputOrder(t *testing.T) {
	var ids []string
	for i := 0; i < 16; i++ {
		ids = append(ids, fmt.Sprintf("plc-%02d", i))
	}
	validator := newBatchFixture(ids, nil)

	generated := NewReporter(validator).WithWorkers(8).Run(context.Background(), ids)

	if len(generated.Results) != len(ids) {
		t.Fatalf("got %d results, want %d", len(generated.Results), len(ids))
	}
	for i, result := range generated.Results {
		if result.PlacementID != ids[i] {
			t.Errorf("result %d is %s, want %s", i, result.PlacementID, ids[i])
		}
	}
}

// TestMissingPlacementDoesNotAbortBatch proves per-item failure isolation
func TestMissingPlacementDoesNotAbortBatch(t *testing.T) {
	ids := []string{"plc-1", "ghost", "plc-2"}
	validator := newBatchFixture([]string{"plc-1", "plc-2"}, nil)

	generated := NewReporter(validator).Run(context.Background(), ids)

	if generated.Summary.TotalPlacements != 3 {
		t.Fatalf("total = %d, want 3", generated.Summary.TotalPlacements)
	}
	if generated.Summary.Compliant != 2 {
		t.Errorf("compliant = %d, want 2", generated.Summary.Compliant)
	}
	if !generated.Results[1].HasErrorKind(types.KindDataNotFound) {
		t.Errorf("ghost result should be data_not_found, got %v", generated.Results[1].Errors)
	}
}

// panicSource panics for one id to exercise panic isolation
type panicSource struct {
	inner   *placementdata.MemorySource
	panicID string
}

func (s *panicSource) GetPlacement(ctx context.Context, id string) (*types.Placement, error) {
	if id == s.panicID {
		panic("malformed placement context")
	}
	return s.inner.GetPlacement(ctx, id)
}

// TestPanicIsolatedToOneResult proves an unexpected failure degrades only
// its own placement
func TestPanicIsolatedToOneResult(t *testing.T) {
	source := &panicSource{
		inner:   placementdata.NewMemorySource(placementWithID("plc-1"), placementWithID("plc-2")),
		panicID: "plc-2",
	}
	store := placementdata.NewMemoryStore(compliantBudget("plc-1"), compliantBudget("plc-2"))
	validator := validation.NewValidator(source, store, rules.Builtin()).WithClock(fixedNow)

	generated := NewReporter(validator).Run(context.Background(), []string{"plc-1", "plc-2"})

	if generated.Summary.Compliant != 1 || generated.Summary.NonCompliant != 1 {
		t.Fatalf("summary = %+v, want 1 compliant and 1 non-compliant", generated.Summary)
	}
	if !generated.Results[1].HasErrorKind(types.KindUnexpected) {
		t.Errorf("expected unexpected_failure, got %v", generated.Results[1].Errors)
	}
	if !generated.Results[0].IsValid {
		t.Errorf("sibling validation should be unaffected: %v", generated.Results[0].Errors)
	}
}

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		kind types.IssueKind
		want types.ViolationType
	}{
		{types.KindMinimumWage, types.ViolationMinimumWage},
		{types.KindMaximumBenefit, types.ViolationMaximumBenefit},
		{types.KindSpecialNeeds, types.ViolationSpecialNeeds},
		{types.KindRegional, types.ViolationRegional},
		{types.KindDocumentation, types.ViolationDocumentation},
		{types.KindTolerance, types.ViolationGeneral},
		{types.KindAgeGroup, types.ViolationGeneral},
		{types.KindDataNotFound, types.ViolationGeneral},
		{types.KindUnexpected, types.ViolationGeneral},
	}
	for _, tt := range tests {
		if got := classifyKind(tt.kind); got != tt.want {
			t.Errorf("classifyKind(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestEmptyBatch(t *testing.T) {
	validator := newBatchFixture(nil, nil)
	generated := NewReporter(validator).Run(context.Background(), nil)

	if generated.Summary.TotalPlacements != 0 {
		t.Errorf("total = %d, want 0", generated.Summary.TotalPlacements)
	}
	if len(generated.Violations) != 0 {
		t.Errorf("expected no violations, got %v", generated.Violations)
	}
	if len(generated.Recommendations) == 0 {
		t.Error("static recommendations should still be present")
	}
}
