// Package report aggregates validation results over a batch of placements.
// Each placement's validation is fully independent, so the batch loop runs
// on a bounded worker pool; results are reassembled in input order so
// reports stay reproducible.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"foster-budget/core/types"
	"foster-budget/core/validation"
)

// DefaultWorkers bounds concurrent validations in a batch run
const DefaultWorkers = 4

var hundred = decimal.NewFromInt(100)

// Reporter runs the validator over a batch and builds a compliance report
type Reporter struct {
	validator *validation.Validator
	workers   int
	logger    *zap.Logger
}

// NewReporter creates a reporter over a validator
func NewReporter(validator *validation.Validator) *Reporter {
	return &Reporter{
		validator: validator,
		workers:   DefaultWorkers,
		logger:    zap.NewNop(),
	}
}

// WithWorkers overrides the worker-pool size
func (r *Reporter) WithWorkers(workers int) *Reporter {
	if workers > 0 {
		r.workers = workers
	}
	return r
}

// WithLogger attaches a logger
func (r *Reporter) WithLogger(logger *zap.Logger) *Reporter {
	r.logger = logger
	return r
}

// Run validates every placement id and aggregates the outcomes. Batch
// completion is guaranteed: one item's failure, slow fetch or panic
// degrades only that item's result.
func (r *Reporter) Run(ctx context.Context, placementIDs []string) *types.ComplianceReport {
	start := time.Now()
	results := make([]*types.ValidationResult, len(placementIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, id := range placementIDs {
		g.Go(func() error {
			results[i] = r.validateIsolated(gctx, id)
			return nil
		})
	}
	// Workers never return errors; failures are embedded in results.
	_ = g.Wait()

	report := r.build(results)
	r.logger.Info("compliance report generated",
		zap.String("report_id", report.ID),
		zap.Int("placements", len(placementIDs)),
		zap.Int("compliant", report.Summary.Compliant),
		zap.String("compliance_rate", report.Summary.ComplianceRate.String()),
		zap.Duration("duration", time.Since(start)))
	return report
}

// validateIsolated converts panics into failed results so sibling
// validations are never aborted
func (r *Reporter) validateIsolated(ctx context.Context, placementID string) (result *types.ValidationResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("validation panicked",
				zap.String("placement_id", placementID),
				zap.Any("panic", rec))
			result = &types.ValidationResult{
				PlacementID: placementID,
				IsValid:     false,
				Errors: []types.Issue{{
					Kind:    types.KindUnexpected,
					Message: fmt.Sprintf("unexpected failure validating placement %s: %v", placementID, rec),
				}},
			}
		}
	}()
	return r.validator.ValidatePlacement(ctx, placementID)
}

func (r *Reporter) build(results []*types.ValidationResult) *types.ComplianceReport {
	summary := summarize(results)
	return &types.ComplianceReport{
		ID:               uuid.NewString(),
		GeneratedAt:      time.Now().UTC(),
		RuleTableVersion: r.validator.Table().Version,
		Summary:          summary,
		Violations:       classify(results),
		Recommendations:  r.systemRecommendations(results, summary),
		Results:          results,
	}
}

func summarize(results []*types.ValidationResult) types.ReportSummary {
	summary := types.ReportSummary{TotalPlacements: len(results)}

	total := decimal.Zero
	for _, result := range results {
		if result.IsValid {
			summary.Compliant++
		} else {
			summary.NonCompliant++
		}
		total = total.Add(result.Calculated.TotalMonthly)
	}
	summary.TotalMonthlyBudget = total

	if summary.TotalPlacements > 0 {
		count := decimal.NewFromInt(int64(summary.TotalPlacements))
		summary.ComplianceRate = decimal.NewFromInt(int64(summary.Compliant)).
			Div(count).Mul(hundred).Round(1)
		summary.AverageMonthlyBudget = total.Div(count).Round(2)
	}
	return summary
}

// minimumWageAlertShare is the batch share of minimum-wage violations
// above which a priority remediation line is emitted
var minimumWageAlertShare = decimal.RequireFromString("0.30")

// systemicReviewRate is the compliance rate below which a systemic review
// is recommended
var systemicReviewRate = decimal.NewFromInt(70)

// systemRecommendations combines static boilerplate with conditional
// batch-level rules
func (r *Reporter) systemRecommendations(results []*types.ValidationResult, summary types.ReportSummary) []string {
	recs := []string{
		"review placement budgets quarterly against the current fiscal-year rule table",
		"recalculate stipends whenever the statutory minimum wage changes",
	}

	if summary.TotalPlacements == 0 {
		return recs
	}

	minimumWageViolations := 0
	documentationViolations := 0
	for _, result := range results {
		if result.HasErrorKind(types.KindMinimumWage) {
			minimumWageViolations++
		}
		if result.HasErrorKind(types.KindDocumentation) {
			documentationViolations++
		}
	}

	share := decimal.NewFromInt(int64(minimumWageViolations)).
		Div(decimal.NewFromInt(int64(summary.TotalPlacements)))
	if share.GreaterThan(minimumWageAlertShare) {
		recs = append(recs,
			"priority: raise every placement below the statutory minimum wage to a compliant stipend")
	}
	if documentationViolations > 0 {
		recs = append(recs,
			"complete missing legal document references before the next audit cycle")
	}
	if summary.ComplianceRate.LessThan(systemicReviewRate) {
		recs = append(recs,
			"schedule a systemic budget review: compliance rate is below 70%")
	}
	return recs
}
