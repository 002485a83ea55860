// Package report - Violation classification
// Classification works on structured issue kinds, never on error text.
package report

import "foster-budget/core/types"

// violationOrder fixes the rendering order of violation types
var violationOrder = []types.ViolationType{
	types.ViolationMinimumWage,
	types.ViolationMaximumBenefit,
	types.ViolationSpecialNeeds,
	types.ViolationRegional,
	types.ViolationDocumentation,
	types.ViolationGeneral,
}

// violationSeverity is the fixed severity lookup per violation type.
// Statutory bounds are always high.
var violationSeverity = map[types.ViolationType]types.Severity{
	types.ViolationMinimumWage:    types.SeverityHigh,
	types.ViolationMaximumBenefit: types.SeverityHigh,
	types.ViolationSpecialNeeds:   types.SeverityHigh,
	types.ViolationRegional:       types.SeverityMedium,
	types.ViolationDocumentation:  types.SeverityMedium,
	types.ViolationGeneral:        types.SeverityLow,
}

// violationDescription summarizes each violation class
var violationDescription = map[types.ViolationType]string{
	types.ViolationMinimumWage:    "stored monthly amount below the statutory minimum wage",
	types.ViolationMaximumBenefit: "stored monthly amount above the statutory ceiling",
	types.ViolationSpecialNeeds:   "special-needs support owed but missing or short",
	types.ViolationRegional:       "stored monthly amount below the regional floor",
	types.ViolationDocumentation:  "mandatory legal document references incomplete",
	types.ViolationGeneral:        "other budget discrepancies",
}

// classifyKind maps a structured issue kind onto the fixed violation set
func classifyKind(kind types.IssueKind) types.ViolationType {
	switch kind {
	case types.KindMinimumWage:
		return types.ViolationMinimumWage
	case types.KindMaximumBenefit:
		return types.ViolationMaximumBenefit
	case types.KindSpecialNeeds:
		return types.ViolationSpecialNeeds
	case types.KindRegional:
		return types.ViolationRegional
	case types.KindDocumentation:
		return types.ViolationDocumentation
	default:
		// Tolerance, age-group, not-found and unexpected failures all
		// aggregate under the general class.
		return types.ViolationGeneral
	}
}

// classify tallies violations per type across all failed results
func classify(results []*types.ValidationResult) []types.Violation {
	counts := make(map[types.ViolationType]int)
	for _, result := range results {
		if result == nil || result.IsValid {
			continue
		}
		for _, issue := range result.Errors {
			counts[classifyKind(issue.Kind)]++
		}
	}

	var violations []types.Violation
	for _, vtype := range violationOrder {
		count, ok := counts[vtype]
		if !ok {
			continue
		}
		violations = append(violations, types.Violation{
			Type:        vtype,
			Severity:    violationSeverity[vtype],
			Description: violationDescription[vtype],
			Count:       count,
		})
	}
	return violations
}
