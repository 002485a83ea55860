// Package validation - External collaborator contracts
package validation

import (
	"context"

	"foster-budget/core/types"
)

// PlacementDataSource returns the placement context for an id.
// Implementations return an errors.TypeNotFound error when the placement
// does not exist; any other error is treated as an unexpected failure.
type PlacementDataSource interface {
	GetPlacement(ctx context.Context, placementID string) (*types.Placement, error)
}

// BudgetStore returns the currently recorded stipend for a placement.
// Missing budgets follow the same NotFound contract as the data source.
type BudgetStore interface {
	GetBudget(ctx context.Context, placementID string) (*types.Budget, error)
}
