// Package placementdata provides placement-data-source and budget-store
// adapters for the validation engine. The memory backend is seedable and
// safe for concurrent reads; the file backend loads a JSON dataset once
// and serves it from memory.
package placementdata

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"

	"foster-budget/core/types"
	"foster-budget/internal/errors"
)

// Dataset is the on-disk JSON document format
type Dataset struct {
	// Placements lists placement contexts keyed by their ids
	Placements []types.Placement `json:"placements"`

	// Budgets lists the stored stipend records
	Budgets []types.Budget `json:"budgets"`
}

// MemorySource is an in-memory PlacementDataSource
type MemorySource struct {
	mu         sync.RWMutex
	placements map[string]types.Placement
}

// NewMemorySource creates a source seeded with the given placements.
// Placements without an id are assigned one.
func NewMemorySource(placements ...types.Placement) *MemorySource {
	s := &MemorySource{placements: make(map[string]types.Placement, len(placements))}
	for _, p := range placements {
		s.Put(p)
	}
	return s
}

// Put adds or replaces a placement, returning its id
func (s *MemorySource) Put(placement types.Placement) string {
	if placement.ID == "" {
		placement.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placements[placement.ID] = placement
	return placement.ID
}

// GetPlacement implements validation.PlacementDataSource
func (s *MemorySource) GetPlacement(ctx context.Context, placementID string) (*types.Placement, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal("placement fetch aborted", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	placement, ok := s.placements[placementID]
	if !ok {
		return nil, errors.NotFound("placement", placementID)
	}
	return &placement, nil
}

// MemoryStore is an in-memory BudgetStore
type MemoryStore struct {
	mu      sync.RWMutex
	budgets map[string]types.Budget
}

// NewMemoryStore creates a store seeded with the given budgets
func NewMemoryStore(budgets ...types.Budget) *MemoryStore {
	s := &MemoryStore{budgets: make(map[string]types.Budget, len(budgets))}
	for _, b := range budgets {
		s.Put(b)
	}
	return s
}

// Put adds or replaces a budget record
func (s *MemoryStore) Put(budget types.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets[budget.PlacementID] = budget
}

// GetBudget implements validation.BudgetStore
func (s *MemoryStore) GetBudget(ctx context.Context, placementID string) (*types.Budget, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Internal("budget fetch aborted", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	budget, ok := s.budgets[placementID]
	if !ok {
		return nil, errors.NotFound("budget", placementID)
	}
	return &budget, nil
}

// LoadFile reads a JSON dataset and returns memory-backed adapters over it
func LoadFile(path string) (*MemorySource, *MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Config("failed to read dataset", err)
	}

	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, nil, errors.Config("failed to decode dataset", err)
	}

	return NewMemorySource(dataset.Placements...), NewMemoryStore(dataset.Budgets...), nil
}
