package service

import (
	"context"

	"github.com/iliyamo/globetrotter/internal/model"
	"github.com/iliyamo/globetrotter/internal/repository"
)

// BudgetService derives trip cost estimates from scheduled activities and
// manages the persisted per-trip budget override. The derived estimate and
// the stored value are deliberately independent: computing never writes,
// and upserting never recomputes.
type BudgetService struct {
	refs    ReferenceChecker
	budgets BudgetStore
}

// NewBudgetService wires the service to its storage ports.
func NewBudgetService(refs ReferenceChecker, budgets BudgetStore) *BudgetService {
	return &BudgetService{refs: refs, budgets: budgets}
}

// Compute sums avg_cost over every activity reachable from the trip
// through its stop-activity assignments. A missing cost counts as zero and
// a trip with no scheduled activities estimates to zero. Returns
// repository.ErrTripNotFound when the trip does not resolve.
func (s *BudgetService) Compute(ctx context.Context, tripID uint64) (int64, error) {
	ok, err := s.refs.Exists(ctx, repository.KindTrip, tripID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, repository.ErrTripNotFound
	}
	costs, err := s.budgets.ActivityCostsByTrip(ctx, tripID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range costs {
		if c != nil {
			total += *c
		}
	}
	return total, nil
}

// Stored returns the budget row previously upserted for the trip. Unlike
// Compute it reflects only what a caller declared, never the activity
// costs. Returns repository.ErrTripNotFound for an unknown trip and
// repository.ErrBudgetNotFound when the trip exists but holds no budget.
func (s *BudgetService) Stored(ctx context.Context, tripID uint64) (model.Budget, error) {
	ok, err := s.refs.Exists(ctx, repository.KindTrip, tripID)
	if err != nil {
		return model.Budget{}, err
	}
	if !ok {
		return model.Budget{}, repository.ErrTripNotFound
	}
	return s.budgets.GetByTrip(ctx, tripID)
}

// Upsert stores a caller-declared budget for the trip. The write is a
// single atomic insert-or-update on the budgets primary key, so repeating
// the call with the same value is a no-op and concurrent calls for the
// same trip cannot create a second row. Returns
// repository.ErrTripNotFound when the trip does not resolve.
func (s *BudgetService) Upsert(ctx context.Context, tripID uint64, estimated int64) (model.Budget, error) {
	ok, err := s.refs.Exists(ctx, repository.KindTrip, tripID)
	if err != nil {
		return model.Budget{}, err
	}
	if !ok {
		return model.Budget{}, repository.ErrTripNotFound
	}
	return s.budgets.Upsert(ctx, tripID, estimated)
}
