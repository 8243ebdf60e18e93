// Package service holds the business rules of the itinerary planner:
// referential-integrity checks before inserts, stop ordering semantics and
// budget aggregation. Services depend on small storage ports instead of
// concrete repositories so the rules can be exercised against in-memory
// fakes in tests; the repository package satisfies every port.
package service

import (
	"context"

	"github.com/iliyamo/globetrotter/internal/model"
	"github.com/iliyamo/globetrotter/internal/repository"
)

// ReferenceChecker answers existence questions about entities before an
// insert that references them is attempted. Implemented by
// repository.IntegrityRepo.
type ReferenceChecker interface {
	Exists(ctx context.Context, kind repository.RefKind, id uint64) (bool, error)
}

// TripStore is the storage port for trips.
type TripStore interface {
	Create(ctx context.Context, t *model.Trip) error
	GetByID(ctx context.Context, id uint64) (*model.Trip, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Trip, error)
	Delete(ctx context.Context, id uint64) error
}

// StopStore is the storage port for trip stops.
type StopStore interface {
	Create(ctx context.Context, s *model.TripStop) error
	ListByTrip(ctx context.Context, tripID uint64) ([]*model.TripStop, error)
}

// StopActivityStore is the storage port for stop-activity assignments.
type StopActivityStore interface {
	Create(ctx context.Context, sa *model.StopActivity) error
	ListByStop(ctx context.Context, stopID uint64) ([]*model.StopActivity, error)
}

// BudgetStore is the storage port for stored budgets and the read-side
// cost join used by estimation. Upsert must be atomic on the trip row;
// GetByTrip returns repository.ErrBudgetNotFound when no row exists.
type BudgetStore interface {
	Upsert(ctx context.Context, tripID uint64, estimated int64) (model.Budget, error)
	GetByTrip(ctx context.Context, tripID uint64) (model.Budget, error)
	ActivityCostsByTrip(ctx context.Context, tripID uint64) ([]*int64, error)
}
