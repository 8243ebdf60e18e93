package service

// store_test.go holds an in-memory implementation of the storage ports so
// the business rules can be tested without a database. IDs are assigned
// sequentially the way AUTO_INCREMENT would.

import (
	"context"

	"github.com/iliyamo/globetrotter/internal/model"
	"github.com/iliyamo/globetrotter/internal/repository"
)

type memStore struct {
	users      map[uint64]bool
	cities     map[uint64]bool
	activities map[uint64]*int64 // id -> avg cost (nil = NULL); presence = exists
	trips      map[uint64]*model.Trip
	stops      []*model.TripStop
	stopActs   []*model.StopActivity
	budgets    map[uint64]int64
	nextID     uint64
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uint64]bool{},
		cities:     map[uint64]bool{},
		activities: map[uint64]*int64{},
		trips:      map[uint64]*model.Trip{},
		budgets:    map[uint64]int64{},
	}
}

func (m *memStore) id() uint64 {
	m.nextID++
	return m.nextID
}

// addActivity registers a reference activity and returns its id.
func (m *memStore) addActivity(cost *int64) uint64 {
	id := m.id()
	m.activities[id] = cost
	return id
}

// ---- ReferenceChecker ----

func (m *memStore) Exists(_ context.Context, kind repository.RefKind, id uint64) (bool, error) {
	switch kind {
	case repository.KindUser:
		return m.users[id], nil
	case repository.KindTrip:
		_, ok := m.trips[id]
		return ok, nil
	case repository.KindCity:
		return m.cities[id], nil
	case repository.KindStop:
		for _, s := range m.stops {
			if s.ID == id {
				return true, nil
			}
		}
		return false, nil
	case repository.KindActivity:
		_, ok := m.activities[id]
		return ok, nil
	}
	return false, nil
}

// ---- TripStore ----

func (m *memStore) Create(_ context.Context, t *model.Trip) error {
	t.ID = m.id()
	cp := *t
	m.trips[t.ID] = &cp
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uint64) (*model.Trip, error) {
	t, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrTripNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memStore) ListByUser(_ context.Context, userID uint64) ([]*model.Trip, error) {
	var out []*model.Trip
	for id := uint64(1); id <= m.nextID; id++ {
		if t, ok := m.trips[id]; ok && t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) Delete(_ context.Context, id uint64) error {
	if _, ok := m.trips[id]; !ok {
		return repository.ErrTripNotFound
	}
	delete(m.trips, id)
	return nil
}

// ---- StopStore ----

func (m *memStore) CreateStop(_ context.Context, s *model.TripStop) error {
	s.ID = m.id()
	cp := *s
	m.stops = append(m.stops, &cp)
	return nil
}

func (m *memStore) ListByTrip(_ context.Context, tripID uint64) ([]*model.TripStop, error) {
	var out []*model.TripStop
	for _, s := range m.stops {
		if s.TripID == tripID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ---- StopActivityStore ----

func (m *memStore) CreateStopActivity(_ context.Context, sa *model.StopActivity) error {
	sa.ID = m.id()
	cp := *sa
	m.stopActs = append(m.stopActs, &cp)
	return nil
}

// ---- BudgetStore ----

func (m *memStore) Upsert(_ context.Context, tripID uint64, estimated int64) (model.Budget, error) {
	m.budgets[tripID] = estimated
	return model.Budget{TripID: tripID, EstimatedBudget: estimated}, nil
}

func (m *memStore) GetByTrip(_ context.Context, tripID uint64) (model.Budget, error) {
	v, ok := m.budgets[tripID]
	if !ok {
		return model.Budget{}, repository.ErrBudgetNotFound
	}
	return model.Budget{TripID: tripID, EstimatedBudget: v}, nil
}

func (m *memStore) ActivityCostsByTrip(_ context.Context, tripID uint64) ([]*int64, error) {
	var out []*int64
	for _, sa := range m.stopActs {
		for _, s := range m.stops {
			if s.ID == sa.StopID && s.TripID == tripID {
				out = append(out, m.activities[sa.ActivityID])
			}
		}
	}
	return out, nil
}

// Adapters: the itinerary service names its stop and stop-activity ports
// Create, which collides with the trip port on a single fake. These small
// wrappers pick the right method.

type stopStoreAdapter struct{ *memStore }

func (a stopStoreAdapter) Create(ctx context.Context, s *model.TripStop) error {
	return a.CreateStop(ctx, s)
}

type stopActivityAdapter struct{ *memStore }

func (a stopActivityAdapter) Create(ctx context.Context, sa *model.StopActivity) error {
	return a.CreateStopActivity(ctx, sa)
}

func (a stopActivityAdapter) ListByStop(_ context.Context, stopID uint64) ([]*model.StopActivity, error) {
	var out []*model.StopActivity
	for _, sa := range a.stopActs {
		if sa.StopID == stopID {
			cp := *sa
			out = append(out, &cp)
		}
	}
	return out, nil
}

// newServices builds the two services over a fresh fake store.
func newServices() (*memStore, *ItineraryService, *BudgetService) {
	m := newMemStore()
	it := NewItineraryService(m, m, stopStoreAdapter{m}, stopActivityAdapter{m})
	bu := NewBudgetService(m, m)
	return m, it, bu
}
