package service

import (
	"context"
	"sort"
	"time"

	"github.com/iliyamo/globetrotter/internal/model"
	"github.com/iliyamo/globetrotter/internal/repository"
)

// ItineraryService owns the composition of a trip: creating trips for
// existing users, adding city stops with an explicit display order and
// assigning activities to stops. Every insert that carries a foreign key
// verifies its parents through the ReferenceChecker first, so a failed
// resolution never leaves a partial write behind.
type ItineraryService struct {
	refs  ReferenceChecker
	trips TripStore
	stops StopStore
	acts  StopActivityStore
}

// NewItineraryService wires the service to its storage ports.
func NewItineraryService(refs ReferenceChecker, trips TripStore, stops StopStore, acts StopActivityStore) *ItineraryService {
	return &ItineraryService{refs: refs, trips: trips, stops: stops, acts: acts}
}

// CreateTrip creates a trip for an existing owner. New trips are private
// until the owner publishes them. Returns repository.ErrUserNotFound when
// the owner does not resolve.
func (s *ItineraryService) CreateTrip(ctx context.Context, ownerID uint64, name string, start, end time.Time, description string) (*model.Trip, error) {
	ok, err := s.refs.Exists(ctx, repository.KindUser, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	t := &model.Trip{
		UserID:      ownerID,
		Name:        name,
		StartDate:   start,
		EndDate:     end,
		Description: description,
		IsPublic:    false,
	}
	if err := s.trips.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTripsByUser returns all trips owned by the user.
func (s *ItineraryService) ListTripsByUser(ctx context.Context, userID uint64) ([]*model.Trip, error) {
	return s.trips.ListByUser(ctx, userID)
}

// DeleteTrip removes the trip row and returns the trip as it was before
// deletion. Stops, stop activities and the stored budget are left behind;
// downstream cleanup is driven by the trip.deleted event the caller
// publishes after a successful delete.
func (s *ItineraryService) DeleteTrip(ctx context.Context, tripID uint64) (*model.Trip, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := s.trips.Delete(ctx, tripID); err != nil {
		return nil, err
	}
	return t, nil
}

// AddStop appends a city visit to a trip. The order value is used verbatim
// as a sort key: no renumbering, no uniqueness requirement. Returns
// repository.ErrTripNotFound or repository.ErrCityNotFound when a parent
// does not resolve.
func (s *ItineraryService) AddStop(ctx context.Context, tripID, cityID uint64, start, end time.Time, order int) (*model.TripStop, error) {
	ok, err := s.refs.Exists(ctx, repository.KindTrip, tripID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrTripNotFound
	}
	ok, err = s.refs.Exists(ctx, repository.KindCity, cityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrCityNotFound
	}
	st := &model.TripStop{
		TripID:    tripID,
		CityID:    cityID,
		StartDate: start,
		EndDate:   end,
		StopOrder: order,
	}
	if err := s.stops.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// ListStops returns a trip's stops sorted ascending by stop_order. The
// store hands rows back in insertion order and the sort is stable, so
// equal order values keep their insertion sequence. An unknown trip yields
// an empty list, not an error.
func (s *ItineraryService) ListStops(ctx context.Context, tripID uint64) ([]*model.TripStop, error) {
	stops, err := s.stops.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].StopOrder < stops[j].StopOrder
	})
	return stops, nil
}

// ListStopActivities returns a stop's scheduled activities in insertion
// order. As with ListStops, an unknown stop yields an empty list.
func (s *ItineraryService) ListStopActivities(ctx context.Context, stopID uint64) ([]*model.StopActivity, error) {
	return s.acts.ListByStop(ctx, stopID)
}

// AssignActivity schedules a reference activity at a stop. The scheduled
// date is stored as given and is not checked against the stop's date
// range. Returns repository.ErrStopNotFound or
// repository.ErrActivityNotFound when a parent does not resolve.
func (s *ItineraryService) AssignActivity(ctx context.Context, stopID, activityID uint64, scheduled time.Time) (*model.StopActivity, error) {
	ok, err := s.refs.Exists(ctx, repository.KindStop, stopID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrStopNotFound
	}
	ok, err = s.refs.Exists(ctx, repository.KindActivity, activityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrActivityNotFound
	}
	sa := &model.StopActivity{
		StopID:        stopID,
		ActivityID:    activityID,
		ScheduledDate: scheduled,
	}
	if err := s.acts.Create(ctx, sa); err != nil {
		return nil, err
	}
	return sa, nil
}
