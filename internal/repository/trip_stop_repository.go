package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/globetrotter/internal/model"
)

// TripStopRepo provides access to the trip_stops table. Stops belong to
// exactly one trip and reference one city. The stop_order column is stored
// verbatim; the repository never renumbers or deduplicates orders.
type TripStopRepo struct {
	db *sql.DB
}

// NewTripStopRepo constructs a TripStopRepo with the provided DB handle.
func NewTripStopRepo(db *sql.DB) *TripStopRepo {
	return &TripStopRepo{db: db}
}

// Create inserts a new stop and populates its ID. Parent existence is the
// caller's responsibility (checked through IntegrityRepo before insert).
func (r *TripStopRepo) Create(ctx context.Context, s *model.TripStop) error {
	const q = `INSERT INTO trip_stops (trip_id, city_id, start_date, end_date, stop_order)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.TripID, s.CityID, s.StartDate, s.EndDate, s.StopOrder)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListByTrip returns the trip's stops in insertion (id) order. Display
// ordering by stop_order is a domain rule owned by the itinerary service,
// which sorts stably so equal orders keep this insertion order.
func (r *TripStopRepo) ListByTrip(ctx context.Context, tripID uint64) ([]*model.TripStop, error) {
	const q = `SELECT id, trip_id, city_id, start_date, end_date, stop_order
	           FROM trip_stops WHERE trip_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.TripStop
	for rows.Next() {
		s := new(model.TripStop)
		if err := rows.Scan(&s.ID, &s.TripID, &s.CityID, &s.StartDate, &s.EndDate, &s.StopOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
