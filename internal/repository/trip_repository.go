package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/globetrotter/internal/model"
)

// TripRepo encapsulates all database queries for trips. It depends on a
// sql.DB connection injected at construction so it can be swapped in tests.
type TripRepo struct {
	db *sql.DB
}

// NewTripRepo constructs a TripRepo with the provided DB handle.
func NewTripRepo(db *sql.DB) *TripRepo {
	return &TripRepo{db: db}
}

// Create inserts a new trip. On success the trip's ID field is populated
// with the auto-generated value. IsPublic is stored as given; callers that
// do not set it get the zero value, matching the schema default of false.
func (r *TripRepo) Create(ctx context.Context, t *model.Trip) error {
	const q = `INSERT INTO trips (user_id, name, start_date, end_date, description, is_public)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		t.UserID, t.Name, t.StartDate, t.EndDate, t.Description, t.IsPublic)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a trip by its ID. It returns ErrTripNotFound when no row
// matches.
func (r *TripRepo) GetByID(ctx context.Context, id uint64) (*model.Trip, error) {
	const q = `SELECT id, user_id, name, start_date, end_date, COALESCE(description, ''), is_public
	           FROM trips WHERE id = ?`
	var t model.Trip
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&t.ID, &t.UserID, &t.Name, &t.StartDate, &t.EndDate, &t.Description, &t.IsPublic)
	if err == sql.ErrNoRows {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUser returns all trips owned by the user ordered by id.
func (r *TripRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Trip, error) {
	const q = `SELECT id, user_id, name, start_date, end_date, COALESCE(description, ''), is_public
	           FROM trips WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Trip
	for rows.Next() {
		t := new(model.Trip)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.StartDate, &t.EndDate,
			&t.Description, &t.IsPublic); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the trip row only. Stops, stop activities and the budget
// row are intentionally left in place; see the schema comments for why the
// child tables carry no FK back to trips. Returns ErrTripNotFound when no
// row was affected.
func (r *TripRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTripNotFound
	}
	return nil
}
