package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/globetrotter/internal/model"
)

// StopActivityRepo provides access to the stop_activities link table. Each
// row assigns one reference activity to one trip stop on a specific date.
type StopActivityRepo struct {
	db *sql.DB
}

// NewStopActivityRepo constructs a StopActivityRepo with the provided DB handle.
func NewStopActivityRepo(db *sql.DB) *StopActivityRepo {
	return &StopActivityRepo{db: db}
}

// Create inserts a new stop-activity link and populates its ID. Parent
// existence is the caller's responsibility.
func (r *StopActivityRepo) Create(ctx context.Context, sa *model.StopActivity) error {
	const q = `INSERT INTO stop_activities (stop_id, activity_id, scheduled_date)
	           VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, sa.StopID, sa.ActivityID, sa.ScheduledDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	sa.ID = uint64(id)
	return nil
}

// ListByStop returns all activity assignments for a stop in insertion order.
func (r *StopActivityRepo) ListByStop(ctx context.Context, stopID uint64) ([]*model.StopActivity, error) {
	const q = `SELECT id, stop_id, activity_id, scheduled_date
	           FROM stop_activities WHERE stop_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, stopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.StopActivity
	for rows.Next() {
		sa := new(model.StopActivity)
		if err := rows.Scan(&sa.ID, &sa.StopID, &sa.ActivityID, &sa.ScheduledDate); err != nil {
			return nil, err
		}
		out = append(out, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
