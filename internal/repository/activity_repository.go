package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/globetrotter/internal/model"
)

// ActivityRepo provides access to the activities reference table. The
// avg_cost column is nullable; a NULL cost counts as zero during budget
// aggregation.
type ActivityRepo struct {
	db *sql.DB
}

// NewActivityRepo constructs an ActivityRepo with the provided DB handle.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Create inserts a new activity and populates its ID.
func (r *ActivityRepo) Create(ctx context.Context, a *model.Activity) error {
	const q = `INSERT INTO activities (name, category, avg_cost, duration_hours)
	           VALUES (?, ?, ?, ?)`
	var cost sql.NullInt64
	if a.AvgCost != nil {
		cost = sql.NullInt64{Int64: *a.AvgCost, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, q, a.Name, a.Category, cost, a.DurationHours)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// ListAll returns every activity ordered by id.
func (r *ActivityRepo) ListAll(ctx context.Context) ([]*model.Activity, error) {
	const q = `SELECT id, name, category, avg_cost, duration_hours FROM activities ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Activity
	for rows.Next() {
		a := new(model.Activity)
		var cost sql.NullInt64
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &cost, &a.DurationHours); err != nil {
			return nil, err
		}
		if cost.Valid {
			v := cost.Int64
			a.AvgCost = &v
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
