package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/globetrotter/internal/model"
)

// BudgetRepo provides access to the budgets table and the read-side join
// that feeds budget estimation. The budgets primary key is the trip id, so
// the table can never hold more than one row per trip.
type BudgetRepo struct {
	db *sql.DB
}

// NewBudgetRepo constructs a BudgetRepo with the provided DB handle.
func NewBudgetRepo(db *sql.DB) *BudgetRepo {
	return &BudgetRepo{db: db}
}

// Upsert stores the caller-declared budget for a trip as a single atomic
// statement. Concurrent upserts for the same trip serialize on the primary
// key row: the insert either succeeds or turns into an update, so two
// racing calls can never produce two rows or a torn value. Last write wins.
func (r *BudgetRepo) Upsert(ctx context.Context, tripID uint64, estimated int64) (model.Budget, error) {
	const q = `INSERT INTO budgets (trip_id, estimated_budget) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE estimated_budget = VALUES(estimated_budget)`
	if _, err := r.db.ExecContext(ctx, q, tripID, estimated); err != nil {
		return model.Budget{}, err
	}
	return model.Budget{TripID: tripID, EstimatedBudget: estimated}, nil
}

// GetByTrip fetches the stored budget row for a trip. It returns
// ErrBudgetNotFound when no budget has been stored yet.
func (r *BudgetRepo) GetByTrip(ctx context.Context, tripID uint64) (model.Budget, error) {
	var b model.Budget
	err := r.db.QueryRowContext(ctx,
		`SELECT trip_id, estimated_budget FROM budgets WHERE trip_id = ?`,
		tripID).Scan(&b.TripID, &b.EstimatedBudget)
	if err == sql.ErrNoRows {
		return model.Budget{}, ErrBudgetNotFound
	}
	return b, err
}

// ActivityCostsByTrip returns the avg_cost of every activity scheduled
// anywhere on the trip, one element per stop_activities row. NULL costs
// come back as nil pointers; summation and the null-as-zero rule live in
// the budget service.
func (r *BudgetRepo) ActivityCostsByTrip(ctx context.Context, tripID uint64) ([]*int64, error) {
	const q = `SELECT a.avg_cost
	           FROM stop_activities sa
	           JOIN trip_stops ts ON ts.id = sa.stop_id
	           JOIN activities a ON a.id = sa.activity_id
	           WHERE ts.trip_id = ?`
	rows, err := r.db.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*int64
	for rows.Next() {
		var cost sql.NullInt64
		if err := rows.Scan(&cost); err != nil {
			return nil, err
		}
		if cost.Valid {
			v := cost.Int64
			out = append(out, &v)
		} else {
			out = append(out, nil)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
