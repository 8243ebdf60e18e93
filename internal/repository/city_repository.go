package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/globetrotter/internal/model"
)

// CityRepo provides access to the cities reference table. Cities are
// created by administrators and never mutated afterwards.
type CityRepo struct {
	db *sql.DB
}

// NewCityRepo constructs a CityRepo with the provided DB handle.
func NewCityRepo(db *sql.DB) *CityRepo {
	return &CityRepo{db: db}
}

// Create inserts a new city and populates its ID.
func (r *CityRepo) Create(ctx context.Context, c *model.City) error {
	const q = `INSERT INTO cities (name, country, cost_index, popularity_score)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Country, c.CostIndex, c.PopularityScore)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// ListAll returns every city ordered by id.
func (r *CityRepo) ListAll(ctx context.Context) ([]*model.City, error) {
	const q = `SELECT id, name, country, cost_index, popularity_score FROM cities ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.City
	for rows.Next() {
		c := new(model.City)
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.CostIndex, &c.PopularityScore); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
