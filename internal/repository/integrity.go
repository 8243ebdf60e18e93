package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// RefKind names an entity table for reference checks. Using a closed set of
// kinds keeps the table name out of caller control so queries stay static.
type RefKind string

const (
	KindUser     RefKind = "user"
	KindTrip     RefKind = "trip"
	KindCity     RefKind = "city"
	KindStop     RefKind = "stop"
	KindActivity RefKind = "activity"
)

// refTables maps a RefKind to the table holding that entity.
var refTables = map[RefKind]string{
	KindUser:     "users",
	KindTrip:     "trips",
	KindCity:     "cities",
	KindStop:     "trip_stops",
	KindActivity: "activities",
}

// IntegrityRepo performs the read-only checks that run before any insert
// carrying a foreign key or a uniqueness constraint. It has no side
// effects; callers decide what to do with the answer.
type IntegrityRepo struct {
	db *sql.DB
}

// NewIntegrityRepo returns an IntegrityRepo bound to the given database.
func NewIntegrityRepo(db *sql.DB) *IntegrityRepo { return &IntegrityRepo{db: db} }

// Exists reports whether an entity of the given kind exists under id.
func (r *IntegrityRepo) Exists(ctx context.Context, kind RefKind, id uint64) (bool, error) {
	table, ok := refTables[kind]
	if !ok {
		return false, fmt.Errorf("unknown entity kind %q", kind)
	}
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM "+table+" WHERE id = ? LIMIT 1", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EmailTaken reports whether any user already holds the given email. The
// comparison is exact; callers normalize whitespace before calling.
func (r *IntegrityRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE email = ? LIMIT 1", email).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
