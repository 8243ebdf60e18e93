package model

import "time"

// Trip is a user-owned itinerary spanning a date range, composed of
// ordered stops. A trip owns its stops and at most one budget row.
//
// Fields:
//
//	ID          – primary key identifier.
//	UserID      – owner of the trip (users.id).
//	Name        – trip title.
//	StartDate   – first day of the trip.
//	EndDate     – last day of the trip.
//	Description – optional free-form notes.
//	IsPublic    – whether the trip is visible to other users.
type Trip struct {
	ID          uint64    // trips.id
	UserID      uint64    // trips.user_id
	Name        string    // trips.name
	StartDate   time.Time // trips.start_date
	EndDate     time.Time // trips.end_date
	Description string    // trips.description (may be empty)
	IsPublic    bool      // trips.is_public
}
