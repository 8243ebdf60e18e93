package model

import "time"

// TripStop is a visit to one city within a trip, bounded by its own date
// range and an explicit display order. StopOrder is a caller-supplied sort
// key; duplicates are permitted and ties are resolved by insertion order.
//
// Fields:
//
//	ID        – primary key identifier.
//	TripID    – trip this stop belongs to.
//	CityID    – city being visited (reference data).
//	StartDate – first day at this stop.
//	EndDate   – last day at this stop.
//	StopOrder – display position within the trip.
type TripStop struct {
	ID        uint64    // trip_stops.id
	TripID    uint64    // trip_stops.trip_id
	CityID    uint64    // trip_stops.city_id
	StartDate time.Time // trip_stops.start_date
	EndDate   time.Time // trip_stops.end_date
	StopOrder int       // trip_stops.stop_order
}

// StopActivity assigns one reference activity to one trip stop on a
// specific date. The scheduled date is not validated against the stop's
// date range.
type StopActivity struct {
	ID            uint64    // stop_activities.id
	StopID        uint64    // stop_activities.stop_id
	ActivityID    uint64    // stop_activities.activity_id
	ScheduledDate time.Time // stop_activities.scheduled_date
}
