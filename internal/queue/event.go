// Package queue defines message payloads exchanged over the message broker.
package queue

// TripDeletedEvent is published after a trip row has been removed. Deleting
// a trip does not cascade to its stops, stop activities or budget, so the
// event carries the trip id for downstream consumers that sweep up the
// orphaned rows or update analytics.
type TripDeletedEvent struct {
	TripID    uint64 `json:"trip_id"`
	UserID    uint64 `json:"user_id"`
	TripName  string `json:"trip_name"`
	DeletedAt string `json:"deleted_at"`
}
