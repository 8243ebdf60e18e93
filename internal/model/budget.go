package model

// Budget is the single persisted cost record for a trip. The trip id is
// the primary key, so at most one row can exist per trip. The stored value
// is caller-declared and independent of the derived estimate computed from
// scheduled activities; the two are never reconciled automatically.
type Budget struct {
	TripID          uint64 // budgets.trip_id (primary key)
	EstimatedBudget int64  // budgets.estimated_budget
}
