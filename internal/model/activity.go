package model

// Activity is shared, immutable reference data describing something a
// traveler can do at a stop. AvgCost is nullable in the schema; a nil
// value counts as zero when budgets are aggregated.
type Activity struct {
	ID            uint64 // activities.id
	Name          string // activities.name
	Category      string // activities.category
	AvgCost       *int64 // activities.avg_cost (nullable)
	DurationHours int    // activities.duration_hours
}
