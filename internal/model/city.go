package model

// City is shared, immutable reference data describing a destination.
// Cities are referenced by trip stops but never owned by a trip.
type City struct {
	ID              uint64 // cities.id
	Name            string // cities.name
	Country         string // cities.country
	CostIndex       int    // cities.cost_index
	PopularityScore int    // cities.popularity_score
}
