package domain

import (
	"sort"
	"time"
)

// SortFlights returns a sorted copy of flights according to the sort option.
// Unrecognized or empty options leave the source order unchanged. The input
// slice is never mutated.
func SortFlights(flights []Flight, sortBy SortOption) []Flight {
	result := make([]Flight, len(flights))
	copy(result, flights)

	switch sortBy {
	case SortByPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortByDepartureAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return parseTimestamp(result[i].DepartureTime).Before(parseTimestamp(result[j].DepartureTime))
		})
	case SortByDurationAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DurationMinutes() < result[j].DurationMinutes()
		})
	}

	return result
}

// parseTimestamp parses an ISO-8601 timestamp, returning the zero time for
// unparseable values so sorting stays deterministic on bad upstream data.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
