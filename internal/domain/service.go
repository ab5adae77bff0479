package domain

import "context"

//go:generate mockgen -source=service.go -destination=mock_service.go -package=domain

// FlightService is the single contract both backends implement: the live
// provider adapter and the fixture-backed search engine. Which one backs a
// deployment is decided once at startup and injected; implementations never
// fall back to each other at runtime.
type FlightService interface {
	// SearchFlights resolves the criteria into a filtered, sorted and
	// paginated page of canonical flights.
	SearchFlights(ctx context.Context, criteria SearchCriteria) (*SearchResponse, error)
}
