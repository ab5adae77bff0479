// Package usecase contains the search engine: the uniform
// filter/sort/paginate contract applied to an immutable flight dataset.
package usecase

import (
	"context"

	"github.com/skyfare/flight-search-service/internal/domain"
	"github.com/skyfare/flight-search-service/internal/infrastructure/logger"
)

// FixtureSearchService is the fixture-backed implementation of
// domain.FlightService. It searches a fixed in-memory dataset, so every call
// with the same criteria returns the same page. The dataset is injected at
// construction and never mutated; filtering and sorting work on copies.
type FixtureSearchService struct {
	flights []domain.Flight
	log     *logger.Logger
}

// NewFixtureSearchService creates a search service over the given dataset.
func NewFixtureSearchService(flights []domain.Flight, log *logger.Logger) *FixtureSearchService {
	if log == nil {
		log = logger.Nop()
	}
	return &FixtureSearchService{
		flights: flights,
		log:     log.WithBackend("fixture"),
	}
}

// SearchFlights applies, in order: filtering, sorting, pagination.
// No matching results is not an error: the response carries an empty page
// with total 0.
func (s *FixtureSearchService) SearchFlights(_ context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	criteria.SetDefaults()

	filtered := filterFlights(s.flights, criteria)
	sorted := domain.SortFlights(filtered, criteria.SortBy)
	resp := paginate(sorted, criteria)

	s.log.Debug().
		Int("matches", resp.Pagination.Total).
		Int("page", criteria.Page).
		Int("returned", len(resp.Data)).
		Msg("fixture search completed")

	return resp, nil
}

// filterFlights keeps the flights passing every provided criteria filter.
func filterFlights(flights []domain.Flight, criteria domain.SearchCriteria) []domain.Flight {
	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if criteria.MatchesFlight(f) {
			result = append(result, f)
		}
	}
	return result
}

// paginate slices the page [offset, offset+limit) out of the full result set.
// Total always counts the pre-pagination matches.
func paginate(flights []domain.Flight, criteria domain.SearchCriteria) *domain.SearchResponse {
	offset := criteria.Offset()
	limit := criteria.Limit

	var page []domain.Flight
	if offset < len(flights) {
		end := offset + limit
		if end > len(flights) {
			end = len(flights)
		}
		page = flights[offset:end]
	}

	return domain.NewSearchResponse(page, len(flights), offset, limit)
}

var _ domain.FlightService = (*FixtureSearchService)(nil)
