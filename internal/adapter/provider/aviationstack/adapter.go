// Package aviationstack implements the live provider backend of the flight
// search service. It translates search criteria into aviationstack API calls,
// maps the provider's heterogeneous JSON into canonical flights, simulates
// the price field the feed does not carry, and applies the filters the
// provider cannot perform natively.
package aviationstack

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/skyfare/flight-search-service/internal/domain"
	"github.com/skyfare/flight-search-service/internal/infrastructure/logger"
)

// Service is the aviationstack-backed implementation of domain.FlightService.
type Service struct {
	client *Client
	hub    string
	log    *logger.Logger
}

// NewService creates the live search backend. referenceHub is the IATA code
// used to seed the no-criteria "healthy mix" dual fetch.
func NewService(client *Client, referenceHub string, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		client: client,
		hub:    strings.ToUpper(referenceHub),
		log:    log.WithBackend("aviationstack"),
	}
}

// SearchFlights resolves criteria against the live provider.
//
// With no route, flight-code or status constraint it fetches a mix of
// departures from and arrivals to the reference hub in parallel. If that
// pair fails it degrades to a single departures-only query, a best-effort
// result rather than an error. Any other provider failure propagates.
func (s *Service) SearchFlights(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	criteria.SetDefaults()

	if !criteria.HasRouteOrCodeFilter() {
		resp, err := s.searchHealthyMix(ctx, criteria)
		if err == nil {
			return resp, nil
		}
		s.log.Warn().Err(err).Msg("parallel hub fetch failed, falling back to departures only")
		return s.searchFiltered(ctx, criteria, s.hub)
	}

	return s.searchFiltered(ctx, criteria, "")
}

// searchFiltered is the single-query path. Criteria the provider supports
// are pushed upstream; the rest are applied locally after mapping. When
// fallbackHub is set the query is pinned to departures from that hub.
func (s *Service) searchFiltered(ctx context.Context, criteria domain.SearchCriteria, fallbackHub string) (*domain.SearchResponse, error) {
	params := s.baseParams(criteria)

	if criteria.FlightCode != "" {
		params.Set("flight_iata", criteria.FlightCode)
	}
	if len(criteria.Origin) == 3 {
		params.Set("dep_iata", strings.ToUpper(criteria.Origin))
	}
	if len(criteria.Destination) == 3 {
		params.Set("arr_iata", strings.ToUpper(criteria.Destination))
	}
	if criteria.Status != "" {
		params.Set("flight_status", criteria.Status)
	}
	if fallbackHub != "" {
		params.Set("dep_iata", fallbackHub)
	}

	resp, err := s.client.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	flights := priceAll(normalize(resp.Data))
	flights = filterLocal(flights, criteria)
	flights = domain.SortFlights(flights, criteria.SortBy)

	return domain.NewSearchResponse(flights, resp.Pagination.Total, criteria.Offset(), criteria.Limit), nil
}

// searchHealthyMix issues two parallel queries, departures from and arrivals
// to the reference hub, each capped at half the page size, and interleaves
// the results departures-first to guarantee an inbound/outbound mix.
// Both calls must succeed; the pair fails as a unit.
func (s *Service) searchHealthyMix(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, error) {
	half := criteria.Limit / 2
	if half < 1 {
		half = 1
	}

	type fetchResult struct {
		resp *apiResponse
		err  error
	}

	run := func(side string) <-chan fetchResult {
		ch := make(chan fetchResult, 1)
		go func() {
			params := s.baseParams(criteria)
			params.Set("limit", strconv.Itoa(half))
			params.Set(side, s.hub)
			resp, err := s.client.fetch(ctx, params)
			ch <- fetchResult{resp: resp, err: err}
		}()
		return ch
	}

	depCh := run("dep_iata")
	arrCh := run("arr_iata")
	dep := <-depCh
	arr := <-arrCh

	if dep.err != nil {
		return nil, dep.err
	}
	if arr.err != nil {
		return nil, arr.err
	}

	combined := interleave(
		priceAll(normalize(dep.resp.Data)),
		priceAll(normalize(arr.resp.Data)),
	)
	combined = domain.SortFlights(combined, criteria.SortBy)

	total := dep.resp.Pagination.Total + arr.resp.Pagination.Total
	return domain.NewSearchResponse(combined, total, criteria.Offset(), criteria.Limit), nil
}

// baseParams builds the pagination parameters sent with every query.
func (s *Service) baseParams(criteria domain.SearchCriteria) url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(criteria.Limit))
	params.Set("offset", strconv.Itoa(criteria.Offset()))
	return params
}

// filterLocal applies the post-filters the provider cannot perform:
// substring matching on non-IATA origin/destination, then the price, stop
// and duration ranges. Filters already pushed upstream are cleared so they
// are not applied twice.
func filterLocal(flights []domain.Flight, criteria domain.SearchCriteria) []domain.Flight {
	local := criteria
	local.FlightCode = ""
	local.Status = ""
	if len(local.Origin) == 3 {
		local.Origin = ""
	}
	if len(local.Destination) == 3 {
		local.Destination = ""
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if local.MatchesFlight(f) {
			result = append(result, f)
		}
	}
	return result
}

// priceAll fills in the simulated price for every mapped flight.
func priceAll(flights []domain.Flight) []domain.Flight {
	for i := range flights {
		flights[i].Price = simulatePrice(flights[i].FlightNumber, flights[i].Duration)
	}
	return flights
}

// interleave merges the two hub query results element by element, departures
// side first: dep[0], arr[0], dep[1], arr[1], ...
func interleave(dep, arr []domain.Flight) []domain.Flight {
	combined := make([]domain.Flight, 0, len(dep)+len(arr))
	for i := 0; i < len(dep) || i < len(arr); i++ {
		if i < len(dep) {
			combined = append(combined, dep[i])
		}
		if i < len(arr) {
			combined = append(combined, arr[i])
		}
	}
	return combined
}

var _ domain.FlightService = (*Service)(nil)
