package aviationstack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-search-service/internal/domain"
	"github.com/skyfare/flight-search-service/internal/infrastructure/logger"
)

// fakeProvider records every query it receives and serves canned responses.
type fakeProvider struct {
	mu      sync.Mutex
	calls   []url.Values
	handler func(q url.Values, w http.ResponseWriter)
}

func (p *fakeProvider) serve(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.calls = append(p.calls, r.URL.Query())
	p.mu.Unlock()
	p.handler(r.URL.Query(), w)
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func (p *fakeProvider) callWith(key, value string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, q := range p.calls {
		if q.Get(key) == value {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func liveItem(flightIATA, depIATA, arrIATA string) apiFlight {
	return apiFlight{
		FlightDate:   "2025-06-01",
		FlightStatus: "active",
		Departure: apiEndpoint{
			IATA:      depIATA,
			Timezone:  "Australia/Sydney",
			Scheduled: "2025-06-01T08:00:00+00:00",
		},
		Arrival: apiEndpoint{
			IATA:      arrIATA,
			Timezone:  "Australia/Melbourne",
			Scheduled: "2025-06-01T09:35:00+00:00",
		},
		Airline: apiAirline{Name: "Qantas", IATA: "QF"},
		Flight:  apiFlightRef{IATA: flightIATA},
	}
}

func newTestService(t *testing.T, provider *fakeProvider) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(provider.serve))
	t.Cleanup(srv.Close)
	client := NewClient(srv.Client(), srv.URL, "test-key")
	return NewService(client, "SYD", logger.Nop())
}

func TestSearchFlights_IATACodesPushedUpstream(t *testing.T) {
	provider := &fakeProvider{handler: func(q url.Values, w http.ResponseWriter) {
		writeJSON(w, apiResponse{
			Pagination: apiPagination{Total: 1},
			Data:       []apiFlight{liveItem("QF409", "SYD", "MEL")},
		})
	}}
	svc := newTestService(t, provider)

	resp, err := svc.SearchFlights(context.Background(), domain.SearchCriteria{
		Origin:      "syd",
		Destination: "MEL",
		Status:      "active",
		FlightCode:  "QF409",
	})
	require.NoError(t, err)

	require.Equal(t, 1, provider.callCount())
	q := provider.calls[0]
	assert.Equal(t, "SYD", q.Get("dep_iata"), "3-char origin must be sent upper-cased")
	assert.Equal(t, "MEL", q.Get("arr_iata"))
	assert.Equal(t, "active", q.Get("flight_status"))
	assert.Equal(t, "QF409", q.Get("flight_iata"))
	assert.Equal(t, "test-key", q.Get("access_key"))
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "0", q.Get("offset"))

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "QF409-2025-06-01", resp.Data[0].ID)
	assert.Equal(t, 1, resp.Pagination.Total)
	assert.Positive(t, resp.Data[0].Price, "price must be simulated")
}

func TestSearchFlights_HealthyMixInterleavesDeparturesFirst(t *testing.T) {
	provider := &fakeProvider{handler: func(q url.Values, w http.ResponseWriter) {
		switch {
		case q.Get("dep_iata") == "SYD":
			writeJSON(w, apiResponse{
				Pagination: apiPagination{Total: 40},
				Data:       []apiFlight{liveItem("D1", "SYD", "MEL"), liveItem("D2", "SYD", "BNE")},
			})
		case q.Get("arr_iata") == "SYD":
			writeJSON(w, apiResponse{
				Pagination: apiPagination{Total: 30},
				Data:       []apiFlight{liveItem("A1", "MEL", "SYD")},
			})
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}}
	svc := newTestService(t, provider)

	resp, err := svc.SearchFlights(context.Background(), domain.SearchCriteria{})
	require.NoError(t, err)

	assert.Equal(t, 2, provider.callCount(), "default criteria must issue exactly two provider calls")
	assert.True(t, provider.callWith("dep_iata", "SYD"))
	assert.True(t, provider.callWith("arr_iata", "SYD"))
	assert.True(t, provider.callWith("limit", "5"), "each side is capped at half the page size")

	require.Len(t, resp.Data, 3)
	assert.Equal(t, "D1-2025-06-01", resp.Data[0].ID)
	assert.Equal(t, "A1-2025-06-01", resp.Data[1].ID)
	assert.Equal(t, "D2-2025-06-01", resp.Data[2].ID)
	assert.Equal(t, 70, resp.Pagination.Total, "total is the sum of both sides")
}

func TestSearchFlights_HealthyMixFallsBackToSingleFetch(t *testing.T) {
	provider := &fakeProvider{handler: func(q url.Values, w http.ResponseWriter) {
		if q.Get("arr_iata") == "SYD" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, apiResponse{
			Pagination: apiPagination{Total: 12},
			Data:       []apiFlight{liveItem("D1", "SYD", "MEL")},
		})
	}}
	svc := newTestService(t, provider)

	resp, err := svc.SearchFlights(context.Background(), domain.SearchCriteria{})
	require.NoError(t, err, "a failed pair degrades to a best-effort result, not an error")

	assert.Equal(t, 3, provider.callCount(), "pair plus one departures-only fallback")
	assert.True(t, provider.callWith("limit", "10"), "fallback query uses the full page size")
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 12, resp.Pagination.Total)
}

func TestSearchFlights_LocalSubstringFilterForFreeTextOrigin(t *testing.T) {
	provider := &fakeProvider{handler: func(q url.Values, w http.ResponseWriter) {
		writeJSON(w, apiResponse{
			Pagination: apiPagination{Total: 2},
			Data: []apiFlight{
				liveItem("QF409", "SYD", "MEL"),
				liveItem("VA817", "MEL", "BNE"),
			},
		})
	}}
	svc := newTestService(t, provider)

	resp, err := svc.SearchFlights(context.Background(), domain.SearchCriteria{Origin: "sydney"})
	require.NoError(t, err)

	require.Equal(t, 1, provider.callCount())
	assert.Empty(t, provider.calls[0].Get("dep_iata"), "free-text origin is not pushed upstream")

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "QF409-2025-06-01", resp.Data[0].ID)
	assert.Equal(t, 2, resp.Pagination.Total, "total reflects the provider count, not local filtering")
}

func TestSearchFlights_PriceAndStopFiltersAppliedLocally(t *testing.T) {
	provider := &fakeProvider{handler: func(q url.Values, w http.ResponseWriter) {
		writeJSON(w, apiResponse{
			Pagination: apiPagination{Total: 1},
			Data:       []apiFlight{liveItem("QF409", "SYD", "MEL")},
		})
	}}
	svc := newTestService(t, provider)

	maxPrice := 1.0 // below any simulated price
	resp, err := svc.SearchFlights(context.Background(), domain.SearchCriteria{
		Origin:   "SYD",
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
}

func TestSearchFlights_ErrorPayloadSurfacesAsProviderFailure(t *testing.T) {
	provider := &fakeProvider{handler: func(q url.Values, w http.ResponseWriter) {
		writeJSON(w, apiResponse{Error: &apiError{Code: "usage_limit_reached", Info: "monthly quota exceeded"}})
	}}
	svc := newTestService(t, provider)

	_, err := svc.SearchFlights(context.Background(), domain.SearchCriteria{Origin: "SYD"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
	assert.Contains(t, err.Error(), "monthly quota exceeded")
}

func TestSearchFlights_Non2xxSurfacesAsProviderFailure(t *testing.T) {
	provider := &fakeProvider{handler: func(q url.Values, w http.ResponseWriter) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}}
	svc := newTestService(t, provider)

	_, err := svc.SearchFlights(context.Background(), domain.SearchCriteria{Origin: "SYD"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
}

func TestSearchFlights_SortAppliedToMappedResults(t *testing.T) {
	provider := &fakeProvider{handler: func(q url.Values, w http.ResponseWriter) {
		long := liveItem("ZZ999", "SYD", "LAX")
		long.Arrival.Scheduled = "2025-06-01T21:00:00+00:00" // 13h leg, expensive
		writeJSON(w, apiResponse{
			Pagination: apiPagination{Total: 2},
			Data:       []apiFlight{long, liveItem("QF409", "SYD", "MEL")},
		})
	}}
	svc := newTestService(t, provider)

	resp, err := svc.SearchFlights(context.Background(), domain.SearchCriteria{
		Origin: "SYD",
		SortBy: domain.SortByPriceAsc,
	})
	require.NoError(t, err)

	require.Len(t, resp.Data, 2)
	assert.LessOrEqual(t, resp.Data[0].Price, resp.Data[1].Price)
}
