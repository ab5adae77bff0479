// Package integration provides helpers and integration tests for the flight
// search service. These tests exercise the full HTTP stack: middleware,
// query parsing, the search backend and the response envelope.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/skyfare/flight-search-service/internal/adapter/http"
	"github.com/skyfare/flight-search-service/internal/adapter/http/middleware"
	"github.com/skyfare/flight-search-service/internal/domain"
	"github.com/skyfare/flight-search-service/internal/infrastructure/logger"
)

// TestServer wraps an echo instance with the full middleware chain and
// search routes mounted on the given backend.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer builds a server the way main does, minus the listener.
func NewTestServer(service domain.FlightService) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	log := logger.Nop()
	middleware.Setup(e, log.Logger)

	handler := httpAdapter.NewFlightHandler(service, log)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{Echo: e}
}

// Search issues a GET to the search endpoint with the given query values.
func (ts *TestServer) Search(query url.Values) *httptest.ResponseRecorder {
	target := "/api/v1/flights/search"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return rec
}

// decodeSearch unmarshals a success envelope, failing the test on bad JSON.
func decodeSearch(t *testing.T, rec *httptest.ResponseRecorder) domain.SearchResponse {
	t.Helper()
	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// flightNumbers extracts the flight numbers from a result page in order.
func flightNumbers(resp domain.SearchResponse) []string {
	numbers := make([]string, 0, len(resp.Data))
	for _, f := range resp.Data {
		numbers = append(numbers, f.FlightNumber)
	}
	return numbers
}
