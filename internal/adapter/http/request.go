// Package http provides the HTTP handler layer for the flight search API.
// It parses loosely-typed query parameters into search criteria and maps
// service results and errors onto the wire contract.
package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyfare/flight-search-service/internal/domain"
)

// ParseSearchCriteria normalizes raw query parameters into search criteria.
// All fields are optional: absent or unparseable numeric text resolves to
// "no constraint", never to zero and never to an error. Page and limit fall
// back to their defaults.
func ParseSearchCriteria(c echo.Context) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:      strings.TrimSpace(c.QueryParam("origin")),
		Destination: strings.TrimSpace(c.QueryParam("destination")),
		Date:        strings.TrimSpace(c.QueryParam("date")),
		Stops:       strings.TrimSpace(c.QueryParam("stops")),
		FlightCode:  strings.TrimSpace(c.QueryParam("flightCode")),
		Status:      strings.TrimSpace(c.QueryParam("status")),
		SortBy:      domain.SortOption(strings.TrimSpace(c.QueryParam("sortBy"))),
		MaxPrice:    floatParam(c, "maxPrice"),
		MinPrice:    floatParam(c, "minPrice"),
		MinDuration: intParam(c, "minDuration"),
		MaxDuration: intParam(c, "maxDuration"),
		Page:        intValue(c, "page"),
		Limit:       intValue(c, "limit"),
	}

	criteria.SetDefaults()
	return criteria
}

// floatParam parses an optional float query parameter.
// Absent or invalid text yields nil.
func floatParam(c echo.Context, name string) *float64 {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &n
}

// intParam parses an optional integer query parameter.
// Absent or invalid text yields nil.
func intParam(c echo.Context, name string) *int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// intValue parses an integer query parameter, returning zero for absent or
// invalid text so SetDefaults can fill in the default.
func intValue(c echo.Context, name string) int {
	if n := intParam(c, name); n != nil {
		return *n
	}
	return 0
}
