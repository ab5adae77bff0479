package domain

// Pagination defaults applied when the caller does not provide them.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Stops filter values.
const (
	StopsNonStop = "non-stop"
	StopsOnePlus = "1+"
)

// SortOption selects the ordering of search results.
type SortOption string

// Supported sort options. Any other value leaves the source order unchanged.
const (
	SortByPriceAsc     SortOption = "price_asc"
	SortByDepartureAsc SortOption = "departure_asc"
	SortByDurationAsc  SortOption = "duration_asc"
)

// SearchCriteria is the normalized search request. All fields are independent,
// optional filters; a zero string or nil pointer means "no constraint".
type SearchCriteria struct {
	// Origin and Destination match IATA codes exactly or airport/city names
	// by case-insensitive substring
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`

	// Date is the desired flight date in YYYY-MM-DD format
	Date string `json:"date,omitempty"`

	// MaxPrice and MinPrice bound the price range (inclusive)
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`

	// Stops is "non-stop" or "1+"
	Stops string `json:"stops,omitempty"`

	// MinDuration and MaxDuration bound the flight duration in minutes
	MinDuration *int `json:"minDuration,omitempty"`
	MaxDuration *int `json:"maxDuration,omitempty"`

	// FlightCode matches the flight number or airline name by substring
	FlightCode string `json:"flightCode,omitempty"`

	// Status filters by flight status (see MatchesStatus for the mapping)
	Status string `json:"status,omitempty"`

	// SortBy orders results; unrecognized values keep the source order
	SortBy SortOption `json:"sortBy,omitempty"`

	// Page and Limit control pagination (1-based page)
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// SetDefaults applies pagination defaults to missing or invalid values.
func (c *SearchCriteria) SetDefaults() {
	if c.Page < 1 {
		c.Page = DefaultPage
	}
	if c.Limit < 1 {
		c.Limit = DefaultLimit
	}
}

// Offset returns the zero-based offset of the requested page.
func (c *SearchCriteria) Offset() int {
	return (c.Page - 1) * c.Limit
}

// HasRouteOrCodeFilter reports whether the caller constrained the search by
// route, flight code or status. When false, the live adapter uses its
// reference-hub mix strategy instead of an unfiltered fetch.
func (c *SearchCriteria) HasRouteOrCodeFilter() bool {
	return c.Origin != "" || c.Destination != "" || c.FlightCode != "" || c.Status != ""
}
