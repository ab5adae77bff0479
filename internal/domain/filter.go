package domain

import "strings"

// statusAliases maps raw provider status values to the human labels used by
// the canonical dataset. Values outside the map match literally.
var statusAliases = map[string]string{
	"active":    "On Time",
	"scheduled": "On Time",
	"landed":    "On Time",
	"cancelled": "Cancelled",
}

// MatchesFlight reports whether a flight passes every provided filter.
// Absent criteria fields match everything.
func (c *SearchCriteria) MatchesFlight(f Flight) bool {
	return matchesPlace(c.Origin, f.Origin, f.OriginCity) &&
		matchesPlace(c.Destination, f.Destination, f.DestinationCity) &&
		c.MatchesPrice(f.Price) &&
		c.MatchesDuration(f.DurationMinutes()) &&
		c.MatchesStops(f.Stops) &&
		c.matchesFlightCode(f) &&
		c.MatchesStatus(f.Status)
}

// matchesPlace matches a criteria value against an airport name and an
// optional city name by case-insensitive substring.
func matchesPlace(want, airport, city string) bool {
	if want == "" {
		return true
	}
	want = strings.ToLower(want)
	if strings.Contains(strings.ToLower(airport), want) {
		return true
	}
	return city != "" && strings.Contains(strings.ToLower(city), want)
}

// MatchesPrice checks the inclusive price bounds, each only when provided.
func (c *SearchCriteria) MatchesPrice(price float64) bool {
	if c.MaxPrice != nil && price > *c.MaxPrice {
		return false
	}
	if c.MinPrice != nil && price < *c.MinPrice {
		return false
	}
	return true
}

// MatchesDuration checks the inclusive duration bounds in minutes.
func (c *SearchCriteria) MatchesDuration(minutes int) bool {
	if c.MinDuration != nil && minutes < *c.MinDuration {
		return false
	}
	if c.MaxDuration != nil && minutes > *c.MaxDuration {
		return false
	}
	return true
}

// MatchesStops checks the stop-count filter. Unrecognized values match all.
func (c *SearchCriteria) MatchesStops(stops int) bool {
	switch c.Stops {
	case StopsNonStop:
		return stops == 0
	case StopsOnePlus:
		return stops >= 1
	default:
		return true
	}
}

// matchesFlightCode matches the flight number or the airline name.
func (c *SearchCriteria) matchesFlightCode(f Flight) bool {
	if c.FlightCode == "" {
		return true
	}
	code := strings.ToLower(c.FlightCode)
	return strings.Contains(strings.ToLower(f.FlightNumber), code) ||
		strings.Contains(strings.ToLower(f.Airline), code)
}

// MatchesStatus resolves provider status aliases to canonical labels, then
// matches by case-insensitive substring.
func (c *SearchCriteria) MatchesStatus(status string) bool {
	if c.Status == "" {
		return true
	}
	want := c.Status
	if alias, ok := statusAliases[strings.ToLower(want)]; ok {
		want = alias
	}
	return strings.Contains(strings.ToLower(status), strings.ToLower(want))
}
