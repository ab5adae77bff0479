// Package domain contains the core business entities and rules for the flight
// search system. These entities are source-agnostic: both the live provider
// adapter and the fixture dataset produce the same canonical Flight shape.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Flight is the canonical flight record returned to callers regardless of
// which data source produced it. Every non-optional field is always populated;
// adapters substitute defaults rather than propagate missing data.
type Flight struct {
	// ID is unique per search result. Live results derive it from the
	// provider flight code and date; fixtures carry a fixed identifier.
	ID string `json:"id"`

	// FlightNumber is the airline flight code (e.g., "SH101")
	FlightNumber string `json:"flightNumber"`

	// Airline is the operating airline's display name
	Airline string `json:"airline"`

	// Origin and Destination may be IATA codes or free-text airport names
	// depending on the source
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// OriginCity and DestinationCity are optional human-readable city names
	OriginCity      string `json:"originCity,omitempty"`
	DestinationCity string `json:"destinationCity,omitempty"`

	// DepartureTime and ArrivalTime are ISO-8601 timestamps. Upstream data
	// does not guarantee departure <= arrival.
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`

	// Duration is a human string of the form "<H>h <M>m"
	Duration string `json:"duration"`

	// Price is authoritative for fixtures and simulated for live results
	Price float64 `json:"price"`

	// Stops is the number of layovers (0 = direct)
	Stops int `json:"stops"`

	// Aircraft is the aircraft model, defaulted when the source omits it
	Aircraft string `json:"aircraft"`

	// Status is a human label ("On Time", "Delayed", "Cancelled", or a
	// provider-specific string); no enumeration is enforced for live data
	Status string `json:"status"`

	// Gate and Terminal are optional
	Gate     string `json:"gate,omitempty"`
	Terminal string `json:"terminal,omitempty"`
}

// Default values substituted by adapters when the source omits a field.
const (
	DefaultFlightNumber = "Unknown"
	DefaultAirline      = "Unknown Airline"
	DefaultAirport      = "Unknown"
	DefaultAircraft     = "Boeing 737"
)

// FormatDuration formats a minute count as "<H>h <M>m". Negative inputs are
// formatted from the raw minute count without correction; inconsistent
// upstream schedules are an accepted data risk, not something we repair.
func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// ParseDurationMinutes parses a duration string like "7h 30m", "13h 00m" or
// "45m" into total minutes. Unparseable tokens contribute zero.
func ParseDurationMinutes(duration string) int {
	total := 0
	for _, part := range strings.Fields(duration) {
		switch {
		case strings.Contains(part, "h"):
			n, _ := strconv.Atoi(strings.TrimSuffix(part, "h"))
			total += n * 60
		case strings.Contains(part, "m"):
			n, _ := strconv.Atoi(strings.TrimSuffix(part, "m"))
			total += n
		}
	}
	return total
}

// DurationMinutes returns the flight's duration in minutes, the canonical
// internal representation for comparisons.
func (f *Flight) DurationMinutes() int {
	return ParseDurationMinutes(f.Duration)
}
