package aviationstack

import (
	"fmt"
	"math"
	"time"

	"github.com/skyfare/flight-search-service/internal/domain"
	"github.com/skyfare/flight-search-service/internal/infrastructure/airports"
)

// normalize maps a batch of provider items to canonical flights.
func normalize(items []apiFlight) []domain.Flight {
	result := make([]domain.Flight, 0, len(items))
	for _, item := range items {
		result = append(result, normalizeFlight(item))
	}
	return result
}

// normalizeFlight maps one raw provider item to a canonical Flight, field by
// field. Missing data is repaired with defaults; an individual item never
// fails the whole request. Price is filled in separately by the caller.
func normalizeFlight(item apiFlight) domain.Flight {
	flightNumber := item.Flight.IATA
	if flightNumber == "" {
		flightNumber = item.Flight.Number
	}
	if flightNumber == "" {
		flightNumber = domain.DefaultFlightNumber
	}

	airline := item.Airline.Name
	if airline == "" {
		airline = domain.DefaultAirline
	}

	aircraft := domain.DefaultAircraft
	if item.Aircraft != nil && item.Aircraft.IATA != "" {
		aircraft = item.Aircraft.IATA
	}

	idCode := item.Flight.IATA
	if idCode == "" {
		idCode = "UK"
	}

	return domain.Flight{
		ID:              fmt.Sprintf("%s-%s", idCode, item.FlightDate),
		FlightNumber:    flightNumber,
		Airline:         airline,
		Aircraft:        aircraft,
		Origin:          endpointName(item.Departure),
		Destination:     endpointName(item.Arrival),
		OriginCity:      endpointCity(item.Departure),
		DestinationCity: endpointCity(item.Arrival),
		DepartureTime:   item.Departure.Scheduled,
		ArrivalTime:     item.Arrival.Scheduled,
		Duration:        scheduledDuration(item.Departure.Scheduled, item.Arrival.Scheduled),
		Status:          item.FlightStatus,
		Gate:            item.Departure.Gate,
		Terminal:        item.Departure.Terminal,
		// The live feed only returns direct flight legs.
		Stops: 0,
	}
}

// endpointName prefers the IATA code, then the airport name.
func endpointName(ep apiEndpoint) string {
	if ep.IATA != "" {
		return ep.IATA
	}
	if ep.Airport != "" {
		return ep.Airport
	}
	return domain.DefaultAirport
}

// endpointCity derives a city name: override table, then timezone string,
// then the raw airport name.
func endpointCity(ep apiEndpoint) string {
	if city := airports.CityName(ep.IATA, ep.Timezone); city != "" {
		return city
	}
	if ep.Airport != "" {
		return ep.Airport
	}
	return domain.DefaultAirport
}

// scheduledDuration computes arrival minus departure, floored to whole
// minutes. Inconsistent schedules can yield a negative count; it is formatted
// as-is, an accepted upstream-data risk.
func scheduledDuration(departure, arrival string) string {
	dep := parseScheduled(departure)
	arr := parseScheduled(arrival)
	minutes := int(math.Floor(arr.Sub(dep).Minutes()))
	return domain.FormatDuration(minutes)
}

// parseScheduled parses the provider's scheduled timestamps
// ("2025-06-01T08:00:00+00:00"); unparseable values collapse to the zero time.
func parseScheduled(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
