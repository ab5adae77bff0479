// Package fixture provides the static in-memory flight dataset used when no
// live provider credential is configured, and for local testing.
package fixture

import "github.com/skyfare/flight-search-service/internal/domain"

// flights is the fixed dataset. Identical on every call: no randomness, no
// external I/O. Prices here are authoritative, unlike the live path where
// they are simulated.
var flights = []domain.Flight{
	{
		ID:            "1",
		Airline:       "SkyHigh Airways",
		FlightNumber:  "SH101",
		Origin:        "New York (JFK)",
		Destination:   "London (LHR)",
		DepartureTime: "2024-05-20T08:00:00Z",
		ArrivalTime:   "2024-05-20T20:00:00Z",
		Duration:      "7h 00m",
		Price:         450,
		Stops:         0,
		Aircraft:      "Boeing 787",
		Status:        "On Time",
	},
	{
		ID:            "2",
		Airline:       "Oceanic Airlines",
		FlightNumber:  "OA815",
		Origin:        "Sydney (SYD)",
		Destination:   "Los Angeles (LAX)",
		DepartureTime: "2024-05-21T14:30:00Z",
		// Arrives "before" departure in local clock terms; the dataset keeps
		// the raw timestamps, departure <= arrival is not guaranteed.
		ArrivalTime: "2024-05-21T06:00:00Z",
		Duration:    "13h 30m",
		Price:       1200,
		Stops:       0,
		Aircraft:    "Airbus A350",
		Status:      "On Time",
	},
	{
		ID:            "3",
		Airline:       "Global Transit",
		FlightNumber:  "GT303",
		Origin:        "Dubai (DXB)",
		Destination:   "Tokyo (HND)",
		DepartureTime: "2024-05-22T22:00:00Z",
		ArrivalTime:   "2024-05-23T12:00:00Z",
		Duration:      "9h 00m",
		Price:         800,
		Stops:         1,
		Aircraft:      "Boeing 777",
		Status:        "Delayed",
	},
	{
		ID:            "4",
		Airline:       "EuroWings",
		FlightNumber:  "EW456",
		Origin:        "Berlin (BER)",
		Destination:   "Paris (CDG)",
		DepartureTime: "2024-05-20T09:00:00Z",
		ArrivalTime:   "2024-05-20T10:45:00Z",
		Duration:      "1h 45m",
		Price:         120,
		Stops:         0,
		Aircraft:      "Airbus A320",
		Status:        "On Time",
	},
	{
		ID:            "5",
		Airline:       "Liberty Air",
		FlightNumber:  "LA789",
		Origin:        "San Francisco (SFO)",
		Destination:   "New York (JFK)",
		DepartureTime: "2024-05-21T06:00:00Z",
		ArrivalTime:   "2024-05-21T14:30:00Z",
		Duration:      "5h 30m",
		Price:         350,
		Stops:         0,
		Aircraft:      "Boeing 737 MAX",
		Status:        "Cancelled",
	},
}

// Flights returns a copy of the fixture dataset so callers can never mutate
// the shared backing array.
func Flights() []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)
	return result
}
