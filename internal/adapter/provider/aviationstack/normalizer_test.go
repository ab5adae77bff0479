package aviationstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleItem() apiFlight {
	return apiFlight{
		FlightDate:   "2025-06-01",
		FlightStatus: "active",
		Departure: apiEndpoint{
			Airport:   "Sydney Kingsford Smith",
			Timezone:  "Australia/Sydney",
			IATA:      "SYD",
			Terminal:  "1",
			Gate:      "24",
			Scheduled: "2025-06-01T08:00:00+00:00",
		},
		Arrival: apiEndpoint{
			Airport:   "Melbourne Tullamarine",
			Timezone:  "Australia/Melbourne",
			IATA:      "MEL",
			Scheduled: "2025-06-01T09:35:00+00:00",
		},
		Airline:  apiAirline{Name: "Qantas", IATA: "QF"},
		Flight:   apiFlightRef{Number: "409", IATA: "QF409"},
		Aircraft: &apiAircraft{IATA: "B738"},
	}
}

func TestNormalizeFlight_FullItem(t *testing.T) {
	f := normalizeFlight(sampleItem())

	assert.Equal(t, "QF409-2025-06-01", f.ID)
	assert.Equal(t, "QF409", f.FlightNumber)
	assert.Equal(t, "Qantas", f.Airline)
	assert.Equal(t, "B738", f.Aircraft)
	assert.Equal(t, "SYD", f.Origin)
	assert.Equal(t, "MEL", f.Destination)
	assert.Equal(t, "Sydney", f.OriginCity)
	assert.Equal(t, "Melbourne", f.DestinationCity)
	assert.Equal(t, "2025-06-01T08:00:00+00:00", f.DepartureTime)
	assert.Equal(t, "1h 35m", f.Duration)
	assert.Equal(t, "active", f.Status)
	assert.Equal(t, "24", f.Gate)
	assert.Equal(t, "1", f.Terminal)
	assert.Equal(t, 0, f.Stops)
}

func TestNormalizeFlight_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*apiFlight)
		check  func(*testing.T, apiFlight)
	}{
		{
			name:   "missing aircraft defaults to Boeing 737",
			modify: func(item *apiFlight) { item.Aircraft = nil },
			check: func(t *testing.T, item apiFlight) {
				assert.Equal(t, "Boeing 737", normalizeFlight(item).Aircraft)
			},
		},
		{
			name:   "empty aircraft iata defaults to Boeing 737",
			modify: func(item *apiFlight) { item.Aircraft = &apiAircraft{} },
			check: func(t *testing.T, item apiFlight) {
				assert.Equal(t, "Boeing 737", normalizeFlight(item).Aircraft)
			},
		},
		{
			name:   "missing flight iata falls back to number",
			modify: func(item *apiFlight) { item.Flight.IATA = "" },
			check: func(t *testing.T, item apiFlight) {
				f := normalizeFlight(item)
				assert.Equal(t, "409", f.FlightNumber)
				assert.Equal(t, "UK-2025-06-01", f.ID)
			},
		},
		{
			name:   "missing flight identifiers default to Unknown",
			modify: func(item *apiFlight) { item.Flight = apiFlightRef{} },
			check: func(t *testing.T, item apiFlight) {
				assert.Equal(t, "Unknown", normalizeFlight(item).FlightNumber)
			},
		},
		{
			name:   "missing airline name defaults to Unknown Airline",
			modify: func(item *apiFlight) { item.Airline = apiAirline{} },
			check: func(t *testing.T, item apiFlight) {
				assert.Equal(t, "Unknown Airline", normalizeFlight(item).Airline)
			},
		},
		{
			name:   "missing departure iata falls back to airport name",
			modify: func(item *apiFlight) { item.Departure.IATA = "" },
			check: func(t *testing.T, item apiFlight) {
				assert.Equal(t, "Sydney Kingsford Smith", normalizeFlight(item).Origin)
			},
		},
		{
			name:   "bare endpoint defaults to Unknown",
			modify: func(item *apiFlight) { item.Arrival = apiEndpoint{} },
			check: func(t *testing.T, item apiFlight) {
				f := normalizeFlight(item)
				assert.Equal(t, "Unknown", f.Destination)
				assert.Equal(t, "Unknown", f.DestinationCity)
			},
		},
		{
			name: "city derived from timezone when code unlisted",
			modify: func(item *apiFlight) {
				item.Departure.IATA = "JFK"
				item.Departure.Timezone = "America/New_York"
			},
			check: func(t *testing.T, item apiFlight) {
				assert.Equal(t, "New York", normalizeFlight(item).OriginCity)
			},
		},
		{
			name: "city falls back to airport name without timezone",
			modify: func(item *apiFlight) {
				item.Departure.IATA = "JFK"
				item.Departure.Timezone = ""
			},
			check: func(t *testing.T, item apiFlight) {
				assert.Equal(t, "Sydney Kingsford Smith", normalizeFlight(item).OriginCity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := sampleItem()
			tt.modify(&item)
			tt.check(t, item)
		})
	}
}

func TestScheduledDuration(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		arrival   string
		want      string
	}{
		{
			name:      "regular leg",
			departure: "2025-06-01T08:00:00+00:00",
			arrival:   "2025-06-01T15:30:00+00:00",
			want:      "7h 30m",
		},
		{
			name:      "inconsistent schedule stays negative",
			departure: "2025-06-01T08:00:00+00:00",
			arrival:   "2025-06-01T06:30:00+00:00",
			want:      "-1h -30m",
		},
		{
			name:      "unparseable timestamps collapse to zero",
			departure: "not-a-time",
			arrival:   "also-not-a-time",
			want:      "0h 0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scheduledDuration(tt.departure, tt.arrival))
		})
	}
}

func TestNormalize_MapsEveryItem(t *testing.T) {
	items := []apiFlight{sampleItem(), sampleItem()}
	flights := normalize(items)
	assert.Len(t, flights, 2)
}
