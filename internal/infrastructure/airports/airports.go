// Package airports provides city-name resolution for airport codes.
// The live data feed often omits city names, so they are derived from a
// manual override table or from the airport's IANA timezone string.
package airports

import "strings"

// cityOverrides maps IATA codes to city names for hub airports where the
// timezone-derived name is wrong or unhelpful (several Australian airports
// share the Australia/Sydney timezone).
var cityOverrides = map[string]string{
	"SYD": "Sydney",
	"MEL": "Melbourne",
	"BNE": "Brisbane",
	"ADL": "Adelaide",
	"PER": "Perth",
	"CBR": "Canberra",
	"OOL": "Gold Coast",
	"HBA": "Hobart",
	"LST": "Launceston",
	"NTL": "Newcastle",
	"AVV": "Avalon",
	"WOL": "Wollongong",
	"MCY": "Sunshine Coast",
	"TSV": "Townsville",
	"CNS": "Cairns",
	"DRW": "Darwin",
	"ASP": "Alice Springs",
	"AKL": "Auckland",
	"WLG": "Wellington",
	"CHC": "Christchurch",
	"ZQN": "Queenstown",
}

// CityName resolves a human-readable city name for an airport.
// Resolution order: the override table, then the timezone string.
// Returns "" when neither source can produce a name.
func CityName(iata, timezone string) string {
	if city, ok := cityOverrides[strings.ToUpper(iata)]; ok {
		return city
	}
	return CityFromTimezone(timezone)
}

// CityFromTimezone derives a city name from an IANA timezone identifier,
// e.g. "Australia/Sydney" -> "Sydney", "America/New_York" -> "New York".
// Returns "" for empty or region-less values.
func CityFromTimezone(timezone string) string {
	if timezone == "" {
		return ""
	}
	parts := strings.Split(timezone, "/")
	if len(parts) < 2 {
		return ""
	}
	return strings.ReplaceAll(parts[len(parts)-1], "_", " ")
}
