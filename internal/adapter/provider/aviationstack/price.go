package aviationstack

import (
	"strconv"
	"strings"
)

// Price simulation constants. The live feed carries no fare data, so prices
// are synthesized deterministically from the flight itself.
const (
	basePrice    = 100
	pricePerHour = 50
	hashModulo   = 100
)

// simulatePrice computes a synthetic price from the flight duration and a
// stable hash of the flight number:
//
//	price = 100 + hours*50 + (charCodeSum(flightNumber) mod 100)
//
// The same flight number and duration always yield the same price. The hash
// is a stable character-code sum, not a cryptographic one.
func simulatePrice(flightNumber, duration string) float64 {
	hours := 0
	if parts := strings.Fields(duration); len(parts) > 0 && strings.Contains(parts[0], "h") {
		hours, _ = strconv.Atoi(strings.TrimSuffix(parts[0], "h"))
	}

	return float64(basePrice + hours*pricePerHour + charCodeSum(flightNumber)%hashModulo)
}

// charCodeSum sums the character codes of s.
func charCodeSum(s string) int {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return sum
}
