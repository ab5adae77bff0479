package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlights_Stable(t *testing.T) {
	first := Flights()
	second := Flights()
	assert.Equal(t, first, second, "dataset must be identical on every call")
}

func TestFlights_CopyIsolation(t *testing.T) {
	flights := Flights()
	flights[0].Price = 1

	assert.Equal(t, float64(450), Flights()[0].Price, "mutating a returned slice must not affect the dataset")
}

func TestFlights_RequiredFieldsPopulated(t *testing.T) {
	for _, f := range Flights() {
		require.NotEmpty(t, f.ID)
		require.NotEmpty(t, f.FlightNumber)
		require.NotEmpty(t, f.Airline)
		require.NotEmpty(t, f.Origin)
		require.NotEmpty(t, f.Destination)
		require.NotEmpty(t, f.DepartureTime)
		require.NotEmpty(t, f.ArrivalTime)
		require.NotEmpty(t, f.Duration)
		require.NotEmpty(t, f.Aircraft)
		require.NotEmpty(t, f.Status)
		require.GreaterOrEqual(t, f.Price, float64(0))
		require.GreaterOrEqual(t, f.Stops, 0)
		require.Positive(t, f.DurationMinutes())
	}
}
