package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// filterFlight builds a flight with the fields the filter engine reads.
func filterFlight(price float64, stops int, airline string, depHour, arrHour, duration int) Flight {
	return Flight{
		ID:            "t",
		Price:         price,
		Stops:         stops,
		AirlineCode:   airline,
		Duration:      duration,
		DepartureTime: time.Date(2026, 6, 15, depHour, 30, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 6, 15, arrHour, 15, 0, 0, time.UTC),
	}
}

func TestDefaultFilterState_MatchesEverything(t *testing.T) {
	state := DefaultFilterState()

	tests := []struct {
		name   string
		flight Flight
	}{
		{name: "cheap direct", flight: filterFlight(50, 0, "BA", 0, 6, 300)},
		{name: "expensive multi-stop", flight: filterFlight(9999, 3, "ZZ", 23, 23, 2880)},
		{name: "free flight", flight: filterFlight(0, 0, "AA", 12, 14, 120)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, state.Matches(tt.flight))
		})
	}
}

func TestFilterState_StopsSet(t *testing.T) {
	state := DefaultFilterState()
	state.Stops = []int{0, 1}

	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 10, 12, 120)))
	assert.True(t, state.Matches(filterFlight(100, 1, "BA", 10, 12, 120)))
	assert.False(t, state.Matches(filterFlight(100, 2, "BA", 10, 12, 120)))
}

func TestFilterState_PriceRangeInclusive(t *testing.T) {
	state := DefaultFilterState()
	state.PriceRange = PriceRange{Min: 100, Max: 500}

	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 10, 12, 120)), "min boundary is inclusive")
	assert.True(t, state.Matches(filterFlight(500, 0, "BA", 10, 12, 120)), "max boundary is inclusive")
	assert.False(t, state.Matches(filterFlight(99.99, 0, "BA", 10, 12, 120)))
	assert.False(t, state.Matches(filterFlight(500.01, 0, "BA", 10, 12, 120)))
}

func TestFilterState_AirlinesCaseInsensitive(t *testing.T) {
	state := DefaultFilterState()
	state.Airlines = []string{"ba", "AF"}

	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 10, 12, 120)))
	assert.True(t, state.Matches(filterFlight(100, 0, "AF", 10, 12, 120)))
	assert.False(t, state.Matches(filterFlight(100, 0, "LH", 10, 12, 120)))
}

func TestFilterState_DepartureHourHalfOpen(t *testing.T) {
	state := DefaultFilterState()
	state.DepartureTimeRange = HourRange{Start: 6, End: 12}

	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 6, 14, 120)), "start hour included")
	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 11, 14, 120)))
	assert.False(t, state.Matches(filterFlight(100, 0, "BA", 12, 14, 120)), "end hour excluded")
	assert.False(t, state.Matches(filterFlight(100, 0, "BA", 5, 14, 120)))
}

func TestFilterState_ArrivalHourHalfOpen(t *testing.T) {
	state := DefaultFilterState()
	state.ArrivalTimeRange = HourRange{Start: 18, End: 24}

	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 10, 18, 120)))
	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 10, 23, 120)), "End of 24 keeps the 23:00 hour")
	assert.False(t, state.Matches(filterFlight(100, 0, "BA", 10, 17, 120)))
}

func TestFilterState_MaxDuration(t *testing.T) {
	state := DefaultFilterState()
	state.MaxDuration = 600

	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 10, 12, 600)), "boundary is inclusive")
	assert.False(t, state.Matches(filterFlight(100, 0, "BA", 10, 12, 601)))
}

func TestFilterState_PredicatesAreConjunctive(t *testing.T) {
	state := DefaultFilterState()
	state.Stops = []int{0}
	state.Airlines = []string{"BA"}

	// Passes stops but fails airline.
	assert.False(t, state.Matches(filterFlight(100, 0, "AF", 10, 12, 120)))
	// Passes airline but fails stops.
	assert.False(t, state.Matches(filterFlight(100, 1, "BA", 10, 12, 120)))
	// Passes both.
	assert.True(t, state.Matches(filterFlight(100, 0, "BA", 10, 12, 120)))
}

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		input string
		want  SortOption
	}{
		{input: "best", want: SortByBest},
		{input: "price", want: SortByPrice},
		{input: "DURATION", want: SortByDuration},
		{input: "departure", want: SortByDeparture},
		{input: "", want: SortByBest},
		{input: "cheapest", want: SortByBest},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortOption(tt.input))
		})
	}
}
