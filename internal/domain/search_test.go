package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCriteria() SearchCriteria {
	return SearchCriteria{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-15",
		Adults:        1,
		Max:           50,
		Currency:      "USD",
	}
}

func TestSearchCriteria_SetDefaults(t *testing.T) {
	c := SearchCriteria{Origin: "JFK", Destination: "LHR", DepartureDate: "2026-06-15"}

	c.SetDefaults()

	assert.Equal(t, 1, c.Adults)
	assert.Equal(t, 50, c.Max)
	assert.Equal(t, "USD", c.Currency)
}

func TestSearchCriteria_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SearchCriteria)
		wantErr bool
	}{
		{name: "valid", mutate: func(*SearchCriteria) {}, wantErr: false},
		{name: "valid round trip", mutate: func(c *SearchCriteria) { c.ReturnDate = "2026-06-22" }, wantErr: false},
		{name: "missing origin", mutate: func(c *SearchCriteria) { c.Origin = "" }, wantErr: true},
		{name: "missing destination", mutate: func(c *SearchCriteria) { c.Destination = "" }, wantErr: true},
		{name: "missing departure date", mutate: func(c *SearchCriteria) { c.DepartureDate = "" }, wantErr: true},
		{name: "lowercase origin", mutate: func(c *SearchCriteria) { c.Origin = "jfk" }, wantErr: true},
		{name: "four-letter origin", mutate: func(c *SearchCriteria) { c.Origin = "JFKX" }, wantErr: true},
		{name: "same origin and destination", mutate: func(c *SearchCriteria) { c.Destination = "JFK" }, wantErr: true},
		{name: "malformed date", mutate: func(c *SearchCriteria) { c.DepartureDate = "15-06-2026" }, wantErr: true},
		{name: "impossible date", mutate: func(c *SearchCriteria) { c.DepartureDate = "2026-02-30" }, wantErr: true},
		{name: "malformed return date", mutate: func(c *SearchCriteria) { c.ReturnDate = "junk" }, wantErr: true},
		{name: "zero adults", mutate: func(c *SearchCriteria) { c.Adults = 0 }, wantErr: true},
		{name: "ten adults", mutate: func(c *SearchCriteria) { c.Adults = 10 }, wantErr: true},
		{name: "negative children", mutate: func(c *SearchCriteria) { c.Children = -1 }, wantErr: true},
		{name: "valid cabin", mutate: func(c *SearchCriteria) { c.CabinClass = "BUSINESS" }, wantErr: false},
		{name: "invalid cabin", mutate: func(c *SearchCriteria) { c.CabinClass = "LUXURY" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCriteria()
			tt.mutate(&c)

			err := c.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchCriteria_CacheKeyCoversAllParameters(t *testing.T) {
	base := validCriteria()

	variants := []func(*SearchCriteria){
		func(c *SearchCriteria) { c.Origin = "EWR" },
		func(c *SearchCriteria) { c.Destination = "CDG" },
		func(c *SearchCriteria) { c.DepartureDate = "2026-06-16" },
		func(c *SearchCriteria) { c.ReturnDate = "2026-06-22" },
		func(c *SearchCriteria) { c.Adults = 2 },
		func(c *SearchCriteria) { c.Children = 1 },
		func(c *SearchCriteria) { c.Infants = 1 },
		func(c *SearchCriteria) { c.CabinClass = "BUSINESS" },
		func(c *SearchCriteria) { c.Max = 10 },
		func(c *SearchCriteria) { c.Currency = "EUR" },
		func(c *SearchCriteria) { c.NonStop = true },
	}

	seen := map[string]bool{base.CacheKey(): true}
	for i, mutate := range variants {
		c := base
		mutate(&c)

		key := c.CacheKey()
		assert.False(t, seen[key], "variant %d must produce a distinct cache key", i)
		seen[key] = true
	}
}

func TestSearchCriteria_CacheKeyCanonicalizesCase(t *testing.T) {
	a := validCriteria()
	b := validCriteria()
	b.Origin, b.Destination, b.Currency = "jfk", "lhr", "usd"

	assert.Equal(t, a.CacheKey(), b.CacheKey())
}

func TestNewSearchResponse_NormalizesNils(t *testing.T) {
	resp := NewSearchResponse(validCriteria(), nil, nil, SearchMetadata{OffersFetched: 3})

	assert.NotNil(t, resp.Flights)
	assert.Empty(t, resp.Flights)
	assert.NotNil(t, resp.Carriers)
	assert.Equal(t, 0, resp.Metadata.TotalResults)
	assert.Equal(t, 3, resp.Metadata.OffersFetched)
}

func TestAirlineName_Priority(t *testing.T) {
	dict := map[string]string{"BA": "BRITISH AIRWAYS PLC"}

	assert.Equal(t, "BRITISH AIRWAYS PLC", AirlineName("BA", dict), "response dictionary wins")
	assert.Equal(t, "British Airways", AirlineName("BA", nil), "static table is the fallback")
	assert.Equal(t, "Z9", AirlineName("Z9", nil), "unknown codes pass through")
}
