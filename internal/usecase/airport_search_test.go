package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/infrastructure/cache"
	"github.com/flyon/flyon-api/internal/infrastructure/logger"
	"github.com/flyon/flyon-api/internal/infrastructure/timeutil"
)

func newAirportUC(gw *fakeGateway) (AirportSearchUseCase, *timeutil.MockClock) {
	clock := timeutil.NewMockClockFromString("2026-06-01T10:00:00Z")
	store := cache.New(clock, cache.WithSkipStore(cache.SkipEmptySlice[domain.Airport]))
	return NewAirportSearchUseCase(gw, store, 24*time.Hour, logger.Nop()), clock
}

func TestSearchAirports_EmptyKeyword(t *testing.T) {
	gw := &fakeGateway{}
	uc, _ := newAirportUC(gw)

	tests := []struct {
		name    string
		keyword string
	}{
		{name: "empty string", keyword: ""},
		{name: "whitespace only", keyword: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			airports, err := uc.SearchAirports(context.Background(), tt.keyword)

			require.NoError(t, err)
			assert.Empty(t, airports)
			assert.Equal(t, 0, gw.locationCallCount(), "no upstream call for an empty keyword")
		})
	}
}

func TestSearchAirports_PlainKeyword(t *testing.T) {
	gw := &fakeGateway{
		locationsFn: func(keyword, countryCode string, limit int) ([]amadeus.Location, error) {
			assert.Equal(t, "", countryCode)
			assert.Equal(t, keywordLimit, limit)
			return []amadeus.Location{location("LHR", "LONDON"), location("LGW", "LONDON")}, nil
		},
	}
	uc, _ := newAirportUC(gw)

	airports, err := uc.SearchAirports(context.Background(), "heathrow")

	require.NoError(t, err)
	require.Len(t, airports, 2)
	assert.Equal(t, "LHR", airports[0].IATACode)
}

func TestSearchAirports_CountryFanOut(t *testing.T) {
	gw := &fakeGateway{
		locationsFn: func(keyword, countryCode string, limit int) ([]amadeus.Location, error) {
			assert.Equal(t, "GB", countryCode)
			assert.Equal(t, perCityLimit, limit)
			switch keyword {
			case "LONDON":
				return []amadeus.Location{location("LHR", "LONDON"), location("LGW", "LONDON")}, nil
			case "MANCHESTER":
				return []amadeus.Location{location("MAN", "MANCHESTER")}, nil
			case "EDINBURGH":
				return []amadeus.Location{location("EDI", "EDINBURGH")}, nil
			}
			t.Errorf("unexpected city keyword %q", keyword)
			return nil, errGatewayDown
		},
	}
	uc, _ := newAirportUC(gw)

	airports, err := uc.SearchAirports(context.Background(), "uk")

	require.NoError(t, err)
	assert.Equal(t, 3, gw.locationCallCount())

	// Merge order follows city priority regardless of completion order.
	codes := make([]string, len(airports))
	for i, a := range airports {
		codes[i] = a.IATACode
	}
	assert.Equal(t, []string{"LHR", "LGW", "MAN", "EDI"}, codes)
}

func TestSearchAirports_CountryFanOutSwallowsCityFailures(t *testing.T) {
	gw := &fakeGateway{
		locationsFn: func(keyword, countryCode string, limit int) ([]amadeus.Location, error) {
			if keyword == "LONDON" {
				return nil, errGatewayDown
			}
			return []amadeus.Location{location(keyword[:3], keyword)}, nil
		},
	}
	uc, _ := newAirportUC(gw)

	airports, err := uc.SearchAirports(context.Background(), "uk")

	require.NoError(t, err, "one failed city must not fail the search")
	require.Len(t, airports, 2)
	assert.Equal(t, "MAN", airports[0].IATACode)
	assert.Equal(t, "EDI", airports[1].IATACode)
}

func TestSearchAirports_CountryDedupesByIATA(t *testing.T) {
	gw := &fakeGateway{
		locationsFn: func(keyword, countryCode string, limit int) ([]amadeus.Location, error) {
			// Every city search returns the same airport.
			return []amadeus.Location{location("LHR", "LONDON")}, nil
		},
	}
	uc, _ := newAirportUC(gw)

	airports, err := uc.SearchAirports(context.Background(), "uk")

	require.NoError(t, err)
	assert.Len(t, airports, 1)
}

func TestSearchAirports_CountryResultCapped(t *testing.T) {
	gw := &fakeGateway{
		locationsFn: func(keyword, countryCode string, limit int) ([]amadeus.Location, error) {
			// 3 cities x 4 distinct results would exceed the cap.
			return []amadeus.Location{
				location(keyword[:2]+"1", keyword),
				location(keyword[:2]+"2", keyword),
				location(keyword[:2]+"3", keyword),
				location(keyword[:2]+"4", keyword),
			}, nil
		},
	}
	uc, _ := newAirportUC(gw)

	airports, err := uc.SearchAirports(context.Background(), "usa")

	require.NoError(t, err)
	assert.Len(t, airports, countryResultCap)
}

func TestSearchAirports_ResultsCachedByUppercasedKeyword(t *testing.T) {
	gw := &fakeGateway{
		locationsFn: func(keyword, countryCode string, limit int) ([]amadeus.Location, error) {
			return []amadeus.Location{location("LHR", "LONDON")}, nil
		},
	}
	uc, _ := newAirportUC(gw)

	_, err := uc.SearchAirports(context.Background(), "heathrow")
	require.NoError(t, err)

	// Same keyword in different case hits the same entry.
	_, err = uc.SearchAirports(context.Background(), "HEATHROW")
	require.NoError(t, err)

	assert.Equal(t, 1, gw.locationCallCount())
}

func TestSearchAirports_CacheExpiresAfterTTL(t *testing.T) {
	gw := &fakeGateway{
		locationsFn: func(keyword, countryCode string, limit int) ([]amadeus.Location, error) {
			return []amadeus.Location{location("LHR", "LONDON")}, nil
		},
	}
	uc, clock := newAirportUC(gw)

	_, err := uc.SearchAirports(context.Background(), "heathrow")
	require.NoError(t, err)

	clock.Advance(24*time.Hour + time.Minute)

	_, err = uc.SearchAirports(context.Background(), "heathrow")
	require.NoError(t, err)
	assert.Equal(t, 2, gw.locationCallCount())
}

func TestSearchAirports_EmptyResultNotCached(t *testing.T) {
	gw := &fakeGateway{
		locationsFn: func(keyword, countryCode string, limit int) ([]amadeus.Location, error) {
			return []amadeus.Location{}, nil
		},
	}
	uc, _ := newAirportUC(gw)

	for i := 0; i < 2; i++ {
		airports, err := uc.SearchAirports(context.Background(), "heathrow")
		require.NoError(t, err)
		assert.Empty(t, airports)
	}

	assert.Equal(t, 2, gw.locationCallCount(), "empty results must be re-fetched")
}

func TestSearchAirports_KeywordFailurePropagates(t *testing.T) {
	gw := &fakeGateway{}
	uc, _ := newAirportUC(gw)

	_, err := uc.SearchAirports(context.Background(), "heathrow")

	assert.ErrorIs(t, err, errGatewayDown)
}
