package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/domain"
)

var errGatewayDown = errors.New("gateway down")

// fakeGateway is a hand-rolled UpstreamGateway stub. Each hook defaults to
// failure so tests only wire the calls they expect. Call counts are guarded
// for concurrent fan-outs.
type fakeGateway struct {
	mu sync.Mutex

	locationsFn func(keyword, countryCode string, limit int) ([]amadeus.Location, error)
	offersFn    func(criteria domain.SearchCriteria) (*amadeus.FlightOffersResponse, error)
	metricsFn   func(origin, destination, departureDate, currency string) (json.RawMessage, error)

	locationCalls []string
	offerCalls    []domain.SearchCriteria
}

var _ UpstreamGateway = (*fakeGateway)(nil)

func (f *fakeGateway) SearchLocations(_ context.Context, keyword, countryCode string, limit int) ([]amadeus.Location, error) {
	f.mu.Lock()
	f.locationCalls = append(f.locationCalls, keyword)
	f.mu.Unlock()

	if f.locationsFn == nil {
		return nil, errGatewayDown
	}
	return f.locationsFn(keyword, countryCode, limit)
}

func (f *fakeGateway) SearchFlightOffers(_ context.Context, criteria domain.SearchCriteria) (*amadeus.FlightOffersResponse, error) {
	f.mu.Lock()
	f.offerCalls = append(f.offerCalls, criteria)
	f.mu.Unlock()

	if f.offersFn == nil {
		return nil, errGatewayDown
	}
	return f.offersFn(criteria)
}

func (f *fakeGateway) PriceMetrics(_ context.Context, origin, destination, departureDate, currency string) (json.RawMessage, error) {
	if f.metricsFn == nil {
		return nil, errGatewayDown
	}
	return f.metricsFn(origin, destination, departureDate, currency)
}

func (f *fakeGateway) locationCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.locationCalls)
}

func (f *fakeGateway) offerCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.offerCalls)
}

// location builds a minimal upstream location record.
func location(iata, city string) amadeus.Location {
	return amadeus.Location{
		SubType:  "AIRPORT",
		Name:     city + " AIRPORT",
		IATACode: iata,
		Address:  amadeus.Address{CityName: city},
	}
}

// offer builds a minimal one-segment offer with the given id and price.
func offer(id string, price float64, stops int, durationISO string) amadeus.FlightOffer {
	segments := []amadeus.Segment{
		{
			Departure:   amadeus.SegmentPoint{IATACode: "JFK", At: "2026-06-15T08:00:00"},
			Arrival:     amadeus.SegmentPoint{IATACode: "LHR", At: "2026-06-15T20:00:00"},
			CarrierCode: "BA",
			Number:      "112",
		},
	}
	for i := 0; i < stops; i++ {
		segments = append(segments, amadeus.Segment{
			Departure:   amadeus.SegmentPoint{IATACode: "LHR", At: "2026-06-15T21:00:00"},
			Arrival:     amadeus.SegmentPoint{IATACode: "CDG", At: "2026-06-15T22:00:00"},
			CarrierCode: "BA",
			Number:      "306",
		})
	}

	return amadeus.FlightOffer{
		ID: id,
		Itineraries: []amadeus.Itinerary{
			{Duration: durationISO, Segments: segments},
		},
		Price: amadeus.OfferPrice{
			Currency:   "USD",
			Total:      strconv.FormatFloat(price, 'f', 2, 64),
			GrandTotal: strconv.FormatFloat(price, 'f', 2, 64),
		},
		ValidatingAirlineCodes: []string{"BA"},
	}
}
