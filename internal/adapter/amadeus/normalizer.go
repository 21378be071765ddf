package amadeus

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/flyon/flyon-api/internal/domain"
)

// isoDurationRe matches the subset of ISO 8601 durations the upstream emits,
// e.g. "PT6H15M", "PT45M", "PT11H".
var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// datetime layouts the upstream uses for segment times. Zone-less timestamps
// are local to the airport; they are parsed as-is without zone conversion.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Normalize converts a raw flight-offers response into canonical flights plus
// a carrier code → display name map covering every carrier in the result set.
// Malformed offers degrade field-by-field (zero values) rather than dropping
// the offer; offers with no itineraries or no segments are skipped entirely.
func Normalize(resp *FlightOffersResponse) ([]domain.Flight, map[string]string) {
	carriers := map[string]string{}
	if resp == nil {
		return []domain.Flight{}, carriers
	}

	flights := make([]domain.Flight, 0, len(resp.Data))
	for i := range resp.Data {
		f, ok := normalizeOffer(&resp.Data[i], resp.Dictionaries)
		if !ok {
			continue
		}
		flights = append(flights, f)
		carriers[f.AirlineCode] = f.AirlineName
	}
	return flights, carriers
}

func normalizeOffer(offer *FlightOffer, dicts Dictionaries) (domain.Flight, bool) {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return domain.Flight{}, false
	}

	outbound := offer.Itineraries[0]
	first := outbound.Segments[0]
	last := outbound.Segments[len(outbound.Segments)-1]

	carrier := mainCarrier(offer)

	f := domain.Flight{
		ID:            offer.ID,
		Price:         parseAmount(offer.Price.GrandTotal, offer.Price.Total),
		Currency:      offer.Price.Currency,
		BasePrice:     parseAmount(offer.Price.Base),
		AirlineCode:   carrier,
		AirlineName:   domain.AirlineName(carrier, dicts.Carriers),
		AircraftNames: aircraftNames(outbound.Segments, dicts.Aircraft),
		Stops:         len(outbound.Segments) - 1,
		Duration:      parseISODuration(outbound.Duration),

		DepartureTime: parseDateTime(first.Departure.At),
		ArrivalTime:   parseDateTime(last.Arrival.At),
		Origin:        first.Departure.IATACode,
		Destination:   last.Arrival.IATACode,

		DepartureTerminal: first.Departure.Terminal,
		ArrivalTerminal:   last.Arrival.Terminal,

		BagFee:      bagFee(offer.Price.AdditionalServices),
		Layovers:    layovers(outbound.Segments),
		Itineraries: normalizeItineraries(offer.Itineraries),
	}

	f.Cabin, f.BrandedFare, f.CheckedBags, f.CabinBags, f.Amenities = fareDetails(offer.TravelerPricings)

	if len(offer.Itineraries) > 1 {
		f.ReturnFlight = returnInfo(offer.Itineraries[1])
	}

	return f, true
}

// mainCarrier picks the validating carrier, falling back to the first
// segment's operating carrier.
func mainCarrier(offer *FlightOffer) string {
	if len(offer.ValidatingAirlineCodes) > 0 && offer.ValidatingAirlineCodes[0] != "" {
		return offer.ValidatingAirlineCodes[0]
	}
	return offer.Itineraries[0].Segments[0].CarrierCode
}

// fareDetails extracts the cabin, branded fare, bag allowances, and included
// amenities from the first traveler's first segment fare. Chargeable amenities
// are upsells, not features of the fare, and are excluded.
func fareDetails(pricings []TravelerPricing) (cabin, brandedFare string, checkedBags, cabinBags int, amenities []string) {
	cabin = "ECONOMY"
	amenities = []string{}

	if len(pricings) == 0 || len(pricings[0].FareDetailsBySegment) == 0 {
		return
	}
	fd := pricings[0].FareDetailsBySegment[0]

	if fd.Cabin != "" {
		cabin = fd.Cabin
	}
	brandedFare = fd.BrandedFareLabel
	if brandedFare == "" {
		brandedFare = fd.BrandedFare
	}
	if fd.IncludedCheckedBags != nil {
		checkedBags = fd.IncludedCheckedBags.Quantity
	}
	if fd.IncludedCabinBags != nil {
		cabinBags = fd.IncludedCabinBags.Quantity
	}
	for _, a := range fd.Amenities {
		if !a.IsChargeable && a.Description != "" {
			amenities = append(amenities, a.Description)
		}
	}
	return
}

// bagFee returns the price of the first checked-bags additional service, or
// nil when the offer lists none. Nil means "not offered", distinct from a
// zero fee.
func bagFee(services []AdditionalService) *float64 {
	for _, svc := range services {
		if svc.Type == serviceTypeCheckedBags {
			fee := parseAmount(svc.Amount)
			return &fee
		}
	}
	return nil
}

// aircraftNames resolves the aircraft type of each segment against the
// response dictionary, deduplicated in order of first appearance.
func aircraftNames(segments []Segment, aircraft map[string]string) []string {
	names := make([]string, 0, len(segments))
	seen := make(map[string]struct{}, len(segments))

	for _, seg := range segments {
		code := seg.Aircraft.Code
		if code == "" {
			continue
		}
		name := code
		if resolved, ok := aircraft[code]; ok && resolved != "" {
			name = resolved
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// layovers computes the ground time at each connection: the gap between one
// segment's arrival and the next segment's departure, rounded to whole
// minutes. N segments yield N-1 layovers.
func layovers(segments []Segment) []domain.Layover {
	out := make([]domain.Layover, 0, max(len(segments)-1, 0))
	for i := 0; i < len(segments)-1; i++ {
		arr := parseDateTime(segments[i].Arrival.At)
		dep := parseDateTime(segments[i+1].Departure.At)

		minutes := int(math.Round(dep.Sub(arr).Minutes()))
		out = append(out, domain.Layover{
			Airport:  segments[i].Arrival.IATACode,
			Duration: minutes,
		})
	}
	return out
}

// returnInfo summarizes the second itinerary of a round-trip offer.
func returnInfo(itin Itinerary) *domain.ReturnInfo {
	if len(itin.Segments) == 0 {
		return nil
	}
	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	return &domain.ReturnInfo{
		Stops:         len(itin.Segments) - 1,
		Duration:      parseISODuration(itin.Duration),
		DepartureTime: parseDateTime(first.Departure.At),
		ArrivalTime:   parseDateTime(last.Arrival.At),
		Segments:      normalizeSegments(itin.Segments),
	}
}

func normalizeItineraries(itins []Itinerary) []domain.Itinerary {
	out := make([]domain.Itinerary, 0, len(itins))
	for _, itin := range itins {
		out = append(out, domain.Itinerary{
			Duration: itin.Duration,
			Segments: normalizeSegments(itin.Segments),
		})
	}
	return out
}

func normalizeSegments(segments []Segment) []domain.Segment {
	out := make([]domain.Segment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, domain.Segment{
			Departure: domain.SegmentPoint{
				IATACode: seg.Departure.IATACode,
				Terminal: seg.Departure.Terminal,
				At:       parseDateTime(seg.Departure.At),
			},
			Arrival: domain.SegmentPoint{
				IATACode: seg.Arrival.IATACode,
				Terminal: seg.Arrival.Terminal,
				At:       parseDateTime(seg.Arrival.At),
			},
			CarrierCode:  seg.CarrierCode,
			Number:       seg.Number,
			AircraftCode: seg.Aircraft.Code,
			Duration:     seg.Duration,
		})
	}
	return out
}

// NormalizeLocations converts raw location results into canonical airports.
func NormalizeLocations(locations []Location) []domain.Airport {
	airports := make([]domain.Airport, 0, len(locations))
	for _, loc := range locations {
		a := domain.Airport{
			IATACode:     loc.IATACode,
			Name:         loc.Name,
			CityName:     loc.Address.CityName,
			CountryCode:  loc.Address.CountryCode,
			CountryName:  loc.Address.CountryName,
			SubType:      loc.SubType,
			DetailedName: loc.DetailedName,
		}
		if loc.Analytics != nil {
			a.Score = loc.Analytics.Travelers.Score
		}
		airports = append(airports, a)
	}
	return airports
}

// parseAmount parses the first non-empty decimal string, returning 0 on
// absence or malformed input.
func parseAmount(candidates ...string) float64 {
	for _, s := range candidates {
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return v
	}
	return 0
}

// parseDateTime parses an upstream timestamp, trying RFC 3339 first and then
// the zone-less local form. Returns the zero time on failure.
func parseDateTime(s string) time.Time {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseISODuration converts an upstream ISO 8601 duration like "PT6H15M" to
// whole minutes. Unparseable input yields 0.
func parseISODuration(s string) int {
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}
