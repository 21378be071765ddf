package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/flyon/flyon-api/internal/adapter/amadeus"
	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/infrastructure/backoff"
	"github.com/flyon/flyon-api/internal/infrastructure/cache"
	"github.com/flyon/flyon-api/internal/infrastructure/logger"
	"github.com/flyon/flyon-api/internal/infrastructure/timeutil"
)

// Price calendar tuning.
const (
	// calendarWindowDays is the number of days scanned either side of the
	// center date.
	calendarWindowDays = 15

	// calendarBatchSize bounds concurrent per-date upstream requests.
	calendarBatchSize = 5

	// calendarBatchDelay is the pause between batches, keeping the burst
	// under the upstream rate limit.
	calendarBatchDelay = 200 * time.Millisecond

	dateLayout = "2006-01-02"
)

// CalendarQuery are the parameters of a price-calendar scan.
type CalendarQuery struct {
	// Origin and Destination are IATA airport codes
	Origin      string
	Destination string

	// CenterDate is the middle of the scanned window (YYYY-MM-DD)
	CenterDate string

	// Adults defaults to 1
	Adults int

	// Currency defaults to USD
	Currency string
}

func (q *CalendarQuery) setDefaults() {
	if q.Adults == 0 {
		q.Adults = 1
	}
	if q.Currency == "" {
		q.Currency = "USD"
	}
}

func (q *CalendarQuery) validate() error {
	if q.Origin == "" || q.Destination == "" || q.CenterDate == "" {
		return fmt.Errorf("%w: origin, destination and date are required", domain.ErrInvalidRequest)
	}
	if _, err := time.Parse(dateLayout, q.CenterDate); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", domain.ErrInvalidRequest, q.CenterDate)
	}
	return nil
}

func (q *CalendarQuery) cacheKey() string {
	return fmt.Sprintf("calendar:%s:%s:%s:%d:%s",
		strings.ToUpper(q.Origin),
		strings.ToUpper(q.Destination),
		q.CenterDate,
		q.Adults,
		strings.ToUpper(q.Currency),
	)
}

// PriceCalendarUseCase scans cheapest prices around a departure date.
type PriceCalendarUseCase interface {
	// PriceCalendar returns one entry per scanned date in date order. Dates
	// with no available price carry a nil price, never an error.
	PriceCalendar(ctx context.Context, query CalendarQuery) ([]domain.CalendarEntry, error)
}

type priceCalendarUseCase struct {
	gateway UpstreamGateway
	cache   *cache.Store[[]domain.CalendarEntry]
	ttl     time.Duration
	clock   timeutil.Clock
	log     *logger.Logger
}

var _ PriceCalendarUseCase = (*priceCalendarUseCase)(nil)

// NewPriceCalendarUseCase creates the price calendar orchestrator.
func NewPriceCalendarUseCase(gateway UpstreamGateway, store *cache.Store[[]domain.CalendarEntry], ttl time.Duration, clock timeutil.Clock, log *logger.Logger) PriceCalendarUseCase {
	return &priceCalendarUseCase{
		gateway: gateway,
		cache:   store,
		ttl:     ttl,
		clock:   clock,
		log:     log,
	}
}

// PriceCalendar implements PriceCalendarUseCase.
//
// The scanned window is [center-15d, center+15d] with past dates dropped.
// Dates are fetched in batches of calendarBatchSize concurrent single-offer
// searches with a context-aware delay between batches. A per-date failure or
// empty result yields a nil price for that date only.
func (uc *priceCalendarUseCase) PriceCalendar(ctx context.Context, query CalendarQuery) ([]domain.CalendarEntry, error) {
	query.setDefaults()
	if err := query.validate(); err != nil {
		return nil, err
	}

	entries, hit, err := uc.cache.GetOrFetch(ctx, query.cacheKey(), uc.ttl, func(ctx context.Context) ([]domain.CalendarEntry, error) {
		return uc.scan(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Str("center_date", query.CenterDate).
		Int("dates", len(entries)).
		Bool("cache_hit", hit).
		Msg("Price calendar completed")

	return entries, nil
}

func (uc *priceCalendarUseCase) scan(ctx context.Context, query CalendarQuery) ([]domain.CalendarEntry, error) {
	dates := uc.windowDates(query.CenterDate)
	entries := make([]domain.CalendarEntry, len(dates))

	for batchStart := 0; batchStart < len(dates); batchStart += calendarBatchSize {
		batchEnd := min(batchStart+calendarBatchSize, len(dates))

		var wg sync.WaitGroup
		for i := batchStart; i < batchEnd; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				entries[i] = uc.fetchDate(ctx, query, dates[i])
			}(i)
		}
		wg.Wait()

		if batchEnd < len(dates) {
			if err := backoff.Sleep(ctx, calendarBatchDelay); err != nil {
				return nil, err
			}
		}
	}

	return entries, nil
}

// windowDates builds the scanned date list: 15 days either side of center,
// excluding dates before today.
func (uc *priceCalendarUseCase) windowDates(center string) []string {
	centerDay, _ := time.Parse(dateLayout, center)

	now := uc.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	dates := make([]string, 0, 2*calendarWindowDays+1)
	for offset := -calendarWindowDays; offset <= calendarWindowDays; offset++ {
		day := centerDay.AddDate(0, 0, offset)
		if day.Before(today) {
			continue
		}
		dates = append(dates, day.Format(dateLayout))
	}
	return dates
}

// fetchDate looks up the cheapest offer for one date. Failures degrade to a
// nil price rather than failing the whole scan.
func (uc *priceCalendarUseCase) fetchDate(ctx context.Context, query CalendarQuery, date string) domain.CalendarEntry {
	entry := domain.CalendarEntry{Date: date, Currency: strings.ToUpper(query.Currency)}

	resp, err := uc.gateway.SearchFlightOffers(ctx, domain.SearchCriteria{
		Origin:        strings.ToUpper(query.Origin),
		Destination:   strings.ToUpper(query.Destination),
		DepartureDate: date,
		Adults:        query.Adults,
		Currency:      query.Currency,
		Max:           1,
	})
	if err != nil {
		uc.log.Warn().Str("date", date).Err(err).Msg("Calendar date fetch failed")
		return entry
	}

	flights, _ := amadeus.Normalize(resp)
	if len(flights) == 0 {
		return entry
	}

	cheapest := flights[0].Price
	for _, f := range flights[1:] {
		if f.Price < cheapest {
			cheapest = f.Price
		}
	}
	entry.Price = &cheapest
	if flights[0].Currency != "" {
		entry.Currency = flights[0].Currency
	}
	return entry
}
