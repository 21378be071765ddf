package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/flyon/flyon-api/internal/domain"
	"github.com/flyon/flyon-api/internal/infrastructure/backoff"
	"github.com/flyon/flyon-api/internal/infrastructure/logger"
	"github.com/flyon/flyon-api/internal/infrastructure/timeutil"
)

// Upstream endpoints.
const (
	tokenEndpoint        = "/v1/security/oauth2/token"
	LocationsEndpoint    = "/v1/reference-data/locations"
	FlightOffersEndpoint = "/v2/shopping/flight-offers"
	PriceMetricsEndpoint = "/v1/analytics/itinerary-price-metrics"
)

const (
	// maxAttempts caps total request attempts, including the first.
	maxAttempts = 3

	// tokenExpiryLeeway expires cached tokens early to avoid using a token
	// that dies mid-request.
	tokenExpiryLeeway = 60 * time.Second

	// defaultTimeout is the per-call safety net; the upstream mandates none.
	defaultTimeout = 15 * time.Second
)

// Config holds the upstream connection settings.
type Config struct {
	// BaseURL is the upstream API root, e.g. "https://test.api.amadeus.com"
	BaseURL string

	// APIKey and APISecret are the client-credentials grant inputs.
	// Both must be set before the first call.
	APIKey    string
	APISecret string

	// Timeout bounds each HTTP call. Zero means defaultTimeout.
	Timeout time.Duration
}

// Client is the authenticated upstream HTTP client. It owns the bearer-token
// lifecycle and the retry policy; it caches nothing else.
type Client struct {
	cfg        Config
	httpClient *http.Client
	clock      timeutil.Clock
	backoff    backoff.Policy
	log        *logger.Logger

	// mu guards the cached token. Holding it across a refresh collapses
	// concurrent refreshes into one token fetch.
	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithClock replaces the clock used for token expiry (tests).
func WithClock(clock timeutil.Clock) ClientOption {
	return func(c *Client) { c.clock = clock }
}

// WithBackoff replaces the retry backoff policy.
func WithBackoff(p backoff.Policy) ClientOption {
	return func(c *Client) { c.backoff = p }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *logger.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// NewClient creates an upstream client with the given configuration.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	c := &Client{
		cfg:     cfg,
		clock:   timeutil.NewRealClock(),
		backoff: backoff.Default,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return c
}

// Get issues an authenticated GET to the upstream endpoint and decodes the
// JSON response into out. Query parameters with empty values are omitted.
//
// Retry policy, up to maxAttempts:
//   - 401: clear the cached token and retry immediately (consumes an attempt,
//     no delay)
//   - 429: wait initialDelay * 2^attempt, then retry
//   - other non-2xx: fail immediately with the status and body
//   - transport or token-fetch errors: retry with the same exponential backoff
//
// After exhausting attempts the last error is returned. Context cancellation
// aborts the loop and is returned as-is.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	if c.cfg.APIKey == "" || c.cfg.APISecret == "" {
		return fmt.Errorf("%w: set AMADEUS_API_KEY and AMADEUS_API_SECRET", domain.ErrMissingCredentials)
	}

	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := c.do(ctx, endpoint, params)
		if err == nil {
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("decode upstream response: %w", err)
			}
			return nil
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Superseded or timed-out request: not an application error.
			return err
		}

		lastErr = err

		if ue, ok := domain.AsUpstreamError(err); ok {
			switch {
			case ue.AuthExpired():
				// Token went stale server-side. Drop it and go again
				// without waiting.
				c.clearToken()
				c.log.Debug().Str("endpoint", endpoint).Msg("Upstream 401, refreshing token")
				continue
			case ue.RateLimited():
				delay := c.backoff.DelayFor(attempt)
				c.log.Warn().
					Str("endpoint", endpoint).
					Dur("delay", delay).
					Int("attempt", attempt+1).
					Msg("Upstream rate limited, backing off")
				if err := backoff.Sleep(ctx, delay); err != nil {
					return err
				}
				continue
			default:
				// Any other upstream status is not retryable.
				return err
			}
		}

		// Transport or token-fetch failure: back off and retry.
		c.log.Warn().
			Str("endpoint", endpoint).
			Int("attempt", attempt+1).
			Err(err).
			Msg("Upstream request failed, retrying")
		if attempt < maxAttempts-1 {
			if err := backoff.Sleep(ctx, c.backoff.DelayFor(attempt)); err != nil {
				return err
			}
		}
	}

	return lastErr
}

// do performs a single authenticated request attempt.
func (c *Client) do(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(c.cfg.BaseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("build upstream URL: %w", err)
	}
	q := u.Query()
	for key, value := range params {
		if value != "" {
			q.Set(key, value)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewUpstreamError(resp.StatusCode, string(body))
	}

	return body, nil
}

// getToken returns a valid bearer token, fetching a new one via the
// client-credentials grant when the cached token is absent or within
// tokenExpiryLeeway of expiry. The mutex is held for the whole refresh so
// concurrent callers share one fetch.
func (c *Client) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.token != "" && now.Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.APIKey},
		"client_secret": {c.cfg.APISecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamAuth, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamAuth, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamAuth, resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", domain.ErrUpstreamAuth, err)
	}

	c.token = tr.AccessToken
	c.tokenExpiry = now.Add(time.Duration(tr.ExpiresIn)*time.Second - tokenExpiryLeeway)

	c.log.Debug().Time("expiry", c.tokenExpiry).Msg("Fetched upstream access token")
	return c.token, nil
}

// clearToken drops the cached token so the next call refreshes it.
func (c *Client) clearToken() {
	c.mu.Lock()
	c.token = ""
	c.tokenExpiry = time.Time{}
	c.mu.Unlock()
}

// SearchLocations queries the airport/city reference endpoint. countryCode
// is optional; limit caps the result count.
func (c *Client) SearchLocations(ctx context.Context, keyword, countryCode string, limit int) ([]Location, error) {
	params := map[string]string{
		"subType":     "AIRPORT,CITY",
		"keyword":     strings.ToUpper(keyword),
		"page[limit]": strconv.Itoa(limit),
		"sort":        "analytics.travelers.score",
		"view":        "LIGHT",
		"countryCode": countryCode,
	}

	var resp LocationsResponse
	if err := c.Get(ctx, LocationsEndpoint, params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SearchFlightOffers queries the flight-offers-search endpoint with the given
// criteria. Zero-valued optional criteria are omitted from the request.
func (c *Client) SearchFlightOffers(ctx context.Context, criteria domain.SearchCriteria) (*FlightOffersResponse, error) {
	params := map[string]string{
		"originLocationCode":      strings.ToUpper(criteria.Origin),
		"destinationLocationCode": strings.ToUpper(criteria.Destination),
		"departureDate":           criteria.DepartureDate,
		"adults":                  strconv.Itoa(criteria.Adults),
		"max":                     strconv.Itoa(criteria.Max),
		"currencyCode":            strings.ToUpper(criteria.Currency),
		"returnDate":              criteria.ReturnDate,
		"travelClass":             strings.ToUpper(criteria.CabinClass),
	}
	if criteria.Children > 0 {
		params["children"] = strconv.Itoa(criteria.Children)
	}
	if criteria.Infants > 0 {
		params["infants"] = strconv.Itoa(criteria.Infants)
	}
	if criteria.NonStop {
		params["nonStop"] = "true"
	}

	var resp FlightOffersResponse
	if err := c.Get(ctx, FlightOffersEndpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PriceMetrics queries the itinerary price-metrics analytics endpoint. The
// response is passed through opaquely; only its presence is relied upon.
func (c *Client) PriceMetrics(ctx context.Context, origin, destination, departureDate, currency string) (json.RawMessage, error) {
	params := map[string]string{
		"originIataCode":      strings.ToUpper(origin),
		"destinationIataCode": strings.ToUpper(destination),
		"departureDate":       departureDate,
		"currencyCode":        strings.ToUpper(currency),
		"oneWay":              "false",
	}

	var resp json.RawMessage
	if err := c.Get(ctx, PriceMetricsEndpoint, params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
