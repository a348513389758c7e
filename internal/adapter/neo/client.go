package neo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/observability"
	"golang.org/x/time/rate"
)

// MaxFeedDays is the widest date window the NeoWs feed endpoint accepts.
const MaxFeedDays = 7

const dateLayout = "2006-01-02"

// ErrNotFound is returned when NeoWs has no object with the requested ID.
var ErrNotFound = errors.New("near-earth object not found")

// Client talks to NASA's NeoWs REST API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a NeoWs client limited to ratePerSec requests per second.
func NewClient(apiKey, baseURL string, timeout time.Duration, ratePerSec float64, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), 1),
		metrics: metrics,
		logger:  logger,
	}
}

// Feed lists the objects with close approaches between start and end
// (inclusive), ordered by approach date.
func (c *Client) Feed(ctx context.Context, start, end time.Time) ([]domain.NEO, error) {
	start, end = start.UTC().Truncate(24*time.Hour), end.UTC().Truncate(24*time.Hour)
	if end.Before(start) {
		return nil, fmt.Errorf("feed window: end %s before start %s", end.Format(dateLayout), start.Format(dateLayout))
	}
	if end.Sub(start) > MaxFeedDays*24*time.Hour {
		return nil, fmt.Errorf("feed window: at most %d days", MaxFeedDays)
	}

	params := url.Values{
		"start_date": {start.Format(dateLayout)},
		"end_date":   {end.Format(dateLayout)},
		"api_key":    {c.apiKey},
	}

	var resp feedResponse
	if err := c.doRequest(ctx, c.baseURL+"/feed?"+params.Encode(), "feed", &resp); err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(resp.NearEarthObjects))
	for d := range resp.NearEarthObjects {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]domain.NEO, 0, resp.ElementCount)
	for _, d := range dates {
		out = append(out, resp.NearEarthObjects[d]...)
	}
	return out, nil
}

// Lookup fetches a single object by its NeoWs ID.
func (c *Client) Lookup(ctx context.Context, id string) (domain.NEO, error) {
	if id == "" {
		return domain.NEO{}, errors.New("lookup: empty id")
	}
	u := fmt.Sprintf("%s/neo/%s?%s", c.baseURL, url.PathEscape(id), url.Values{"api_key": {c.apiKey}}.Encode())

	var n domain.NEO
	if err := c.doRequest(ctx, u, "lookup", &n); err != nil {
		return domain.NEO{}, err
	}
	return n, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL, method string, into any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limit: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.NEOAPIDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.NEORequests.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("neo %s request: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.metrics.NEORequests.WithLabelValues(method, "not_found").Inc()
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.metrics.NEORequests.WithLabelValues(method, "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("neows error response", "method", method, "status", resp.StatusCode)
		return fmt.Errorf("neows API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		c.metrics.NEORequests.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("decode %s response: %w", method, err)
	}

	c.metrics.NEORequests.WithLabelValues(method, "success").Inc()
	return nil
}

// NeoWs feed response envelope.
type feedResponse struct {
	ElementCount     int                     `json:"element_count"`
	NearEarthObjects map[string][]domain.NEO `json:"near_earth_objects"`
}
