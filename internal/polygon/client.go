package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pyweop/polypulse/internal/domain/models"
)

// DefaultBaseURL is the production Polygon.io REST endpoint.
const DefaultBaseURL = "https://api.polygon.io"

// Config holds the access details for the Polygon.io REST API.
type Config struct {
	APIKey  string // credential, sent as the apiKey query parameter
	BaseURL string // scheme://host prefix; DefaultBaseURL when empty
}

// Client issues single-shot GET requests against the Polygon.io REST API.
//
// Request URLs are built by plain string interpolation: callers are
// responsible for supplying URL-safe tickers, dates, and keys. Values are
// substituted verbatim, without percent-encoding.
//
// Every operation issues exactly one request. There is no retry, no
// pagination (next_url is decoded but never followed), and no caching.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient constructs a Client from cfg and an HTTP client.
//
// Parameters:
//   - cfg: API key and base URL. An empty BaseURL falls back to DefaultBaseURL.
//   - httpClient: transport to use; nil falls back to NewHTTPClient(0),
//     i.e. no overall timeout.
//
// Returns:
//   - *Client: a client safe for concurrent use.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return &Client{cfg: cfg, http: httpClient}
}

// AggsOptions tunes the aggregates request.
//
// Zero values reproduce the fixed /range/1/day template: Multiplier defaults
// to 1, Timespan to "day". Adjusted is tri-state: nil leaves the parameter
// out entirely, otherwise adjusted=true|false is placed before apiKey.
type AggsOptions struct {
	Multiplier int
	Timespan   string
	Adjusted   *bool
}

// FinancialsQuery selects the filings to fetch.
type FinancialsQuery struct {
	Ticker    string
	Limit     int
	Timeframe string // annual, quarterly, or ttm; empty omits the parameter
}

// SplitsQuery filters the splits listing. Ticker and every date filter are
// optional; set fields are appended to the URL in declaration order.
type SplitsQuery struct {
	Ticker           string
	Limit            int
	ExecutionDateGT  string
	ExecutionDateGTE string
	ExecutionDateLT  string
	ExecutionDateLTE string
}

// NewsQuery selects news articles, optionally restricted to one ticker.
type NewsQuery struct {
	Ticker string
	Limit  int
}

// Aggregates fetches OHLCV bars for ticker between from and to (inclusive,
// YYYY-MM-DD).
//
// Behavior:
//   - Builds {base}/v2/aggs/ticker/{ticker}/range/{mult}/{timespan}/{from}/{to}
//     with the key as the trailing query parameter.
//   - The HTTP status code is not inspected: a non-200 reply carries a
//     non-conforming body and surfaces as a decode failure. Network and
//     decode failures are one undifferentiated error class to callers.
//   - The body is decoded strictly (models.AggregateResponse): a missing
//     schema key or type mismatch fails the whole call, unknown keys are
//     ignored.
func (c *Client) Aggregates(ctx context.Context, ticker, from, to string, opts AggsOptions) (*models.AggregateResponse, error) {
	multiplier := opts.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	timespan := opts.Timespan
	if timespan == "" {
		timespan = "day"
	}
	var adjusted string
	if opts.Adjusted != nil {
		adjusted = fmt.Sprintf("adjusted=%t&", *opts.Adjusted)
	}

	u := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/%d/%s/%s/%s?%sapiKey=%s",
		c.cfg.BaseURL, ticker, multiplier, timespan, from, to, adjusted, c.cfg.APIKey)

	res, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch aggregates: %w", err)
	}
	defer closeBody(res)

	var out models.AggregateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("fetch aggregates: decode response: %w", err)
	}
	return &out, nil
}

// TickerDetails fetches the reference record for one ticker.
func (c *Client) TickerDetails(ctx context.Context, ticker string) (*models.TickerDetailsResponse, error) {
	u := fmt.Sprintf("%s/v3/reference/tickers/%s?apiKey=%s", c.cfg.BaseURL, ticker, c.cfg.APIKey)

	var out models.TickerDetailsResponse
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetch ticker details: %w", err)
	}
	return &out, nil
}

// Financials fetches filing records for q.Ticker. The timeframe parameter is
// appended only when set.
func (c *Client) Financials(ctx context.Context, q FinancialsQuery) (*models.FinancialsResponse, error) {
	u := fmt.Sprintf("%s/vX/reference/financials?ticker=%s&limit=%d&apiKey=%s",
		c.cfg.BaseURL, q.Ticker, q.Limit, c.cfg.APIKey)
	if q.Timeframe != "" {
		u += "&timeframe=" + q.Timeframe
	}

	var out models.FinancialsResponse
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetch financials: %w", err)
	}
	return &out, nil
}

// Splits fetches split events. Optional filters are appended in a fixed
// order: ticker, then execution_date gt, gte, lt, lte.
func (c *Client) Splits(ctx context.Context, q SplitsQuery) (*models.SplitsResponse, error) {
	u := fmt.Sprintf("%s/v3/reference/splits?limit=%d&apiKey=%s", c.cfg.BaseURL, q.Limit, c.cfg.APIKey)
	if q.Ticker != "" {
		u += "&ticker=" + q.Ticker
	}
	for _, f := range []struct{ op, value string }{
		{"gt", q.ExecutionDateGT},
		{"gte", q.ExecutionDateGTE},
		{"lt", q.ExecutionDateLT},
		{"lte", q.ExecutionDateLTE},
	} {
		if f.value != "" {
			u += "&execution_date." + f.op + "=" + f.value
		}
	}

	var out models.SplitsResponse
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetch splits: %w", err)
	}
	return &out, nil
}

// Dividends fetches up to limit dividend declarations for ticker.
func (c *Client) Dividends(ctx context.Context, ticker string, limit int) (*models.DividendsResponse, error) {
	u := fmt.Sprintf("%s/v3/reference/dividends?ticker=%s&limit=%d&apiKey=%s",
		c.cfg.BaseURL, ticker, limit, c.cfg.APIKey)

	var out models.DividendsResponse
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetch dividends: %w", err)
	}
	return &out, nil
}

// News fetches recent articles. Without a ticker the parameter is omitted
// entirely and the listing is market-wide.
func (c *Client) News(ctx context.Context, q NewsQuery) (*models.NewsResponse, error) {
	var u string
	if q.Ticker != "" {
		u = fmt.Sprintf("%s/v2/reference/news?ticker=%s&limit=%d&apiKey=%s", c.cfg.BaseURL, q.Ticker, q.Limit, c.cfg.APIKey)
	} else {
		u = fmt.Sprintf("%s/v2/reference/news?limit=%d&apiKey=%s", c.cfg.BaseURL, q.Limit, c.cfg.APIKey)
	}

	var out models.NewsResponse
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	return &out, nil
}

// get issues one GET against u with ctx attached.
func (c *Client) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}

// getJSON issues one GET and decodes the body into out. Unlike Aggregates,
// the reference endpoints reject non-200 replies up front, carrying the
// status code and raw body text in the error.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	res, err := c.get(ctx, u)
	if err != nil {
		return err
	}
	defer closeBody(res)

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("api request failed with status code %d: %s", res.StatusCode, string(body))
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func closeBody(res *http.Response) {
	_ = res.Body.Close()
}
