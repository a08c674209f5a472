package kapaipai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/mong0520/kapaipai-api/internal/metrics"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

const (
	defaultSearchURL   = "https://trade.kapaipai.tw/api/card/getFilteredList"
	defaultListingsURL = "https://trade.kapaipai.tw/api/product/listProduct"
	defaultGame        = "pkmtw"
	defaultTimeout     = 10 * time.Second

	defaultUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 18_7 like Mac OS X) " +
		"AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"

	endpointSearch   = "search"
	endpointListings = "listings"
)

// Client implements Catalog against the kapaipai.tw HTTP API. It performs no
// retries; every call is bounded by its own timeout.
type Client struct {
	searchURL   string
	listingsURL string
	game        string
	timeout     time.Duration
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the Client.
type Option func(*Client)

// WithSearchURL overrides the card search endpoint.
func WithSearchURL(u string) Option {
	return func(c *Client) {
		c.searchURL = u
	}
}

// WithListingsURL overrides the product listing endpoint.
func WithListingsURL(u string) Option {
	return func(c *Client) {
		c.listingsURL = u
	}
}

// WithGame overrides the game code sent with every request.
func WithGame(g string) Option {
	return func(c *Client) {
		c.game = g
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter makes every call wait on r first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// NewClient creates a new marketplace client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		searchURL:   defaultSearchURL,
		listingsURL: defaultListingsURL,
		game:        defaultGame,
		timeout:     defaultTimeout,
		client:      &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search implements Catalog.Search.
func (c *Client) Search(ctx context.Context, name string) ([]domain.CardVariant, error) {
	params := url.Values{}
	params.Set("game", c.game)
	params.Set("name", name)

	var data SearchData
	if err := c.get(ctx, endpointSearch, c.searchURL, params, &data); err != nil {
		return nil, err
	}
	return ToVariants(data.List), nil
}

// FetchListings implements Catalog.FetchListings.
func (c *Client) FetchListings(ctx context.Context, req ListingsRequest) (*ListingsResponse, error) {
	var data ProductData
	if err := c.get(ctx, endpointListings, c.listingsURL, c.listingsParams(req), &data); err != nil {
		return nil, err
	}
	return &ListingsResponse{
		Listings: ToListings(data.Products),
		Total:    data.Total,
	}, nil
}

func (c *Client) listingsParams(req ListingsRequest) url.Values {
	params := url.Values{}
	params.Set("cardKey", req.CardKey)
	params.Set("rare", req.Rare)
	params.Set("pageSize", "-1")
	params.Set("page", "1")
	params.Set("game", c.game)
	if req.PackID != "" {
		params.Set("packId", req.PackID)
	}
	if req.PackCardID != "" {
		params.Set("packCardId", req.PackCardID)
	}
	return params
}

func (c *Client) get(
	ctx context.Context,
	endpoint, base string,
	params url.Values,
	out any,
) (err error) {
	start := time.Now()
	defer func() {
		metrics.MarketplaceCallDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		metrics.MarketplaceCallsTotal.WithLabelValues(endpoint, outcome(err)).Inc()
	}()

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrCallBudgetExhausted) {
				metrics.MarketplaceBudgetHits.Inc()
			}
			return &UpstreamError{Op: endpoint, Err: fmt.Errorf("rate limit: %w", err)}
		}
		metrics.MarketplaceDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return &UpstreamError{Op: endpoint, Err: fmt.Errorf("creating HTTP request: %w", err)}
	}
	setBrowserHeaders(httpReq, c.game)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return &UpstreamError{Op: endpoint, Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Op: endpoint, Timeout: isTimeout(err), Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Op: endpoint, StatusCode: resp.StatusCode}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &ProtocolError{Op: endpoint, Code: -1, Message: fmt.Sprintf("parsing response: %v", err)}
	}
	if env.Code != 0 {
		return &ProtocolError{Op: endpoint, Code: env.Code, Message: env.message()}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &ProtocolError{Op: endpoint, Code: env.Code, Message: fmt.Sprintf("parsing payload: %v", err)}
	}
	return nil
}

func setBrowserHeaders(req *http.Request, game string) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Referer", "https://trade.kapaipai.tw/card/"+game)
	req.Header.Set("Accept-Language", "zh-TW,zh-Hant;q=0.9")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUpstreamProtocol):
		return "protocol_error"
	default:
		return "upstream_error"
	}
}
