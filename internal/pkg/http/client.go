package http

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brickroad/brickroad/internal/pkg/logger"
	nrpkg "github.com/brickroad/brickroad/internal/pkg/newrelic"
	"github.com/brickroad/brickroad/internal/pkg/requestcontext"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// Config configures a Client
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a JSON HTTP client bound to one upstream provider.
// It is safe for concurrent use.
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &nethttp.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		userAgent:  config.UserAgent,
	}
}

// HTTPError is returned when the upstream answers with a non-2xx status
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %s", e.Status)
}

// URL joins the base URL, endpoint and query
func (c *Client) URL(endpoint string, query url.Values) string {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Get performs a GET request; the caller closes the response body
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*nethttp.Response, error) {
	target := c.URL(endpoint, query)

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	logger.DebugCtx(ctx, "Making HTTP request",
		logger.String("method", req.Method),
		logger.String("url", target))

	start := time.Now()
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.WarnCtx(ctx, "HTTP request failed",
			logger.String("url", target),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.DebugCtx(ctx, "HTTP request completed",
		logger.String("url", target),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("elapsed", time.Since(start)))

	return resp, nil
}

// GetJSON performs a GET request and decodes the JSON body into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, query url.Values, result interface{}) error {
	resp, err := c.Get(ctx, endpoint, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
