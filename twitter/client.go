package twitter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the root of the v1.1 REST API
const DefaultBaseURL = "https://api.twitter.com/1.1/"

// Client performs the raw HTTP calls against the Twitter API.
// Authentication is the job of the http.Client passed to NewClient, see
// NewUserHTTPClient and NewAppHTTPClient.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger

	// Statuses is the raw statuses endpoint
	Statuses *StatusesRawEndpoint
	// Geocode is the raw geo endpoint
	Geocode *GeocodeRawEndpoint
}

// NewClient creates a new Twitter client. A nil httpClient gets a plain
// client with the configured timeout, which is only useful against
// endpoints or proxies that do not require signing.
func NewClient(httpClient *http.Client, logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if strings.TrimSpace(options.baseURL) == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	base, err := url.Parse(options.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", ErrInvalidConfig, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL must be absolute: %s", ErrInvalidConfig, options.baseURL)
	}

	// Relative paths resolve against the last segment, so keep the trailing slash
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	c := &Client{
		baseURL:    base,
		httpClient: httpClient,
		userAgent:  options.userAgent,
		logger:     logger,
	}
	c.Statuses = &StatusesRawEndpoint{client: c}
	c.Geocode = &GeocodeRawEndpoint{client: c}

	return c, nil
}

// BaseURL returns the API root requests are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Do performs a single request. For GET and DELETE the params become the
// query string; for other methods they are sent as a form body. Any HTTP
// status is returned as a Response; only transport failures are errors.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values) (*Response, error) {
	endpoint, err := c.baseURL.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to build URL for %s: %w", path, err)
	}

	var body io.Reader
	if method == http.MethodGet || method == http.MethodDelete {
		if len(params) > 0 {
			endpoint.RawQuery = params.Encode()
		}
	} else if len(params) > 0 {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	response := newResponse(resp, data)

	c.logger.Debug().
		Str("method", method).
		Str("path", endpoint.Path).
		Int("status", response.StatusCode).
		Int("rate_limit_remaining", response.RateLimit.Remaining).
		Msg("Twitter API request")

	return response, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, params)
}

func (c *Client) post(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, params)
}
