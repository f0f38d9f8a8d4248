package twitter

import "time"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   30 * time.Second,
		userAgent: "twitterctl",
	}
}

// WithBaseURL overrides the API root, e.g. for a proxy or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
// It only applies when NewClient creates the http.Client itself.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}
