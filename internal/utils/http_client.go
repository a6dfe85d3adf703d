package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithInsecureTLS(true)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithInsecureTLS turns server certificate verification off when insecure
// is true. Returns the receiver for chaining.
func (c *HTTPClient) WithInsecureTLS(insecure bool) *HTTPClient {
	if insecure {
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-out is the documented default
	}
	return c
}

// WithTimeout bounds every request made by the client. A zero timeout
// leaves requests unbounded. Returns the receiver for chaining.
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	c.SetTimeout(timeout)
	return c
}
