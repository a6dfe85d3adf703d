package utils

import (
	"github.com/MKhiriev/go-endpoint-provisioner/internal/logger"
	"github.com/go-resty/resty/v2"
)

// WithLogging logs every completed request at debug level and every failed
// one at error level. Request bodies are never logged; they may carry
// credentials. Returns the receiver for chaining.
func (c *HTTPClient) WithLogging(log *logger.Logger) *HTTPClient {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("url", resp.Request.URL).
			Str("method", resp.Request.Method).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int64("size", resp.Size()).
			Send()
		return nil
	})

	c.OnError(func(req *resty.Request, err error) {
		log.Error().
			Err(err).
			Str("url", req.URL).
			Str("method", req.Method).
			Msg("request failed")
	})

	return c
}
