package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for the two statuses the API uses for success
// (200 and 204) and an [ErrHTTPStatus] error for anything else, including
// other 2xx codes.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code == http.StatusOK || code == http.StatusNoContent {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	var sentinel error
	switch code {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusServiceUnavailable:
		sentinel = ErrServiceUnavailable
	default:
		return fmt.Errorf("%w %d: %s", ErrHTTPStatus, code, body)
	}

	return fmt.Errorf("%w %d: %w: %s", ErrHTTPStatus, code, sentinel, body)
}
