package adapter

import "errors"

// ErrHTTPStatus wraps every response whose status is neither 200 nor 204.
// The status-specific sentinels below are wrapped alongside it.
var ErrHTTPStatus = errors.New("unexpected http status")

// ErrTransport wraps faults below HTTP: connection refused, TLS handshake
// failures, timeouts and cancellation.
var ErrTransport = errors.New("transport error")

// ErrInvalidEndpoint indicates the create response did not describe an
// endpoint (empty or undecodable body, missing uuid).
var ErrInvalidEndpoint = errors.New("invalid endpoint in response")

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
