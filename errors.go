package gist

import (
	"fmt"
	"net/http"
)

// HTTPError is the base failure for any non-2xx response from the API. The
// raw response body is kept verbatim for diagnostics. Status 404 and 403 are
// surfaced as NotFoundError and ForbiddenError, which unwrap to *HTTPError so
// callers can catch broadly with errors.As.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server error: %s: %s", e.Status, e.Body)
}

// NotFoundError is returned when the API responds with 404.
type NotFoundError struct {
	HTTPError
}

func (e *NotFoundError) Unwrap() error { return &e.HTTPError }

// ForbiddenError is returned when the API responds with 403.
type ForbiddenError struct {
	HTTPError
}

func (e *ForbiddenError) Unwrap() error { return &e.HTTPError }

func newHTTPError(resp *http.Response, body []byte) error {
	base := HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return &NotFoundError{base}
	case http.StatusForbidden:
		return &ForbiddenError{base}
	}
	return &base
}

// DecodeError signals a malformed entity payload from the API, such as a
// gist or comment object missing its id. This is a contract violation by the
// upstream, distinct from the HTTP error taxonomy: a missing gist is a 404,
// never a DecodeError.
type DecodeError struct {
	Entity string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %s", e.Entity, e.Reason)
}
