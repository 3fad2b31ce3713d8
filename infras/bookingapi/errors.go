package bookingapi

import (
	"fmt"
	"net/http"
	"roombooking/shared/failure"
)

// APIError is a non-2xx answer from the booking API.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}

	return msg
}

// Unwrap exposes the matching failure so failure.GetCode works on wrapped api errors.
// Upstream server errors become 502.
func (e *APIError) Unwrap() error {
	code := e.StatusCode
	if code >= http.StatusInternalServerError {
		code = http.StatusBadGateway
	}

	message := e.Body
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}

	return failure.New(code, message)
}
