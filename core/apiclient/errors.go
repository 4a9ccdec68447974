package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrTransport is returned when the request never produced an HTTP response.
	ErrTransport = errors.New("apiclient: transport failure")
	// ErrAuthRejected is returned when the server keeps answering 401 after the refresh cycle.
	ErrAuthRejected = errors.New("apiclient: authentication rejected")
	// ErrRefreshFailed is joined with ErrAuthRejected when the refresh endpoint did not issue a new session.
	ErrRefreshFailed = errors.New("apiclient: session refresh failed")
	// ErrNoCredential is returned by a token refresh when no credential is stored.
	ErrNoCredential = errors.New("apiclient: no stored credential")
	// ErrMissingToken is returned when a successful auth response carries no token.
	ErrMissingToken = errors.New("apiclient: response carries no token")
	// ErrInvalidBaseURL is returned by New for a base URL without scheme or host.
	ErrInvalidBaseURL = errors.New("apiclient: invalid base url")
	// ErrNilSessions is returned by New when no session manager is given.
	ErrNilSessions = errors.New("apiclient: nil session manager")
	// ErrInvalidRequest is returned by Send for a request without method or path.
	ErrInvalidRequest = errors.New("apiclient: invalid request")
	// ErrDecode is returned when a response body does not decode into the target.
	ErrDecode = errors.New("apiclient: decode response")
)

// APIError is a response the server answered with status >= 400.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("apiclient: %d %s", e.StatusCode, e.Message)
}

// newAPIError reads the server message from {"error": "..."} or {"message": "..."} bodies.
func newAPIError(resp *Response) *APIError {
	e := &APIError{StatusCode: resp.StatusCode, Body: resp.Body}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(resp.Body, &payload) == nil {
		e.Message = payload.Error
		if e.Message == "" {
			e.Message = payload.Message
		}
	}
	if e.Message == "" {
		e.Message = strings.ToLower(http.StatusText(resp.StatusCode))
	}
	return e
}

// statusError returns nil for status < 400 and an *APIError otherwise.
func statusError(resp *Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	return newAPIError(resp)
}

// StatusCode extracts the HTTP status from an *APIError in err's tree, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
