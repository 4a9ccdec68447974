package apiclient

import (
	"encoding/json"
	"net/http"
)

// Request describes one call to the remote API. It is a value: the With
// methods return modified copies and never touch the receiver.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte

	noRefresh bool
}

// NewRequest creates a request for method and path, where path is resolved
// against the client's base URL.
func NewRequest(method, path string) Request {
	return Request{Method: method, Path: path}
}

// WithHeader returns a copy with the header set.
func (r Request) WithHeader(key, value string) Request {
	h := r.Header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Set(key, value)
	r.Header = h
	return r
}

// WithBody returns a copy carrying body.
func (r Request) WithBody(body []byte) Request {
	r.Body = append([]byte(nil), body...)
	return r
}

// WithJSON returns a copy carrying v encoded as JSON.
func (r Request) WithJSON(v any) (Request, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return r, err
	}
	r.Body = body
	return r, nil
}

// WithoutRefresh returns a copy whose 401 is returned as an *APIError
// instead of starting a refresh cycle. Login and registration use it.
func (r Request) WithoutRefresh() Request {
	r.noRefresh = true
	return r
}

func (r Request) validate() error {
	if r.Method == "" || r.Path == "" {
		return ErrInvalidRequest
	}
	return nil
}

// attempt is one logical send. The retry marker lives here, not on Request,
// and the request id stays the same for the replay.
type attempt struct {
	req       Request
	requestID string
	retried   bool
}

func (a attempt) number() int {
	if a.retried {
		return 2
	}
	return 1
}
