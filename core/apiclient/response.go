package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is below 400.
func (r *Response) OK() bool {
	return r.StatusCode < http.StatusBadRequest
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}
