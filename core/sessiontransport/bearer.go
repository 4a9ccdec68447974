package sessiontransport

import "net/http"

const (
	defaultHeaderName = "Authorization"
	bearerScheme      = "Bearer"
)

// Bearer sends the token in a request header.
type Bearer struct {
	headerName   string
	bearerPrefix bool
}

// BearerOption configures the Bearer transport.
type BearerOption func(*Bearer)

// WithHeaderName sets a custom header name for the token.
// Default is "Authorization".
func WithHeaderName(name string) BearerOption {
	return func(b *Bearer) {
		if name != "" {
			b.headerName = name
		}
	}
}

// WithBearerPrefix controls whether to use "Bearer " prefix.
// Default is true.
func WithBearerPrefix(usePrefix bool) BearerOption {
	return func(b *Bearer) {
		b.bearerPrefix = usePrefix
	}
}

// NewBearer creates a header-based transport.
func NewBearer(opts ...BearerOption) *Bearer {
	b := &Bearer{
		headerName:   defaultHeaderName,
		bearerPrefix: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach sets the header, replacing any previous value.
func (b *Bearer) Attach(req *http.Request, token string) {
	if token == "" {
		req.Header.Del(b.headerName)
		return
	}
	if b.bearerPrefix {
		token = bearerScheme + " " + token
	}
	req.Header.Set(b.headerName, token)
}

func (b *Bearer) Reset() error { return nil }

func (b *Bearer) UsesToken() bool { return true }
