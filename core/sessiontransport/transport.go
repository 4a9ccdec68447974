package sessiontransport

import "net/http"

// Transport attaches the credential to outgoing requests.
type Transport interface {
	// Attach adds token to req. An empty token attaches nothing.
	Attach(req *http.Request, token string)
	// Reset forgets any credential the transport holds itself.
	Reset() error
	// UsesToken reports whether the server hands the credential to the
	// client as a token in response bodies.
	UsesToken() bool
}
