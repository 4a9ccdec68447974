package apiclient

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/meupdi/pdi/core/sessiontransport"
	"github.com/meupdi/pdi/pkg/broadcast"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client. The client is copied, so
// installing a cookie jar or timeout never mutates the caller's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTransport sets how the credential rides requests. Default is a Bearer transport.
func WithTransport(t sessiontransport.Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBroadcaster sets where session events are published.
// Default is an in-memory broadcaster owned by the client.
func WithBroadcaster(b broadcast.Broadcaster[SessionEvent]) Option {
	return func(c *Client) {
		if b != nil {
			c.events = b
			c.ownsEvents = false
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithRefreshPath overrides the refresh endpoint. Default is "/api/auth/refresh".
func WithRefreshPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.refreshPath = path
		}
	}
}

// WithTimeout bounds each HTTP exchange. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithSingleFlightRefresh makes concurrent 401s share one refresh call.
// Off by default: every request that sees a 401 runs its own refresh.
func WithSingleFlightRefresh(enabled bool) Option {
	return func(c *Client) {
		c.singleFlight = enabled
	}
}

// WithDefaultHeader adds a header sent with every request.
func WithDefaultHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}
