package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/meupdi/pdi/core/logger"
	"github.com/meupdi/pdi/core/session"
	"github.com/meupdi/pdi/core/sessiontransport"
	"github.com/meupdi/pdi/pkg/broadcast"
)

// HeaderRequestID carries a per-send id, identical on the replay after a refresh.
const HeaderRequestID = "X-Request-ID"

const eventBuffer = 16

type jarProvider interface {
	Jar() http.CookieJar
}

// Client sends requests to the PDI API and recovers from expired sessions
// by refreshing once and replaying the request.
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	sessions     *session.Manager
	transport    sessiontransport.Transport
	events       broadcast.Broadcaster[SessionEvent]
	ownsEvents   bool
	metrics      *Metrics
	logger       *slog.Logger
	headers      http.Header
	refreshPath  string
	timeout      time.Duration
	singleFlight bool
	flight       singleflight.Group
	now          func() time.Time
}

// New creates a client for the API at baseURL.
func New(baseURL string, sessions *session.Manager, opts ...Option) (*Client, error) {
	if sessions == nil {
		return nil, ErrNilSessions
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidBaseURL
	}

	c := &Client{
		baseURL:     u,
		httpClient:  &http.Client{},
		sessions:    sessions,
		transport:   sessiontransport.NewBearer(),
		events:      broadcast.NewMemoryBroadcaster[SessionEvent](eventBuffer),
		ownsEvents:  true,
		logger:      logger.Nop(),
		headers:     http.Header{},
		refreshPath: DefaultRefreshPath,
		now:         time.Now,
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	if jp, ok := c.transport.(jarProvider); ok && hc.Jar == nil {
		hc.Jar = jp.Jar()
	}
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = &hc

	return c, nil
}

// Sessions returns the session manager the client reads credentials from.
func (c *Client) Sessions() *session.Manager {
	return c.sessions
}

// UsesToken reports whether the server hands out tokens (bearer variant)
// rather than cookies.
func (c *Client) UsesToken() bool {
	return c.transport.UsesToken()
}

// RefreshPath returns the refresh endpoint path.
func (c *Client) RefreshPath() string {
	return c.refreshPath
}

// Subscribe returns a subscriber for session events.
func (c *Client) Subscribe(ctx context.Context) broadcast.Subscriber[SessionEvent] {
	return c.events.Subscribe(ctx)
}

// Close releases the event broadcaster when the client created it.
func (c *Client) Close() error {
	if c.ownsEvents {
		return c.events.Close()
	}
	return nil
}

// Send dispatches req. A 401 on the first attempt triggers one refresh cycle
// followed by one replay; the replay's outcome is returned as is.
//
// Errors: ErrTransport when no response arrived; *APIError for status >= 400;
// ErrAuthRejected joined with ErrRefreshFailed when the refresh failed (on a
// refresh 401 the session has also been cleared and SessionExpired published),
// or with the replay's *APIError when the replay was answered 401 again.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	a := attempt{req: req, requestID: uuid.NewString()}
	resp, err := c.dispatch(ctx, a)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || req.noRefresh {
		return resp, statusError(resp)
	}

	a.retried = true
	if err := c.Refresh(ctx); err != nil {
		if errors.Is(err, ErrRefreshFailed) {
			return resp, errors.Join(ErrAuthRejected, err)
		}
		return resp, err
	}

	resp, err = c.dispatch(ctx, a)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return resp, errors.Join(ErrAuthRejected, newAPIError(resp))
	}
	return resp, statusError(resp)
}

// JSON sends in as the JSON body (nil sends none) and decodes the response into out (nil skips).
func (c *Client) JSON(ctx context.Context, method, path string, in, out any) error {
	req := NewRequest(method, path)
	if in != nil {
		var err error
		if req, err = req.WithJSON(in); err != nil {
			return fmt.Errorf("apiclient: encode request: %w", err)
		}
	}

	resp, err := c.Send(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

// Ping reports whether the API answers at all. Any HTTP status counts;
// only a failed exchange is an error.
func (c *Client) Ping(ctx context.Context) error {
	a := attempt{req: NewRequest(http.MethodGet, "/").WithoutRefresh(), requestID: uuid.NewString()}
	_, err := c.dispatch(ctx, a)
	return err
}

// ClearSession forgets the credential locally and publishes SessionEnded.
func (c *Client) ClearSession(ctx context.Context, reason string) error {
	err := c.forget(ctx)
	c.publish(ctx, SessionEnded, reason)
	return err
}

// dispatch performs one HTTP exchange with the current credential attached.
func (c *Client) dispatch(ctx context.Context, a attempt) (*Response, error) {
	httpReq, err := c.newHTTPRequest(ctx, a)
	if err != nil {
		return nil, err
	}
	token := c.sessions.Get(ctx)
	c.transport.Attach(httpReq, token)

	log := c.logger.With(
		logger.Method(a.req.Method),
		logger.Path(a.req.Path),
		logger.RequestID(a.requestID),
		logger.Attempt(a.number()),
	)

	start := c.now()
	resp, err := c.roundTrip(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observeRequest(a.req.Method, 0, elapsed)
		log.WarnContext(ctx, "request failed", logger.Error(err), logger.Duration(elapsed))
		return nil, errors.Join(ErrTransport, err)
	}

	c.metrics.observeRequest(a.req.Method, resp.StatusCode, elapsed)
	log.DebugContext(ctx, "request completed",
		logger.StatusCode(resp.StatusCode),
		logger.HasToken(token != ""),
		logger.Duration(elapsed),
	)
	return resp, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, a attempt) (*http.Request, error) {
	target, err := c.resolve(a.req.Path)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(a.req.Body) > 0 {
		body = bytes.NewReader(a.req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, a.req.Method, target, body)
	if err != nil {
		return nil, errors.Join(ErrInvalidRequest, err)
	}

	for k, v := range c.headers {
		httpReq.Header[k] = append([]string(nil), v...)
	}
	for k, v := range a.req.Header {
		httpReq.Header[k] = append([]string(nil), v...)
	}
	httpReq.Header.Set(HeaderRequestID, a.requestID)
	return httpReq, nil
}

func (c *Client) roundTrip(httpReq *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// resolve joins path onto the base URL, keeping any base path prefix.
func (c *Client) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", errors.Join(ErrInvalidRequest, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	u := *c.baseURL
	u.Path = strings.TrimSuffix(c.baseURL.Path, "/") + "/" + strings.TrimPrefix(ref.Path, "/")
	u.RawPath = ""
	u.RawQuery = ref.RawQuery
	u.Fragment = ""
	return u.String(), nil
}
