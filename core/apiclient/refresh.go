package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/meupdi/pdi/core/logger"
	"github.com/meupdi/pdi/pkg/broadcast"
)

const refreshFlightKey = "refresh"

// Refresh runs one refresh cycle. On success the new token (bearer variant)
// is stored and SessionRefreshed published. Any failure wraps ErrRefreshFailed;
// only a 401 from the refresh endpoint (or no stored token) also clears the
// session and publishes SessionExpired.
// A cancelled ctx aborts the cycle without touching the session.
func (c *Client) Refresh(ctx context.Context) error {
	if !c.singleFlight {
		return c.refreshCycle(ctx)
	}

	ch := c.flight.DoChan(refreshFlightKey, func() (any, error) {
		return nil, c.refreshCycle(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return errors.Join(ErrTransport, ctx.Err())
	}
}

func (c *Client) refreshCycle(ctx context.Context) error {
	err := c.requestRefresh(ctx)
	if err == nil {
		c.metrics.observeRefresh(refreshSuccess)
		c.publish(ctx, SessionRefreshed, "")
		return nil
	}
	if ctx.Err() != nil {
		return err
	}

	c.metrics.observeRefresh(refreshFailure)
	if !revoked(err) {
		c.logger.WarnContext(ctx, "session refresh failed, keeping session",
			logger.Component("apiclient"),
			logger.Error(err),
		)
		return errors.Join(ErrRefreshFailed, err)
	}

	c.logger.WarnContext(ctx, "session rejected by refresh, clearing session",
		logger.Component("apiclient"),
		logger.Error(err),
	)
	if ferr := c.forget(ctx); ferr != nil {
		c.logger.ErrorContext(ctx, "failed to clear session", logger.Error(ferr))
	}
	c.publish(ctx, SessionExpired, err.Error())
	return errors.Join(ErrRefreshFailed, err)
}

// revoked reports whether a refresh failure proves the credential is gone:
// the refresh endpoint answered 401, or there was nothing to refresh with.
// Server errors, transport failures and malformed replies keep the session.
func revoked(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized || errors.Is(err, ErrNoCredential)
}

// requestRefresh calls the refresh endpoint once. The call itself is never retried.
func (c *Client) requestRefresh(ctx context.Context) error {
	if c.transport.UsesToken() && c.sessions.Get(ctx) == "" {
		return ErrNoCredential
	}

	a := attempt{
		req:       NewRequest(http.MethodGet, c.refreshPath),
		requestID: uuid.NewString(),
	}
	resp, err := c.dispatch(ctx, a)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return newAPIError(resp)
	}
	if !c.transport.UsesToken() {
		return nil
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := resp.Decode(&body); err != nil {
		return err
	}
	if body.Token == "" {
		return ErrMissingToken
	}
	return c.sessions.Set(ctx, body.Token)
}

func (c *Client) forget(ctx context.Context) error {
	err := c.sessions.Clear(ctx)
	if rerr := c.transport.Reset(); rerr != nil {
		err = errors.Join(err, rerr)
	}
	return err
}

func (c *Client) publish(ctx context.Context, kind SessionEventKind, reason string) {
	ev := SessionEvent{Kind: kind, Reason: reason, At: c.now()}
	if err := c.events.Broadcast(context.WithoutCancel(ctx), broadcast.Message[SessionEvent]{Data: ev}); err != nil {
		c.logger.DebugContext(ctx, "session event not delivered",
			logger.Event(string(kind)),
			logger.Error(err),
		)
	}
}
