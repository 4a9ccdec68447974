package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/meupdi/pdi/core/logger"
)

// Manager exposes the credential operations the request client and auth flows use.
type Manager struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used to report storage failures.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager wraps store.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		logger: logger.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the current credential or "" when there is none.
// Storage failures are logged and treated as logged out.
func (m *Manager) Get(ctx context.Context) string {
	sess, err := m.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.WarnContext(ctx, "credential store unavailable, treating as logged out",
				logger.Component("session"),
				logger.Error(err),
			)
		}
		return ""
	}
	return sess.Token
}

// Set overwrites the stored credential.
func (m *Manager) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return m.store.Save(ctx, Session{Token: token, UpdatedAt: m.now()})
}

// Clear removes the stored credential. Clearing an empty store is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// IsAuthenticated reports whether a credential is stored.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.Get(ctx) != ""
}

// Identity returns the claims of the stored credential.
func (m *Manager) Identity(ctx context.Context) (Identity, error) {
	token := m.Get(ctx)
	if token == "" {
		return Identity{}, ErrNotAuthenticated
	}
	return ParseIdentity(token)
}
