package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meupdi/pdi/core/session"
	"github.com/meupdi/pdi/pkg/secrets"
)

// DefaultSessionKey is the key the credential is stored under.
const DefaultSessionKey = "pdi:session"

// Commander is the subset of go-redis commands the session store uses.
// *redis.Client and *redis.ClusterClient satisfy it.
type Commander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type record struct {
	Token     string    `json:"authToken"`
	Encrypted bool      `json:"encrypted,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionStore keeps the credential in Redis.
type SessionStore struct {
	client    Commander
	key       string
	ttl       time.Duration
	appKey    []byte
	deviceKey []byte
}

// SessionStoreOption configures a SessionStore.
type SessionStoreOption func(*SessionStore)

// WithKey sets the Redis key.
func WithKey(key string) SessionStoreOption {
	return func(s *SessionStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithTTL expires the stored credential after ttl. Zero keeps it until deleted.
func WithTTL(ttl time.Duration) SessionStoreOption {
	return func(s *SessionStore) {
		s.ttl = ttl
	}
}

// WithEncryption encrypts the token with AES-256-GCM before it reaches Redis.
// Both keys must be 32 bytes; see pkg/secrets.
func WithEncryption(appKey, deviceKey []byte) SessionStoreOption {
	return func(s *SessionStore) {
		s.appKey = appKey
		s.deviceKey = deviceKey
	}
}

// NewSessionStore creates a store on client.
func NewSessionStore(client Commander, opts ...SessionStoreOption) (*SessionStore, error) {
	s := &SessionStore{client: client, key: DefaultSessionKey}
	for _, opt := range opts {
		opt(s)
	}

	if s.encrypted() {
		if len(s.appKey) != secrets.KeySize {
			return nil, secrets.ErrInvalidAppKey
		}
		if len(s.deviceKey) != secrets.KeySize {
			return nil, secrets.ErrInvalidWorkspaceKey
		}
	}
	return s, nil
}

// NewSessionStoreFromConfig creates a store using cfg's key and TTL.
// Extra options, such as WithEncryption, are applied after the config.
func NewSessionStoreFromConfig(client Commander, cfg Config, opts ...SessionStoreOption) (*SessionStore, error) {
	return NewSessionStore(client, append([]SessionStoreOption{WithKey(cfg.SessionKey), WithTTL(cfg.SessionTTL)}, opts...)...)
}

func (s *SessionStore) Get(ctx context.Context) (session.Session, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Session{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, err
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return session.Session{}, errors.Join(session.ErrCorrupted, err)
	}
	if rec.Token == "" {
		return session.Session{}, session.ErrNotFound
	}

	token := rec.Token
	if rec.Encrypted {
		if !s.encrypted() {
			return session.Session{}, errors.Join(session.ErrCorrupted, secrets.ErrInvalidAppKey)
		}
		token, err = secrets.DecryptString(s.appKey, s.deviceKey, rec.Token)
		if err != nil {
			return session.Session{}, errors.Join(session.ErrCorrupted, err)
		}
	}
	return session.Session{Token: token, UpdatedAt: rec.UpdatedAt}, nil
}

func (s *SessionStore) Save(ctx context.Context, sess session.Session) error {
	if sess.IsZero() {
		return session.ErrEmptyToken
	}
	rec := record{Token: sess.Token, UpdatedAt: sess.UpdatedAt}
	if s.encrypted() {
		ct, err := secrets.EncryptString(s.appKey, s.deviceKey, sess.Token)
		if err != nil {
			return err
		}
		rec.Token = ct
		rec.Encrypted = true
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, raw, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

func (s *SessionStore) encrypted() bool {
	return len(s.appKey) > 0 || len(s.deviceKey) > 0
}
