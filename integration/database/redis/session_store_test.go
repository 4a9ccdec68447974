package redis_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/session"
	"github.com/meupdi/pdi/integration/database/redis"
	"github.com/meupdi/pdi/pkg/secrets"
)

type fakeRedis struct {
	mu      sync.Mutex
	data    map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *goredis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return goredis.NewStringResult("", f.failErr)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return goredis.NewStatusResult("", f.failErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return goredis.NewIntResult(0, f.failErr)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func newStore(t *testing.T, client redis.Commander, opts ...redis.SessionStoreOption) *redis.SessionStore {
	t.Helper()
	store, err := redis.NewSessionStore(client, opts...)
	require.NoError(t, err)
	return store
}

func newKeys(t *testing.T) ([]byte, []byte) {
	t.Helper()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	deviceKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	return appKey, deviceKey
}

func TestSessionStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty store reports not found", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, newFakeRedis())

		_, err := store.Get(ctx)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("save then get", func(t *testing.T) {
		t.Parallel()
		fake := newFakeRedis()
		store := newStore(t, fake, redis.WithKey("pdi:session:ana"), redis.WithTTL(time.Hour))

		now := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, store.Save(ctx, session.Session{Token: "abc", UpdatedAt: now}))

		got, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc", got.Token)
		assert.True(t, now.Equal(got.UpdatedAt))
		assert.Contains(t, fake.data["pdi:session:ana"], `"authToken":"abc"`)
		assert.Equal(t, time.Hour, fake.ttls["pdi:session:ana"])
	})

	t.Run("save rejects empty token", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, newFakeRedis())
		assert.ErrorIs(t, store.Save(ctx, session.Session{}), session.ErrEmptyToken)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, newFakeRedis())
		require.NoError(t, store.Save(ctx, session.Session{Token: "abc"}))
		require.NoError(t, store.Delete(ctx))
		require.NoError(t, store.Delete(ctx))

		_, err := store.Get(ctx)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("garbage value is corrupted", func(t *testing.T) {
		t.Parallel()
		fake := newFakeRedis()
		fake.data[redis.DefaultSessionKey] = "not json"
		store := newStore(t, fake)

		_, err := store.Get(ctx)
		assert.ErrorIs(t, err, session.ErrCorrupted)
	})

	t.Run("backend errors pass through", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection refused")
		fake := newFakeRedis()
		fake.failErr = boom
		store := newStore(t, fake)

		_, err := store.Get(ctx)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, session.ErrNotFound)
		assert.ErrorIs(t, store.Save(ctx, session.Session{Token: "abc"}), boom)
		assert.ErrorIs(t, store.Delete(ctx), boom)
	})

	t.Run("works behind the session manager", func(t *testing.T) {
		t.Parallel()
		sessions := session.NewManager(newStore(t, newFakeRedis()))

		require.NoError(t, sessions.Set(ctx, "abc"))
		assert.Equal(t, "abc", sessions.Get(ctx))
		require.NoError(t, sessions.Clear(ctx))
		assert.Empty(t, sessions.Get(ctx))
	})

	t.Run("config sets key and ttl", func(t *testing.T) {
		t.Parallel()
		fake := newFakeRedis()
		store, err := redis.NewSessionStoreFromConfig(fake, redis.Config{SessionKey: "k", SessionTTL: time.Minute})
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, session.Session{Token: "abc"}))
		assert.Contains(t, fake.data, "k")
		assert.Equal(t, time.Minute, fake.ttls["k"])
	})

	t.Run("encrypted token never reaches redis in plain text", func(t *testing.T) {
		t.Parallel()
		fake := newFakeRedis()
		appKey, deviceKey := newKeys(t)
		store := newStore(t, fake, redis.WithEncryption(appKey, deviceKey))

		require.NoError(t, store.Save(ctx, session.Session{Token: "secret-token"}))
		raw := fake.data[redis.DefaultSessionKey]
		assert.NotContains(t, raw, "secret-token")
		assert.Contains(t, raw, `"encrypted":true`)

		got, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "secret-token", got.Token)
	})

	t.Run("encrypted value with wrong or missing keys is corrupted", func(t *testing.T) {
		t.Parallel()
		fake := newFakeRedis()
		appKey, deviceKey := newKeys(t)
		require.NoError(t, newStore(t, fake, redis.WithEncryption(appKey, deviceKey)).Save(ctx, session.Session{Token: "abc"}))

		otherApp, otherDevice := newKeys(t)
		_, err := newStore(t, fake, redis.WithEncryption(otherApp, otherDevice)).Get(ctx)
		assert.ErrorIs(t, err, session.ErrCorrupted)

		_, err = newStore(t, fake).Get(ctx)
		assert.ErrorIs(t, err, session.ErrCorrupted)
	})

	t.Run("config store accepts encryption", func(t *testing.T) {
		t.Parallel()
		fake := newFakeRedis()
		appKey, deviceKey := newKeys(t)
		store, err := redis.NewSessionStoreFromConfig(fake, redis.Config{SessionKey: "k"}, redis.WithEncryption(appKey, deviceKey))
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, session.Session{Token: "abc"}))
		assert.NotContains(t, fake.data["k"], `"authToken":"abc"`)
	})

	t.Run("short keys are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := redis.NewSessionStore(newFakeRedis(), redis.WithEncryption([]byte("short"), make([]byte, secrets.KeySize)))
		assert.ErrorIs(t, err, secrets.ErrInvalidAppKey)

		_, err = redis.NewSessionStore(newFakeRedis(), redis.WithEncryption(make([]byte, secrets.KeySize), []byte("short")))
		assert.ErrorIs(t, err, secrets.ErrInvalidWorkspaceKey)
	})
}
