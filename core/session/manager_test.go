package session_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/session"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context) (session.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, s session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStore) Delete(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestManager(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("get on empty store returns empty token", func(t *testing.T) {
		t.Parallel()

		m := session.NewManager(session.NewMemoryStore())
		assert.Equal(t, "", m.Get(ctx))
		assert.False(t, m.IsAuthenticated(ctx))
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()

		m := session.NewManager(session.NewMemoryStore())
		require.NoError(t, m.Set(ctx, "abc"))
		assert.Equal(t, "abc", m.Get(ctx))
		assert.True(t, m.IsAuthenticated(ctx))

		require.NoError(t, m.Set(ctx, "xyz"))
		assert.Equal(t, "xyz", m.Get(ctx))
	})

	t.Run("set rejects empty token", func(t *testing.T) {
		t.Parallel()

		m := session.NewManager(session.NewMemoryStore())
		assert.ErrorIs(t, m.Set(ctx, ""), session.ErrEmptyToken)
	})

	t.Run("clear on empty store is a no-op", func(t *testing.T) {
		t.Parallel()

		m := session.NewManager(session.NewMemoryStore())
		require.NoError(t, m.Clear(ctx))
		require.NoError(t, m.Clear(ctx))
		assert.Equal(t, "", m.Get(ctx))
	})

	t.Run("clear removes the credential", func(t *testing.T) {
		t.Parallel()

		m := session.NewManager(session.NewMemoryStore())
		require.NoError(t, m.Set(ctx, "abc"))
		require.NoError(t, m.Clear(ctx))
		assert.False(t, m.IsAuthenticated(ctx))
	})

	t.Run("storage failure reads as logged out", func(t *testing.T) {
		t.Parallel()

		store := new(mockStore)
		store.On("Get", mock.Anything).Return(session.Session{}, errors.New("disk on fire"))

		m := session.NewManager(store)
		assert.Equal(t, "", m.Get(ctx))
		assert.False(t, m.IsAuthenticated(ctx))
		store.AssertExpectations(t)
	})

	t.Run("clear tolerates ErrNotFound and propagates other errors", func(t *testing.T) {
		t.Parallel()

		store := new(mockStore)
		store.On("Delete", mock.Anything).Return(session.ErrNotFound).Once()
		store.On("Delete", mock.Anything).Return(errors.New("read-only")).Once()

		m := session.NewManager(store)
		assert.NoError(t, m.Clear(ctx))
		assert.Error(t, m.Clear(ctx))
		store.AssertExpectations(t)
	})

	t.Run("identity from jwt claims", func(t *testing.T) {
		t.Parallel()

		exp := time.Now().Add(time.Hour).Unix()
		token := mintToken(t, map[string]any{
			"user_id":  "8c1f",
			"email":    "a@b.com",
			"nickname": "ana",
			"exp":      exp,
		})

		m := session.NewManager(session.NewMemoryStore())
		require.NoError(t, m.Set(ctx, token))

		id, err := m.Identity(ctx)
		require.NoError(t, err)
		assert.Equal(t, "8c1f", id.UserID)
		assert.Equal(t, "a@b.com", id.Email)
		assert.Equal(t, "ana", id.Nickname)
		assert.Equal(t, exp, id.ExpiresAt.Unix())
		assert.False(t, id.IsExpired())
	})

	t.Run("identity errors", func(t *testing.T) {
		t.Parallel()

		m := session.NewManager(session.NewMemoryStore())
		_, err := m.Identity(ctx)
		assert.ErrorIs(t, err, session.ErrNotAuthenticated)

		require.NoError(t, m.Set(ctx, "abc"))
		_, err = m.Identity(ctx)
		assert.ErrorIs(t, err, session.ErrOpaqueToken)
	})
}

func mintToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + enc.EncodeToString(payload) + ".sig"
}
