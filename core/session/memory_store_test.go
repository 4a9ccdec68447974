package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/session"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty store returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		s := session.NewMemoryStore()
		_, err := s.Get(ctx)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("save overwrites", func(t *testing.T) {
		t.Parallel()

		s := session.NewMemoryStore()
		require.NoError(t, s.Save(ctx, session.Session{Token: "abc", UpdatedAt: time.Now()}))
		require.NoError(t, s.Save(ctx, session.Session{Token: "xyz", UpdatedAt: time.Now()}))

		got, err := s.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "xyz", got.Token)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()

		s := session.NewMemoryStore()
		require.NoError(t, s.Save(ctx, session.Session{Token: "abc"}))
		require.NoError(t, s.Delete(ctx))
		require.NoError(t, s.Delete(ctx))

		_, err := s.Get(ctx)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}
