package session_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/session"
	"github.com/meupdi/pdi/pkg/secrets"
)

func newKeys(t *testing.T) ([]byte, []byte) {
	t.Helper()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	deviceKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	return appKey, deviceKey
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()

		_, err := session.NewFileStore("")
		assert.Error(t, err)
	})

	t.Run("missing file returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		s, err := session.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
		require.NoError(t, err)

		_, err = s.Get(ctx)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("persists under authToken with owner-only permissions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "credentials.json")
		s, err := session.NewFileStore(path)
		require.NoError(t, err)

		now := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, s.Save(ctx, session.Session{Token: "abc", UpdatedAt: now}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Equal(t, "abc", doc[session.StorageKey])

		// A second store over the same file sees the credential.
		other, err := session.NewFileStore(path)
		require.NoError(t, err)
		got, err := other.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc", got.Token)
		assert.True(t, now.Equal(got.UpdatedAt))
	})

	t.Run("rejects empty session", func(t *testing.T) {
		t.Parallel()

		s, err := session.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
		require.NoError(t, err)
		assert.ErrorIs(t, s.Save(ctx, session.Session{}), session.ErrEmptyToken)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()

		s, err := session.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx))
		require.NoError(t, s.Save(ctx, session.Session{Token: "abc"}))
		require.NoError(t, s.Delete(ctx))
		require.NoError(t, s.Delete(ctx))

		_, err = s.Get(ctx)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("corrupted file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "credentials.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		s, err := session.NewFileStore(path)
		require.NoError(t, err)

		_, err = s.Get(ctx)
		assert.ErrorIs(t, err, session.ErrCorrupted)
	})

	t.Run("encrypted at rest", func(t *testing.T) {
		t.Parallel()

		appKey, deviceKey := newKeys(t)
		path := filepath.Join(t.TempDir(), "credentials.json")

		s, err := session.NewFileStore(path, session.WithEncryption(appKey, deviceKey))
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, session.Session{Token: "secret-token"}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "secret-token")

		got, err := s.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "secret-token", got.Token)
	})

	t.Run("wrong key reports corruption", func(t *testing.T) {
		t.Parallel()

		appKey, deviceKey := newKeys(t)
		otherApp, otherDevice := newKeys(t)
		path := filepath.Join(t.TempDir(), "credentials.json")

		s, err := session.NewFileStore(path, session.WithEncryption(appKey, deviceKey))
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, session.Session{Token: "secret-token"}))

		wrong, err := session.NewFileStore(path, session.WithEncryption(otherApp, otherDevice))
		require.NoError(t, err)
		_, err = wrong.Get(ctx)
		assert.ErrorIs(t, err, session.ErrCorrupted)

		plain, err := session.NewFileStore(path)
		require.NoError(t, err)
		_, err = plain.Get(ctx)
		assert.ErrorIs(t, err, session.ErrCorrupted)
	})

	t.Run("invalid key sizes", func(t *testing.T) {
		t.Parallel()

		_, err := session.NewFileStore("x.json", session.WithEncryption([]byte("short"), make([]byte, 32)))
		assert.ErrorIs(t, err, secrets.ErrInvalidAppKey)

		_, err = session.NewFileStore("x.json", session.WithEncryption(make([]byte, 32), []byte("short")))
		assert.ErrorIs(t, err, secrets.ErrInvalidWorkspaceKey)
	})
}
