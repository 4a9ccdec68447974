// Package session is the client-side credential store of the PDI toolkit.
//
// It keeps the single credential that proves an authenticated session and is
// the source of truth for "is this client logged in". Persistence is pluggable
// through the Store interface; the Manager wraps a Store with the semantics the
// request client relies on:
//
//   - Get never fails: a broken or unreadable store is treated as logged out.
//   - Set overwrites the stored credential.
//   - Clear is idempotent: clearing an empty store is a no-op.
//   - IsAuthenticated reports whether a credential is present.
//
// # Stores
//
//   - MemoryStore: process lifetime only, useful for tests and cookie-based sessions.
//   - FileStore: durable JSON file holding the credential under the well-known
//     "authToken" key, written atomically with 0600 permissions and optionally
//     encrypted with pkg/secrets.
//   - integration/database/redis provides a Redis-backed Store.
//
// # Usage
//
//	store, err := session.NewFileStore(session.DefaultFilePath())
//	if err != nil {
//		return err
//	}
//	sessions := session.NewManager(store, session.WithLogger(log))
//
//	if err := sessions.Set(ctx, token); err != nil {
//		return err
//	}
//	if sessions.IsAuthenticated(ctx) {
//		id, _ := sessions.Identity(ctx)
//		fmt.Println("logged in as", id.Email)
//	}
//
// # Identity
//
// Identity decodes the JWT payload of the stored bearer token (user_id, email,
// nickname, exp) without verifying it. It is meant for display only; the
// server remains the authority on whether the credential is valid.
package session
