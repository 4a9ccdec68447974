package session

import "context"

// Store persists a single credential. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the stored session or ErrNotFound.
	Get(ctx context.Context) (Session, error)
	// Save overwrites the stored session.
	Save(ctx context.Context, s Session) error
	// Delete removes the stored session. Deleting an absent session returns nil.
	Delete(ctx context.Context) error
}
