package auth

import "errors"

var (
	// ErrNilClient is returned by New when no API client is given.
	ErrNilClient = errors.New("auth: nil api client")
	// ErrNotAuthenticated is returned by Me when no session is stored.
	ErrNotAuthenticated = errors.New("auth: not authenticated")
)
