package session

import "errors"

var (
	// ErrNotFound is returned by a Store when no credential is stored.
	ErrNotFound = errors.New("session: credential not found")
	// ErrNotAuthenticated is returned when an operation needs a credential and none is stored.
	ErrNotAuthenticated = errors.New("session: not authenticated")
	// ErrEmptyToken is returned when saving an empty credential.
	ErrEmptyToken = errors.New("session: empty token")
	// ErrOpaqueToken is returned by Identity when the credential is not a JWT.
	ErrOpaqueToken = errors.New("session: token carries no readable claims")
	// ErrCorrupted is returned when the persisted credential cannot be decoded.
	ErrCorrupted = errors.New("session: stored credential is corrupted")
	// ErrUnknownStore is returned for an unsupported store kind in Config.
	ErrUnknownStore = errors.New("session: unknown store")
	// ErrInvalidKey is returned when an encryption key in Config is not valid hex.
	ErrInvalidKey = errors.New("session: invalid encryption key")
)
