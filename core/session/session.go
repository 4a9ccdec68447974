package session

import (
	"time"

	"github.com/meupdi/pdi/pkg/jwt"
)

// StorageKey is the well-known key the credential is persisted under.
const StorageKey = "authToken"

// Session is the persisted credential.
type Session struct {
	Token     string
	UpdatedAt time.Time
}

// IsZero reports whether the session holds no credential.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// Identity is the user information carried in a bearer token's payload.
type Identity struct {
	UserID    string
	Email     string
	Nickname  string
	ExpiresAt time.Time
}

// IsExpired reports whether the token's exp claim is in the past.
// Tokens without exp never expire locally.
func (i Identity) IsExpired() bool {
	return !i.ExpiresAt.IsZero() && time.Now().After(i.ExpiresAt)
}

type tokenClaims struct {
	jwt.StandardClaims
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// ParseIdentity reads identity claims from a JWT without verifying it.
func ParseIdentity(token string) (Identity, error) {
	var c tokenClaims
	if err := jwt.Decode(token, &c); err != nil {
		return Identity{}, ErrOpaqueToken
	}

	userID := c.UserID
	if userID == "" {
		userID = c.Subject
	}
	return Identity{
		UserID:    userID,
		Email:     c.Email,
		Nickname:  c.Nickname,
		ExpiresAt: c.Expiry(),
	}, nil
}
