package jwt

import "errors"

var (
	ErrInvalidToken  = errors.New("jwt: invalid token")
	ErrMissingClaims = errors.New("jwt: missing claims")
)
