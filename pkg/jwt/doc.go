// Package jwt reads compact JSON Web Tokens.
//
// The PDI client never holds the server's signing key, so the package only
// decodes: Decode splits a bearer token and unmarshals the payload into a
// claims struct without checking the signature. Use it for display only,
// never for an authorization decision.
//
//	var claims struct {
//		jwt.StandardClaims
//		Email string `json:"email"`
//	}
//	if err := jwt.Decode(token, &claims); err != nil {
//		// opaque or malformed token
//	}
//	expires := claims.Expiry()
package jwt
