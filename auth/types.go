package auth

// Credentials identify an existing account.
type Credentials struct {
	Email    string `json:"email" sanitize:"email" validate:"required;email"`
	Password string `json:"password" sanitize:"-" validate:"required"`
}

// RegisterInput creates an account. The password policy mirrors the server's.
type RegisterInput struct {
	Nickname string `json:"nickname" sanitize:"nickname" validate:"required;min:2"`
	Email    string `json:"email" sanitize:"email" validate:"required;email"`
	Password string `json:"password" sanitize:"-" validate:"required;password"`
}

// User is the public part of an account.
type User struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// Result is what a successful register or login returns. Token is empty with
// a cookie transport. User is filled from the response or the token claims
// when either carries it.
type Result struct {
	Token string
	User  *User
}

// authResponse covers both shapes the API answers with: {token} and {id, nickname, email}.
type authResponse struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}
