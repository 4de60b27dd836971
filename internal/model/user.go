package model

// Identity is a registered email/password credential pair. PasswordHash is
// empty when the struct represents an authenticated identity rather than a
// stored credential.
type Identity struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"`
}

// Session is the authenticated identity bound to one session token.
// It never carries password material.
type Session struct {
	Email string `json:"email"`
}

// Authenticated reports whether the session belongs to a signed-in identity.
func (s Session) Authenticated() bool {
	return s.Email != ""
}

// SignupRequest represents an account creation request.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents a successful signup or login: the session token
// plus the password-stripped identity it authenticates.
type AuthResponse struct {
	Token string  `json:"token"`
	User  Session `json:"user"`
}
