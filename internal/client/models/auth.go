// Package models defines the JSON shapes exchanged with the shop backend.
package models

// User is the profile the backend returns on login.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// AuthResponse is what both auth endpoints return. User is a pointer so a
// response that omits it can be told apart from an empty profile.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Complete reports whether the response carries both a token and a user.
func (r *AuthResponse) Complete() bool {
	return r != nil && r.Token != "" && r.User != nil
}
