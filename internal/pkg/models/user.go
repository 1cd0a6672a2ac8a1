package models

// User represents an authenticated backend user
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     *Role  `json:"role,omitempty"`
}

// Role describes the user's permission group
type Role struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// LoginRequest represents the credentials posted to /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by /login. It is not wrapped in the response envelope.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
