package model

// Session is the persisted authentication state: the bearer token and the
// profile it belongs to. Both are set and cleared together, never one alone.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Credentials are transient: they live for the duration of one login request.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
