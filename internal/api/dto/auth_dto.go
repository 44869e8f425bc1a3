package dto

import "time"

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload for authenticated password changes.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PasswordResetRequest payload for requesting a reset token.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirm payload for completing a reset.
type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse standard response for auth endpoints. The token also travels
// in the session cookie; it is echoed here for non-browser clients.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
