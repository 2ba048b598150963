package auth

import "context"

// AuthService defines account and session operations for a business tenant.
type AuthService interface {
	// Register creates a business with its owner account and signs the owner in
	Register(ctx context.Context, req RegisterRequest) (LoginResult, error)

	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
