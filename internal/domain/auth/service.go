package auth

import "context"

// AuthService defines authentication business logic
type AuthService interface {
	// Register creates a company, its admin user account, and returns tokens
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login authenticates by email and password
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle completes an OAuth code exchange and issues tokens
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	// RefreshToken rotates the refresh token and issues a new access token
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the authenticated user's profile
	Me(ctx context.Context) (MeResponse, error)
}
