package auth

import (
	"context"
)

type AuthService interface {
	// Register creates a new agency with a generated agency code and its
	// owner account, then issues tokens.
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login authenticates a worker by email and password
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Logout revokes the current access and refresh tokens
	Logout(ctx context.Context, accessToken string, refreshToken string) error

	// RefreshToken exchanges a valid refresh token for a new access token
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
}
