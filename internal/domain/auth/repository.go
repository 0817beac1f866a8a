package auth

import (
	"context"
	"time"
)

// JWTRepository persists refresh tokens so they can be revoked server side.
type JWTRepository interface {
	// StoreRefreshToken records an issued refresh token
	StoreRefreshToken(ctx context.Context, workerID string, token string, expiresAt time.Time) error

	// RevokeRefreshToken marks a refresh token as revoked
	RevokeRefreshToken(ctx context.Context, token string) error

	// IsRefreshTokenValid reports whether the token exists, is not revoked
	// and has not expired
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}
