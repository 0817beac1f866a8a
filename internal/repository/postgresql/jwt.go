package postgresql

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
)

type jwtRepository struct {
	db *database.DB
}

func NewJWTRepository(db *database.DB) auth.JWTRepository {
	return &jwtRepository{db: db}
}

// hashToken hashes the token so raw refresh tokens are never stored.
func (r *jwtRepository) hashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}

// StoreRefreshToken implements auth.JWTRepository.
func (r *jwtRepository) StoreRefreshToken(ctx context.Context, workerID string, token string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (worker_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := q.Exec(ctx, query, workerID, r.hashToken(token), expiresAt.UTC()); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// RevokeRefreshToken implements auth.JWTRepository.
func (r *jwtRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`
	if _, err := q.Exec(ctx, query, r.hashToken(token)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// IsRefreshTokenValid implements auth.JWTRepository.
func (r *jwtRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT revoked_at, expires_at
		FROM refresh_tokens
		WHERE token_hash = $1
		ORDER BY expires_at DESC
		LIMIT 1
	`

	var revokedAt *time.Time
	var expiresAt time.Time
	err := q.QueryRow(ctx, query, r.hashToken(token)).Scan(&revokedAt, &expiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	return revokedAt == nil && expiresAt.After(time.Now()), nil
}
