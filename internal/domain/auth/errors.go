package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrAgencyNotFound      = errors.New("agency not found")
	ErrWorkerNotFound      = errors.New("worker not found")
)
