package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/agency"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/utils"
)

// codeGenerationAttempts bounds retries when a generated agency code
// collides with an existing one.
const codeGenerationAttempts = 5

type AuthServiceImpl struct {
	tx         database.TxRunner
	agencyRepo agency.Repository
	workerRepo worker.Repository
	jwtService jwt.Service
	jwtRepo    auth.JWTRepository
}

func NewAuthService(
	tx database.TxRunner,
	agencyRepo agency.Repository,
	workerRepo worker.Repository,
	jwtService jwt.Service,
	jwtRepo auth.JWTRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:         tx,
		agencyRepo: agencyRepo,
		workerRepo: workerRepo,
		jwtService: jwtService,
		jwtRepo:    jwtRepo,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// generateAgencyCode returns a code like AG-3F9A01BC that does not collide
// with an existing agency.
func (a *AuthServiceImpl) generateAgencyCode(ctx context.Context) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code := utils.GenerateUniqueCode(agency.CodePrefix, agency.CodeLength)
		exists, err := a.agencyRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check agency code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", agency.ErrCodeGeneration
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var tokenResponse auth.TokenResponse

	err = a.tx.RunInTx(ctx, func(txCtx context.Context) error {
		code, err := a.generateAgencyCode(txCtx)
		if err != nil {
			return err
		}

		newAgency, err := a.agencyRepo.Create(txCtx, agency.Agency{
			Name: req.AgencyName,
			Code: code,
		})
		if err != nil {
			return err
		}

		owner, err := a.workerRepo.Create(txCtx, worker.Worker{
			AgencyID:     newAgency.ID,
			Email:        req.Email,
			PasswordHash: passwordHash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         worker.RoleOwner,
		})
		if err != nil {
			return err
		}

		tokenResponse, err = a.issueTokens(txCtx, owner)
		if err != nil {
			return err
		}
		tokenResponse.AgencyCode = newAgency.Code
		return nil
	})

	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	workerData, err := a.workerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get worker by email: %w", err)
	}

	if !workerData.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(workerData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	err = a.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tokenResponse, err = a.issueTokens(txCtx, workerData)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, w worker.Worker) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(w.ID, w.Email, w.AgencyID, w.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(w.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.jwtRepo.StoreRefreshToken(ctx, w.ID, refreshToken, time.Unix(refreshExpiresAt, 0)); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
		WorkerID:              w.ID,
		AgencyID:              w.AgencyID,
		Role:                  string(w.Role),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string, refreshToken string) error {
	if accessToken != "" {
		a.jwtService.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		if err := a.jwtRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if req.RefreshToken == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	valid, err := a.jwtRepo.IsRefreshTokenValid(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := a.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	workerIDVal, ok := token.Get("worker_id")
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	workerID, ok := workerIDVal.(string)
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	workerData, err := a.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrWorkerNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get worker: %w", err)
	}

	// Deactivation cuts the session at the next refresh.
	if !workerData.IsActive {
		return auth.AccessTokenResponse{}, worker.ErrWorkerInactive
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(
		workerData.ID, workerData.Email, workerData.AgencyID, workerData.Role,
	)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: expiresAt,
	}, nil
}
