package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/agency"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/auth"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type txStub struct{}

func (txStub) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type agencyRepoStub struct {
	agency.Repository
	create     func(ctx context.Context, ag agency.Agency) (agency.Agency, error)
	codeExists func(ctx context.Context, code string) (bool, error)
}

func (s *agencyRepoStub) Create(ctx context.Context, ag agency.Agency) (agency.Agency, error) {
	return s.create(ctx, ag)
}

func (s *agencyRepoStub) CodeExists(ctx context.Context, code string) (bool, error) {
	return s.codeExists(ctx, code)
}

type workerRepoStub struct {
	worker.Repository
	create     func(ctx context.Context, w worker.Worker) (worker.Worker, error)
	getByID    func(ctx context.Context, id string) (worker.Worker, error)
	getByEmail func(ctx context.Context, email string) (worker.Worker, error)
}

func (s *workerRepoStub) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return s.create(ctx, w)
}

func (s *workerRepoStub) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return s.getByID(ctx, id)
}

func (s *workerRepoStub) GetByEmail(ctx context.Context, email string) (worker.Worker, error) {
	return s.getByEmail(ctx, email)
}

type jwtRepoStub struct {
	stored  []string
	revoked []string
	valid   bool
}

func (s *jwtRepoStub) StoreRefreshToken(ctx context.Context, workerID, token string, expiresAt time.Time) error {
	s.stored = append(s.stored, token)
	return nil
}

func (s *jwtRepoStub) RevokeRefreshToken(ctx context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	return nil
}

func (s *jwtRepoStub) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return s.valid, nil
}

func testJWTService() jwt.Service {
	return jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
}

func validRegisterRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		AgencyName:      "Night Owls",
		Email:           "owner@nightowls.example",
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Ada",
		LastName:        "Okafor",
	}
}

func activeWorker(passwordHash string) worker.Worker {
	return worker.Worker{
		ID:           "w1",
		AgencyID:     "a1",
		Email:        "owner@nightowls.example",
		PasswordHash: passwordHash,
		FirstName:    "Ada",
		Role:         worker.RoleOwner,
		IsActive:     true,
	}
}

func TestRegister_Success(t *testing.T) {
	var createdAgency agency.Agency
	var createdWorker worker.Worker
	agencies := &agencyRepoStub{
		codeExists: func(ctx context.Context, code string) (bool, error) { return false, nil },
		create: func(ctx context.Context, ag agency.Agency) (agency.Agency, error) {
			ag.ID = "a1"
			createdAgency = ag
			return ag, nil
		},
	}
	workers := &workerRepoStub{create: func(ctx context.Context, w worker.Worker) (worker.Worker, error) {
		w.ID = "w1"
		w.IsActive = true
		createdWorker = w
		return w, nil
	}}
	jwtRepo := &jwtRepoStub{}

	svc := NewAuthService(txStub{}, agencies, workers, testJWTService(), jwtRepo)
	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(createdAgency.Code, agency.CodePrefix))
	assert.Len(t, createdAgency.Code, len(agency.CodePrefix)+agency.CodeLength)
	assert.Equal(t, worker.RoleOwner, createdWorker.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdWorker.PasswordHash), []byte("password123")))

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "w1", resp.WorkerID)
	assert.Equal(t, "a1", resp.AgencyID)
	assert.Equal(t, createdAgency.Code, resp.AgencyCode)
	assert.Len(t, jwtRepo.stored, 1)
}

func TestRegister_ValidationFails(t *testing.T) {
	req := validRegisterRequest()
	req.ConfirmPassword = "different"

	svc := NewAuthService(txStub{}, nil, nil, testJWTService(), nil)
	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestRegister_NameConflict(t *testing.T) {
	agencies := &agencyRepoStub{
		codeExists: func(ctx context.Context, code string) (bool, error) { return false, nil },
		create: func(ctx context.Context, ag agency.Agency) (agency.Agency, error) {
			return agency.Agency{}, agency.ErrNameAlreadyUsed
		},
	}

	svc := NewAuthService(txStub{}, agencies, nil, testJWTService(), nil)
	_, err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, agency.ErrNameAlreadyUsed)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	workers := &workerRepoStub{getByEmail: func(ctx context.Context, email string) (worker.Worker, error) {
		return activeWorker(string(hash)), nil
	}}
	jwtRepo := &jwtRepoStub{}

	svc := NewAuthService(txStub{}, nil, workers, testJWTService(), jwtRepo)
	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@nightowls.example",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, string(worker.RoleOwner), resp.Role)
	assert.Len(t, jwtRepo.stored, 1)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	workers := &workerRepoStub{getByEmail: func(ctx context.Context, email string) (worker.Worker, error) {
		return activeWorker(string(hash)), nil
	}}

	svc := NewAuthService(txStub{}, nil, workers, testJWTService(), nil)
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@nightowls.example",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	workers := &workerRepoStub{getByEmail: func(ctx context.Context, email string) (worker.Worker, error) {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}}

	svc := NewAuthService(txStub{}, nil, workers, testJWTService(), nil)
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveWorker(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	workers := &workerRepoStub{getByEmail: func(ctx context.Context, email string) (worker.Worker, error) {
		w := activeWorker(string(hash))
		w.IsActive = false
		return w, nil
	}}

	svc := NewAuthService(txStub{}, nil, workers, testJWTService(), nil)
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "owner@nightowls.example",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshToken_Success(t *testing.T) {
	jwtService := testJWTService()
	refreshToken, _, err := jwtService.GenerateRefreshToken("w1")
	require.NoError(t, err)

	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		require.Equal(t, "w1", id)
		return activeWorker("x"), nil
	}}
	jwtRepo := &jwtRepoStub{valid: true}

	svc := NewAuthService(txStub{}, nil, workers, jwtService, jwtRepo)
	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresAt, time.Now().Unix())
}

func TestRefreshToken_DeactivatedWorker(t *testing.T) {
	jwtService := testJWTService()
	refreshToken, _, err := jwtService.GenerateRefreshToken("w1")
	require.NoError(t, err)

	workers := &workerRepoStub{getByID: func(ctx context.Context, id string) (worker.Worker, error) {
		w := activeWorker("x")
		w.IsActive = false
		return w, nil
	}}
	jwtRepo := &jwtRepoStub{valid: true}

	svc := NewAuthService(txStub{}, nil, workers, jwtService, jwtRepo)
	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})
	assert.ErrorIs(t, err, worker.ErrWorkerInactive)
}

func TestRefreshToken_Revoked(t *testing.T) {
	jwtService := testJWTService()
	refreshToken, _, err := jwtService.GenerateRefreshToken("w1")
	require.NoError(t, err)

	jwtRepo := &jwtRepoStub{valid: false}
	svc := NewAuthService(txStub{}, nil, nil, jwtService, jwtRepo)
	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	jwtService := testJWTService()
	accessToken, _, err := jwtService.GenerateAccessToken("w1", "owner@nightowls.example", "a1", worker.RoleOwner)
	require.NoError(t, err)

	jwtRepo := &jwtRepoStub{valid: true}
	svc := NewAuthService(txStub{}, nil, nil, jwtService, jwtRepo)
	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesTokens(t *testing.T) {
	jwtService := testJWTService()
	accessToken, _, err := jwtService.GenerateAccessToken("w1", "owner@nightowls.example", "a1", worker.RoleOwner)
	require.NoError(t, err)

	jwtRepo := &jwtRepoStub{}
	svc := NewAuthService(txStub{}, nil, nil, jwtService, jwtRepo)

	err = svc.Logout(context.Background(), accessToken, "refresh-token-value")
	require.NoError(t, err)
	assert.Equal(t, []string{"refresh-token-value"}, jwtRepo.revoked)
	assert.True(t, jwtService.IsTokenRevoked(accessToken))
}
