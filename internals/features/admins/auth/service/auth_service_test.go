package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/model"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/admins/repository/admintest"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/features/admins/auth/dto"
	"github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/apperr"
	helperAuth "github.com/MindsetMakersAcademy/MindsetBackend/internals/helpers/auth"
)

const secret = "test-secret"

func seeded(t *testing.T, active bool) (*admintest.Fake, uint) {
	t.Helper()
	hash, err := helperAuth.HashPassword("password123")
	require.NoError(t, err)
	repo := admintest.New()
	id := repo.Seed(model.AdminModel{Email: "root@example.com", FullName: "Root", PasswordHash: hash, IsActive: active})
	return repo, id
}

func TestAuthService_LoginIssuesBearerToken(t *testing.T) {
	repo, id := seeded(t, true)
	svc := NewAuthService(repo, secret, time.Hour)

	tok, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ROOT@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, int64(3600), tok.ExpiresIn)

	claims, err := helperAuth.Parse(secret, tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "root@example.com", claims.Email)
}

func TestAuthService_LoginRejections(t *testing.T) {
	repo, _ := seeded(t, true)
	svc := NewAuthService(repo, secret, time.Hour)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "root@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	assert.Equal(t, "Invalid credentials", apperr.Message(err))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	assert.Equal(t, "Invalid credentials", apperr.Message(err))
}

func TestAuthService_LoginDisabledAccount(t *testing.T) {
	repo, _ := seeded(t, false)
	svc := NewAuthService(repo, secret, time.Hour)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "root@example.com", Password: "password123"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	assert.Equal(t, "Account is disabled", apperr.Message(err))
}

func TestAuthService_TokenExpiresAfterTTL(t *testing.T) {
	repo, _ := seeded(t, true)
	past := time.Now().Add(-2 * time.Hour)
	svc := NewAuthService(repo, secret, time.Hour).WithClock(func() time.Time { return past })

	tok, err := svc.Login(context.Background(), dto.LoginRequest{Email: "root@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = helperAuth.Parse(secret, tok.AccessToken)
	assert.ErrorIs(t, err, helperAuth.ErrTokenExpired)
}
