package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galaxia-edu/galaxia-backend/internal/config"
	"github.com/galaxia-edu/galaxia-backend/internal/model"
)

func newTestAuthService() *AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  30 * time.Minute,
		BcryptCost: 4, // minimum cost keeps the test fast
	}
	return NewAuthService(cfg, nil)
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := newTestAuthService()

	hash, err := svc.HashPassword("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	assert.NoError(t, svc.CheckPassword(hash, "senha123"))
	assert.ErrorIs(t, svc.CheckPassword(hash, "senhaerrada"), ErrInvalidCredentials)
}

func TestGenerateAndValidateToken_Admin(t *testing.T) {
	// Admin tokens skip the Redis session, so a nil client is fine here.
	svc := newTestAuthService()

	admin := &model.Student{
		ID:    7,
		Email: "admin@galaxia.edu",
		Role:  model.RoleAdmin,
	}

	token, err := svc.GenerateToken(context.Background(), admin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, TokenTypeAdmin, claims.TokenType)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin@galaxia.edu", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID, "JTI must be set")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestAuthService()

	admin := &model.Student{ID: 1, Email: "a@b.c", Role: model.RoleAdmin}
	token, err := svc.GenerateToken(context.Background(), admin)
	require.NoError(t, err)

	other := NewAuthService(&config.Config{
		JWTSecret: "different-secret",
		JWTExpiry: 30 * time.Minute,
	}, nil)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
