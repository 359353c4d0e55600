package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/types"
)

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(&types.TokenClaims{UserID: userID, Username: "tester"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "tester", claims.Username)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService("secret-a")
	verifier := NewAuthService("secret-b")

	token, err := issuer.GenerateToken(&types.TokenClaims{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewAuthService("test-secret")

	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: uuid.New(),
	}
	token, err := svc.GenerateToken(claims)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewAuthService("test-secret")
	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
