package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateTokenPair_RoundTrip(t *testing.T) {
	userID := uuid.New()

	pair, err := CreateTokenPair(userID, "user@example.com", "seller")
	assert.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	access, err := ValidateToken(pair.AccessToken, TokenTypeAccess)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), access.Subject)
	assert.Equal(t, "user@example.com", access.Email)
	assert.Equal(t, "seller", access.Role)

	refresh, err := ValidateToken(pair.RefreshToken, TokenTypeRefresh)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), refresh.Subject)
	// refresh tokens never carry the user snapshot
	assert.Empty(t, refresh.Email)
	assert.Empty(t, refresh.Role)
}

func TestValidateToken_TypeMismatch(t *testing.T) {
	pair, err := CreateTokenPair(uuid.New(), "user@example.com", "user")
	assert.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateToken(pair.RefreshToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenSigning_UsesSecretSetAfterInit(t *testing.T) {
	// Secrets loaded from .env only land in the environment after this
	// package has been initialized; tokens must still sign with them.
	t.Setenv("JWT_SECRET", "late-bound-secret")

	pair, err := CreateTokenPair(uuid.New(), "user@example.com", "user")
	assert.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, TokenTypeAccess)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(pair.AccessToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
