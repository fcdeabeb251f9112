package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	adminID := uuid.New()

	token, err := CreateToken(adminID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID.String(), claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	assert.NoError(t, ComparePasswords(hash, "secret123"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}
